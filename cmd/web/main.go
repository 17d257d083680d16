package main

import (
	"log"

	"github.com/minaorangina/setgame/config"
	"github.com/minaorangina/setgame/server"
	"github.com/minaorangina/setgame/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore(), cfg)
	log.Printf("Listening on %s...", s.Addr)
	log.Fatal(s.ListenAndServe())
}
