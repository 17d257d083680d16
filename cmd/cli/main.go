package main

import (
	"flag"
	"log"
	"os"

	"github.com/minaorangina/setgame/engine"
)

func main() {
	plain := flag.Bool("plain", false, "draw cards without terminal colours")
	deal := flag.Int("deal", engine.DefaultInitialDeal, "cards on the table at the start")
	flag.Parse()

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{InitialDeal: *deal})
	if err != nil {
		log.Fatal("Could not initialise a new game: ", err)
	}

	p := engine.NewCLIPlayer(ge, os.Stdin, os.Stdout, !*plain)
	if err := p.Play(); err != nil {
		log.Fatal(err)
	}
}
