package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/setgame/config"
	"github.com/minaorangina/setgame/engine"
	"github.com/minaorangina/setgame/protocol"
	"github.com/minaorangina/setgame/store"
)

type NewGameRes struct {
	GameID string                   `json:"game_id"`
	Game   protocol.OutboundMessage `json:"game"`
}

// GameServer is a game server
type GameServer struct {
	store    store.GameStore
	cfg      config.Config
	upgrader websocket.Upgrader
	http.Server
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(s store.GameStore, cfg config.Config) *GameServer {
	g := &GameServer{
		store: s,
		cfg:   cfg,
	}
	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(cfg.Origins()),
	}

	router := http.NewServeMux()
	router.HandleFunc("/health", g.HandleHealth)
	router.HandleFunc("/new", g.HandleNewGame)
	router.HandleFunc("/game/", g.HandleGame)
	router.HandleFunc("/ws", g.HandleWS)
	if cfg.StaticDir != "" {
		router.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.Origins()),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(log.New(os.Stderr, "", log.LstdFlags)))

	g.Addr = cfg.Addr()
	g.Handler = handlers.CombinedLoggingHandler(os.Stdout, recovery(cors(router)))

	return g
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

func (g *GameServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "ok: %d games\n", g.store.NumGames())
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	game, err := engine.NewGameEngine(engine.GameEngineOpts{
		InitialDeal: g.cfg.InitialDeal,
		TableSlots:  g.cfg.TableSlots,
	})
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := g.store.AddGame(game); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, NewGameRes{
		GameID: game.ID(),
		Game:   game.Snapshot(),
	})
}

// HandleGame reads, plays or ends a game.
// GET returns the game, POST sends it a command, DELETE ends it.
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	game, ok := g.store.FindGame(gameID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, game.Snapshot())

	case http.MethodPost:
		var msg protocol.InboundMessage
		err := json.NewDecoder(r.Body).Decode(&msg)
		defer r.Body.Close()
		if err != nil {
			writeParseError(err, w)
			return
		}

		out := game.Receive(msg)
		status := http.StatusOK
		if out.Command == protocol.Error {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, out)

	case http.MethodDelete:
		if err := g.store.RemoveGame(gameID); err != nil {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(unknownGameIDMsg(gameID)))
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// HandleWS plays a game over a websocket
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		log.Println("missing game ID")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	game, ok := g.store.FindGame(gameID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		log.Println(err)
		return
	}

	client := newWSClient(conn, game)
	go client.writePump()
	go client.readPump()
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeParseError(err error, w http.ResponseWriter) {
	log.Println(err.Error())
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusBadRequest)
	if err == io.EOF {
		w.Write([]byte("missing body"))
		return
	}
	w.Write([]byte(fmt.Sprintf("could not parse message: %v", err)))
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}
