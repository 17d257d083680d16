package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/setgame/config"
	"github.com/minaorangina/setgame/deck"
	"github.com/minaorangina/setgame/engine"
	"github.com/minaorangina/setgame/game"
	utils "github.com/minaorangina/setgame/internal"
	"github.com/minaorangina/setgame/store"
)

const testGameID = "this-is-a-game-id"

func testConfig() config.Config {
	return config.Config{
		Port:           8000,
		AllowedOrigins: "*",
		TableSlots:     engine.DefaultTableSlots,
		InitialDeal:    engine.DefaultInitialDeal,
	}
}

// newOrderedGame returns an engine over an unshuffled deck with twelve cards dealt,
// so slots 0, 1 and 2 hold a set
func newOrderedGame(t *testing.T, gameID string, tableSlots int) engine.GameEngine {
	t.Helper()

	g := game.NewSetGame(game.SetGameOpts{Deck: deck.New()})
	g.DealCards(engine.DefaultInitialDeal)

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		GameID:     gameID,
		Game:       g,
		TableSlots: tableSlots,
	})
	utils.AssertNoError(t, err)

	return ge
}

func newServerWithGame(game engine.GameEngine) *GameServer {
	return NewServer(store.NewInMemoryGameStore(game), testConfig())
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func mustDecode(t *testing.T, body *bytes.Buffer, target interface{}) {
	t.Helper()

	bodyBytes, err := ioutil.ReadAll(body)
	utils.AssertNoError(t, err)

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		t.Fatalf("Could not unmarshal json: %s", err.Error())
	}
}

func newCreateGameRequest() *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", nil)
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newPlayRequest(gameID string, data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID, bytes.NewBuffer(data))
	return request
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)

	if err != nil {
		var body []byte
		code := 0
		if resp != nil {
			body, _ = ioutil.ReadAll(resp.Body)
			code = resp.StatusCode
		}
		t.Fatalf("could not open a ws connection on %s, code %d: %s, %v", url, code, body, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}
