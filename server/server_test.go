package server

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/setgame/engine"
	utils "github.com/minaorangina/setgame/internal"
	"github.com/minaorangina/setgame/protocol"
	"github.com/minaorangina/setgame/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerHealth(t *testing.T) {
	response := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/health", nil)

	server := NewServer(store.NewInMemoryGameStore(), testConfig())
	server.ServeHTTP(response, request)

	assertStatus(t, response.Code, http.StatusOK)

	bodyBytes, err := ioutil.ReadAll(response.Body)
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, string(bodyBytes), "ok: 0 games\n")
}

func TestServerPOSTNewGame(t *testing.T) {
	t.Run("creates, stores and returns a dealt game", func(t *testing.T) {
		s := store.NewInMemoryGameStore()
		server := NewServer(s, testConfig())

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newCreateGameRequest())

		assertStatus(t, response.Code, http.StatusCreated)

		var got NewGameRes
		mustDecode(t, response.Body, &got)

		utils.AssertNotEmptyString(t, got.GameID)
		utils.AssertEqual(t, got.Game.GameID, got.GameID)
		utils.AssertEqual(t, len(got.Game.Table), engine.DefaultInitialDeal)
		utils.AssertEqual(t, got.Game.DeckCount, 81-engine.DefaultInitialDeal)
		utils.AssertEqual(t, got.Game.Score, 0)

		_, ok := s.FindGame(got.GameID)
		utils.AssertTrue(t, ok)
	})

	t.Run("honours the configured initial deal", func(t *testing.T) {
		cfg := testConfig()
		cfg.InitialDeal = 15
		server := NewServer(store.NewInMemoryGameStore(), cfg)

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newCreateGameRequest())

		var got NewGameRes
		mustDecode(t, response.Body, &got)
		utils.AssertEqual(t, len(got.Game.Table), 15)
	})

	t.Run("does not match on GET /new", func(t *testing.T) {
		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/new", nil)

		server := NewServer(store.NewInMemoryGameStore(), testConfig())
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusNotFound)
	})
}

func TestServerGETGame(t *testing.T) {
	t.Run("returns an existing game", func(t *testing.T) {
		server := newServerWithGame(newOrderedGame(t, testGameID, 0))

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest(testGameID))

		assertStatus(t, response.Code, http.StatusOK)

		var got protocol.OutboundMessage
		mustDecode(t, response.Body, &got)
		utils.AssertEqual(t, got.GameID, testGameID)
		utils.AssertEqual(t, got.Command, protocol.State)
		utils.AssertEqual(t, len(got.Table), 12)
		utils.AssertTrue(t, got.CanDealMore)
	})

	t.Run("returns 404 for an unknown game", func(t *testing.T) {
		server := newServerWithGame(newOrderedGame(t, testGameID, 0))

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest("no-such-game"))

		assertStatus(t, response.Code, http.StatusNotFound)
		utils.AssertEqual(t, response.Body.String(), unknownGameIDMsg("no-such-game"))
	})

	t.Run("returns 400 without a game ID", func(t *testing.T) {
		server := newServerWithGame(newOrderedGame(t, testGameID, 0))

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest(""))

		assertStatus(t, response.Code, http.StatusBadRequest)
	})
}

func TestServerPOSTGame(t *testing.T) {
	t.Run("plays a set", func(t *testing.T) {
		server := newServerWithGame(newOrderedGame(t, testGameID, 0))

		var got protocol.OutboundMessage
		for i := 0; i < 3; i++ {
			data := mustMakeJson(t, protocol.InboundMessage{Command: protocol.Select, Index: i})
			response := httptest.NewRecorder()
			server.ServeHTTP(response, newPlayRequest(testGameID, data))
			assertStatus(t, response.Code, http.StatusOK)

			got = protocol.OutboundMessage{}
			mustDecode(t, response.Body, &got)
		}

		utils.AssertEqual(t, got.Command, protocol.Select)
		utils.AssertEqual(t, got.State, "Matched")
		utils.AssertEqual(t, got.Score, 3)
		utils.AssertEqual(t, got.Matches, 1)
		for i := 0; i < 3; i++ {
			require.NotNil(t, got.Table[i])
			assert.True(t, got.Table[i].Matched)
			assert.True(t, got.Table[i].Selected)
		}
	})

	t.Run("accepts a hand-written command", func(t *testing.T) {
		server := newServerWithGame(newOrderedGame(t, testGameID, 0))

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newPlayRequest(testGameID, []byte(`{"command":"Hint"}`)))

		assertStatus(t, response.Code, http.StatusOK)

		var got protocol.OutboundMessage
		mustDecode(t, response.Body, &got)
		utils.AssertDeepEqual(t, got.Hint, []int{0, 1, 2})
	})

	t.Run("returns 400 for a missing body", func(t *testing.T) {
		server := newServerWithGame(newOrderedGame(t, testGameID, 0))

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newPlayRequest(testGameID, []byte{}))

		assertStatus(t, response.Code, http.StatusBadRequest)
		utils.AssertEqual(t, response.Body.String(), "missing body")
	})

	t.Run("returns 400 for an unknown command", func(t *testing.T) {
		server := newServerWithGame(newOrderedGame(t, testGameID, 0))

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newPlayRequest(testGameID, []byte(`{"command":"Shuffle"}`)))

		assertStatus(t, response.Code, http.StatusBadRequest)
		assert.Contains(t, response.Body.String(), protocol.ErrUnknownCommand.Error())
	})

	t.Run("returns 422 when the engine refuses", func(t *testing.T) {
		// a table that is already as big as the front end allows
		server := newServerWithGame(newOrderedGame(t, testGameID, 12))

		data := mustMakeJson(t, protocol.InboundMessage{Command: protocol.DealMore})
		response := httptest.NewRecorder()
		server.ServeHTTP(response, newPlayRequest(testGameID, data))

		assertStatus(t, response.Code, http.StatusUnprocessableEntity)

		var got protocol.OutboundMessage
		mustDecode(t, response.Body, &got)
		utils.AssertEqual(t, got.Command, protocol.Error)
		utils.AssertEqual(t, got.Error, engine.ErrCannotDealMore.Error())
		utils.AssertEqual(t, len(got.Table), 12)
	})

	t.Run("returns 404 for an unknown game", func(t *testing.T) {
		server := newServerWithGame(newOrderedGame(t, testGameID, 0))

		data := mustMakeJson(t, protocol.InboundMessage{Command: protocol.State})
		response := httptest.NewRecorder()
		server.ServeHTTP(response, newPlayRequest("no-such-game", data))

		assertStatus(t, response.Code, http.StatusNotFound)
	})
}

func TestServerDELETEGame(t *testing.T) {
	s := store.NewInMemoryGameStore(newOrderedGame(t, testGameID, 0))
	server := NewServer(s, testConfig())

	request, _ := http.NewRequest(http.MethodDelete, "/game/"+testGameID, nil)
	response := httptest.NewRecorder()
	server.ServeHTTP(response, request)

	assertStatus(t, response.Code, http.StatusNoContent)
	utils.AssertEqual(t, s.NumGames(), 0)

	response = httptest.NewRecorder()
	server.ServeHTTP(response, newGetGameRequest(testGameID))
	assertStatus(t, response.Code, http.StatusNotFound)
}

func TestServerCORS(t *testing.T) {
	cfg := testConfig()
	cfg.AllowedOrigins = "http://localhost:3000"
	server := NewServer(store.NewInMemoryGameStore(newOrderedGame(t, testGameID, 0)), cfg)

	request := newGetGameRequest(testGameID)
	request.Header.Set("Origin", "http://localhost:3000")
	response := httptest.NewRecorder()
	server.ServeHTTP(response, request)

	assertStatus(t, response.Code, http.StatusOK)
	utils.AssertEqual(t, response.Header().Get("Access-Control-Allow-Origin"), "http://localhost:3000")
}

func TestServerStaticFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "setgame-static")
	utils.AssertNoError(t, err)
	defer os.RemoveAll(dir)
	utils.AssertNoError(t, ioutil.WriteFile(dir+"/index.html", []byte("<!doctype html><title>Set</title>"), 0644))

	cfg := testConfig()
	cfg.StaticDir = dir
	server := NewServer(store.NewInMemoryGameStore(), cfg)

	response := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/", nil)
	server.ServeHTTP(response, request)

	assertStatus(t, response.Code, http.StatusOK)
	utils.AssertTrue(t, strings.Contains(strings.ToLower(response.Body.String()), "<!doctype html>"))
}

func TestGameWebsocket(t *testing.T) {
	t.Run("rejects a missing game ID", func(t *testing.T) {
		server := httptest.NewServer(newServerWithGame(newOrderedGame(t, testGameID, 0)))
		defer server.Close()

		_, resp, err := websocket.DefaultDialer.Dial(makeWSUrl(server.URL, ""), nil)

		utils.AssertErrored(t, err)
		utils.AssertEqual(t, resp.StatusCode, http.StatusBadRequest)
	})

	t.Run("rejects an unknown game", func(t *testing.T) {
		server := httptest.NewServer(newServerWithGame(newOrderedGame(t, testGameID, 0)))
		defer server.Close()

		_, resp, err := websocket.DefaultDialer.Dial(makeWSUrl(server.URL, "no-such-game"), nil)

		utils.AssertErrored(t, err)
		utils.AssertEqual(t, resp.StatusCode, http.StatusNotFound)
	})

	t.Run("rejects a disallowed origin", func(t *testing.T) {
		cfg := testConfig()
		cfg.AllowedOrigins = "http://localhost:3000"
		server := httptest.NewServer(NewServer(store.NewInMemoryGameStore(newOrderedGame(t, testGameID, 0)), cfg))
		defer server.Close()

		header := http.Header{}
		header.Set("Origin", "http://elsewhere.example")
		_, resp, err := websocket.DefaultDialer.Dial(makeWSUrl(server.URL, testGameID), header)

		utils.AssertErrored(t, err)
		utils.AssertEqual(t, resp.StatusCode, http.StatusForbidden)
	})

	t.Run("sends the game on connect and a reply per command", func(t *testing.T) {
		server := httptest.NewServer(newServerWithGame(newOrderedGame(t, testGameID, 0)))
		defer server.Close()

		ws := mustDialWS(t, makeWSUrl(server.URL, testGameID))
		defer ws.Close()
		ws.SetReadDeadline(time.Now().Add(time.Second))

		var got protocol.OutboundMessage
		utils.AssertNoError(t, ws.ReadJSON(&got))
		utils.AssertEqual(t, got.Command, protocol.State)
		utils.AssertEqual(t, got.GameID, testGameID)

		t.Log("When the player selects a card")
		utils.AssertNoError(t, ws.WriteJSON(protocol.InboundMessage{Command: protocol.Select, Index: 4}))

		got = protocol.OutboundMessage{}
		utils.AssertNoError(t, ws.ReadJSON(&got))

		t.Log("Then the reply shows it selected")
		utils.AssertEqual(t, got.Command, protocol.Select)
		utils.AssertEqual(t, got.State, "Partial")
		require.NotNil(t, got.Table[4])
		assert.True(t, got.Table[4].Selected)
	})

	t.Run("answers garbage with an error and stays open", func(t *testing.T) {
		server := httptest.NewServer(newServerWithGame(newOrderedGame(t, testGameID, 0)))
		defer server.Close()

		ws := mustDialWS(t, makeWSUrl(server.URL, testGameID))
		defer ws.Close()
		ws.SetReadDeadline(time.Now().Add(time.Second))

		var got protocol.OutboundMessage
		utils.AssertNoError(t, ws.ReadJSON(&got))

		utils.AssertNoError(t, ws.WriteMessage(websocket.TextMessage, []byte("not json")))
		got = protocol.OutboundMessage{}
		utils.AssertNoError(t, ws.ReadJSON(&got))
		utils.AssertEqual(t, got.Command, protocol.Error)
		utils.AssertTrue(t, strings.HasPrefix(got.Error, "could not parse message"))

		utils.AssertNoError(t, ws.WriteJSON(protocol.InboundMessage{Command: protocol.Hint}))
		got = protocol.OutboundMessage{}
		utils.AssertNoError(t, ws.ReadJSON(&got))
		utils.AssertDeepEqual(t, got.Hint, []int{0, 1, 2})
	})
}
