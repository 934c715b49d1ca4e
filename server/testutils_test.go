package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"math/rand"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/dezgeg/shenzen-solitaire/deck"
	"github.com/dezgeg/shenzen-solitaire/game"
	utils "github.com/dezgeg/shenzen-solitaire/internal"
	"github.com/dezgeg/shenzen-solitaire/store"
)

func newTestStore() *store.InMemoryGameStore {
	return store.NewInMemoryGameStore(game.DefaultRules(), 0, nil)
}

func newTestServer(str store.GameStore) *GameServer {
	return NewServer(ServerOpts{
		Store: str,
		Rules: game.DefaultRules(),
		Rand:  rand.New(rand.NewSource(1)),
	})
}

// newServerWithGame returns a server tracking a single game on board
func newServerWithGame(t *testing.T, board game.Playfield) (*GameServer, *store.Game) {
	t.Helper()

	str := newTestStore()
	g, err := str.NewGame(board)
	utils.AssertNoError(t, err)

	return newTestServer(str), g
}

func shuffledBoard(seed int64) game.Playfield {
	return game.NewShuffledPlayfield(rand.New(rand.NewSource(seed)))
}

// exposedDragonsBoard is a full deal with the four black dragons on top of
// columns 0 to 3
func exposedDragonsBoard() game.Playfield {
	var rest deck.Deck
	for _, c := range deck.New() {
		if c != deck.Dragon(deck.Black) {
			rest = append(rest, c)
		}
	}

	var pf game.Playfield
	for i, c := range rest {
		pf.Tableau[i%game.NumColumns] = append(pf.Tableau[i%game.NumColumns], c)
	}
	for i := 0; i < deck.DragonsPerSuit; i++ {
		pf.Tableau[i] = append(pf.Tableau[i], deck.Dragon(deck.Black))
	}
	return pf
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest() *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", nil)
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newMoveRequest(gameID string, data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID+"/move", bytes.NewBuffer(data))
	return request
}

func newFlipRequest(gameID string, data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID+"/flip", bytes.NewBuffer(data))
	return request
}

func decodeGameRes(t *testing.T, body *bytes.Buffer) GameRes {
	t.Helper()

	var got GameRes
	if err := json.Unmarshal(body.Bytes(), &got); err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	return got
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)

	if err != nil {
		if resp != nil {
			body, _ := ioutil.ReadAll(resp.Body)
			t.Fatalf("could not open a ws connection on %s, code %d: %s, %v", url, resp.StatusCode, body, err)
		}
		t.Fatalf("could not open a ws connection on %s: %v", url, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}
