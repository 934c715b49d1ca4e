package server

import (
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/dezgeg/shenzen-solitaire/deck"
	"github.com/dezgeg/shenzen-solitaire/game"
	"github.com/dezgeg/shenzen-solitaire/protocol"
	"github.com/dezgeg/shenzen-solitaire/store"
)

type MoveReq struct {
	Move string `json:"move"`
}

type FlipReq struct {
	Suit string `json:"suit"`
}

// GameRes describes one game and what can be done next
type GameRes struct {
	GameID    string              `json:"game_id"`
	Board     *protocol.BoardView `json:"board"`
	Moves     []string            `json:"moves"`
	MoveCount int                 `json:"move_count"`
}

type ServerOpts struct {
	Store store.GameStore
	Rules game.Rules
	// Rand deals new games. It is only used under the server's lock.
	Rand           *rand.Rand
	Logger         logrus.FieldLogger
	AllowedOrigins []string
	// AccessLog receives one combined log line per request, if set
	AccessLog io.Writer
}

// GameServer is a game server
type GameServer struct {
	store store.GameStore
	rules game.Rules
	log   logrus.FieldLogger

	randMu sync.Mutex
	rand   *rand.Rand

	upgrader websocket.Upgrader

	http.Server
}

// NewServer creates a new GameServer
func NewServer(opts ServerOpts) *GameServer {
	s := &GameServer{
		store: opts.Store,
		rules: opts.Rules,
		log:   opts.Logger,
		rand:  opts.Rand,
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(origins),
	}

	var handler http.Handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)

	if opts.AccessLog != nil {
		handler = handlers.CombinedLoggingHandler(opts.AccessLog, handler)
	}

	s.Handler = handler

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame deals a new board and starts tracking it
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	g.randMu.Lock()
	board := game.NewShuffledPlayfield(g.rand)
	g.randMu.Unlock()

	created, err := g.store.NewGame(board)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	g.writeJSON(w, http.StatusCreated, g.gameResponse(created.ID, created.State()))
}

// HandleGame serves /game/{id}, /game/{id}/move and /game/{id}/flip
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/game/"), "/"), "/")
	if parts[0] == "" {
		writeText(w, http.StatusBadRequest, "missing game ID")
		return
	}
	if len(parts) > 2 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := parts[0]
	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		g.handleGetGame(w, r, gameID)
	case action == "" && r.Method == http.MethodDelete:
		g.handleDeleteGame(w, r, gameID)
	case action == "move" && r.Method == http.MethodPost:
		g.handleMove(w, r, gameID)
	case action == "flip" && r.Method == http.MethodPost:
		g.handleFlip(w, r, gameID)
	case action == "" || action == "move" || action == "flip":
		w.WriteHeader(http.StatusMethodNotAllowed)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (g *GameServer) handleGetGame(w http.ResponseWriter, r *http.Request, gameID string) {
	found, err := g.store.FindGame(gameID)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	g.writeJSON(w, http.StatusOK, g.gameResponse(found.ID, found.State()))
}

func (g *GameServer) handleDeleteGame(w http.ResponseWriter, r *http.Request, gameID string) {
	if err := g.store.RemoveGame(gameID); err != nil {
		g.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *GameServer) handleMove(w http.ResponseWriter, r *http.Request, gameID string) {
	var data MoveReq
	if err := decodeBody(r, &data); err != nil {
		g.writeError(w, r, err)
		return
	}

	m, err := game.ParseMove(data.Move)
	if err != nil {
		g.writeError(w, r, badRequest(err))
		return
	}

	found, err := g.store.FindGame(gameID)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	st, err := found.Apply(g.rules, m)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	g.log.WithFields(logrus.Fields{"game_id": gameID, "move": m.String()}).Debug("move applied")
	g.writeJSON(w, http.StatusOK, g.gameResponse(gameID, st))
}

func (g *GameServer) handleFlip(w http.ResponseWriter, r *http.Request, gameID string) {
	var data FlipReq
	if err := decodeBody(r, &data); err != nil {
		g.writeError(w, r, err)
		return
	}

	suit, err := deck.ParseSuit(data.Suit)
	if err != nil {
		g.writeError(w, r, badRequest(err))
		return
	}

	found, err := g.store.FindGame(gameID)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	st, err := found.Flip(g.rules, suit)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	g.log.WithFields(logrus.Fields{"game_id": gameID, "suit": suit.String()}).Debug("dragons flipped")
	g.writeJSON(w, http.StatusOK, g.gameResponse(gameID, st))
}

// HandleWS plays one game over a websocket. Every inbound message gets
// exactly one reply, and the current state is sent on connect. The socket is
// closed once the game has been removed from the store.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		writeText(w, http.StatusBadRequest, "missing game ID")
		return
	}

	found, err := g.store.FindGame(gameID)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		g.log.WithError(err).WithField("game_id", gameID).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log := g.log.WithFields(logrus.Fields{"game_id": gameID, "remote": r.RemoteAddr})
	log.Info("websocket connected")

	if err := conn.WriteJSON(g.stateMessage(found, found.Snapshot())); err != nil {
		log.WithError(err).Warn("websocket write failed")
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.WithError(err).Info("websocket closed")
			return
		}

		found, err := g.store.FindGame(gameID)
		if err != nil {
			log.WithError(err).Info("game gone, closing websocket")
			conn.WriteJSON(errorMessage(gameID, err))
			return
		}

		reply := g.handleInbound(found, data)
		if err := conn.WriteJSON(reply); err != nil {
			log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}

func (g *GameServer) handleInbound(found *store.Game, data []byte) protocol.OutboundMessage {
	var msg protocol.InboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return errorMessage(found.ID, err)
	}

	switch msg.Command {
	case protocol.State:
		return g.stateMessage(found, found.Snapshot())

	case protocol.Move:
		m, err := game.ParseMove(msg.Move)
		if err != nil {
			return errorMessage(found.ID, err)
		}
		st, err := found.Apply(g.rules, m)
		if err != nil {
			return errorMessage(found.ID, err)
		}
		return g.stateMessage(found, st.Board)

	case protocol.Flip:
		suit, err := deck.ParseSuit(msg.Suit)
		if err != nil {
			return errorMessage(found.ID, err)
		}
		st, err := found.Flip(g.rules, suit)
		if err != nil {
			return errorMessage(found.ID, err)
		}
		return g.stateMessage(found, st.Board)
	}

	return errorMessage(found.ID, errors.New("unsupported command "+msg.Command.String()))
}

func (g *GameServer) stateMessage(found *store.Game, board game.Playfield) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		GameID:  found.ID,
		Command: protocol.State,
		Board:   protocol.NewBoardView(board),
		Moves:   protocol.MoveStrings(g.rules.LegalMoves(board)),
	}
}

func errorMessage(gameID string, err error) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		GameID:  gameID,
		Command: protocol.Error,
		Error:   err.Error(),
	}
}

func (g *GameServer) gameResponse(gameID string, st store.State) GameRes {
	return GameRes{
		GameID:    gameID,
		Board:     protocol.NewBoardView(st.Board),
		Moves:     protocol.MoveStrings(g.rules.LegalMoves(st.Board)),
		MoveCount: st.Moves,
	}
}

// originChecker accepts requests without an Origin header (non-browser
// clients), and otherwise only origins on the list. "*" allows any origin.
func originChecker(origins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range origins {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}
