package store

import (
	"errors"
	"fmt"
	"io"
	"sync"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/dezgeg/shenzen-solitaire/deck"
	"github.com/dezgeg/shenzen-solitaire/game"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrStoreFull     = errors.New("too many games in progress")
	ErrInvalidBoard  = errors.New("board is not a valid deal")
)

type GameStore interface {
	NewGame(pf game.Playfield) (*Game, error)
	FindGame(gameID string) (*Game, error)
	RemoveGame(gameID string) error
	Len() int
}

// Game is a single board in play. Updates to one game are serialised by its
// own lock, so two moves never race on the same board.
type Game struct {
	ID string

	mu    sync.Mutex
	board game.Playfield
	moves int
}

// State is a board together with the number of moves that led to it, read
// under one lock
type State struct {
	Board game.Playfield
	Moves int
}

// State returns the board and move count as of the same instant
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return State{Board: g.board.Clone(), Moves: g.moves}
}

// Snapshot returns a copy of the board that the caller may keep
func (g *Game) Snapshot() game.Playfield {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Clone()
}

// Moves counts the accepted moves and flips
func (g *Game) Moves() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.moves
}

// Apply makes m on the board. On rejection the board is unchanged.
func (g *Game) Apply(rules game.Rules, m game.Move) (State, error) {
	return g.update(func(pf game.Playfield) (game.Playfield, error) {
		return rules.ApplyMove(pf, m)
	})
}

// Flip collects the dragons of suit into a free cell
func (g *Game) Flip(rules game.Rules, suit deck.Suit) (State, error) {
	return g.update(func(pf game.Playfield) (game.Playfield, error) {
		return rules.FlipDragon(pf, suit)
	})
}

func (g *Game) update(fn func(game.Playfield) (game.Playfield, error)) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	next, err := fn(g.board)
	if err != nil {
		return State{}, err
	}
	g.board = next
	g.moves++

	return State{Board: next.Clone(), Moves: g.moves}, nil
}

// InMemoryGameStore maps game id to game
type InMemoryGameStore struct {
	mu       sync.Mutex
	games    map[string]*Game
	rules    game.Rules
	maxGames int
	log      logrus.FieldLogger
}

// NewInMemoryGameStore constructs an InMemoryGameStore. A maxGames of zero
// means no limit.
func NewInMemoryGameStore(rules game.Rules, maxGames int, log logrus.FieldLogger) *InMemoryGameStore {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &InMemoryGameStore{
		games:    map[string]*Game{},
		rules:    rules,
		maxGames: maxGames,
		log:      log,
	}
}

// NewGame starts tracking pf under a fresh id
func (s *InMemoryGameStore) NewGame(pf game.Playfield) (*Game, error) {
	if err := s.rules.Validate(pf); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBoard, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxGames > 0 && len(s.games) >= s.maxGames {
		s.log.WithField("games", len(s.games)).Warn("refusing new game")
		return nil, ErrStoreFull
	}

	g := &Game{
		ID:    uuid.NewV4().String(),
		board: pf.Clone(),
	}
	s.games[g.ID] = g

	s.log.WithField("game_id", g.ID).Info("game created")

	return g, nil
}

func (s *InMemoryGameStore) FindGame(gameID string) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}
	return g, nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}
	delete(s.games, gameID)

	s.log.WithField("game_id", gameID).Info("game removed")

	return nil
}

func (s *InMemoryGameStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.games)
}
