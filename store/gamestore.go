package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/setgame/engine"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrGameExists    = errors.New("game already exists")
	ErrNilGame       = errors.New("game is nil")
)

type GameStore interface {
	FindGame(gameID string) (engine.GameEngine, bool)
	AddGame(game engine.GameEngine) error
	RemoveGame(gameID string) error
	NumGames() int
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore(games ...engine.GameEngine) *InMemoryGameStore {
	s := &InMemoryGameStore{games: map[string]engine.GameEngine{}}
	for _, g := range games {
		s.games[g.ID()] = g
	}
	return s
}

func (s *InMemoryGameStore) FindGame(gameID string) (engine.GameEngine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[gameID]
	return game, ok
}

func (s *InMemoryGameStore) AddGame(game engine.GameEngine) error {
	if game == nil {
		return ErrNilGame
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, game.ID())
	}
	s.games[game.ID()] = game
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	delete(s.games, gameID)
	return nil
}

func (s *InMemoryGameStore) NumGames() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
