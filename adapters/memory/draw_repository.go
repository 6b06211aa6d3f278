// Package memory provides the in-memory draw repository used when no database
// is configured, and as the repository for tests.
package memory

import (
	"context"
	"sync"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
	"github.com/justinecabel/3-digit-lotto-analyzer/ports"
)

type key struct {
	sessionID string
	gameID    string
}

// DrawRepository keeps draw histories in process memory
type DrawRepository struct {
	mu     sync.RWMutex
	stored map[key][]draw.Draw
}

// NewDrawRepository creates an empty in-memory repository
func NewDrawRepository() *DrawRepository {
	return &DrawRepository{stored: make(map[key][]draw.Draw)}
}

var _ ports.DrawRepository = (*DrawRepository)(nil)

// Replace overwrites the stored newest-first history for a session+game
func (r *DrawRepository) Replace(_ context.Context, sessionID, gameID string, draws []draw.Draw) error {
	copied := make([]draw.Draw, len(draws))
	for i, d := range draws {
		copied[i] = d.Clone()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored[key{sessionID, gameID}] = copied
	return nil
}

// Load returns the stored newest-first history, empty when none exists
func (r *DrawRepository) Load(_ context.Context, sessionID, gameID string) ([]draw.Draw, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.stored[key{sessionID, gameID}]
	copied := make([]draw.Draw, len(stored))
	for i, d := range stored {
		copied[i] = d.Clone()
	}
	return copied, nil
}

// Clear removes every stored draw for the session, across games
func (r *DrawRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.stored {
		if k.sessionID == sessionID {
			delete(r.stored, k)
		}
	}
	return nil
}
