package ports

import (
	"context"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
)

// DrawRepository persists per-session draw histories so a browser session
// survives a server restart. The in-memory session state stays authoritative;
// the repository only mirrors it.
type DrawRepository interface {
	// Replace overwrites the stored newest-first history for a session+game
	Replace(ctx context.Context, sessionID, gameID string, draws []draw.Draw) error

	// Load returns the stored newest-first history, empty when none exists
	Load(ctx context.Context, sessionID, gameID string) ([]draw.Draw, error)

	// Clear removes every stored draw for the session, across games
	Clear(ctx context.Context, sessionID string) error
}
