// Package postgres provides the sqlx-backed draw-history repository selected
// when DATABASE_URL is configured.
package postgres

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
	"github.com/justinecabel/3-digit-lotto-analyzer/ports"
)

// DrawRepositoryImpl implements DrawRepository for PostgreSQL
type DrawRepositoryImpl struct {
	db *sqlx.DB
}

// NewDrawRepository creates a new PostgreSQL draw repository
func NewDrawRepository(db *sqlx.DB) ports.DrawRepository {
	return &DrawRepositoryImpl{db: db}
}

// Migrate creates the backing table when it does not exist yet
func (r *DrawRepositoryImpl) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session_draws (
			session_id TEXT NOT NULL,
			game_id    TEXT NOT NULL,
			position   INT  NOT NULL,
			values_json TEXT NOT NULL,
			PRIMARY KEY (session_id, game_id, position)
		)
	`)
	return errors.Wrap(err, "failed to create session_draws table")
}

// Replace overwrites the stored newest-first history for a session+game
func (r *DrawRepositoryImpl) Replace(ctx context.Context, sessionID, gameID string, draws []draw.Draw) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM session_draws WHERE session_id = $1 AND game_id = $2
	`, sessionID, gameID); err != nil {
		return errors.Wrap(err, "failed to delete previous draws")
	}

	for i, d := range draws {
		valuesJSON, err := json.Marshal(d.Values)
		if err != nil {
			return errors.Wrap(err, "failed to encode draw values")
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO session_draws (session_id, game_id, position, values_json)
			VALUES ($1, $2, $3, $4)
		`, sessionID, gameID, i, string(valuesJSON)); err != nil {
			return errors.Wrap(err, "failed to insert draw")
		}
	}

	return errors.Wrap(tx.Commit(), "failed to commit draw history")
}

// Load returns the stored newest-first history, empty when none exists
func (r *DrawRepositoryImpl) Load(ctx context.Context, sessionID, gameID string) ([]draw.Draw, error) {
	var rows []string
	err := r.db.SelectContext(ctx, &rows, `
		SELECT values_json
		FROM session_draws
		WHERE session_id = $1 AND game_id = $2
		ORDER BY position ASC
	`, sessionID, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load draws")
	}

	draws := make([]draw.Draw, 0, len(rows))
	for _, valuesJSON := range rows {
		var values []int
		if err := json.Unmarshal([]byte(valuesJSON), &values); err != nil {
			return nil, errors.Wrap(err, "failed to decode stored draw")
		}
		draws = append(draws, draw.Draw{Values: values})
	}
	return draws, nil
}

// Clear removes every stored draw for the session, across games
func (r *DrawRepositoryImpl) Clear(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM session_draws WHERE session_id = $1
	`, sessionID)
	return errors.Wrap(err, "failed to clear session draws")
}
