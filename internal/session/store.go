// Package session holds per-browser application state: the selected game, the
// draw collection, the last prediction and the generation guard that keeps a
// slow prediction response from landing on state that has since changed.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/justinecabel/3-digit-lotto-analyzer/ai"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
	"github.com/justinecabel/3-digit-lotto-analyzer/models"
	"github.com/justinecabel/3-digit-lotto-analyzer/ports"
)

// state is one session's mutable data. Mutation happens only under the store
// lock, so per-session operations stay logically sequential.
type state struct {
	spec       game.Spec
	collection *draw.Collection
	prediction *models.PredictionResult
	generation uint64
}

// Snapshot is a read-only copy of a session handed to the presentation layer
type Snapshot struct {
	Spec       game.Spec
	Draws      []draw.Draw // newest first
	Prediction *models.PredictionResult
	Generation uint64
}

// Store manages all sessions. Safe for concurrent use by gin handlers.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*state

	catalog     *game.Catalog
	defaultGame string
	repo        ports.DrawRepository
	flight      singleflight.Group
	logger      *internal.Logger
}

// NewStore creates a session store over the given catalog and repository
func NewStore(catalog *game.Catalog, defaultGame string, repo ports.DrawRepository, logger *internal.Logger) (*Store, error) {
	if _, ok := catalog.Get(defaultGame); !ok {
		return nil, errors.ConfigInvalid(fmt.Sprintf("default game %q is not in the catalog", defaultGame))
	}
	return &Store{
		sessions:    make(map[string]*state),
		catalog:     catalog,
		defaultGame: defaultGame,
		repo:        repo,
		logger:      logger.With("SessionStore"),
	}, nil
}

// NewSessionID mints a fresh session identifier
func (s *Store) NewSessionID() string {
	return uuid.NewString()
}

// ensure returns the session state, creating it with the default game and any
// persisted history on first sight. Callers must hold the write lock.
func (s *Store) ensure(ctx context.Context, id string) *state {
	if st, ok := s.sessions[id]; ok {
		return st
	}

	spec, _ := s.catalog.Get(s.defaultGame)
	st := &state{spec: spec, collection: draw.NewCollection()}

	if s.repo != nil {
		stored, err := s.repo.Load(ctx, id, spec.ID)
		if err != nil {
			s.logger.Warn("could not restore draws for session %s: %v", id, err)
		} else if len(stored) > 0 {
			for i := len(stored) - 1; i >= 0; i-- {
				st.collection.InsertFront(stored[i])
			}
			s.logger.Info("restored %d draws for session %s", len(stored), id)
		}
	}

	s.sessions[id] = st
	return st
}

// mutated bumps the generation and discards any held prediction. Every
// collection or game change routes through here.
func (s *Store) mutated(ctx context.Context, id string, st *state) {
	st.generation++
	st.prediction = nil
	s.persist(ctx, id, st)
}

func (s *Store) persist(ctx context.Context, id string, st *state) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Replace(ctx, id, st.spec.ID, st.collection.Draws()); err != nil {
		// Durability is best-effort; the in-memory state stays authoritative.
		s.logger.Warn("could not persist draws for session %s: %v", id, err)
	}
}

// Snapshot returns a read-only copy of the session
func (s *Store) Snapshot(ctx context.Context, id string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensure(ctx, id)

	var prediction *models.PredictionResult
	if st.prediction != nil {
		p := *st.prediction
		prediction = &p
	}
	return Snapshot{
		Spec:       st.spec,
		Draws:      st.collection.Draws(),
		Prediction: prediction,
		Generation: st.generation,
	}
}

// InsertDraw prepends one validated draw as the newest entry
func (s *Store) InsertDraw(ctx context.Context, id string, d draw.Draw) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensure(ctx, id)
	st.collection.InsertFront(d)
	s.mutated(ctx, id, st)
}

// InsertChronological bulk-inserts draws supplied oldest-first
func (s *Store) InsertChronological(ctx context.Context, id string, draws []draw.Draw) {
	if len(draws) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensure(ctx, id)
	st.collection.InsertChronological(draws)
	s.mutated(ctx, id, st)
}

// RemoveDraw deletes the draw at the given newest-first index
func (s *Store) RemoveDraw(ctx context.Context, id string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensure(ctx, id)
	if err := st.collection.RemoveAt(index); err != nil {
		s.logger.Error("remove at invalid index for session %s: %v", id, err)
		return err
	}
	s.mutated(ctx, id, st)
	return nil
}

// ClearDraws discards the session's entire collection
func (s *Store) ClearDraws(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensure(ctx, id)
	st.collection.Clear()
	s.mutated(ctx, id, st)
}

// SwitchGame changes the active game, discarding the collection: draws are not
// portable across games with different digit counts or ranges.
func (s *Store) SwitchGame(ctx context.Context, id, gameID string) error {
	spec, ok := s.catalog.Get(gameID)
	if !ok {
		return errors.New(errors.CodeInternalError, fmt.Sprintf("unknown game %q", gameID))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensure(ctx, id)
	if st.spec.ID == spec.ID {
		return nil
	}
	st.spec = spec
	st.collection.Clear()
	s.mutated(ctx, id, st)
	return nil
}

// RequestPrediction runs the full prediction flow for one session: capture the
// generation, call out, and apply the result only if nothing changed while the
// call was in flight. A stale result is dropped, not an error surfaced to the
// user who mutated the data. Concurrent requests against the same session and
// generation share one outbound call.
func (s *Store) RequestPrediction(ctx context.Context, id string, predictor ports.Predictor) (*models.PredictionResult, error) {
	s.mu.Lock()
	st := s.ensure(ctx, id)
	spec := st.spec
	chronological := st.collection.Chronological()
	generation := st.generation
	s.mu.Unlock()

	if len(chronological) < ai.MinimumDraws {
		return nil, errors.InsufficientData(
			fmt.Sprintf("need at least %d draws for a prediction, have %d", ai.MinimumDraws, len(chronological)))
	}

	key := fmt.Sprintf("%s:%d", id, generation)
	result, err, _ := s.flight.Do(key, func() (interface{}, error) {
		return predictor.Predict(ctx, spec, chronological)
	})
	if err != nil {
		return nil, err
	}
	prediction := result.(*models.PredictionResult)

	s.mu.Lock()
	defer s.mu.Unlock()
	st = s.ensure(ctx, id)
	if st.generation != generation {
		s.logger.Info("dropping stale prediction for session %s (generation %d, now %d)",
			id, generation, st.generation)
		return nil, errors.New(errors.CodeInternalError, "draw data changed while the prediction was in flight; request it again")
	}
	st.prediction = prediction
	return prediction, nil
}
