package ports

import (
	"context"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
	"github.com/justinecabel/3-digit-lotto-analyzer/models"
)

// Predictor requests a probabilistic next-draw prediction from a generative
// text model.
//
// Usage contract: callers supply draws oldest-first and must enforce the
// minimum-history precondition (at least 3 draws) before calling; Predict does
// not re-check it. Failures are surfaced once per attempt, never retried
// internally.
type Predictor interface {
	// Predict suspends the caller for one network round trip
	Predict(ctx context.Context, spec game.Spec, chronological []draw.Draw) (*models.PredictionResult, error)

	// Enabled reports whether a service credential was present at
	// construction. A disabled predictor fails every Predict call with
	// SERVICE_UNAVAILABLE without attempting the network call.
	Enabled() bool
}
