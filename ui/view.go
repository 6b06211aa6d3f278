package ui

import (
	"fmt"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/analysis"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/session"
	"github.com/justinecabel/3-digit-lotto-analyzer/models"
)

// StateView is the full dashboard state, rendered server-side on GET / and
// returned as JSON from /api/state after mutations.
type StateView struct {
	Game        game.Spec                `json:"game"`
	Games       []game.Spec              `json:"games"`
	Draws       []DrawView               `json:"draws"`
	Frequencies []analysis.Entry         `json:"frequencies"`
	HotDigits   []int                    `json:"hotDigits"`
	Summary     analysis.Summary         `json:"summary"`
	Uniformity  analysis.Uniformity      `json:"uniformity"`
	Prediction  *models.PredictionResult `json:"prediction"`
	AIEnabled   bool                     `json:"aiEnabled"`
}

// DrawView pairs a draw with its newest-first index for the delete buttons
type DrawView struct {
	Index   int    `json:"index"`
	Display string `json:"display"`
}

// buildStateView derives every dashboard figure from the session snapshot.
// Frequencies and friends are recomputed wholesale on every request; nothing
// derived is stored.
func (s *Server) buildStateView(snap session.Snapshot) StateView {
	entries := analysis.Frequencies(snap.Draws)

	draws := make([]DrawView, len(snap.Draws))
	for i, d := range snap.Draws {
		draws[i] = DrawView{Index: i, Display: d.String()}
	}

	return StateView{
		Game:        snap.Spec,
		Games:       s.catalog.List(),
		Draws:       draws,
		Frequencies: entries,
		HotDigits:   analysis.HotDigits(entries, snap.Spec.DigitCount),
		Summary:     analysis.Summarize(snap.Draws),
		Uniformity:  analysis.TestUniformity(entries, snap.Spec),
		Prediction:  snap.Prediction,
		AIEnabled:   s.predictor.Enabled(),
	}
}

// BatchReport summarizes one batch import for the user: how many lines
// landed, plus a capped preview of the failures and a remainder tally.
type BatchReport struct {
	Accepted      int      `json:"accepted"`
	Failed        int      `json:"failed"`
	ErrorPreview  []string `json:"errorPreview,omitempty"`
	MoreErrors    int      `json:"moreErrors,omitempty"`
}

func (s *Server) buildBatchReport(accepted int, lineErrors []draw.LineError) BatchReport {
	report := BatchReport{Accepted: accepted, Failed: len(lineErrors)}

	limit := s.cfg.Data.ErrorPreview
	for i, le := range lineErrors {
		if i >= limit {
			report.MoreErrors = len(lineErrors) - limit
			break
		}
		report.ErrorPreview = append(report.ErrorPreview,
			fmt.Sprintf("line %d: %s", le.Line, le.Message()))
	}
	return report
}

func formatPct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
