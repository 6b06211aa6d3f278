// Package ai implements the prediction requestor: prompt construction, one
// outbound chat-completion call, response normalization and shape validation.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/config"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
	"github.com/justinecabel/3-digit-lotto-analyzer/models"
	"github.com/justinecabel/3-digit-lotto-analyzer/ports"
)

// MinimumDraws is the usage-contract floor for prediction requests, enforced
// by the caller before invoking the predictor.
const MinimumDraws = 3

// predictionResponse is the exact wire shape the model must return. Pointer
// fields distinguish an absent field from a present-but-empty one.
type predictionResponse struct {
	PredictedNumbers *[]json.Number `json:"predictedNumbers"`
	AnalysisSummary  *string        `json:"analysisSummary"`
}

// Predictor is the enabled capability variant backed by an OpenAI client
type Predictor struct {
	client *OpenAIClient
}

// Disabled is the capability variant constructed when no credential is
// present. Every call fails immediately without touching the network.
type Disabled struct{}

// NewPredictor decides the capability once, at construction: with a credential
// the enabled predictor is returned, otherwise the disabled variant.
func NewPredictor(cfg config.AIConfig) ports.Predictor {
	if cfg.OpenAIKey == "" {
		return Disabled{}
	}
	return &Predictor{client: NewOpenAIClient(cfg)}
}

// Enabled always reports true for the live predictor
func (p *Predictor) Enabled() bool { return true }

// Predict performs one prediction round trip and validates the result
func (p *Predictor) Predict(ctx context.Context, spec game.Spec, chronological []draw.Draw) (*models.PredictionResult, error) {
	prompt := BuildPredictionPrompt(spec, chronological)

	content, err := p.client.CompleteJSON(ctx, prompt)
	if err != nil {
		return nil, errors.Wrap(err, "prediction request failed")
	}

	return ParsePredictionContent(content, spec, p.client.Model)
}

// ParsePredictionContent normalizes, parses and validates raw model output.
// Exported separately from the transport so the full validation path is
// testable without a live endpoint.
func ParsePredictionContent(content string, spec game.Spec, model string) (*models.PredictionResult, error) {
	cleaned := NormalizeJSONContent(content)

	var resp predictionResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, errors.MalformedResponse(err)
	}
	if resp.PredictedNumbers == nil {
		return nil, errors.MalformedResponse(fmt.Errorf("missing predictedNumbers field"))
	}
	if resp.AnalysisSummary == nil {
		return nil, errors.MalformedResponse(fmt.Errorf("missing analysisSummary field"))
	}

	raw := *resp.PredictedNumbers
	if len(raw) != spec.DigitCount {
		return nil, errors.InvalidPredictionValue(
			fmt.Sprintf("expected %d predicted numbers, got %d", spec.DigitCount, len(raw)))
	}

	values := make([]int, len(raw))
	for i, num := range raw {
		v, err := num.Int64()
		if err != nil {
			return nil, errors.InvalidPredictionValue(
				fmt.Sprintf("predicted number %s at position %d is not an integer", num.String(), i+1))
		}
		if !spec.Contains(int(v)) {
			return nil, errors.InvalidPredictionValue(
				fmt.Sprintf("predicted number %d at position %d is outside %d-%d", v, i+1, spec.MinValue, spec.MaxValue))
		}
		values[i] = int(v)
	}

	if !spec.OrderSignificant {
		values = dedupeSorted(values)
		if len(values) != spec.DigitCount {
			return nil, errors.InvalidPredictionValue(
				"model returned duplicate numbers for a combination game")
		}
	}

	return &models.PredictionResult{
		PredictedValues: values,
		AnalysisSummary: *resp.AnalysisSummary,
		Model:           model,
	}, nil
}

func dedupeSorted(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Enabled always reports false for the disabled variant
func (Disabled) Enabled() bool { return false }

// Predict fails fast: the missing credential is surfaced, never silently
// swallowed.
func (Disabled) Predict(context.Context, game.Spec, []draw.Draw) (*models.PredictionResult, error) {
	return nil, errors.ServiceUnavailable("prediction service is not configured: set OPENAI_API_KEY to enable it")
}
