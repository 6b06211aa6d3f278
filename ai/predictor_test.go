package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/config"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
)

var threeDigit = game.Spec{
	ID: "3d", Name: "Swertres 3-Digit", DigitCount: 3, MinValue: 0, MaxValue: 9, OrderSignificant: true,
}

var comboSix = game.Spec{
	ID: "lotto642", Name: "Lotto 6/42", DigitCount: 6, MinValue: 1, MaxValue: 42, OrderSignificant: false,
}

func TestParsePredictionContentValid(t *testing.T) {
	content := `{"predictedNumbers":[4,0,7],"analysisSummary":"4 and 7 run hot"}`

	result, err := ParsePredictionContent(content, threeDigit, "test-model")
	if err != nil {
		t.Fatalf("ParsePredictionContent failed: %v", err)
	}
	if !reflect.DeepEqual(result.PredictedValues, []int{4, 0, 7}) {
		t.Errorf("values = %v, want [4 0 7]", result.PredictedValues)
	}
	if result.AnalysisSummary != "4 and 7 run hot" {
		t.Errorf("summary = %q", result.AnalysisSummary)
	}
}

func TestParsePredictionContentFencedEqualsUnfenced(t *testing.T) {
	bare := `{"predictedNumbers":[1,2,3],"analysisSummary":"x"}`
	fenced := "```json\n" + bare + "\n```"

	a, err := ParsePredictionContent(bare, threeDigit, "m")
	if err != nil {
		t.Fatalf("bare parse failed: %v", err)
	}
	b, err := ParsePredictionContent(fenced, threeDigit, "m")
	if err != nil {
		t.Fatalf("fenced parse failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("fenced result %+v differs from bare %+v", b, a)
	}
}

func TestParsePredictionContentFailures(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		spec     game.Spec
		wantCode string
	}{
		{"not json", "the next draw is 1-2-3", threeDigit, errors.CodeMalformedResponse},
		{"missing numbers", `{"analysisSummary":"x"}`, threeDigit, errors.CodeMalformedResponse},
		{"missing summary", `{"predictedNumbers":[1,2,3]}`, threeDigit, errors.CodeMalformedResponse},
		{"numbers not an array", `{"predictedNumbers":"123","analysisSummary":"x"}`, threeDigit, errors.CodeMalformedResponse},
		{"too few values", `{"predictedNumbers":[1,2],"analysisSummary":"x"}`, threeDigit, errors.CodeInvalidPredictionValue},
		{"value above range", `{"predictedNumbers":[1,2,10],"analysisSummary":"x"}`, threeDigit, errors.CodeInvalidPredictionValue},
		{"fractional value", `{"predictedNumbers":[1,2,3.7],"analysisSummary":"x"}`, threeDigit, errors.CodeInvalidPredictionValue},
		{"combo duplicates", `{"predictedNumbers":[5,5,12,20,31,42],"analysisSummary":"x"}`, comboSix, errors.CodeInvalidPredictionValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePredictionContent(tc.content, tc.spec, "m")
			if err == nil {
				t.Fatal("parse succeeded, want failure")
			}
			if code := errors.GetCode(err); code != tc.wantCode {
				t.Errorf("code = %s, want %s (err: %v)", code, tc.wantCode, err)
			}
		})
	}
}

func TestParsePredictionContentErrorNamesOffendingPosition(t *testing.T) {
	_, err := ParsePredictionContent(`{"predictedNumbers":[1,2,10],"analysisSummary":"x"}`, threeDigit, "m")
	if err == nil {
		t.Fatal("expected failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "10") || !strings.Contains(msg, "position 3") {
		t.Errorf("error %q does not name the offending value and position", msg)
	}
}

func TestParsePredictionContentSortsCombinationValues(t *testing.T) {
	content := `{"predictedNumbers":[42,5,12,20,31,1],"analysisSummary":"spread"}`

	result, err := ParsePredictionContent(content, comboSix, "m")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !reflect.DeepEqual(result.PredictedValues, []int{1, 5, 12, 20, 31, 42}) {
		t.Errorf("values = %v, want ascending", result.PredictedValues)
	}
}

func TestDisabledPredictorFailsFast(t *testing.T) {
	p := NewPredictor(config.AIConfig{OpenAIKey: ""})

	if p.Enabled() {
		t.Fatal("predictor without a credential reports enabled")
	}

	_, err := p.Predict(context.Background(), threeDigit, historyOf(t, 5))
	if err == nil {
		t.Fatal("disabled predictor returned a prediction")
	}
	if code := errors.GetCode(err); code != errors.CodeServiceUnavailable {
		t.Errorf("code = %s, want %s", code, errors.CodeServiceUnavailable)
	}
}

func TestPredictAgainstFakeEndpoint(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			Temperature float64 `json:"temperature"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Messages) == 2 {
			gotPrompt = req.Messages[1].Content
		}

		content := "```json\n{\"predictedNumbers\":[4,6,2],\"analysisSummary\":\"recent repeats\"}\n```"
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	cfg := config.AIConfig{
		OpenAIKey:   "test-key",
		OpenAIModel: "test-model",
		BaseURL:     server.URL,
		Temperature: 0.7,
		MaxTokens:   500,
		TimeoutMS:   5000,
	}

	p := NewPredictor(cfg)
	if !p.Enabled() {
		t.Fatal("predictor with a credential reports disabled")
	}

	result, err := p.Predict(context.Background(), threeDigit, historyOf(t, 4))
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if !reflect.DeepEqual(result.PredictedValues, []int{4, 6, 2}) {
		t.Errorf("values = %v, want [4 6 2]", result.PredictedValues)
	}

	// The prompt must carry the game parameters and the full history
	if !strings.Contains(gotPrompt, "3 numbers") || !strings.Contains(gotPrompt, "between 0 and 9") {
		t.Errorf("prompt missing game parameters:\n%s", gotPrompt)
	}
	if !strings.Contains(gotPrompt, "oldest first") {
		t.Errorf("prompt missing history ordering note:\n%s", gotPrompt)
	}
}

func TestPredictSurfacesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewPredictor(config.AIConfig{
		OpenAIKey: "k", OpenAIModel: "m", BaseURL: server.URL, TimeoutMS: 5000,
	})

	_, err := p.Predict(context.Background(), threeDigit, historyOf(t, 3))
	if err == nil {
		t.Fatal("HTTP error swallowed")
	}
}

func historyOf(t *testing.T, n int) []draw.Draw {
	t.Helper()
	out := make([]draw.Draw, n)
	for i := range out {
		out[i] = draw.Draw{Values: []int{i % 10, (i + 3) % 10, (i + 7) % 10}}
	}
	return out
}
