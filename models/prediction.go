package models

// PredictionResult is the validated outcome of one prediction request.
// It is transient: any draw or game change discards it.
type PredictionResult struct {
	PredictedValues []int  `json:"predictedValues"`
	AnalysisSummary string `json:"analysisSummary"`
	Model           string `json:"model,omitempty"`
}
