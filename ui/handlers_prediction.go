package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
)

// handlePredict requests an LLM prediction for the session's current history.
// One attempt per request; failures surface once and are never retried here.
func (s *Server) handlePredict(c *gin.Context) {
	id := sessionID(c)

	result, err := s.store.RequestPrediction(c.Request.Context(), id, s.predictor)
	if err != nil {
		status := http.StatusBadGateway
		switch errors.GetCode(err) {
		case errors.CodeServiceUnavailable:
			status = http.StatusServiceUnavailable
		case errors.CodeInsufficientData:
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prediction":  result,
		"summaryHTML": renderSummaryHTML(result.AnalysisSummary),
	})
}

// renderSummaryHTML converts the model's markdown-ish analysis summary into
// HTML for the prediction panel.
func renderSummaryHTML(summary string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	return string(markdown.ToHTML([]byte(summary), p, renderer))
}
