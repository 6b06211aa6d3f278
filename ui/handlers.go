package ui

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justinecabel/3-digit-lotto-analyzer/adapters/excel"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/sampledata"
)

func (s *Server) handleIndex(c *gin.Context) {
	snap := s.store.Snapshot(c.Request.Context(), sessionID(c))
	view := s.buildStateView(snap)

	c.Header("Content-Type", "text/html")
	if err := s.templates.ExecuteTemplate(c.Writer, "index.html", view); err != nil {
		log.Printf("Template error: %v", err)
		c.String(http.StatusInternalServerError, "Template error")
	}
}

func (s *Server) handleState(c *gin.Context) {
	snap := s.store.Snapshot(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusOK, s.buildStateView(snap))
}

// handleInsertDraw accepts one draw from the manual entry form
func (s *Server) handleInsertDraw(c *gin.Context) {
	id := sessionID(c)
	snap := s.store.Snapshot(c.Request.Context(), id)

	raw := c.PostForm("draw")
	d, err := draw.ParseDraw(raw, snap.Spec)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
		return
	}

	s.store.InsertDraw(c.Request.Context(), id, d)
	snap = s.store.Snapshot(c.Request.Context(), id)
	c.JSON(http.StatusOK, s.buildStateView(snap))
}

// handleInsertBatch accepts multi-line text from the bulk entry textarea.
// Lines are chronological, oldest first.
func (s *Server) handleInsertBatch(c *gin.Context) {
	s.importText(c, c.PostForm("draws"))
}

// handleLoadSample loads the bundled demo history for the active game
func (s *Server) handleLoadSample(c *gin.Context) {
	snap := s.store.Snapshot(c.Request.Context(), sessionID(c))
	text, ok := sampledata.ForGame(snap.Spec.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no sample data for game %q", snap.Spec.ID)})
		return
	}
	s.importText(c, text)
}

// handleUpload accepts a CSV/text or XLSX results file
func (s *Server) handleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("results")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	maxBytes := int64(s.cfg.Data.MaxUploadMB) * 1024 * 1024
	if header.Size > maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size exceeds the %dMB limit", s.cfg.Data.MaxUploadMB)})
		return
	}

	filename := strings.ToLower(header.Filename)
	var text string
	switch {
	case strings.HasSuffix(filename, ".xlsx"):
		text, err = excel.ReadDrawLines(file)
		if err != nil {
			log.Printf("[handleUpload] FAILED - could not read workbook %s: %v", header.Filename, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the Excel file"})
			return
		}
	case strings.HasSuffix(filename, ".csv"), strings.HasSuffix(filename, ".txt"):
		raw, err := io.ReadAll(io.LimitReader(file, maxBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
			return
		}
		text = string(raw)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only .csv, .txt and .xlsx files are allowed"})
		return
	}

	s.importText(c, text)
}

// importText runs the shared batch path: parse every line, insert the
// successes chronologically, report all failures together.
func (s *Server) importText(c *gin.Context, text string) {
	id := sessionID(c)
	snap := s.store.Snapshot(c.Request.Context(), id)

	draws, lineErrors := draw.ParseBatch(text, snap.Spec)
	s.store.InsertChronological(c.Request.Context(), id, draws)

	report := s.buildBatchReport(len(draws), lineErrors)
	snap = s.store.Snapshot(c.Request.Context(), id)

	status := http.StatusOK
	if len(draws) == 0 && len(lineErrors) > 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"report": report,
		"state":  s.buildStateView(snap),
	})
}

// handleRemoveDraw deletes one draw by its newest-first index
func (s *Server) handleRemoveDraw(c *gin.Context) {
	id := sessionID(c)

	index, err := strconv.Atoi(c.PostForm("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be a number"})
		return
	}

	if err := s.store.RemoveDraw(c.Request.Context(), id, index); err != nil {
		// An out-of-range index means the page raced a mutation; the
		// refreshed state below resolves it for the client.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
		return
	}

	snap := s.store.Snapshot(c.Request.Context(), id)
	c.JSON(http.StatusOK, s.buildStateView(snap))
}

func (s *Server) handleClearDraws(c *gin.Context) {
	id := sessionID(c)
	s.store.ClearDraws(c.Request.Context(), id)
	snap := s.store.Snapshot(c.Request.Context(), id)
	c.JSON(http.StatusOK, s.buildStateView(snap))
}

// handleSwitchGame changes the active game, discarding the collection and any
// held prediction
func (s *Server) handleSwitchGame(c *gin.Context) {
	id := sessionID(c)
	gameID := c.PostForm("game")

	if err := s.store.SwitchGame(c.Request.Context(), id, gameID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := s.store.Snapshot(c.Request.Context(), id)
	c.JSON(http.StatusOK, s.buildStateView(snap))
}
