package draw

import (
	"strings"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
)

// LineError pairs a 1-based input line number with its validation failure
type LineError struct {
	Line int
	Text string
	Err  error
}

// Message returns the human-readable reason for the failure
func (le LineError) Message() string {
	return le.Err.Error()
}

// ParseBatch applies ParseDraw to every non-blank line of a multi-line upload.
// Successes and failures accumulate independently: one bad line never hides
// the others, so a whole file is reported in a single pass. Blank lines are
// skipped but still counted for line numbering.
func ParseBatch(text string, spec game.Spec) ([]Draw, []LineError) {
	var draws []Draw
	var lineErrors []LineError

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		d, err := ParseDraw(trimmed, spec)
		if err != nil {
			lineErrors = append(lineErrors, LineError{Line: i + 1, Text: trimmed, Err: err})
			continue
		}
		draws = append(draws, d)
	}

	return draws, lineErrors
}
