// Package draw implements parsing, validation and ordering of lottery draw
// results. A Draw is immutable once it passes validation against a game spec.
package draw

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
)

// Draw is a validated result: exactly spec.DigitCount values, each within the
// game's range. For combination games the values are ascending and distinct.
type Draw struct {
	Values []int `json:"values"`
}

// String renders the draw in the canonical dash-joined display form
func (d Draw) String() string {
	parts := make([]string, len(d.Values))
	for i, v := range d.Values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "-")
}

// Clone returns an independent copy of the draw
func (d Draw) Clone() Draw {
	values := make([]int, len(d.Values))
	copy(values, d.Values)
	return Draw{Values: values}
}

func isDelimiter(r rune) bool {
	return r == ',' || r == '-' || unicode.IsSpace(r)
}

// ParseDraw converts one raw line into a validated Draw for the given game.
//
// Tokens are split on any run of commas, hyphens or whitespace. Failures carry
// the original raw text so batch callers can report them verbatim.
func ParseDraw(raw string, spec game.Spec) (Draw, error) {
	trimmed := strings.TrimSpace(raw)
	tokens := strings.FieldsFunc(trimmed, isDelimiter)

	if len(tokens) != spec.DigitCount {
		return Draw{}, errors.WrongCount(trimmed, len(tokens), spec.DigitCount)
	}

	values := make([]int, len(tokens))
	for i, token := range tokens {
		v, err := parseIntToken(trimmed, token)
		if err != nil {
			return Draw{}, err
		}
		if !spec.Contains(v) {
			return Draw{}, errors.OutOfRange(trimmed, v, spec.MinValue, spec.MaxValue)
		}
		values[i] = v
	}

	if !spec.OrderSignificant {
		if countDistinct(values) != len(values) {
			return Draw{}, errors.DuplicateValue(trimmed)
		}
		sort.Ints(values)
	}

	return Draw{Values: values}, nil
}

// parseIntToken accepts plain integers and integral floats ("3.0"). A numeric
// but fractional token is a range failure, not a parse failure.
func parseIntToken(raw, token string) (int, error) {
	if v, err := strconv.Atoi(token); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errors.NotNumeric(raw, token)
	}
	if f != math.Trunc(f) {
		return 0, errors.New(errors.CodeOutOfRange, fmt.Sprintf("%q: %s is not a whole number", raw, token))
	}
	return int(f), nil
}

func countDistinct(values []int) int {
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
