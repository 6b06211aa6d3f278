package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
)

var digitGame = game.Spec{ID: "3d", DigitCount: 3, MinValue: 0, MaxValue: 9, OrderSignificant: true}

func TestSummarize(t *testing.T) {
	s := Summarize(draws([]int{1, 2, 3}, []int{4, 5, 6})) // sums 6 and 15

	assert.Equal(t, 2, s.DrawCount)
	assert.Equal(t, 6, s.ValueCount)
	assert.InDelta(t, 10.5, s.MeanSum, 1e-9)
	assert.InDelta(t, 10.5, s.MedianSum, 1e-9)
	assert.InDelta(t, 4.5, s.StdDevSum, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.DrawCount)
	assert.Zero(t, s.MeanSum)
}

func TestUniformitySkippedOnSmallSamples(t *testing.T) {
	entries := Frequencies(draws([]int{1, 2, 3}))
	u := TestUniformity(entries, digitGame)
	assert.False(t, u.Tested)
}

func TestUniformityUniformSampleScoresHighP(t *testing.T) {
	// Every digit 0-9 observed exactly 4 times: perfectly uniform
	entries := make([]Entry, 0, 10)
	for d := 0; d <= 9; d++ {
		entries = append(entries, Entry{Value: d, Count: 4, Percentage: 10})
	}

	u := TestUniformity(entries, digitGame)
	assert.True(t, u.Tested)
	assert.Equal(t, 9, u.DF)
	assert.InDelta(t, 0.0, u.ChiSquare, 1e-9)
	assert.InDelta(t, 1.0, u.PValue, 1e-9)
}

func TestUniformityDegenerateSampleScoresLowP(t *testing.T) {
	entries := []Entry{{Value: 7, Count: 60, Percentage: 100}}

	u := TestUniformity(entries, digitGame)
	assert.True(t, u.Tested)
	assert.Less(t, u.PValue, 0.001)
}
