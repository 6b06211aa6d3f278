package analysis

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
)

// minUniformitySample is the flattened-value count below which the chi-square
// uniformity test is skipped (expected cell counts get too small to trust).
const minUniformitySample = 30

// Summary holds descriptive statistics of the per-draw value sums, shown on
// the dashboard next to the frequency table.
type Summary struct {
	DrawCount  int     `json:"drawCount"`
	ValueCount int     `json:"valueCount"`
	MeanSum    float64 `json:"meanSum"`
	MedianSum  float64 `json:"medianSum"`
	StdDevSum  float64 `json:"stdDevSum"`
}

// Uniformity reports a Pearson chi-square test of the observed value counts
// against a uniform distribution over the game's range.
type Uniformity struct {
	Tested    bool    `json:"tested"`
	ChiSquare float64 `json:"chiSquare"`
	DF        int     `json:"df"`
	PValue    float64 `json:"pValue"`
}

// Summarize computes per-draw sum statistics. An empty history yields a zero
// summary, not an error.
func Summarize(draws []draw.Draw) Summary {
	s := Summary{DrawCount: len(draws)}
	if len(draws) == 0 {
		return s
	}

	sums := make([]float64, len(draws))
	for i, d := range draws {
		total := 0
		for _, v := range d.Values {
			total += v
		}
		sums[i] = float64(total)
		s.ValueCount += len(d.Values)
	}

	// stats errors only on empty input, which is excluded above
	s.MeanSum, _ = stats.Mean(sums)
	s.MedianSum, _ = stats.Median(sums)
	s.StdDevSum, _ = stats.StandardDeviation(sums)
	return s
}

// TestUniformity checks whether the observed value counts are consistent with
// a uniform draw over [spec.MinValue, spec.MaxValue]. Values never observed
// still contribute zero-count cells.
func TestUniformity(entries []Entry, spec game.Spec) Uniformity {
	k := spec.RangeSize()
	if k < 2 {
		return Uniformity{}
	}

	total := 0
	observed := make(map[int]int, len(entries))
	for _, e := range entries {
		observed[e.Value] = e.Count
		total += e.Count
	}
	if total < minUniformitySample {
		return Uniformity{}
	}

	expected := float64(total) / float64(k)
	chi := 0.0
	for v := spec.MinValue; v <= spec.MaxValue; v++ {
		diff := float64(observed[v]) - expected
		chi += diff * diff / expected
	}

	df := k - 1
	dist := distuv.ChiSquared{K: float64(df)}
	return Uniformity{
		Tested:    true,
		ChiSquare: chi,
		DF:        df,
		PValue:    1 - dist.CDF(chi),
	}
}
