package ai

import (
	"fmt"
	"strings"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
)

// BuildPredictionPrompt renders the game parameters and the chronological
// draw history into the instruction the model answers. The response contract
// is pinned to exactly two JSON fields so validation stays mechanical.
func BuildPredictionPrompt(spec game.Spec, chronological []draw.Draw) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are analyzing historical results of the %q lottery game.\n", spec.Name)
	fmt.Fprintf(&b, "Each draw consists of %d numbers, each between %d and %d inclusive.\n",
		spec.DigitCount, spec.MinValue, spec.MaxValue)
	if spec.OrderSignificant {
		b.WriteString("Position matters and the same number may repeat across positions.\n")
	} else {
		b.WriteString("Order does not matter and all numbers in a draw are distinct.\n")
	}

	b.WriteString("\nHistorical draws, oldest first:\n")
	for i, d := range chronological {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d.String())
	}

	fmt.Fprintf(&b, `
Study the digit frequencies, recent trends and any positional patterns, then
predict the most probable next draw.

Respond with a single JSON object with exactly these two fields and no others:
{
  "predictedNumbers": [%d integers, each between %d and %d],
  "analysisSummary": "a short explanation of the reasoning"
}

Do not wrap the JSON in markdown fences and do not add any text outside it.
`, spec.DigitCount, spec.MinValue, spec.MaxValue)

	return b.String()
}
