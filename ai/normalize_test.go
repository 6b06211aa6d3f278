package ai

import (
	"testing"
)

func TestNormalizeJSONContent(t *testing.T) {
	payload := `{"predictedNumbers":[1,2,3],"analysisSummary":"x"}`

	cases := []struct {
		name  string
		input string
	}{
		{"bare json", payload},
		{"padded json", "\n  " + payload + "  \n"},
		{"json fence", "```json\n" + payload + "\n```"},
		{"anonymous fence", "```\n" + payload + "\n```"},
		{"chatter prefix line", "Here is the prediction:\n" + payload},
		{"inline chatter before brace", "Sure! " + payload},
		{"heading then json", "## Analysis\n" + payload},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeJSONContent(tc.input); got != payload {
				t.Errorf("NormalizeJSONContent(%q) = %q, want %q", tc.input, got, payload)
			}
		})
	}
}

func TestNormalizeJSONContentLeavesMultilineObjectsAlone(t *testing.T) {
	payload := "{\n\"predictedNumbers\": [1, 2, 3],\n\"analysisSummary\": \"hot digits lead\"\n}"

	got := NormalizeJSONContent("```json\n" + payload + "\n```")
	if got != payload {
		t.Errorf("multiline object mangled:\n%q\nwant\n%q", got, payload)
	}
}
