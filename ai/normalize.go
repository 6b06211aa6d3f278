package ai

import (
	"strings"
)

// NormalizeJSONContent strips markdown code fences and leading chatter from a
// model reply so the remainder can be parsed structurally. Models wrap JSON in
// fences despite instruction not to, so this runs on every response.
//
// Kept free of transport concerns so it can be unit-tested on its own.
func NormalizeJSONContent(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	// Drop prose lines a chatty model may emit before the payload
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if trimmed == "" ||
			strings.HasPrefix(lower, "here is") ||
			strings.HasPrefix(lower, "the json") ||
			strings.HasPrefix(lower, "output:") ||
			strings.HasPrefix(lower, "response:") ||
			strings.HasPrefix(lower, "##") {
			continue
		}
		kept = append(kept, line)
	}
	content = strings.TrimSpace(strings.Join(kept, "\n"))

	// A remaining chatter prefix before the opening brace gets cut too
	if !strings.HasPrefix(content, "{") {
		if idx := strings.Index(content, "{"); idx > 0 {
			prefix := content[:idx]
			if !strings.Contains(prefix, "}") {
				content = content[idx:]
			}
		}
	}

	return content
}
