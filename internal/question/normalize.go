package question

import "strings"

// NormalizeLabel trims whitespace and lowercases a label for matching.
func NormalizeLabel(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// trimCodeFence removes a surrounding markdown code fence from model output.
func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if newline := strings.IndexByte(trimmed, '\n'); newline >= 0 {
		// drop the info string, e.g. ```json
		trimmed = trimmed[newline+1:]
	}
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
