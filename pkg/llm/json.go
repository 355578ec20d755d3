package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fenceRE = regexp.MustCompile("```(?:json)?\\s*")

// stripFences removes markdown code fences that models wrap around JSON
// despite instructions not to.
func stripFences(content string) string {
	cleaned := fenceRE.ReplaceAllString(content, "")
	cleaned = strings.TrimSpace(cleaned)
	return strings.TrimRight(cleaned, "`")
}

// ExtractJSON parses a model response into v, tolerating markdown fences.
func ExtractJSON(content string, v any) error {
	cleaned := stripFences(content)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
