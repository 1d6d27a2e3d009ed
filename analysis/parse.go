package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject pulls the first JSON object out of an LLM reply. Models
// routinely wrap JSON in markdown fences or chat around it, so this strips
// ```json fences and falls back to the outermost brace pair. Parse failures
// here are expected and routine, never exceptional.
func ExtractJSONObject(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	if idx := strings.Index(text, "```json"); idx >= 0 {
		text = text[idx+len("```json"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
	} else if idx := strings.Index(text, "```"); idx >= 0 {
		text = text[idx+len("```"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON object in response")
	}
	return text[start : end+1], nil
}

// DecodeJSONObject extracts and unmarshals an LLM reply into out.
func DecodeJSONObject(raw string, out interface{}) error {
	block, err := ExtractJSONObject(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(block), out); err != nil {
		return fmt.Errorf("invalid JSON in response: %v", err)
	}
	return nil
}
