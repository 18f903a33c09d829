package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	jsonFence = regexp.MustCompile("```json\\n?")
	anyFence  = regexp.MustCompile("```\\n?")
)

// StripCodeFence removes markdown code fences around a JSON answer.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = jsonFence.ReplaceAllString(s, "")
	s = anyFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// DecodeJSON parses a model answer into v.
// When the answer carries prose around the document, the first balanced
// JSON array or object is decoded instead.
func DecodeJSON(text string, v any) error {
	cleaned := StripCodeFence(text)
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	doc, err := extractJSON(cleaned)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return fmt.Errorf("parse extracted JSON: %w", err)
	}
	return nil
}

// extractJSON finds the first balanced JSON array or object in s.
func extractJSON(s string) (string, error) {
	start := strings.IndexAny(s, "[{")
	if start == -1 {
		return "", fmt.Errorf("no JSON document found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("malformed JSON document in response")
}
