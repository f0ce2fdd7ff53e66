package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// Typed extraction failures. Handlers surface these as "analysis failed"
// rather than fabricating a diagnosis from a response we could not read.
var (
	ErrNoJSON  = errors.New("no JSON object found in model response")
	ErrBadJSON = errors.New("model response JSON failed to parse")
)

var fencedJSON = regexp.MustCompile("```json\\n?([\\s\\S]*?)\\n?```")

// ExtractJSON pulls a JSON object out of a raw model response and unmarshals
// it into v. Models wrap output in markdown fences or surround it with prose,
// so extraction tries, in order:
//  1. the contents of a ```json fenced block,
//  2. the first balanced {...} span in the text.
//
// If neither exists the error is ErrNoJSON; if the candidate will not parse
// the error wraps ErrBadJSON.
func ExtractJSON(raw string, v any) error {
	candidate := ""
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	} else {
		candidate = firstBalancedObject(raw)
	}

	if candidate == "" {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	return nil
}

// firstBalancedObject scans for the first top-level {...} span, tracking
// brace depth and skipping braces inside string literals.
func firstBalancedObject(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
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
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
