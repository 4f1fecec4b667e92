// Package protocol parses the structured responses exchanged with the
// assistant model. A response is either plain text or text containing a
// single JSON object carrying directives; the parsers here are
// deliberately forgiving and never fail — unparseable input degrades to
// a plain-text message.
package protocol

import (
	"encoding/json"
	"strings"
)

// ExtractObject locates the first balanced JSON object in s and returns
// its raw bytes together with the [start, end) span it occupies. The
// scan honours string literals and escape sequences, so braces inside
// strings do not count toward nesting. The candidate must unmarshal as
// a JSON object; otherwise no object is reported.
func ExtractObject(s string) (raw string, start, end int, ok bool) {
	start = strings.IndexByte(s, '{')
	if start < 0 {
		return "", 0, 0, false
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
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := s[start : i+1]
				var probe map[string]json.RawMessage
				if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
					return "", 0, 0, false
				}
				return candidate, start, i + 1, true
			}
		}
	}
	return "", 0, 0, false
}

// outsideText returns the response text outside the [start, end) span,
// stripped. Used to synthesise a message when the JSON object lacks one.
func outsideText(s string, start, end int) string {
	return strings.TrimSpace(strings.TrimSpace(s[:start]) + " " + strings.TrimSpace(s[end:]))
}

// isTrue reports whether a raw JSON value is the boolean literal true.
func isTrue(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "true"
}

// isObject reports whether a raw JSON value is an object.
func isObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{")
}
