package plan

import "strings"

// CleanResponse normalizes raw completion output into parseable JSON text.
// Stage one strips markdown code fences; stage two unwraps a string-encoded
// JSON document (the model occasionally returns the whole object serialized
// inside a JSON string). Both stages are no-ops on well-formed output.
func CleanResponse(raw string) string {
	return unwrapStringEncoded(stripCodeFences(raw))
}

// stripCodeFences removes ```json / ``` wrappers anywhere in the text.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json\n", "")
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```\n", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// unwrapStringEncoded undoes one level of string encoding: when the whole
// value is wrapped in double quotes, the outer quotes are removed and the
// embedded escapes for quotes and line breaks are undone.
func unwrapStringEncoded(s string) string {
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return s
	}
	inner := s[1 : len(s)-1]
	inner = strings.ReplaceAll(inner, `\"`, `"`)
	inner = strings.ReplaceAll(inner, `\n`, "\n")
	inner = strings.ReplaceAll(inner, `\r`, "\r")
	return inner
}
