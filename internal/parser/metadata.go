package parser

import (
	"strings"
)

// metaDelimiter opens and closes both the document frontmatter and the
// per-annotation metadata block.
const metaDelimiter = "---"

// isDelimiter reports whether a line consists solely of the block delimiter.
func isDelimiter(line string) bool {
	return strings.TrimSpace(line) == metaDelimiter
}

// parseKeyValues parses flat `key: value` lines. One colon split per line;
// lines without a colon are ignored. Values keep their raw (unquoted) form;
// coercion happens at lookup time.
func parseKeyValues(lines []string) map[string]string {
	values := make(map[string]string)
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = stripQuotes(strings.TrimSpace(value))
	}
	return values
}

// stripQuotes removes one layer of surrounding backticks, double quotes or
// single quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '`' || first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// metaString returns the value for key, or def if absent.
func metaString(values map[string]string, key, def string) string {
	if v, ok := values[key]; ok && v != "" {
		return v
	}
	return def
}

// metaInt returns the value for key coerced to an integer. Missing or
// non-numeric values fall back to def.
func metaInt(values map[string]string, key string, def int64) int64 {
	v, ok := values[key]
	if !ok || v == "" {
		return def
	}
	var n int64
	for _, r := range v {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int64(r-'0')
	}
	return n
}

// metaBool returns the value for key as a tri-state boolean: nil when the
// key is absent or not a recognizable boolean.
func metaBool(values map[string]string, key string) *bool {
	v, ok := values[key]
	if !ok {
		return nil
	}
	switch v {
	case "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	default:
		return nil
	}
}
