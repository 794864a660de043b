package prediction

import (
	"strconv"
	"strings"
)

// The remote prediction services return heterogeneous nested JSON whose
// field names vary between versions ("MW" vs "molecular_weight" vs "MolWt").
// Extraction therefore walks the decoded document recursively and matches
// keys against per-field alias lists after normalisation.

// normalizeKey lowercases a JSON key and strips separators so that "LogP",
// "log_p" and "log-p" all compare equal.
func normalizeKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch r {
		case '_', '-', ' ', '.':
		default:
			sb.WriteRune(toLower(r))
		}
	}
	return sb.String()
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// asNumber coerces a decoded JSON value to float64.  Numeric strings are
// accepted because some endpoints serialise numbers as strings.
func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// findNumber searches doc depth-first for the first value whose key matches
// one of the aliases and coerces to a number.
func findNumber(doc interface{}, aliases ...string) (float64, bool) {
	normalized := make(map[string]bool, len(aliases))
	for _, a := range aliases {
		normalized[normalizeKey(a)] = true
	}
	return searchNumber(doc, normalized)
}

func searchNumber(doc interface{}, aliases map[string]bool) (float64, bool) {
	switch node := doc.(type) {
	case map[string]interface{}:
		for key, val := range node {
			if aliases[normalizeKey(key)] {
				if f, ok := asNumber(val); ok {
					return f, true
				}
			}
		}
		for _, val := range node {
			if f, ok := searchNumber(val, aliases); ok {
				return f, true
			}
		}
	case []interface{}:
		for _, item := range node {
			if f, ok := searchNumber(item, aliases); ok {
				return f, true
			}
		}
	}
	return 0, false
}

// findString searches doc depth-first for the first string value whose key
// matches one of the aliases.
func findString(doc interface{}, aliases ...string) (string, bool) {
	normalized := make(map[string]bool, len(aliases))
	for _, a := range aliases {
		normalized[normalizeKey(a)] = true
	}
	return searchString(doc, normalized)
}

func searchString(doc interface{}, aliases map[string]bool) (string, bool) {
	switch node := doc.(type) {
	case map[string]interface{}:
		for key, val := range node {
			if aliases[normalizeKey(key)] {
				if s, ok := val.(string); ok && s != "" {
					return s, true
				}
			}
		}
		for _, val := range node {
			if s, ok := searchString(val, aliases); ok {
				return s, true
			}
		}
	case []interface{}:
		for _, item := range node {
			if s, ok := searchString(item, aliases); ok {
				return s, true
			}
		}
	}
	return "", false
}
