package app

import (
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 512

// traceQuery flattens a SQL statement onto one line for span attributes and caps
// it at maxTracedQueryLength bytes without splitting a multi-byte character.
func traceQuery(query string) string {
	flat := strings.Join(strings.Fields(query), " ")
	if len(flat) <= maxTracedQueryLength {
		return flat
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(flat[cut]) {
		cut--
	}
	return flat[:cut] + "..."
}
