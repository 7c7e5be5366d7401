// Package expression builds expressions in the Vega expression language, which is a subset of JavaScript.
package expression

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StringValue renders s as a string literal, the same way JSON.stringify would.
// Field names are arbitrary user input, so they always go through here before landing in an expression.
func StringValue(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// Encoding a string can't fail.
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Field accesses the given field of the current datum.
func Field(field string) string {
	return "datum[" + StringValue(field) + "]"
}

func GreaterThanZero(field string) string {
	return Field(field) + " > 0"
}

func NotNull(field string) string {
	return Field(field) + " !== null"
}

func NotNaN(field string) string {
	return "!isNaN(" + Field(field) + ")"
}

// And joins the predicates into a conjunction. Empty predicates are skipped.
func And(predicates ...string) string {
	parts := make([]string, 0, len(predicates))
	for _, predicate := range predicates {
		if predicate == "" {
			continue
		}
		parts = append(parts, predicate)
	}
	return strings.Join(parts, " && ")
}
