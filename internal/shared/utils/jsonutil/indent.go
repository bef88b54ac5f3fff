// Package jsonutil provides JSON display utilities.
package jsonutil

import (
	"bytes"
	"encoding/json"
)

// Indent pretty-prints a raw JSON payload for operator inspection without
// interpreting its structure. Returns an error if the payload is not valid
// JSON.
func Indent(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
