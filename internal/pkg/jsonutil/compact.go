package jsonutil

import (
	"encoding/json"
	"fmt"
)

// Compact renders v as single-line JSON text, falling back to fmt's default
// formatting when v cannot be marshalled.
func Compact(v any) string {
	buf, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(buf)
}
