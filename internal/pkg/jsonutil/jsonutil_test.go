package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompact(t *testing.T) {
	assert.Equal(t, `{"a":1}`, Compact(map[string]any{"a": 1}))
	assert.Equal(t, `[1,2]`, Compact([]any{1, 2}))
	assert.Equal(t, `"s"`, Compact("s"))
}

func TestPretty(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", Pretty(`{"a":1}`))
	assert.Equal(t, "not json", Pretty("not json"))
	assert.Equal(t, "", Pretty("  "))
}
