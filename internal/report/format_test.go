package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1500, "1.50k"},
		{2500000, "2.50M"},
		{3000000000, "3.00B"},
		{42, "42"},
		{3.14159, "3.14"},
		{0, "0"},
		{-1500, "-1.50k"},
		{-42, "-42"},
		{999, "999"},
		{0.5, "0.50"},
		{123456, "123.46k"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatNumber(tc.in), "FormatNumber(%v)", tc.in)
	}
}

func TestGroupedInt(t *testing.T) {
	assert.Equal(t, "1,234", groupedInt(1234))
	assert.Equal(t, "12", groupedInt(12))
	assert.Equal(t, "1,000,000", groupedInt(1000000))
}
