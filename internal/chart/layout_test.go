package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suburbscope/internal/report"
)

func rectOps(d Drawing) []Op {
	var out []Op
	for _, op := range d.Ops {
		if op.Kind == "rect" {
			out = append(out, op)
		}
	}
	return out
}

func TestLayoutEmptyIsNoOp(t *testing.T) {
	d := Layout(nil, 960)
	assert.Empty(t, d.Ops)
	assert.Zero(t, d.Height)
}

func TestLayoutProportionalBars(t *testing.T) {
	pairs := []report.NumericPair{
		{Label: "big", Value: 100},
		{Label: "half", Value: 50},
	}
	d := Layout(pairs, 960)
	rects := rectOps(d)
	require.Len(t, rects, 2)

	avail := float64(960 - marginLeft - marginRight)
	assert.InDelta(t, avail, rects[0].W, 0.001)
	assert.InDelta(t, avail/2, rects[1].W, 0.001)
	assert.Equal(t, float64(marginLeft), rects[0].X)
}

func TestLayoutSignColors(t *testing.T) {
	pairs := []report.NumericPair{
		{Label: "up", Value: 10},
		{Label: "down", Value: -10},
	}
	rects := rectOps(Layout(pairs, 960))
	require.Len(t, rects, 2)
	assert.Equal(t, colorPositive, rects[0].Color)
	assert.Equal(t, colorNegative, rects[1].Color)
}

func TestLayoutMinimumBarWidth(t *testing.T) {
	pairs := []report.NumericPair{
		{Label: "huge", Value: 1e9},
		{Label: "tiny", Value: 0.0001},
	}
	rects := rectOps(Layout(pairs, 960))
	require.Len(t, rects, 2)
	assert.GreaterOrEqual(t, rects[1].W, float64(minBarWidth), "near-zero bars stay visible")
}

func TestLayoutZeroDivisorGuard(t *testing.T) {
	// Upstream filtering excludes zeros, but the divisor must still be
	// safe if an all-zero sequence slips through.
	pairs := []report.NumericPair{{Label: "z", Value: 0}}
	assert.NotPanics(t, func() {
		d := Layout(pairs, 960)
		for _, op := range rectOps(d) {
			assert.False(t, op.W != op.W, "width must not be NaN")
		}
	})
}

func TestLayoutHeightFitsAllRows(t *testing.T) {
	pairs := make([]report.NumericPair, 12)
	for i := range pairs {
		pairs[i] = report.NumericPair{Label: "p", Value: float64(i + 1)}
	}
	d := Layout(pairs, 960)
	assert.Equal(t, 12*(rowHeight+rowGap)+rowGap, d.Height)

	last := rectOps(d)[11]
	assert.LessOrEqual(t, last.Y+last.H, float64(d.Height), "no clipping")
}

func TestLayoutLabelTruncation(t *testing.T) {
	long := strings.Repeat("verylongpathkey.", 5)
	d := Layout([]report.NumericPair{{Label: long, Value: 5}}, 960)
	var labelText string
	for _, op := range d.Ops {
		if op.Kind == "text" && op.Align == "right" {
			labelText = op.Text
		}
	}
	require.NotEmpty(t, labelText)
	assert.True(t, strings.HasSuffix(labelText, "..."))
	assert.LessOrEqual(t, len(labelText), labelBudget+3)
}

func TestLayoutValueText(t *testing.T) {
	d := Layout([]report.NumericPair{{Label: "a", Value: 1500}}, 960)
	found := false
	for _, op := range d.Ops {
		if op.Kind == "text" && op.Text == "1.50k" {
			found = true
		}
	}
	assert.True(t, found, "formatted value drawn next to the bar")
}

func TestBarPageEmpty(t *testing.T) {
	html, err := BarPage("t", nil)
	require.NoError(t, err)
	assert.Nil(t, html)
}

func TestBarPageRendersHTML(t *testing.T) {
	pairs := []report.NumericPair{
		{Label: "median_price", Value: 750000},
		{Label: "rental_yield", Value: -3.2},
	}
	html, err := BarPage("TESTVILLE market", pairs)
	require.NoError(t, err)
	body := string(html)
	assert.Contains(t, body, "TESTVILLE market")
	assert.Contains(t, body, "median_price")
	assert.Contains(t, body, colorNegative)
}
