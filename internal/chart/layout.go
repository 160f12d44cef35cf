// Package chart draws the magnitude-ranked bar chart. Layout produces plain
// drawing instructions for a pixel canvas; BarPage and RenderPNG produce the
// go-echarts rendition served to the browser.
package chart

import (
	"math"

	"suburbscope/internal/pkg/text"
	"suburbscope/internal/report"
)

const (
	marginLeft  = 160 // reserved for labels
	marginRight = 80  // reserved for value text
	rowHeight   = 22
	rowGap      = 8
	minBarWidth = 3 // near-zero bars stay visible
	labelBudget = 22

	colorPositive = "#34d399"
	colorNegative = "#f87171"
	colorText     = "#eceff4"
)

// Op is a single drawing instruction for the canvas.
type Op struct {
	Kind  string  `json:"kind"` // "rect" or "text"
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	Text  string  `json:"text,omitempty"`
	Align string  `json:"align,omitempty"`
	Color string  `json:"color"`
}

// Drawing is a complete chart: canvas dimensions plus ordered instructions.
type Drawing struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Ops    []Op `json:"ops"`
}

// Layout computes the bar chart drawing for ranked numeric pairs. One row
// per pair, bar length proportional to |value| relative to the largest
// magnitude, sign encoded by color. Empty input yields an empty drawing
// with no instructions.
func Layout(pairs []report.NumericPair, canvasWidth int) Drawing {
	if len(pairs) == 0 {
		return Drawing{Width: canvasWidth}
	}
	maxAbs := 0.0
	for _, p := range pairs {
		if a := math.Abs(p.Value); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		maxAbs = 1 // keep the divisor sane; callers normally filter zeros
	}
	avail := float64(canvasWidth - marginLeft - marginRight)
	if avail < minBarWidth {
		avail = minBarWidth
	}
	d := Drawing{
		Width:  canvasWidth,
		Height: len(pairs)*(rowHeight+rowGap) + rowGap,
	}
	for i, p := range pairs {
		y := float64(rowGap + i*(rowHeight+rowGap))
		w := avail * math.Abs(p.Value) / maxAbs
		if w < minBarWidth {
			w = minBarWidth
		}
		color := colorPositive
		if p.Value < 0 {
			color = colorNegative
		}
		d.Ops = append(d.Ops,
			Op{Kind: "text", X: marginLeft - 8, Y: y + rowHeight/2, Text: text.Truncate(p.Label, labelBudget), Align: "right", Color: colorText},
			Op{Kind: "rect", X: marginLeft, Y: y, W: w, H: rowHeight, Color: color},
			Op{Kind: "text", X: marginLeft + w + 6, Y: y + rowHeight/2, Text: report.FormatNumber(p.Value), Align: "left", Color: colorText},
		)
	}
	return d
}
