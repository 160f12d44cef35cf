package fetch

import (
	"context"

	"suburbscope/internal/report"
)

// View bundles the three derived structures the display layer consumes.
// All fields are read-only snapshots rebuilt in full on every fetch.
type View struct {
	Summary []report.SummaryItem `json:"summary"`
	Table   *report.Grid         `json:"table"`
	Pairs   []report.NumericPair `json:"pairs"`
}

// BuildView runs the full derivation pipeline over an already-parsed JSON
// value. Pure and synchronous; never fails on valid JSON input.
func BuildView(v any) View {
	return View{
		Summary: report.Summarize(v),
		Table:   report.BuildTable(v),
		Pairs:   report.ExtractTopNumeric(v),
	}
}

// FetchView fetches the report and derives its view in one step.
func (c *Client) FetchView(ctx context.Context, slug, endpoint string) (View, *ErrorValue) {
	value, errVal := c.Fetch(ctx, slug, endpoint)
	if errVal != nil {
		return View{}, errVal
	}
	return BuildView(value), nil
}
