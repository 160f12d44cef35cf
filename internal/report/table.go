package report

import (
	"fmt"
	"sort"

	"suburbscope/internal/pkg/jsonutil"
)

const (
	// columnSampleRows bounds how many leading rows contribute to the
	// column set of an array table. Keys appearing only in later rows are
	// silently dropped from the grid; this is an intentional trade-off so
	// column discovery stays cheap on large arrays.
	columnSampleRows = 40

	// objectTableDepth is shallower than the chart/summary depth so the
	// key/value table stays readable.
	objectTableDepth = 2
)

// Grid is a two-dimensional projection of a JSON value. For array input the
// columns come from sampling leading rows; for object input it is a fixed
// Field/Value listing of the flattened form.
type Grid struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// BuildTable projects v into a Grid. Array roots become a row-per-element
// table over the sampled column set; object roots become a two-column
// flattened listing; any other root yields nil, which callers must treat as
// "nothing to render" rather than an error.
func BuildTable(v any) *Grid {
	switch val := v.(type) {
	case []any:
		return buildArrayTable(val)
	case map[string]any:
		return buildObjectTable(val)
	default:
		return nil
	}
}

func buildArrayTable(rows []any) *Grid {
	columns := sampleColumns(rows)
	if len(columns) == 0 {
		return nil
	}
	grid := &Grid{Columns: columns, Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		obj, _ := row.(map[string]any)
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = cellText(obj[col])
		}
		grid.Rows = append(grid.Rows, cells)
	}
	return grid
}

// sampleColumns unions the top-level keys of the first columnSampleRows
// rows. Within a row keys are taken in sorted order (Go maps carry no
// insertion order); across rows first-seen order is preserved.
func sampleColumns(rows []any) []string {
	var columns []string
	seen := make(map[string]bool)
	limit := len(rows)
	if limit > columnSampleRows {
		limit = columnSampleRows
	}
	for _, row := range rows[:limit] {
		obj, ok := row.(map[string]any)
		if !ok {
			continue
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	return columns
}

func buildObjectTable(obj map[string]any) *Grid {
	rec := Flatten(obj, objectTableDepth)
	grid := &Grid{Columns: []string{"Field", "Value"}, Rows: make([][]string, 0, rec.Len())}
	for _, key := range rec.Keys() {
		raw, _ := rec.Get(key)
		grid.Rows = append(grid.Rows, []string{key, cellText(raw)})
	}
	return grid
}

// cellText renders one table cell: numbers through the shared formatting
// rule, containers as raw JSON text, nil as empty string.
func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		return FormatNumber(val)
	case int:
		return FormatNumber(float64(val))
	case map[string]any, []any:
		return jsonutil.Compact(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// stringify is the loose string form used for summary values.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return FormatNumber(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
