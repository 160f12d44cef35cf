package report

import (
	"fmt"

	"suburbscope/internal/pkg/text"
)

// contextKeys are probed in order for a best-effort location label;
// the first non-empty match wins.
var contextKeys = []string{"suburb", "name", "area"}

const contextMaxLen = 48

// SummaryItem is one descriptive label/value pair shown above the table.
type SummaryItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summarize derives a small set of headline facts about v: item and field
// counts with a type tag for containers, the runtime type name otherwise,
// plus a Context item when a suburb/name/area field is present anywhere in
// the flattened form.
func Summarize(v any) []SummaryItem {
	var items []SummaryItem
	switch val := v.(type) {
	case []any:
		fields := 0
		if len(val) > 0 {
			fields = FlattenDefault(val[0]).Len()
		}
		items = append(items,
			SummaryItem{Label: "Items", Value: groupedInt(len(val))},
			SummaryItem{Label: "Fields", Value: groupedInt(fields)},
			SummaryItem{Label: "Type", Value: "Array"},
		)
	case map[string]any:
		items = append(items,
			SummaryItem{Label: "Fields", Value: groupedInt(FlattenDefault(val).Len())},
			SummaryItem{Label: "Type", Value: "Object"},
		)
	default:
		items = append(items, SummaryItem{Label: "Type", Value: typeName(v)})
	}
	if ctx := contextLabel(v); ctx != "" {
		items = append(items, SummaryItem{Label: "Context", Value: ctx})
	}
	return items
}

func contextLabel(v any) string {
	rec := FlattenDefault(v)
	for _, key := range contextKeys {
		raw, ok := rec.Get(key)
		if !ok {
			continue
		}
		s := stringify(raw)
		if s != "" {
			return text.Truncate(s, contextMaxLen)
		}
	}
	return ""
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "Null"
	case bool:
		return "Boolean"
	case float64:
		return "Number"
	case string:
		return "String"
	default:
		return fmt.Sprintf("%T", v)
	}
}
