// Package report turns an arbitrary already-parsed JSON value into the
// derived structures the dashboard renders: a flattened record, ranked
// numeric pairs, summary items and a table grid. Every function here is
// pure and total over valid JSON input.
package report

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultDepthLimit bounds how deep Flatten expands nested containers.
	DefaultDepthLimit = 4
	// maxArrayFanout bounds how many elements of any single array are
	// expanded. The tail is dropped; the __len entry keeps the true size.
	maxArrayFanout = 8
)

// Record is a flattened JSON value: path keys in traversal order mapped to
// leaf values. No value in a Record is itself a container.
type Record struct {
	keys   []string
	values map[string]any
}

// Keys returns the path keys in traversal order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return r.keys
}

// Get looks up the value stored under a path key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Len reports the number of flattened entries.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

func (r *Record) put(key string, v any) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

type frame struct {
	value  any
	prefix string
}

// Flatten reduces v to a single-level Record. Depth is the number of path
// separators ('.') in the accumulated prefix; once it reaches depthLimit the
// value is stored as a one-line summary instead of being expanded. Arrays
// emit a synthetic <prefix>.__len entry and expand at most their first eight
// elements under bracket-index paths. nil values yield no entries. A bare
// scalar at the root is stored under the key "value".
//
// Traversal uses an explicit worklist rather than call-stack recursion, so
// arbitrarily deep input cannot exhaust the stack. Object keys are visited
// in sorted order, which makes the output deterministic for a given input
// and depth limit.
func Flatten(v any, depthLimit int) *Record {
	rec := &Record{values: make(map[string]any)}
	stack := []frame{{value: v, prefix: ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.value == nil {
			continue
		}
		key := f.prefix
		if key == "" {
			key = "value"
		}
		if strings.Count(f.prefix, ".") >= depthLimit {
			rec.put(key, summarizeValue(f.value))
			continue
		}
		switch val := f.value.(type) {
		case map[string]any:
			keys := make([]string, 0, len(val))
			for k := range val {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			// Push in reverse so entries come out in key order.
			for i := len(keys) - 1; i >= 0; i-- {
				child := keys[i]
				stack = append(stack, frame{value: val[child], prefix: joinPath(f.prefix, child)})
			}
		case []any:
			n := len(val)
			if n > maxArrayFanout {
				n = maxArrayFanout
			}
			for i := n - 1; i >= 0; i-- {
				stack = append(stack, frame{value: val[i], prefix: fmt.Sprintf("%s[%d]", f.prefix, i)})
			}
			rec.put(joinPath(f.prefix, "__len"), len(val))
		default:
			rec.put(key, val)
		}
	}
	return rec
}

// FlattenDefault flattens with the default depth limit.
func FlattenDefault(v any) *Record {
	return Flatten(v, DefaultDepthLimit)
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// summarizeValue renders a depth-limited value as a one-line stand-in:
// containers report their size, scalars pass through unchanged.
func summarizeValue(v any) any {
	switch val := v.(type) {
	case []any:
		return fmt.Sprintf("Array(%d)", len(val))
	case map[string]any:
		return fmt.Sprintf("Object(%d keys)", len(val))
	default:
		return val
	}
}
