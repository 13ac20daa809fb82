package render

import (
	"fmt"
	"sort"
	"strings"

	"cuelang.org/go/cue"

	"github.com/opmodel/autoload/internal/output"
	"github.com/opmodel/autoload/pkg/autoload"
)

// Document converts result into plain maps suitable for YAML or JSON
// encoding. Leaves hold the resolved value when records carry one and the
// module path otherwise. Path maps appear under the reserved "paths" key.
func Document(result *autoload.Result, records []Record) map[string]any {
	values := make(map[*autoload.Module]any, len(records))
	for _, r := range records {
		if r.Status == output.StatusResolved && r.module != nil {
			values[r.module] = Plain(r.Value)
		}
	}

	doc := make(map[string]any, len(result.Entries)+1)
	for _, k := range result.Keys() {
		doc[k] = entryDocument(result.Entries[k], values)
	}
	if len(result.Paths) > 0 {
		doc[autoload.KeyPaths] = stringMap(result.Paths)
	}
	return doc
}

func entryDocument(e *autoload.Entry, values map[*autoload.Module]any) any {
	if e.IsLeaf() {
		if v, ok := values[e.Module]; ok {
			return v
		}
		return e.Module.Path()
	}

	doc := make(map[string]any, len(e.Children)+1)
	for _, k := range e.Keys() {
		doc[k] = entryDocument(e.Children[k], values)
	}
	if len(e.Paths) > 0 {
		doc[autoload.KeyPaths] = stringMap(e.Paths)
	}
	return doc
}

func stringMap(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Plain converts a resolved module value into JSON-compatible Go values.
// CUE values are decoded, raw bytes become strings and maps with
// non-string keys are re-keyed with their printed form.
func Plain(v any) any {
	switch val := v.(type) {
	case cue.Value:
		var out any
		if err := val.Decode(&out); err != nil {
			return fmt.Sprint(val)
		}
		return Plain(out)
	case []byte:
		return string(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Plain(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = Plain(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Plain(item)
		}
		return out
	default:
		return v
	}
}

// Summary returns a one-line description of a resolved value.
func Summary(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case cue.Value:
		return "cue " + val.IncompleteKind().String()
	case []byte:
		return fmt.Sprintf("%d bytes", len(val))
	case map[string]any:
		return fmt.Sprintf("map (%s)", keyList(val))
	case map[any]any:
		return fmt.Sprintf("map (%d keys)", len(val))
	case []any:
		return fmt.Sprintf("list (%d items)", len(val))
	case string:
		return truncate(fmt.Sprintf("%q", val), summaryWidth)
	default:
		return truncate(fmt.Sprintf("%v", val), summaryWidth)
	}
}

const summaryWidth = 40

func keyList(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return truncate(strings.Join(keys, ", "), summaryWidth)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
