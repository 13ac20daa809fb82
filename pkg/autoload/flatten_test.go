package autoload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/autoload/pkg/autoload"
)

func TestFlatten_SingleComponent(t *testing.T) {
	g := autoload.Grouping{"api": {"index": "/r/api/index.cue", "routes": "/r/api/routes.yaml"}}
	raw := autoload.Build(g, autoload.ModeComponent, &recordingResolver{})

	flat := autoload.Flatten(raw)

	assert.True(t, flat.Flattened)
	assert.Equal(t, []string{"component", "index", "routes"}, flat.Keys())
	assert.NotContains(t, flat.Entries, "api", "component name must not remain")
	assert.Equal(t, map[string]string{
		"component": "/r/api/index.cue",
		"index":     "/r/api/index.cue",
		"routes":    "/r/api/routes.yaml",
	}, flat.Paths)

	assert.False(t, raw.Flattened, "input must not be modified")
	assert.Contains(t, raw.Entries, "api")
}

func TestFlatten_FilterModeKeepsOuterPaths(t *testing.T) {
	g := autoload.Grouping{
		"a": {"x": "/r/a/x.yaml"},
		"b": {"x": "/r/b/x.yaml"},
	}
	raw := autoload.Build(g, autoload.ModeFilter, &recordingResolver{})

	flat := autoload.Flatten(raw)

	assert.True(t, flat.Flattened)
	assert.Equal(t, []string{"a", "b"}, flat.Keys())
	assert.Equal(t, map[string]string{"a": "/r/a/x.yaml", "b": "/r/b/x.yaml"}, flat.Paths)
	assert.True(t, flat.Entries["a"].IsLeaf())
}

func TestFlatten_ReservedKeysDoNotCount(t *testing.T) {
	// A directory literally named "index" next to one real component.
	g := autoload.Grouping{
		"index": {"a": "/r/index/a.yaml"},
		"api":   {"routes": "/r/api/routes.yaml"},
	}
	raw := autoload.Build(g, autoload.ModeComponent, &recordingResolver{})

	flat := autoload.Flatten(raw)

	assert.True(t, flat.Flattened)
	assert.Equal(t, []string{"routes"}, flat.Keys())
}

func TestFlatten_MultipleComponentsUnchanged(t *testing.T) {
	g := autoload.Grouping{
		"api":    {"routes": "/r/api/routes.yaml"},
		"worker": {"jobs": "/r/worker/jobs.yaml"},
	}
	raw := autoload.Build(g, autoload.ModeComponent, &recordingResolver{})

	res := autoload.Flatten(raw)

	assert.False(t, res.Flattened)
	assert.Equal(t, []string{"api", "worker"}, res.Keys())
}

func TestFlatten_EmptyResult(t *testing.T) {
	raw := autoload.Build(autoload.Grouping{}, autoload.ModeComponent, &recordingResolver{})

	res := autoload.Flatten(raw)

	assert.False(t, res.Flattened)
	assert.Empty(t, res.Entries)
}

func TestRegroupByFirstSegment(t *testing.T) {
	g := autoload.Grouping{
		"foo.bar": {"foo": "/r/foo.bar/foo.yaml", "other": "/r/foo.bar/other.yaml"},
		"baz.qux": {"nope": "/r/baz.qux/nope.yaml"},
		"plain":   {"plain": "/r/plain/plain.yaml"},
	}
	raw := autoload.Build(g, autoload.ModeComponent, &recordingResolver{})

	res := autoload.Flatten(raw)

	require.Contains(t, res.Entries, "foo")
	assert.True(t, res.Entries["foo"].IsLeaf())
	assert.Equal(t, "/r/foo.bar/foo.yaml", res.Entries["foo"].Module.Path())

	assert.Contains(t, res.Entries, "foo.bar", "dotted key is kept")
	assert.NotContains(t, res.Entries, "baz", "no matching child, no re-key")
	assert.False(t, res.Entries["plain"].IsLeaf(), "undotted keys are left alone")

	assert.NotContains(t, raw.Entries, "foo", "input must not be modified")
}

func TestRegroupByFirstSegment_MissingChildKeepsComponent(t *testing.T) {
	g := autoload.Grouping{
		"baz":     {"index": "/r/baz/index.yaml"},
		"baz.qux": {"nope": "/r/baz.qux/nope.yaml"},
	}
	raw := autoload.Build(g, autoload.ModeComponent, &recordingResolver{})

	res := autoload.RegroupByFirstSegment(raw)

	require.Contains(t, res.Entries, "baz")
	assert.Same(t, raw.Entries["baz"], res.Entries["baz"])
	assert.Equal(t, []string{"baz", "baz.qux"}, res.Keys())
}

func TestRegroupByFirstSegment_SkipsEmptyBranches(t *testing.T) {
	g := autoload.Grouping{"a.b": {}, "c": {"x": "/r/c/x.yaml"}}
	raw := autoload.Build(g, autoload.ModeComponent, &recordingResolver{})

	res := autoload.RegroupByFirstSegment(raw)

	assert.Equal(t, []string{"a.b", "c"}, res.Keys())
}
