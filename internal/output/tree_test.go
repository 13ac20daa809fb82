package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	root := &TreeNode{Name: "component"}
	api := root.Child("api")
	api.Child("index").Description = "api/index.yaml"
	api.Child("config").Description = "api/config.yaml"
	root.Child("README").Description = "README.md"

	out := RenderTree(root)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, []string{"component", "api", "config", "index", "README"}, names(lines))
	assert.True(t, strings.HasPrefix(lines[1], treeEdge), "branch before leaf")
	assert.True(t, strings.HasPrefix(lines[2], treeVert+treeEdge))
	assert.True(t, strings.HasPrefix(lines[3], treeVert+treeLast))
	assert.True(t, strings.HasPrefix(lines[4], treeLast))
	assert.Contains(t, lines[2], "api/config.yaml")
}

func TestRenderTreeNil(t *testing.T) {
	assert.Empty(t, RenderTree(nil))
}

func TestTreeNodeChildReuses(t *testing.T) {
	root := &TreeNode{Name: "r"}
	a := root.Child("a")
	assert.Same(t, a, root.Child("a"))
	assert.Len(t, root.Children, 1)
}

// names extracts the node name from each rendered line.
func names(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		line = strings.NewReplacer(treeEdge, "", treeLast, "", treeVert, "", treeSpace, "").Replace(line)
		out[i] = strings.Fields(line)[0]
	}
	return out
}
