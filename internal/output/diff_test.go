package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffYAML(t *testing.T) {
	t.Run("equal documents produce no diff", func(t *testing.T) {
		doc := []byte("replicas: 3\nimage: nginx\n")

		out, err := DiffYAML(doc, doc, DiffOptions{})
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("changed value is reported", func(t *testing.T) {
		from := []byte("replicas: 3\nimage: nginx\n")
		to := []byte("replicas: 5\nimage: nginx\n")

		out, err := DiffYAML(from, to, DiffOptions{FromName: "api", ToName: "worker"})
		require.NoError(t, err)
		assert.Contains(t, out, "replicas")
		assert.Contains(t, out, "3")
		assert.Contains(t, out, "5")
		assert.NotContains(t, out, "image")
	})

	t.Run("added key is reported", func(t *testing.T) {
		from := []byte("a: 1\n")
		to := []byte("a: 1\nb: 2\n")

		out, err := DiffYAML(from, to, DiffOptions{})
		require.NoError(t, err)
		assert.Contains(t, out, "b")
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		_, err := DiffYAML([]byte("a: [\n"), []byte("a: 1\n"), DiffOptions{FromName: "broken"})
		assert.ErrorContains(t, err, "parsing broken")
	})
}

func TestIndentDiff(t *testing.T) {
	assert.Empty(t, IndentDiff("", "  "))
	assert.Equal(t, "  a\n  b\n", IndentDiff("a\n\nb", "  "))
}
