package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
	}{
		{
			name:   "resolved returns green",
			status: StatusResolved,
			wantFG: ColorGreen,
		},
		{
			name:   "pending returns yellow",
			status: StatusPending,
			wantFG: ColorYellow,
		},
		{
			name:     "failed returns bold red",
			status:   StatusFailed,
			wantBold: true,
			wantFG:   ColorBoldRed,
		},
		{
			name:   "unknown returns default unstyled",
			status: "unknown-value",
			wantFG: lipgloss.NoColor{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantFG, style.GetForeground())
		})
	}
}

func TestFormatModuleLine(t *testing.T) {
	t.Run("contains key and status", func(t *testing.T) {
		line := FormatModuleLine("api.index", StatusResolved)
		assert.Contains(t, line, "m:")
		assert.Contains(t, line, "api.index")
		assert.Contains(t, line, StatusResolved)
	})

	t.Run("long keys keep a two space gap", func(t *testing.T) {
		key := strings.Repeat("k", minKeyColumnWidth+5)
		line := FormatModuleLine(key, StatusPending)
		assert.Contains(t, line, key+"  ")
	})
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("3 modules resolved")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "3 modules resolved")
}
