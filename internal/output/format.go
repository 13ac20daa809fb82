package output

import (
	"fmt"
	"strings"
)

// Format specifies how a load result is printed.
type Format string

const (
	// FormatTree prints the result as an indented key tree.
	FormatTree Format = "tree"

	// FormatTable prints one row per module.
	FormatTable Format = "table"

	// FormatYAML prints the result as a YAML document.
	FormatYAML Format = "yaml"

	// FormatJSON prints the result as a JSON document.
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is one of the known formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatTree, FormatTable, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat parses s into a Format. "yml" is accepted for YAML and the
// comparison is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tree":
		return FormatTree, nil
	case "table":
		return FormatTable, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"tree", "table", "yaml", "json"}
}
