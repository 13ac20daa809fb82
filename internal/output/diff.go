package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffOptions configures DiffYAML.
type DiffOptions struct {
	// FromName and ToName label the two inputs in the report.
	FromName string
	ToName   string

	// UseColor enables colorized dyff output.
	UseColor bool
}

// DiffYAML compares two YAML documents structurally and returns a
// human-readable report. An empty string means the documents are equal.
func DiffYAML(from, to []byte, opts DiffOptions) (string, error) {
	if opts.FromName == "" {
		opts.FromName = "from"
	}
	if opts.ToName == "" {
		opts.ToName = "to"
	}

	fromInput, err := parseYAMLInput(opts.FromName, from)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", opts.FromName, err)
	}

	toInput, err := parseYAMLInput(opts.ToName, to)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", opts.ToName, err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, opts.UseColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
// Blank input yields a file with no documents.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// IndentDiff indents every non-empty line of diff.
func IndentDiff(diff, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
