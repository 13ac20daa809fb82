package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/autoload/internal/output"
	"github.com/opmodel/autoload/pkg/autoload"
)

// Options controls how Write prints a result.
type Options struct {
	// Format selects the printer.
	Format output.Format

	// Title labels the root of the tree format, usually the searched mode.
	Title string
}

// Write prints result to w in the requested format. records comes from
// Collect or ResolveAll; it decides whether values or paths are shown.
func Write(w io.Writer, result *autoload.Result, records []Record, opts Options) error {
	switch opts.Format {
	case output.FormatTree, "":
		_, err := io.WriteString(w, Tree(result, records, opts.Title))
		return err
	case output.FormatTable:
		_, err := io.WriteString(w, Table(records)+"\n")
		return err
	case output.FormatYAML:
		return writeYAML(w, Document(result, records))
	case output.FormatJSON:
		return writeJSON(w, Document(result, records))
	default:
		return fmt.Errorf("format %s not supported for load output", opts.Format)
	}
}

// Tree renders result as a key tree. Leaves show their file path, or their
// status and value summary once resolved.
func Tree(result *autoload.Result, records []Record, title string) string {
	if title == "" {
		title = result.Mode.String()
	}

	root := &output.TreeNode{Name: title}
	if result.Flattened {
		root.Description = "(flattened)"
	}

	for _, rec := range records {
		node := root
		for _, k := range rec.Keys {
			node = node.Child(k)
		}
		node.Description = leafDescription(rec)
	}

	return output.RenderTree(root)
}

func leafDescription(rec Record) string {
	switch rec.Status {
	case output.StatusResolved:
		return output.StatusStyle(rec.Status).Render(rec.Status) + " " + Summary(rec.Value)
	case output.StatusFailed:
		return output.StatusStyle(rec.Status).Render(rec.Status) + " " + firstLine(rec.Error.Error())
	default:
		return rec.Path
	}
}

// Table renders one row per module.
func Table(records []Record) string {
	resolvedAny := false
	for _, rec := range records {
		if rec.Status != output.StatusPending {
			resolvedAny = true
			break
		}
	}

	if !resolvedAny {
		tbl := output.NewTable("KEY", "PATH")
		for _, rec := range records {
			tbl.Row(rec.Key(), rec.Path)
		}
		return tbl.String()
	}

	style := output.DefaultTableStyle()
	style.CellStyleFunc = func(_, col int, value string) lipgloss.Style {
		if col == 2 {
			return output.StatusStyle(value).PaddingRight(1)
		}
		return style.CellStyle
	}

	tbl := output.NewTable("KEY", "PATH", "STATUS", "VALUE").SetStyle(style)
	for _, rec := range records {
		detail := ""
		switch rec.Status {
		case output.StatusResolved:
			detail = Summary(rec.Value)
		case output.StatusFailed:
			detail = firstLine(rec.Error.Error())
		}
		tbl.Row(rec.Key(), rec.Path, rec.Status, detail)
	}
	return tbl.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func writeYAML(w io.Writer, doc any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	err := encoder.Encode(doc)
	if closeErr := encoder.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, doc any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
