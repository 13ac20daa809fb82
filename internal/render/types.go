// Package render turns a load result into printable records and documents.
package render

import (
	"strings"
	"time"

	"github.com/opmodel/autoload/internal/output"
	"github.com/opmodel/autoload/pkg/autoload"
)

// Record describes one module of a load result.
type Record struct {
	Keys     []string      // Key path from the top of the result
	Path     string        // Module file path
	Status   string        // output.StatusPending, StatusResolved or StatusFailed
	Value    any           // Resolved value, set when Status is resolved
	Error    error         // Resolution error, set when Status is failed
	Duration time.Duration // Time spent resolving

	module *autoload.Module
}

// Key returns the dotted key path. Keys may contain dots themselves, so
// two records can share a Key; use it for display only.
func (r Record) Key() string {
	return strings.Join(r.Keys, ".")
}

// Collect lists every module of result in key order without resolving
// anything. Modules that were already loaded are reported as resolved.
func Collect(result *autoload.Result) []Record {
	var records []Record
	_ = result.Each(func(keys []string, m *autoload.Module) error {
		rec := Record{
			Keys:   keys,
			Path:   m.Path(),
			Status: output.StatusPending,
			module: m,
		}
		if m.Loaded() {
			if v, err := m.Get(); err == nil {
				rec.Status = output.StatusResolved
				rec.Value = v
			}
		}
		records = append(records, rec)
		return nil
	})
	return records
}

// Counts returns the number of resolved and failed records.
func Counts(records []Record) (resolved, failed int) {
	for _, r := range records {
		switch r.Status {
		case output.StatusResolved:
			resolved++
		case output.StatusFailed:
			failed++
		}
	}
	return resolved, failed
}
