package config

import (
	"fmt"
	"slices"
	"strings"
)

// OutputFormats lists the values accepted for the output key.
var OutputFormats = []string{"tree", "table", "yaml", "json"}

// ValidationError is a single invalid field in a config file.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field found by Validate.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "config validation failed:\n  " + strings.Join(msgs, "\n  ")
}

// Validate checks c for values the CLI cannot use. It returns nil or a
// ValidationErrors listing every problem.
func Validate(c *Config) error {
	var errs ValidationErrors

	if c.Output != "" && !slices.Contains(OutputFormats, c.Output) {
		errs = append(errs, &ValidationError{
			Field:   "output",
			Message: fmt.Sprintf("unknown format %q (want one of %s)", c.Output, strings.Join(OutputFormats, ", ")),
		})
	}

	for i, name := range c.Prune {
		field := fmt.Sprintf("prune[%d]", i)
		switch {
		case strings.TrimSpace(name) == "":
			errs = append(errs, &ValidationError{Field: field, Message: "empty directory name"})
		case strings.ContainsAny(name, `/\`):
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("%q must be a directory name, not a path", name)})
		}
	}

	if c.BasePath != "" && strings.TrimSpace(c.BasePath) == "" {
		errs = append(errs, &ValidationError{Field: "basePath", Message: "blank path"})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
