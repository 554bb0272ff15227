package model

import (
	"fmt"
	"strings"
)

// Form is the immutable form definition: built once at startup, shared
// read-only by every request afterwards.
type Form struct {
	Title       string  `json:"title"`
	SubmitLabel string  `json:"submit_label"`
	Fields      []Field `json:"fields"`
}

// Build validates the raw field list and assembles a Form. Field names must
// be unique and non-empty after trimming; field order is preserved as the
// render order. On error no partial Form is returned.
func Build(title, submitLabel string, fields []Field) (*Form, error) {
	seen := make(map[string]bool, len(fields))
	out := make([]Field, 0, len(fields))

	for _, f := range fields {
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			return nil, fmt.Errorf("field with empty name in config")
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate field name in config: %s", f.Name)
		}
		seen[f.Name] = true
		out = append(out, f)
	}

	return &Form{
		Title:       title,
		SubmitLabel: submitLabel,
		Fields:      out,
	}, nil
}
