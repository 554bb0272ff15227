package model

import (
	"strings"
	"time"
)

// Submission is one set of answers as persisted: a timestamp plus a mapping
// from answer key to either the trimmed value or nil for "no answer".
type Submission struct {
	Timestamp time.Time          `json:"timestamp"`
	Answers   map[string]*string `json:"answers"`
}

// Normalize maps raw posted key/value pairs onto the form definition.
// Declared fields are consumed first, in declaration order, so they always
// win as canonical keys; whatever is left over is kept under its raw key, so
// no submitted data is dropped. Values are trimmed, and empty values become
// explicit nil answers. The raw map is not modified.
func Normalize(form *Form, raw map[string]string) Submission {
	rest := make(map[string]string, len(raw))
	for k, v := range raw {
		rest[k] = v
	}

	answers := make(map[string]*string, len(form.Fields)+len(raw))
	for _, f := range form.Fields {
		value, ok := rest[f.Name]
		delete(rest, f.Name)
		if !ok {
			answers[f.Name] = nil
			continue
		}
		answers[f.Name] = presentValue(value)
	}

	for key, value := range rest {
		answers[key] = presentValue(value)
	}

	return Submission{
		Timestamp: time.Now().UTC(),
		Answers:   answers,
	}
}

func presentValue(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
