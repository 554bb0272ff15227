package config

import (
	"fmt"
	"os"

	"github.com/mbolis/quick-form/model"
	"gopkg.in/yaml.v3"
)

type formFile struct {
	FormTitle    string        `yaml:"form_title"`
	SubmitButton string        `yaml:"submit_button"`
	JSONOutput   string        `yaml:"json_output"`
	Fields       []model.Field `yaml:"fields"`
}

// LoadForm reads and validates the form definition document. The second
// return value is the document's json_output path, "" when unset; the caller
// decides how it combines with the -output flag.
func LoadForm(path string) (*model.Form, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("config.read: %w", err)
	}

	var doc formFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, "", fmt.Errorf("config.parse: %w", err)
	}

	form, err := model.Build(doc.FormTitle, doc.SubmitButton, doc.Fields)
	if err != nil {
		return nil, "", fmt.Errorf("config.form: %w", err)
	}
	return form, doc.JSONOutput, nil
}
