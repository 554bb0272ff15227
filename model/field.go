package model

// WidgetKind is the resolved rendering behavior of a field.
type WidgetKind string

const (
	WidgetCheckbox WidgetKind = "checkbox"
	WidgetTextarea WidgetKind = "textarea"
	WidgetSelect   WidgetKind = "select"
	WidgetInput    WidgetKind = "input"
)

type Field struct {
	Name        string   `json:"name" yaml:"name"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	AnswerType  string   `json:"answer_type" yaml:"answer_type"`
	Options     []string `json:"options,omitempty" yaml:"options"`
	HTMLBefore  string   `json:"html_before,omitempty" yaml:"html_before"`
	HTMLAfter   string   `json:"html_after,omitempty" yaml:"html_after"`
}

// Widget is what the rendering layer consumes for one field. Options is only
// populated for select widgets, InputType only for plain inputs.
type Widget struct {
	Kind      WidgetKind
	Options   []string
	InputType string
}

// Widget resolves the field's declared answer type to a rendering widget.
// Total: unknown answer types degrade to a single-line input carrying the raw
// type string as a hint, never an error.
func (f Field) Widget() Widget {
	switch f.AnswerType {
	case "checkbox":
		return Widget{Kind: WidgetCheckbox}
	case "textarea":
		return Widget{Kind: WidgetTextarea}
	case "select":
		options := f.Options
		if options == nil {
			options = []string{}
		}
		return Widget{Kind: WidgetSelect, Options: options}
	default:
		return Widget{Kind: WidgetInput, InputType: f.AnswerType}
	}
}
