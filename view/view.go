package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/mbolis/quick-form/model"
)

//go:embed templates
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type formPage struct {
	Lang        string
	Title       string
	SubmitLabel string
	Fields      []fieldView
}

// fieldView flattens a field and its resolved widget for the template.
// Before/After carry the field's decoration markup verbatim; every other
// value goes through template escaping.
type fieldView struct {
	Name        string
	Title       string
	Description string
	Widget      string
	InputType   string
	Options     []string
	Before      template.HTML
	After       template.HTML
}

// Form renders the whole form page, fields in declaration order.
func Form(w io.Writer, form *model.Form) error {
	page := formPage{
		Lang:        "en",
		Title:       form.Title,
		SubmitLabel: form.SubmitLabel,
	}
	for _, f := range form.Fields {
		widget := f.Widget()
		page.Fields = append(page.Fields, fieldView{
			Name:        f.Name,
			Title:       f.Title,
			Description: f.Description,
			Widget:      string(widget.Kind),
			InputType:   widget.InputType,
			Options:     widget.Options,
			Before:      template.HTML(f.HTMLBefore),
			After:       template.HTML(f.HTMLAfter),
		})
	}
	return pages.ExecuteTemplate(w, "form.html.tmpl", page)
}

// Saved renders the post-submit confirmation page.
func Saved(w io.Writer) error {
	return pages.ExecuteTemplate(w, "saved.html.tmpl", nil)
}
