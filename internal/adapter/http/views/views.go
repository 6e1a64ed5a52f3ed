package views

import (
	"embed"
	"html/template"
)

const (
	IndexTemplate         = "index.html"
	PaymentStatusTemplate = "payment_status.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded pages. gin renders them through
// Engine.SetHTMLTemplate, so every value is HTML-escaped.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
