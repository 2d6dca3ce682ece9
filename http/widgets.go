package http

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/fwojciec/docsite"
)

var widgetTemplates = template.Must(template.ParseFS(assets, "templates/widgets/*.html"))

// widgetData is passed to every widget template.
type widgetData struct {
	APIBaseURL string
}

// DefaultWidgets returns the interactive examples embedded in the
// documentation pages, keyed by the name used in page markers.
func DefaultWidgets(apiBaseURL string) map[string]docsite.RenderFunc {
	data := widgetData{APIBaseURL: strings.TrimRight(apiBaseURL, "/")}
	return map[string]docsite.RenderFunc{
		"otp-demo":    TemplateWidget("otp-demo.html", data),
		"wallet-demo": TemplateWidget("wallet-demo.html", data),
	}
}

// TemplateWidget returns a RenderFunc executing the named widget template.
func TemplateWidget(name string, data any) docsite.RenderFunc {
	return func() (string, error) {
		var buf bytes.Buffer
		if err := widgetTemplates.ExecuteTemplate(&buf, name, data); err != nil {
			return "", docsite.Errorf(docsite.EINTERNAL, "render widget %s: %v", name, err)
		}
		return buf.String(), nil
	}
}
