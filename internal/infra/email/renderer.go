package email

import (
	"bytes"
	"context"
	"html/template"

	"hyperlocal/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <div style="max-width: 560px; margin: 0 auto; padding: 24px;">
    {{- if .RecipientName}}<p>Hi {{.RecipientName}},</p>{{end}}
    <h2 style="margin-top: 0;">{{.Title}}</h2>
    <p style="white-space: pre-line;">{{.Body}}</p>
    {{- if .Link}}
    <p><a href="{{.Link}}" style="display: inline-block; padding: 10px 18px; background: #2f6fed; color: #fff; text-decoration: none; border-radius: 4px;">View details</a></p>
    {{- end}}
  </div>
</body>
</html>`

type templateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer returns the built-in EmailRenderer used when a producer
// does not supply its own rendered body.
func NewTemplateRenderer() (service.EmailRenderer, error) {
	tmpl, err := template.New("notification").Parse(defaultTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse email template")
	}

	return &templateRenderer{tmpl: tmpl}, nil
}

func (r *templateRenderer) Render(_ context.Context, data service.EmailContext) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render email")
	}

	return buf.String(), nil
}
