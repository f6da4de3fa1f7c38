package internal

import (
	"bytes"
	"html/template"

	"paybox/entity"
)

var formTemplate = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Payment redirect</title></head>
<body onload="document.forms[0].submit()">
<form method="POST" action="{{.Url}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

// Renderer produces the auto-submitting HTML form that forwards the
// signed parameter mapping to the gateway from the customer's browser.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RedirectForm(request *entity.BuiltRequest) (string, error) {
	data := struct {
		Url    string
		Fields []entity.Field
	}{
		Url:    request.Url,
		Fields: request.Parameters.Fields(),
	}
	var buffer bytes.Buffer
	if err := formTemplate.Execute(&buffer, data); err != nil {
		return "", err
	}
	return buffer.String(), nil
}
