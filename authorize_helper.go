// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"html/template"
	"io"
	"net/url"
)

var DefaultFormPostTemplate = template.Must(template.New("form_post").Parse(`<html>
   <head>
      <title>Submit This Form</title>
   </head>
   <body onload="javascript:document.forms[0].submit()">
      <form method="post" action="{{ .RedirURL }}">
          {{ range $key,$value := .Parameters }}
			{{ range $parameter:= $value}}
		  		<input type="hidden" name="{{$key}}" value="{{$parameter}}"/>
			{{end}}
		  {{ end }}
      </form>
   </body>
</html>`))

// FormPostResponseWriter writes the response parameters as an auto-submitting HTML form.
type FormPostResponseWriter func(rw io.Writer, template *template.Template, redirectURL string, parameters url.Values)

// DefaultFormPostResponseWriter is a FormPostResponseWriter which renders the
// response mode form_post template.
func DefaultFormPostResponseWriter(rw io.Writer, template *template.Template, redirectURL string, parameters url.Values) {
	_ = template.Execute(rw, struct {
		RedirURL   string
		Parameters url.Values
	}{
		RedirURL:   redirectURL,
		Parameters: parameters,
	})
}

// GetPostFormHTMLTemplate returns the configured template or the default.
func GetPostFormHTMLTemplate(ctx context.Context, config FormPostHTMLTemplateProvider) *template.Template {
	if t := config.GetFormPostHTMLTemplate(ctx); t != nil {
		return t
	}

	return DefaultFormPostTemplate
}
