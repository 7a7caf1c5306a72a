package apidoc

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// JSON encodes the document as indented JSON. Struct fields keep their
// declaration order; map keys such as paths and definitions are sorted.
func (d *Document) JSON() ([]byte, error) {
	data, err := sonic.ConfigStd.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode swagger document: %w", err)
	}
	return data, nil
}

// YAML encodes the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode swagger document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode swagger document: %w", err)
	}
	return buf.Bytes(), nil
}

// SchemaJSON encodes a model as a standalone JSON Schema document.
func (m Model) SchemaJSON() ([]byte, error) {
	data, err := sonic.ConfigStd.Marshal(m.Schema())
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema for %s: %w", m.Name, err)
	}
	return data, nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}} <small>{{.Version}}</small></h1>
<p>{{.Description}}</p>
<p><a href="{{.SpecURL}}">{{.SpecURL}}</a></p>
{{range .Namespaces}}
<h2>{{.Name}}</h2>
<p>{{.Description}}</p>
<table>
<tr><th>Method</th><th>Path</th><th>Operation</th><th>Summary</th></tr>
{{- $ns := .Name}}
{{- range .Routes}}
{{- $path := .Path}}
{{- range .Operations}}
<tr><td>{{.Method}}</td><td>/{{$ns}}{{$path}}</td><td>{{.ID}}</td><td>{{.Summary}}</td></tr>
{{- end}}
{{- end}}
</table>
{{end}}
</body>
</html>
`))

// RenderHTML writes a browsable summary of the API linking to specURL.
func (a API) RenderHTML(w io.Writer, specURL string) error {
	data := struct {
		API
		SpecURL string
	}{a, specURL}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render documentation page: %w", err)
	}
	return nil
}
