// Package templates renders generated artifact models to Go source text.
// It is the emit adapter at the edge of the core: the synthesizers never
// touch source text, and this package never makes generation decisions.
package templates

import (
	"strings"
	"text/template"

	"github.com/depstub/depstub/internal/errors"
	"github.com/depstub/depstub/internal/models"
)

// Header marks every generated file; the cleaner keys on it
const Header = "// Code generated by depstub. DO NOT EDIT."

// File is everything needed to render one generated source file
type File struct {
	Package    string
	Imports    []Import
	Interfaces []*models.GeneratedInterface
}

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"args": func(params []models.Arg) string {
		rendered := make([]string, len(params))
		for i, p := range params {
			rendered[i] = p.Name + " " + p.Type
		}
		return strings.Join(rendered, ", ")
	},
	"join":   func(parts []string, sep string) string { return strings.Join(parts, sep) },
	"stdlib": stdlib,
}).Parse(fileText))

const fileText = `{{.Header}}
// This file was automatically generated and should not be modified manually.

package {{.File.Package}}
{{if .File.Imports}}
import (
{{- range .File.Imports}}{{if stdlib .Path}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"{{end}}{{end}}
{{- range .File.Imports}}{{if not (stdlib .Path)}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"{{end}}{{end}}
)
{{end}}
{{- range .File.Interfaces}}
{{if .Doc}}// {{.Name}} {{.Doc}}{{else}}// {{.Name}} is a generated dependency client.{{end}}
{{- if .Fields}}
type {{.Name}} struct {
{{- range .Fields}}
	// {{.Comment}}
	{{.Name}} {{.FuncType}}
{{- end}}
}
{{- else}}
type {{.Name}} struct{}
{{- end}}
{{$iface := .}}
{{- range .Wrappers}}
// {{.Name}} forwards to the stored {{.Field}} closure, preserving the
// declared argument labels.
func (c *{{$iface.Name}}) {{.Name}}({{args .Params}}) {{if .Results}}{{.Results}} {{end}}{
	{{if .HasValue}}return {{end}}c.{{.Field}}({{join .Forward ", "}})
}
{{end}}
{{- with .FullConstructor}}
// {{.Name}} assembles a live {{$iface.Name}}; every endpoint is required.
{{- if .Params}}
func {{.Name}}(
{{- range .Params}}
	{{.Name}} {{.Type}},
{{- end}}
) *{{$iface.Name}} {
{{- else}}
func {{.Name}}() *{{$iface.Name}} {
{{- end}}
	return &{{$iface.Name}}{
{{- range .Assignments}}
		{{.Field}}: {{.Expr}},
{{- end}}
	}
}
{{end}}
{{- with .ZeroConstructor}}
// {{.Name}} returns a {{$iface.Name}} whose endpoints report a failure
// when invoked without being overridden.
func {{.Name}}() *{{$iface.Name}} {
	return &{{$iface.Name}}{
{{- range .Assignments}}
		{{.Field}}: {{.Expr}},
{{- end}}
	}
}
{{end}}
{{- end}}`

// Render produces the full source text of one generated file
func Render(file File) (string, error) {
	var b strings.Builder
	data := struct {
		Header string
		File   File
	}{Header: Header, File: file}

	if err := fileTemplate.Execute(&b, data); err != nil {
		return "", errors.Wrap(errors.GenerationErrorCode, "failed to render generated file", err)
	}
	return b.String(), nil
}
