package codegen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// PackageFile is the input of the file template: one Go package holding the
// bindings of one Java package.
type PackageFile struct {
	JavaPackage string
	Name        string
	Imports     []Import
	Classes     []*ClassBinding
}

var funcs = template.FuncMap{
	"typeParams": func(params []TypeParam) string {
		if len(params) == 0 {
			return ""
		}
		parts := make([]string, len(params))
		for i, p := range params {
			parts[i] = p.Name + " " + p.Constraint
		}
		return "[" + strings.Join(parts, ", ") + "]"
	},
	"quote": func(s string) string {
		return fmt.Sprintf("%q", s)
	},
}

var fileTemplate = template.Must(template.New("file").Funcs(funcs).Parse(`// Code generated by jbind. DO NOT EDIT.

// Package {{.Name}} binds the Java package {{.JavaPackage}}.
package {{.Name}}

import (
{{- range .Imports}}
	{{.Alias}} {{quote .Path}}
{{- end}}
)
{{range .Classes}}{{template "class" .}}{{end}}`))

var _ = template.Must(fileTemplate.New("class").Parse(`
// {{.TypeName}} is the binding type of {{.Info.Name}}.
type {{.TypeName}}{{typeParams .TypeParams}} struct {
	jvm.Object
}

func ({{.This}}) Upcast({{.This}}) {}

var {{.CacheVar}} = jvm.NewClassCache({{quote .JNIName}})
{{- range .Skipped}}

// {{.Member}} has no binding: {{.Reason}}
{{- end}}
{{range .Constructors}}{{template "func" .}}{{end}}
{{- range .Methods}}{{template "func" .}}{{end}}`))

var _ = template.Must(fileTemplate.New("func").Parse(`
// {{.Name}} calls {{.JavaName}}{{.Descriptor}}.
func {{.Name}}{{typeParams .TypeParams}}(
{{- with .Receiver}}{{.Name}} {{.TypeParam}}, {{end}}
{{- range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}} {{$p.TypeParam}}{{end}}) {{.Result}} {
	return jvm.OpFunc[{{.Out}}](func(j *jvm.Jvm) ({{.Out}}, error) {
{{- with .Receiver}}
		{{.Value}}, err := {{.Eval}}(j, {{.Name}})
		if err != nil {
			return {{$.Zero}}, err
		}
{{- end}}
{{- range .Params}}
		{{.Value}}, err := {{.Eval}}(j, {{.Name}})
		if err != nil {
			return {{$.Zero}}, err
		}
{{- end}}
		return {{.Call}}(j, {{.CacheVar}}{{if .Receiver}}, {{.Receiver.Value}}{{end}}{{if not .IsConstructor}}, {{quote .JavaName}}{{end}}, {{quote .Descriptor}}{{range .Params}}, {{.Value}}{{end}})
	})
}
`))

// Emit renders a package file and formats it with goimports.
func Emit(file *PackageFile) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, file); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	filename := file.Name + ".jbind.go"
	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", filename, err, buf.Bytes())
	}
	return out, nil
}
