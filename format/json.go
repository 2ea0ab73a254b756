package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/jbind/classinfo"
	"github.com/dhamidi/jbind/decl"
)

type JSONEncoder struct {
	w     io.Writer
	class *classinfo.ClassInfo
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(class *classinfo.ClassInfo) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildClassData(e.class), "", "  ")
}

type jsonClass struct {
	Name         string            `json:"name"`
	SimpleName   string            `json:"simpleName"`
	Package      string            `json:"package"`
	Generics     []string          `json:"generics,omitempty"`
	Constructors []jsonConstructor `json:"constructors,omitempty"`
	Methods      []jsonMethod      `json:"methods,omitempty"`
}

type jsonConstructor struct {
	Generics   []string `json:"generics,omitempty"`
	Parameters []string `json:"parameters,omitempty"`
	Descriptor string   `json:"descriptor"`
}

type jsonMethod struct {
	Name       string   `json:"name"`
	Generics   []string `json:"generics,omitempty"`
	Parameters []string `json:"parameters,omitempty"`
	ReturnType string   `json:"returnType"`
	Descriptor string   `json:"descriptor"`
	Static     bool     `json:"static,omitempty"`
}

func buildClassData(c *classinfo.ClassInfo) jsonClass {
	data := jsonClass{
		Name:       c.Name,
		SimpleName: c.SimpleName(),
		Package:    c.Package(),
		Generics:   c.Generics,
	}
	for _, ctor := range c.Constructors {
		data.Constructors = append(data.Constructors, jsonConstructor{
			Generics:   ctor.Generics,
			Parameters: typeNames(ctor.Args),
			Descriptor: ctor.Descriptor,
		})
	}
	for _, m := range c.Methods {
		data.Methods = append(data.Methods, jsonMethod{
			Name:       m.Name,
			Generics:   m.Generics,
			Parameters: typeNames(m.Args),
			ReturnType: returnTypeName(m.Return),
			Descriptor: m.Descriptor,
			Static:     m.Static,
		})
	}
	return data
}

func typeNames(types []classinfo.Type) []string {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

func returnTypeName(t classinfo.Type) string {
	if t == nil {
		return "void"
	}
	return t.String()
}

// DeclarationJSONEncoder writes parsed declarations, optionally with the
// source position of every package and class.
type DeclarationJSONEncoder struct {
	w         io.Writer
	positions bool
}

func NewDeclarationJSONEncoder(w io.Writer, positions bool) *DeclarationJSONEncoder {
	return &DeclarationJSONEncoder{w: w, positions: positions}
}

func (e *DeclarationJSONEncoder) Encode(d *decl.Declaration) error {
	text, err := json.MarshalIndent(e.buildDeclaration(d), "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

type jsonDeclaration struct {
	Packages []jsonPackage `json:"packages"`
}

type jsonPackage struct {
	Name    string              `json:"name"`
	Span    *jsonPosition       `json:"position,omitempty"`
	Classes []jsonDeclaredClass `json:"classes"`
}

type jsonDeclaredClass struct {
	Name          string        `json:"name"`
	QualifiedName string        `json:"qualifiedName"`
	Span          *jsonPosition `json:"position,omitempty"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *DeclarationJSONEncoder) buildDeclaration(d *decl.Declaration) jsonDeclaration {
	data := jsonDeclaration{Packages: []jsonPackage{}}
	for _, pkg := range d.Packages {
		jp := jsonPackage{
			Name:    pkg.Name.String(),
			Span:    e.position(pkg.Name.Span),
			Classes: []jsonDeclaredClass{},
		}
		for _, c := range pkg.Classes {
			jp.Classes = append(jp.Classes, jsonDeclaredClass{
				Name:          c.Name,
				QualifiedName: pkg.QualifiedName(c),
				Span:          e.position(c.Span),
			})
		}
		data.Packages = append(data.Packages, jp)
	}
	return data
}

func (e *DeclarationJSONEncoder) position(span decl.Span) *jsonPosition {
	if !e.positions {
		return nil
	}
	return &jsonPosition{Line: span.Start.Line, Column: span.Start.Column}
}
