// Package decl parses declarations of the Java packages and classes to bind:
//
//	package java.util;
//	class ArrayList { * }
//	class HashMap { * }
package decl

import (
	"os"
	"strings"
)

type Declaration struct {
	Packages []Package `json:"packages"`
}

type Package struct {
	Name    DottedPath `json:"name"`
	Classes []Class    `json:"classes"`
}

// Class names one class to bind. Members is reserved for an explicit member
// list and is always nil: only `{ * }` is accepted.
type Class struct {
	Name    string   `json:"name"`
	Span    Span     `json:"span"`
	Members []string `json:"members"`
}

// DottedPath is a dotted Java name. Span covers the first segment only.
type DottedPath struct {
	Segments []string `json:"segments"`
	Span     Span     `json:"span"`
}

func (d DottedPath) String() string {
	return strings.Join(d.Segments, ".")
}

// QualifiedName returns the dotted name of class c inside package pkg.
func (pkg Package) QualifiedName(c Class) string {
	return pkg.Name.String() + "." + c.Name
}

const packageDescription = "java package to reflect (e.g., `package foo; ...`)"

func ParseFile(path string) (*Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse parses a complete declaration. Anything after the last package is an error.
func Parse(input []byte, file string) (*Declaration, error) {
	p := NewParser(input, file)
	d, err := ParseDeclaration(p)
	if err != nil {
		return nil, err
	}
	if !p.AtEOF() {
		return nil, p.Error("expected " + packageDescription)
	}
	return d, nil
}

func ParseDeclaration(p *Parser) (*Declaration, error) {
	packages, err := parseMany(p, parsePackage)
	if err != nil {
		return nil, err
	}
	return &Declaration{Packages: packages}, nil
}

func parsePackage(p *Parser) (Package, bool, error) {
	if !p.EatKeyword("package") {
		return Package{}, false, nil
	}

	name, ok, err := parseDottedPath(p)
	if err != nil {
		return Package{}, false, err
	}
	if !ok {
		return Package{}, false, p.Error("expected package name")
	}

	if !p.EatPunct(TokenSemicolon) {
		return Package{}, false, p.Error("expected `;` after package name")
	}

	classes, err := parseMany(p, parseClass)
	if err != nil {
		return Package{}, false, err
	}

	return Package{Name: name, Classes: classes}, true, nil
}

func parseClass(p *Parser) (Class, bool, error) {
	if !p.EatKeyword("class") {
		return Class{}, false, nil
	}

	name, ok := p.EatIdent()
	if !ok {
		return Class{}, false, p.Error("expected class name")
	}
	span, _ := p.LastSpan()

	if !p.EatPunct(TokenLBrace) {
		return Class{}, false, p.Error("expected `{` after class name")
	}

	// TODO: accept a comma-separated list of member names as an alternative to `*`.
	if !p.EatPunct(TokenStar) {
		return Class{}, false, p.Error("expected `*`")
	}

	if !p.EatPunct(TokenRBrace) {
		return Class{}, false, p.Error("expected `}` after class members")
	}

	return Class{Name: name, Span: span}, true, nil
}

func parseDottedPath(p *Parser) (DottedPath, bool, error) {
	first, ok := p.EatIdent()
	if !ok {
		return DottedPath{}, false, nil
	}
	span, _ := p.LastSpan()

	path := DottedPath{Segments: []string{first}, Span: span}
	for p.EatPunct(TokenDot) {
		next, ok := p.EatIdent()
		if !ok {
			return DottedPath{}, false, p.ErrorAfter("expected identifier after `.`")
		}
		path.Segments = append(path.Segments, next)
	}
	return path, true, nil
}
