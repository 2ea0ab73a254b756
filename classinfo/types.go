package classinfo

import "strings"

type ScalarKind int

const (
	Int ScalarKind = iota
	Long
	Short
	Byte
	F64
	F32
	Boolean
	Char
)

var scalarNames = map[ScalarKind]string{
	Int:     "int",
	Long:    "long",
	Short:   "short",
	Byte:    "byte",
	F64:     "double",
	F32:     "float",
	Boolean: "boolean",
	Char:    "char",
}

func (k ScalarKind) String() string {
	if name, ok := scalarNames[k]; ok {
		return name
	}
	return "unknown"
}

// Type is a Java type: a Scalar or a RefType.
type Type interface {
	String() string
	isType()
}

// RefType is a Java reference type, including wildcard type arguments.
type RefType interface {
	Type
	isRef()
}

type Scalar struct {
	Kind ScalarKind
}

// ClassRef names a class by its dotted name, e.g. java.util.Map$Entry.
type ClassRef struct {
	Name     string
	Generics []RefType
}

type Array struct {
	Elem Type
}

type TypeParameter struct {
	Name string
}

// Extends is the wildcard `? extends Bound`.
type Extends struct {
	Bound RefType
}

// Super is the wildcard `? super Bound`.
type Super struct {
	Bound RefType
}

// Wildcard is the unbounded wildcard `?`.
type Wildcard struct{}

func (Scalar) isType()        {}
func (ClassRef) isType()      {}
func (Array) isType()         {}
func (TypeParameter) isType() {}
func (Extends) isType()       {}
func (Super) isType()         {}
func (Wildcard) isType()      {}

func (ClassRef) isRef()      {}
func (Array) isRef()         {}
func (TypeParameter) isRef() {}
func (Extends) isRef()       {}
func (Super) isRef()         {}
func (Wildcard) isRef()      {}

func (s Scalar) String() string { return s.Kind.String() }

func (c ClassRef) String() string {
	if len(c.Generics) == 0 {
		return c.Name
	}
	args := make([]string, len(c.Generics))
	for i, g := range c.Generics {
		args[i] = g.String()
	}
	return c.Name + "<" + strings.Join(args, ", ") + ">"
}

func (a Array) String() string         { return a.Elem.String() + "[]" }
func (t TypeParameter) String() string { return t.Name }
func (e Extends) String() string       { return "? extends " + e.Bound.String() }
func (s Super) String() string         { return "? super " + s.Bound.String() }
func (Wildcard) String() string        { return "?" }

// ContainsWildcard reports whether t mentions ?, ? extends or ? super anywhere.
func ContainsWildcard(t Type) bool {
	switch t := t.(type) {
	case Extends, Super, Wildcard:
		return true
	case ClassRef:
		for _, g := range t.Generics {
			if ContainsWildcard(g) {
				return true
			}
		}
	case Array:
		return ContainsWildcard(t.Elem)
	}
	return false
}
