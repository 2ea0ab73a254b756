package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"strconv"
	"strings"

	"github.com/dhamidi/jbind/classinfo"
)

// ErrUnsupportedWildcard reports a wildcard in a position where it cannot
// become a type parameter, such as a return type. The member that uses it is
// skipped; the rest of the class is still bound.
//
// An input like ArrayList<ArrayList<?>> would need an existential type, and
// a result like ArrayList<? extends Foo> would need the caller to pick the
// element type the callee returns. Neither has a Go equivalent.
var ErrUnsupportedWildcard = errors.New("unsupported wildcard")

// UndeclaredTypeParameterError reports a type variable that neither the class
// nor the member declares. It means the fact base is inconsistent.
type UndeclaredTypeParameterError struct {
	Name     string
	Declared []string
}

func (e *UndeclaredTypeParameterError) Error() string {
	return fmt.Sprintf("type parameter %s is not declared (declared: %s)", e.Name, strings.Join(e.Declared, ", "))
}

// Bound constrains a type parameter introduced for a captured wildcard.
type Bound struct {
	Param      string
	Constraint ast.Expr
}

// Signature translates the Java types of one constructor or method into Go
// type expressions. Wildcards in argument positions are captured as fresh
// type parameters P<n>; the counter starts past the declared generics so
// captured names never collide with declared ones.
type Signature struct {
	imports  *Imports
	javaName []string
	declared []string
	captured []string
	bounds   []Bound
	capture  bool
}

// NewSignature starts a translation. generics are the Java type variables in
// scope, class generics first.
func NewSignature(imports *Imports, generics []string) *Signature {
	s := &Signature{imports: imports, capture: true}
	for _, g := range generics {
		s.javaName = append(s.javaName, g)
		s.declared = append(s.declared, typeParamName(g))
	}
	return s
}

// Declared returns the Go names of the declared type variables.
func (s *Signature) Declared() []string {
	return s.declared
}

// Captured returns the type parameters minted for wildcards, in capture order.
func (s *Signature) Captured() []string {
	return s.captured
}

func (s *Signature) Bounds() []Bound {
	return s.bounds
}

// BoundOf returns the constraint recorded for a captured parameter.
func (s *Signature) BoundOf(param string) (ast.Expr, bool) {
	for _, b := range s.bounds {
		if b.Param == param {
			return b.Constraint, true
		}
	}
	return nil, false
}

// InputBound returns the constraint of an argument of type t.
func (s *Signature) InputBound(t classinfo.Type) (ast.Expr, error) {
	switch t := t.(type) {
	case classinfo.Scalar:
		return runtimeType("IntoScalar", scalarType(t.Kind)), nil
	case classinfo.RefType:
		e, err := s.refType(t)
		if err != nil {
			return nil, err
		}
		return runtimeType("IntoJava", e), nil
	default:
		return nil, fmt.Errorf("unexpected type %T", t)
	}
}

// OutputBound returns the result type of a member returning t; nil means void.
// Wildcards cannot be captured while translating it.
func (s *Signature) OutputBound(t classinfo.Type) (ast.Expr, error) {
	if t == nil {
		return runtimeType("Op", runtimeType("Void")), nil
	}
	return s.forbidCapture(func() (ast.Expr, error) {
		switch t := t.(type) {
		case classinfo.Scalar:
			return runtimeType("IntoScalar", scalarType(t.Kind)), nil
		case classinfo.RefType:
			e, err := s.refType(t)
			if err != nil {
				return nil, err
			}
			return runtimeType("IntoOptLocal", e), nil
		default:
			return nil, fmt.Errorf("unexpected type %T", t)
		}
	})
}

// JavaType translates t in an output position: wildcards are rejected.
func (s *Signature) JavaType(t classinfo.Type) (ast.Expr, error) {
	return s.forbidCapture(func() (ast.Expr, error) {
		if sc, ok := t.(classinfo.Scalar); ok {
			return scalarType(sc.Kind), nil
		}
		return s.refType(t.(classinfo.RefType))
	})
}

// forbidCapture disables capture while fn runs and restores it afterwards.
func (s *Signature) forbidCapture(fn func() (ast.Expr, error)) (ast.Expr, error) {
	saved := s.capture
	s.capture = false
	defer func() { s.capture = saved }()
	return fn()
}

func (s *Signature) freshGeneric() (string, error) {
	if !s.capture {
		return "", ErrUnsupportedWildcard
	}
	name := "P" + strconv.Itoa(len(s.declared)+len(s.captured))
	s.captured = append(s.captured, name)
	return name, nil
}

func (s *Signature) pushBound(param string, constraint ast.Expr) {
	s.bounds = append(s.bounds, Bound{Param: param, Constraint: constraint})
}

func (s *Signature) refType(t classinfo.RefType) (ast.Expr, error) {
	switch t := t.(type) {
	case classinfo.ClassRef:
		return s.classRef(t)
	case classinfo.Array:
		var elem ast.Expr
		if sc, ok := t.Elem.(classinfo.Scalar); ok {
			elem = scalarType(sc.Kind)
		} else {
			e, err := s.refType(t.Elem.(classinfo.RefType))
			if err != nil {
				return nil, err
			}
			elem = e
		}
		return runtimeType("Array", elem), nil
	case classinfo.TypeParameter:
		name := typeParamName(t.Name)
		for _, d := range s.declared {
			if d == name {
				return ast.NewIdent(name), nil
			}
		}
		return nil, &UndeclaredTypeParameterError{Name: t.Name, Declared: s.javaName}
	case classinfo.Extends:
		g, err := s.freshGeneric()
		if err != nil {
			return nil, err
		}
		e, err := s.refType(t.Bound)
		if err != nil {
			return nil, err
		}
		s.pushBound(g, runtimeType("Upcast", e))
		return ast.NewIdent(g), nil
	case classinfo.Super:
		// the lower bound is not enforced
		g, err := s.freshGeneric()
		if err != nil {
			return nil, err
		}
		return ast.NewIdent(g), nil
	case classinfo.Wildcard:
		g, err := s.freshGeneric()
		if err != nil {
			return nil, err
		}
		return ast.NewIdent(g), nil
	default:
		return nil, fmt.Errorf("unexpected reference type %T", t)
	}
}

func (s *Signature) classRef(c classinfo.ClassRef) (ast.Expr, error) {
	pkg, simple := classinfo.SplitName(c.Name)
	var name ast.Expr = ast.NewIdent(TypeName(simple))
	if alias := s.imports.Package(pkg); alias != "" {
		name = &ast.SelectorExpr{X: ast.NewIdent(alias), Sel: ast.NewIdent(TypeName(simple))}
	}
	if len(c.Generics) == 0 {
		return name, nil
	}

	args := make([]ast.Expr, len(c.Generics))
	for i, g := range c.Generics {
		e, err := s.refType(g)
		if err != nil {
			return nil, err
		}
		args[i] = e
	}
	return instantiate(name, args), nil
}

var scalarTypes = map[classinfo.ScalarKind]string{
	classinfo.Int:     "int32",
	classinfo.Long:    "int64",
	classinfo.Short:   "int16",
	classinfo.Byte:    "int8",
	classinfo.F64:     "float64",
	classinfo.F32:     "float32",
	classinfo.Boolean: "bool",
	classinfo.Char:    "uint16",
}

func scalarType(k classinfo.ScalarKind) ast.Expr {
	return ast.NewIdent(scalarTypes[k])
}

// runtimeType names a type of the runtime package, instantiated with args.
func runtimeType(name string, args ...ast.Expr) ast.Expr {
	sel := &ast.SelectorExpr{X: ast.NewIdent(RuntimeAlias), Sel: ast.NewIdent(name)}
	return instantiate(sel, args)
}

func instantiate(x ast.Expr, args []ast.Expr) ast.Expr {
	switch len(args) {
	case 0:
		return x
	case 1:
		return &ast.IndexExpr{X: x, Index: args[0]}
	default:
		return &ast.IndexListExpr{X: x, Indices: args}
	}
}

// exprString prints a type expression as Go source.
func exprString(e ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), e); err != nil {
		panic(fmt.Sprintf("print %T: %v", e, err))
	}
	return buf.String()
}
