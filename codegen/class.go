package codegen

import (
	"errors"
	"fmt"
	"go/ast"
	"slices"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jbind/classinfo"
)

var log = commonlog.GetLogger("jbind.codegen")

// ClassBinding is everything emitted for one Java class: the binding type,
// its class cache, and one function per bound constructor and method.
type ClassBinding struct {
	Info         *classinfo.ClassInfo
	TypeName     string
	TypeParams   []TypeParam
	CacheVar     string
	Constructors []*FuncBinding
	Methods      []*FuncBinding
	Skipped      []Skipped
}

// This returns the binding type instantiated with its own type parameters.
func (c *ClassBinding) This() string {
	return exprString(c.thisExpr())
}

func (c *ClassBinding) thisExpr() ast.Expr {
	args := make([]ast.Expr, len(c.TypeParams))
	for i, tp := range c.TypeParams {
		args[i] = ast.NewIdent(tp.Name)
	}
	return instantiate(ast.NewIdent(c.TypeName), args)
}

func (c *ClassBinding) JNIName() string {
	return c.Info.JNIName()
}

type TypeParam struct {
	Name       string
	Constraint string
}

// Skipped records a member that has no binding.
type Skipped struct {
	Member string
	Reason string
}

type FuncKind int

const (
	ConstructorFunc FuncKind = iota
	MethodFunc
	StaticMethodFunc
)

// FuncBinding is one generated function. It returns a deferred operation
// that evaluates the receiver and arguments left to right, resolves the
// class cache and performs the native call.
type FuncBinding struct {
	Kind       FuncKind
	Name       string
	JavaName   string
	Descriptor string
	CacheVar   string
	TypeParams []TypeParam
	Receiver   *Param
	Params     []Param
	// Result is the declared result type, e.g. jvm.IntoOptLocal[lang.String].
	Result string
	// Out is the type the operation yields, e.g. *jvm.Local[lang.String].
	Out string
	// Call is the runtime helper with its type arguments, e.g. jvm.CallObject[lang.String].
	Call string
	// Zero is the literal returned alongside an error.
	Zero string
}

// Param is one argument of a generated function.
type Param struct {
	Name       string
	TypeParam  string
	Constraint string
	// Eval is the runtime helper that evaluates the argument, e.g. jvm.RefArg[lang.String].
	Eval  string
	Value string
}

func (f *FuncBinding) IsConstructor() bool {
	return f.Kind == ConstructorFunc
}

// BindClass synthesizes the bindings of one class. Members that would need a
// wildcard in an unsupported position are recorded in Skipped; any other
// translation error fails the whole class.
//
// The binding type is named after the class and must already be reserved in
// names; function and cache names are claimed from names as they are made.
func BindClass(info *classinfo.ClassInfo, imports *Imports, names *Namespace) (*ClassBinding, error) {
	_, simple := classinfo.SplitName(info.Name)
	typeName := TypeName(simple)
	c := &ClassBinding{
		Info:     info,
		TypeName: typeName,
		CacheVar: names.Claim(unexported(typeName) + "Class"),
	}
	for _, g := range info.Generics {
		c.TypeParams = append(c.TypeParams, TypeParam{Name: typeParamName(g), Constraint: javaObject()})
	}

	ctorName := "New" + typeName
	for i, ctor := range info.Constructors {
		name := ctorName
		if len(info.Constructors) > 1 {
			name = fmt.Sprintf("%s%d", ctorName, i)
		}
		f, err := c.constructor(imports, ctor)
		if errors.Is(err, ErrUnsupportedWildcard) {
			c.skip(fmt.Sprintf("constructor %s", ctor.Descriptor), err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: constructor %s: %w", info.Name, ctor.Descriptor, err)
		}
		f.Name = names.Claim(name)
		f.CacheVar = c.CacheVar
		c.Constructors = append(c.Constructors, f)
	}

	overloads := make(map[string]int)
	for _, m := range info.Methods {
		overloads[m.Name]++
	}
	for i, m := range info.Methods {
		name := typeName + exported(identifier(m.Name))
		if overloads[m.Name] > 1 {
			name = fmt.Sprintf("%s%d", name, i)
		}
		f, err := c.method(imports, m)
		if errors.Is(err, ErrUnsupportedWildcard) {
			c.skip(fmt.Sprintf("method %s%s", m.Name, m.Descriptor), err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: method %s%s: %w", info.Name, m.Name, m.Descriptor, err)
		}
		f.Name = names.Claim(name)
		f.CacheVar = c.CacheVar
		c.Methods = append(c.Methods, f)
	}
	return c, nil
}

func (c *ClassBinding) skip(member string, err error) {
	log.Infof("%s: skipping %s: %s", c.Info.Name, member, err)
	c.Skipped = append(c.Skipped, Skipped{Member: member, Reason: err.Error()})
}

func (c *ClassBinding) constructor(imports *Imports, ctor classinfo.Constructor) (*FuncBinding, error) {
	sig := NewSignature(imports, mergeGenerics(c.Info.Generics, ctor.Generics))
	f := &FuncBinding{
		Kind:       ConstructorFunc,
		JavaName:   "<init>",
		Descriptor: ctor.Descriptor,
	}
	if err := f.bindArgs(sig, ctor.Args); err != nil {
		return nil, err
	}

	this := c.This()
	f.Result = exprString(runtimeType("IntoLocal", c.thisExpr()))
	f.Out = "*" + RuntimeAlias + ".Local[" + this + "]"
	f.Call = RuntimeAlias + ".Construct[" + this + "]"
	f.Zero = "nil"
	f.TypeParams = typeParams(sig, nil, f.Params)
	return f, nil
}

func (c *ClassBinding) method(imports *Imports, m classinfo.Method) (*FuncBinding, error) {
	generics := m.Generics
	if !m.Static {
		generics = mergeGenerics(c.Info.Generics, m.Generics)
	}
	sig := NewSignature(imports, generics)
	f := &FuncBinding{
		Kind:       MethodFunc,
		JavaName:   m.Name,
		Descriptor: m.Descriptor,
	}
	if m.Static {
		f.Kind = StaticMethodFunc
	} else {
		f.Receiver = &Param{
			Name:       "this",
			TypeParam:  "This",
			Constraint: exprString(runtimeType("IntoJava", c.thisExpr())),
			Eval:       exprString(runtimeType("RefArg", c.thisExpr())),
			Value:      "self",
		}
	}
	if err := f.bindArgs(sig, m.Args); err != nil {
		return nil, err
	}

	result, err := sig.OutputBound(m.Return)
	if err != nil {
		return nil, err
	}
	f.Result = exprString(result)
	if err := f.bindReturn(sig, m.Return); err != nil {
		return nil, err
	}

	f.TypeParams = typeParams(sig, f.Receiver, f.Params)
	return f, nil
}

// bindArgs translates every argument as an input. The first unsupported
// wildcard fails the whole member.
func (f *FuncBinding) bindArgs(sig *Signature, args []classinfo.Type) error {
	for i, arg := range args {
		bound, err := sig.InputBound(arg)
		if err != nil {
			return err
		}
		p := Param{
			Name:       fmt.Sprintf("a%d", i),
			TypeParam:  fmt.Sprintf("A%d", i),
			Constraint: exprString(bound),
			Value:      fmt.Sprintf("v%d", i),
		}
		// bound is jvm.IntoJava[T] or jvm.IntoScalar[T]
		elem := bound.(*ast.IndexExpr).Index
		if _, ok := arg.(classinfo.Scalar); ok {
			p.Eval = exprString(runtimeType("ScalarArg", elem))
		} else {
			p.Eval = exprString(runtimeType("RefArg", elem))
		}
		f.Params = append(f.Params, p)
	}
	return nil
}

func (f *FuncBinding) bindReturn(sig *Signature, ret classinfo.Type) error {
	prefix := "Call"
	if f.Kind == StaticMethodFunc {
		prefix = "CallStatic"
	}
	if ret == nil {
		f.Out = RuntimeAlias + ".Void"
		f.Call = RuntimeAlias + "." + prefix + "Void"
		f.Zero = RuntimeAlias + ".Void{}"
		return nil
	}

	t, err := sig.JavaType(ret)
	if err != nil {
		return err
	}
	ts := exprString(t)
	if sc, ok := ret.(classinfo.Scalar); ok {
		f.Out = ts
		f.Call = RuntimeAlias + "." + prefix + "Scalar[" + ts + "]"
		f.Zero = "0"
		if sc.Kind == classinfo.Boolean {
			f.Zero = "false"
		}
		return nil
	}
	f.Out = "*" + RuntimeAlias + ".Local[" + ts + "]"
	f.Call = RuntimeAlias + "." + prefix + "Object[" + ts + "]"
	f.Zero = "nil"
	return nil
}

// typeParams orders the type parameters of a generated function: declared
// generics, captured wildcards, the receiver, then one per argument.
func typeParams(sig *Signature, receiver *Param, params []Param) []TypeParam {
	var out []TypeParam
	for _, d := range sig.Declared() {
		out = append(out, TypeParam{Name: d, Constraint: javaObject()})
	}
	for _, p := range sig.Captured() {
		constraint := javaObject()
		if b, ok := sig.BoundOf(p); ok {
			constraint = exprString(b)
		}
		out = append(out, TypeParam{Name: p, Constraint: constraint})
	}
	if receiver != nil {
		out = append(out, TypeParam{Name: receiver.TypeParam, Constraint: receiver.Constraint})
	}
	for _, p := range params {
		out = append(out, TypeParam{Name: p.TypeParam, Constraint: p.Constraint})
	}
	return out
}

// mergeGenerics appends member generics to class generics. A member type
// variable that shadows a class one maps to the same Go name.
func mergeGenerics(class, member []string) []string {
	if len(member) == 0 {
		return class
	}
	out := append([]string(nil), class...)
	for _, m := range member {
		if !slices.Contains(class, m) {
			out = append(out, m)
		}
	}
	return out
}

func javaObject() string {
	return RuntimeAlias + ".JavaObject"
}
