package codegen

import (
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PackageName returns the Go package name for a dotted Java package.
func PackageName(javaPkg string) string {
	if javaPkg == "" {
		return "unnamed"
	}
	name := javaPkg[strings.LastIndexByte(javaPkg, '.')+1:]
	name = strings.ToLower(identifier(name))
	if token.IsKeyword(name) || name == "main" || name == "init" {
		name += "_"
	}
	return name
}

// PackagePath returns the import path of the Go package generated for javaPkg.
func PackagePath(root, javaPkg string) string {
	dir := PackageDir(javaPkg)
	if root == "" {
		return dir
	}
	return strings.TrimSuffix(root, "/") + "/" + dir
}

// PackageDir returns the slash-separated directory of javaPkg, relative to
// the output root.
func PackageDir(javaPkg string) string {
	if javaPkg == "" {
		return "unnamed"
	}
	return strings.ReplaceAll(javaPkg, ".", "/")
}

// TypeName returns the Go type name for a simple Java class name.
// Nested classes keep their outer class as prefix: Map$Entry becomes Map_Entry.
func TypeName(simple string) string {
	return exported(identifier(simple))
}

// typeParamName is the Go name of a Java type variable.
func typeParamName(javaName string) string {
	return "J" + identifier(javaName)
}

func exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		return name
	}
	if r == '_' {
		return "X" + name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func unexported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

// identifier maps a Java identifier onto a Go one.
func identifier(name string) string {
	return strings.ReplaceAll(name, "$", "_")
}

// reservedLocals are the names generated function bodies declare.
var reservedLocals = map[string]bool{
	"j":    true,
	"err":  true,
	"this": true,
	"self": true,
}

// isReservedLocal reports whether name may clash with a parameter or local
// variable of a generated function.
func isReservedLocal(name string) bool {
	if reservedLocals[name] {
		return true
	}
	if len(name) > 1 && (name[0] == 'a' || name[0] == 'v') {
		_, err := strconv.Atoi(name[1:])
		return err == nil
	}
	return false
}

func isPredeclared(name string) bool {
	return types.Universe.Lookup(name) != nil
}

// Namespace hands out the package-level names of one generated package,
// adding a numeric suffix on collision.
type Namespace struct {
	taken map[string]bool
}

func NewNamespace() *Namespace {
	return &Namespace{taken: make(map[string]bool)}
}

// Reserve marks name as taken without renaming it.
func (ns *Namespace) Reserve(name string) {
	ns.taken[name] = true
}

func (ns *Namespace) Claim(name string) string {
	candidate := name
	for i := 2; ns.taken[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}
	ns.taken[candidate] = true
	return candidate
}
