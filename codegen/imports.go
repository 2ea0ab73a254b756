package codegen

import (
	"sort"
	"strconv"
)

// RuntimeAlias is the name generated files use for the runtime package.
const RuntimeAlias = "jvm"

type Import struct {
	Alias string
	Path  string
}

// Imports tracks the packages one generated file refers to. Every Java
// package gets a Go import under an alias that collides with no other
// import, Go keyword, predeclared identifier, or local name of generated code.
type Imports struct {
	root    string
	self    string
	runtime string
	aliases map[string]string
	taken   map[string]bool
}

// NewImports returns the tracker for the file generated for Java package
// self. root is the import path generated packages live under.
func NewImports(root, runtime, self string) *Imports {
	return &Imports{
		root:    root,
		self:    self,
		runtime: runtime,
		aliases: make(map[string]string),
		taken:   map[string]bool{RuntimeAlias: true, PackageName(self): true},
	}
}

// Package returns the qualifier for javaPkg, "" when it is the file's own package.
func (im *Imports) Package(javaPkg string) string {
	if javaPkg == im.self {
		return ""
	}
	if alias, ok := im.aliases[javaPkg]; ok {
		return alias
	}
	base := PackageName(javaPkg)
	if isReservedLocal(base) || isPredeclared(base) {
		base += "pkg"
	}
	alias := base
	for i := 2; im.taken[alias]; i++ {
		alias = base + strconv.Itoa(i)
	}
	im.aliases[javaPkg] = alias
	im.taken[alias] = true
	return alias
}

// List returns the runtime import followed by every referenced Java
// package, sorted by path.
func (im *Imports) List() []Import {
	var list []Import
	for pkg, alias := range im.aliases {
		list = append(list, Import{Alias: alias, Path: PackagePath(im.root, pkg)})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Path < list[j].Path })
	return append([]Import{{Alias: RuntimeAlias, Path: im.runtime}}, list...)
}
