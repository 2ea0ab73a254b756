// Package classinfo models the Java classes jbind binds: their generic
// parameters, constructors and methods, with argument types parsed from JVM
// signatures.
package classinfo

import "strings"

type ClassInfo struct {
	// Name is the dotted binary name, e.g. java.util.Map$Entry.
	Name         string
	Generics     []string
	Constructors []Constructor
	Methods      []Method
}

type Constructor struct {
	Generics   []string
	Args       []Type
	Descriptor string
}

type Method struct {
	Name     string
	Generics []string
	Args     []Type
	// Return is nil for void methods.
	Return     Type
	Descriptor string
	Static     bool
}

// Package returns the dotted package of the class, "" for the default package.
func (c *ClassInfo) Package() string {
	pkg, _ := SplitName(c.Name)
	return pkg
}

func (c *ClassInfo) SimpleName() string {
	_, simple := SplitName(c.Name)
	return simple
}

// JNIName returns the slash-separated name used to look the class up natively.
func (c *ClassInfo) JNIName() string {
	return SourceToInternalName(c.Name)
}

// SplitName splits a dotted class name into package and simple name.
func SplitName(name string) (pkg, simple string) {
	i := strings.LastIndex(name, ".")
	if i == -1 {
		return "", name
	}
	return name[:i], name[i+1:]
}

func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

func SourceToInternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
