package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "util", PackageName("java.util"))
	assert.Equal(t, "func_", PackageName("org.example.func"))
	assert.Equal(t, "main_", PackageName("org.example.main"))
	assert.Equal(t, "unnamed", PackageName(""))
	assert.Equal(t, "example.com/gen/java/util", PackagePath("example.com/gen/", "java.util"))
	assert.Equal(t, "java/util", PackagePath("", "java.util"))

	assert.Equal(t, "Map_Entry", TypeName("Map$Entry"))
	assert.Equal(t, "Lower", TypeName("lower"))
	assert.Equal(t, "X_internal", TypeName("_internal"))
	assert.Equal(t, "JE", typeParamName("E"))
}

func TestReservedLocals(t *testing.T) {
	for _, name := range []string{"j", "err", "this", "self", "a0", "a12", "v3"} {
		assert.True(t, isReservedLocal(name), name)
	}
	for _, name := range []string{"a", "v", "abc", "lang", "ax1"} {
		assert.False(t, isReservedLocal(name), name)
	}
}

func TestNamespace(t *testing.T) {
	ns := NewNamespace()
	ns.Reserve("FooBar")
	assert.Equal(t, "FooBar2", ns.Claim("FooBar"))
	assert.Equal(t, "FooBar3", ns.Claim("FooBar"))
	assert.Equal(t, "NewFoo", ns.Claim("NewFoo"))
}

func TestImportAliases(t *testing.T) {
	im := NewImports("example.com/gen", "example.com/rt/jvm", "com.example")

	assert.Equal(t, "", im.Package("com.example"))
	assert.Equal(t, "lang", im.Package("java.lang"))
	assert.Equal(t, "lang2", im.Package("org.other.lang"))
	assert.Equal(t, "lang", im.Package("java.lang"))
	assert.Equal(t, "jvm2", im.Package("org.jvm"))
	assert.Equal(t, "stringpkg", im.Package("org.string"))
	assert.Equal(t, "a1pkg", im.Package("org.a1"))
	assert.Equal(t, "example2", im.Package("org.example"))

	assert.Equal(t, []Import{
		{Alias: "jvm", Path: "example.com/rt/jvm"},
		{Alias: "lang", Path: "example.com/gen/java/lang"},
		{Alias: "a1pkg", Path: "example.com/gen/org/a1"},
		{Alias: "example2", Path: "example.com/gen/org/example"},
		{Alias: "jvm2", Path: "example.com/gen/org/jvm"},
		{Alias: "lang2", Path: "example.com/gen/org/other/lang"},
		{Alias: "stringpkg", Path: "example.com/gen/org/string"},
	}, im.List())
}
