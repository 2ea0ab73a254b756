package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/jbind/classinfo"
)

func bind(t *testing.T, info *classinfo.ClassInfo) *ClassBinding {
	t.Helper()
	names := NewNamespace()
	names.Reserve(TypeName(info.SimpleName()))
	c, err := BindClass(info, NewImports("example.com/gen", DefaultRuntime, info.Package()), names)
	require.NoError(t, err)
	return c
}

func typeParamStrings(params []TypeParam) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Name + " " + p.Constraint
	}
	return out
}

func TestConstructorWithExtendsArgument(t *testing.T) {
	c := bind(t, &classinfo.ClassInfo{
		Name: "com.example.Foo",
		Constructors: []classinfo.Constructor{{
			Args:       []classinfo.Type{classinfo.Extends{Bound: classinfo.ClassRef{Name: "com.example.X"}}},
			Descriptor: "(Lcom/example/X;)V",
		}},
	})

	require.Len(t, c.Constructors, 1)
	f := c.Constructors[0]
	assert.Equal(t, "NewFoo", f.Name)
	assert.Equal(t, []string{
		"P0 jvm.Upcast[X]",
		"A0 jvm.IntoJava[P0]",
	}, typeParamStrings(f.TypeParams))
	assert.Equal(t, "jvm.IntoLocal[Foo]", f.Result)
	assert.Equal(t, "jvm.Construct[Foo]", f.Call)
	assert.Equal(t, "jvm.RefArg[P0]", f.Params[0].Eval)
	assert.Empty(t, c.Skipped)
}

func TestOnlyBindableMembersSurvive(t *testing.T) {
	list := func(arg classinfo.RefType) classinfo.ClassRef {
		return classinfo.ClassRef{Name: "java.util.List", Generics: []classinfo.RefType{arg}}
	}
	c := bind(t, &classinfo.ClassInfo{
		Name: "com.example.Foo",
		Methods: []classinfo.Method{
			{Name: "wild", Return: list(classinfo.Wildcard{}), Descriptor: "()Ljava/util/List;"},
			{
				Name:       "plain",
				Args:       []classinfo.Type{classinfo.ClassRef{Name: "java.lang.Integer"}, classinfo.ClassRef{Name: "java.lang.String"}},
				Return:     classinfo.ClassRef{Name: "java.lang.String"},
				Descriptor: "(Ljava/lang/Integer;Ljava/lang/String;)Ljava/lang/String;",
			},
		},
	})

	require.Len(t, c.Methods, 1)
	assert.Equal(t, "FooPlain", c.Methods[0].Name)
	require.Len(t, c.Skipped, 1)
	assert.Equal(t, "method wild()Ljava/util/List;", c.Skipped[0].Member)
	assert.Equal(t, ErrUnsupportedWildcard.Error(), c.Skipped[0].Reason)
}

func TestOverloadedConstructors(t *testing.T) {
	c := bind(t, &classinfo.ClassInfo{
		Name:     "java.util.ArrayList",
		Generics: []string{"E"},
		Constructors: []classinfo.Constructor{
			{Descriptor: "()V"},
			{
				Generics:   []string{"T"},
				Args:       []classinfo.Type{classinfo.TypeParameter{Name: "T"}},
				Descriptor: "(Ljava/lang/Object;)V",
			},
			{Args: []classinfo.Type{classinfo.Scalar{Kind: classinfo.Int}}, Descriptor: "(I)V"},
		},
	})

	require.Len(t, c.Constructors, 3)
	assert.Equal(t, "NewArrayList0", c.Constructors[0].Name)
	assert.Equal(t, "NewArrayList1", c.Constructors[1].Name)
	assert.Equal(t, "NewArrayList2", c.Constructors[2].Name)
	assert.Equal(t, []string{"JE jvm.JavaObject"}, typeParamStrings(c.Constructors[0].TypeParams))
	assert.Equal(t, []string{"JE jvm.JavaObject", "JT jvm.JavaObject", "A0 jvm.IntoJava[JT]"}, typeParamStrings(c.Constructors[1].TypeParams))
	assert.Equal(t, "jvm.IntoLocal[ArrayList[JE]]", c.Constructors[2].Result)
	assert.Equal(t, "jvm.ScalarArg[int32]", c.Constructors[2].Params[0].Eval)
}

func TestInstanceMethod(t *testing.T) {
	c := bind(t, &classinfo.ClassInfo{
		Name:     "java.util.ArrayList",
		Generics: []string{"E"},
		Methods: []classinfo.Method{{
			Name:       "addAll",
			Args:       []classinfo.Type{classinfo.ClassRef{Name: "java.util.Collection", Generics: []classinfo.RefType{classinfo.Extends{Bound: classinfo.TypeParameter{Name: "E"}}}}},
			Return:     classinfo.Scalar{Kind: classinfo.Boolean},
			Descriptor: "(Ljava/util/Collection;)Z",
		}},
	})

	require.Len(t, c.Methods, 1)
	f := c.Methods[0]
	assert.Equal(t, "ArrayListAddAll", f.Name)
	assert.Equal(t, []string{
		"JE jvm.JavaObject",
		"P1 jvm.Upcast[JE]",
		"This jvm.IntoJava[ArrayList[JE]]",
		"A0 jvm.IntoJava[Collection[P1]]",
	}, typeParamStrings(f.TypeParams))
	require.NotNil(t, f.Receiver)
	assert.Equal(t, "jvm.RefArg[ArrayList[JE]]", f.Receiver.Eval)
	assert.Equal(t, "jvm.IntoScalar[bool]", f.Result)
	assert.Equal(t, "bool", f.Out)
	assert.Equal(t, "jvm.CallScalar[bool]", f.Call)
	assert.Equal(t, "false", f.Zero)
}

func TestStaticAndVoidMethods(t *testing.T) {
	c := bind(t, &classinfo.ClassInfo{
		Name:     "java.util.Collections",
		Generics: []string{"Ignored"},
		Methods: []classinfo.Method{
			{
				Name:       "emptyList",
				Generics:   []string{"T"},
				Return:     classinfo.ClassRef{Name: "java.util.List", Generics: []classinfo.RefType{classinfo.TypeParameter{Name: "T"}}},
				Descriptor: "()Ljava/util/List;",
				Static:     true,
			},
			{Name: "clear", Descriptor: "()V"},
			{Name: "size", Return: classinfo.Scalar{Kind: classinfo.Int}, Descriptor: "()I", Static: true},
		},
	})

	require.Len(t, c.Methods, 3)
	empty := c.Methods[0]
	assert.Nil(t, empty.Receiver)
	assert.Equal(t, []string{"JT jvm.JavaObject"}, typeParamStrings(empty.TypeParams))
	assert.Equal(t, "jvm.IntoOptLocal[List[JT]]", empty.Result)
	assert.Equal(t, "*jvm.Local[List[JT]]", empty.Out)
	assert.Equal(t, "jvm.CallStaticObject[List[JT]]", empty.Call)

	clr := c.Methods[1]
	assert.Equal(t, "jvm.Op[jvm.Void]", clr.Result)
	assert.Equal(t, "jvm.CallVoid", clr.Call)
	assert.Equal(t, "jvm.Void{}", clr.Zero)

	size := c.Methods[2]
	assert.Equal(t, "jvm.CallStaticScalar[int32]", size.Call)
	assert.Equal(t, "0", size.Zero)
}

func TestOverloadedMethodsUseFactIndex(t *testing.T) {
	c := bind(t, &classinfo.ClassInfo{
		Name: "java.lang.StringBuilder",
		Methods: []classinfo.Method{
			{Name: "append", Args: []classinfo.Type{classinfo.Scalar{Kind: classinfo.Int}}, Descriptor: "(I)Ljava/lang/StringBuilder;", Return: classinfo.ClassRef{Name: "java.lang.StringBuilder"}},
			{Name: "length", Return: classinfo.Scalar{Kind: classinfo.Int}, Descriptor: "()I"},
			{Name: "append", Args: []classinfo.Type{classinfo.Scalar{Kind: classinfo.Char}}, Descriptor: "(C)Ljava/lang/StringBuilder;", Return: classinfo.ClassRef{Name: "java.lang.StringBuilder"}},
		},
	})

	names := make([]string, len(c.Methods))
	for i, m := range c.Methods {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"StringBuilderAppend0", "StringBuilderLength", "StringBuilderAppend2"}, names)
}

func TestUndeclaredTypeParameterFailsClass(t *testing.T) {
	_, err := BindClass(&classinfo.ClassInfo{
		Name: "com.example.Broken",
		Constructors: []classinfo.Constructor{
			{Args: []classinfo.Type{classinfo.TypeParameter{Name: "T"}}, Descriptor: "(Ljava/lang/Object;)V"},
		},
	}, NewImports("", DefaultRuntime, "com.example"), NewNamespace())

	var undeclared *UndeclaredTypeParameterError
	require.ErrorAs(t, err, &undeclared)
	assert.Contains(t, err.Error(), "com.example.Broken: constructor (Ljava/lang/Object;)V")
}

func TestMergeGenerics(t *testing.T) {
	assert.Equal(t, []string{"E"}, mergeGenerics([]string{"E"}, nil))
	assert.Equal(t, []string{"E", "T"}, mergeGenerics([]string{"E"}, []string{"T", "E"}))
}
