package classinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethodSignature(t *testing.T) {
	tests := []struct {
		sig      string
		generics []string
		args     []Type
		ret      Type
	}{
		{
			sig:  "(ILjava/lang/String;)V",
			args: []Type{Scalar{Kind: Int}, ClassRef{Name: "java.lang.String"}},
		},
		{
			sig:  "()[[J",
			ret:  Array{Elem: Array{Elem: Scalar{Kind: Long}}},
		},
		{
			sig:      "<T:Ljava/lang/Object;>(Ljava/util/List<+TT;>;)TT;",
			generics: []string{"T"},
			args: []Type{ClassRef{
				Name:     "java.util.List",
				Generics: []RefType{Extends{Bound: TypeParameter{Name: "T"}}},
			}},
			ret: TypeParameter{Name: "T"},
		},
		{
			sig: "(Ljava/util/Map<*-Ljava/lang/Number;>;)Z",
			args: []Type{ClassRef{
				Name:     "java.util.Map",
				Generics: []RefType{Wildcard{}, Super{Bound: ClassRef{Name: "java.lang.Number"}}},
			}},
			ret: Scalar{Kind: Boolean},
		},
		{
			sig:      "<K::Ljava/lang/Comparable<TK;>;V:Ljava/lang/Object;>(Ljava/util/Map<TK;TV;>.Entry<TK;TV;>;)C",
			generics: []string{"K", "V"},
			args: []Type{ClassRef{
				Name:     "java.util.Map$Entry",
				Generics: []RefType{TypeParameter{Name: "K"}, TypeParameter{Name: "V"}},
			}},
			ret: Scalar{Kind: Char},
		},
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			ms, err := ParseMethodSignature(tt.sig)
			require.NoError(t, err)
			assert.Equal(t, tt.generics, ms.Generics)
			assert.Equal(t, tt.args, ms.Args)
			assert.Equal(t, tt.ret, ms.Return)
		})
	}
}

func TestParseMethodSignatureThrows(t *testing.T) {
	ms, err := ParseMethodSignature("()V^Ljava/io/IOException;^TX;")
	require.NoError(t, err)
	assert.Nil(t, ms.Return)
	assert.Equal(t, []RefType{ClassRef{Name: "java.io.IOException"}, TypeParameter{Name: "X"}}, ms.Throws)
}

func TestParseMethodSignatureErrors(t *testing.T) {
	for _, sig := range []string{
		"",
		"(",
		"(Q)V",
		"(Ljava/lang/String)V",
		"()",
		"()VV",
		"<T>()V",
		"(Ljava/util/List<TT;)V",
	} {
		t.Run(sig, func(t *testing.T) {
			_, err := ParseMethodSignature(sig)
			var sigErr *SignatureError
			require.ErrorAs(t, err, &sigErr)
			assert.Equal(t, sig, sigErr.Signature)
		})
	}
}

func TestParseClassSignature(t *testing.T) {
	cs, err := ParseClassSignature("<E:Ljava/lang/Object;>Ljava/util/AbstractList<TE;>;Ljava/util/List<TE;>;Ljava/util/RandomAccess;")
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, cs.Generics)
	assert.Equal(t, ClassRef{Name: "java.util.AbstractList", Generics: []RefType{TypeParameter{Name: "E"}}}, cs.Super)
	assert.Len(t, cs.Interfaces, 2)
}

func TestTypeSignatureRoundTrip(t *testing.T) {
	for _, sig := range []string{
		"I",
		"[Z",
		"TT;",
		"Ljava/lang/String;",
		"Ljava/util/Map<TK;+Ljava/util/List<*>;>;",
		"Ljava/util/function/Function<-TT;+TR;>;",
	} {
		typ, err := ParseFieldSignature(sig)
		require.NoError(t, err, sig)
		assert.Equal(t, sig, TypeSignature(typ))
	}
}

func TestMethodSignatureString(t *testing.T) {
	got := MethodSignatureString(
		[]string{"T"},
		[]Type{Scalar{Kind: Short}, TypeParameter{Name: "T"}},
		nil,
	)
	assert.Equal(t, "<T:Ljava/lang/Object;>(STT;)V", got)

	ms, err := ParseMethodSignature(got)
	require.NoError(t, err)
	assert.Equal(t, []string{"T"}, ms.Generics)
}

func TestTypeString(t *testing.T) {
	typ := ClassRef{
		Name: "java.util.Map",
		Generics: []RefType{
			Extends{Bound: ClassRef{Name: "java.lang.Number"}},
			Super{Bound: TypeParameter{Name: "T"}},
		},
	}
	assert.Equal(t, "java.util.Map<? extends java.lang.Number, ? super T>", typ.String())
	assert.Equal(t, "int[]", Array{Elem: Scalar{Kind: Int}}.String())
}

func TestContainsWildcard(t *testing.T) {
	assert.False(t, ContainsWildcard(Scalar{Kind: Int}))
	assert.False(t, ContainsWildcard(ClassRef{Name: "java.util.List", Generics: []RefType{TypeParameter{Name: "E"}}}))
	assert.True(t, ContainsWildcard(ClassRef{Name: "java.util.List", Generics: []RefType{Wildcard{}}}))
	assert.True(t, ContainsWildcard(Array{Elem: ClassRef{
		Name:     "java.util.List",
		Generics: []RefType{ClassRef{Name: "java.util.Set", Generics: []RefType{Super{Bound: ClassRef{Name: "X"}}}}},
	}}))
}
