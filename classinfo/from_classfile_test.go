package classinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/jbind/classfile"
	"github.com/dhamidi/jbind/classfile/classfiletest"
)

func parseClass(t *testing.T, b *classfiletest.Builder) *classfile.ClassFile {
	t.Helper()
	cf, err := classfile.Parse(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	return cf
}

func boxBuilder() *classfiletest.Builder {
	b := classfiletest.New("com/example/Box")
	b.Signature = "<T:Ljava/lang/Object;>Ljava/lang/Object;"
	b.Method(classfile.AccPublic, "<init>", "()V", "")
	b.Method(classfile.AccPublic, "<init>", "(Ljava/util/Collection;)V", "(Ljava/util/Collection<+TT;>;)V")
	b.Method(classfile.AccPrivate, "<init>", "(I)V", "")
	b.Method(classfile.AccPublic, "get", "()Ljava/lang/Object;", "()TT;")
	b.Method(classfile.AccPublic|classfile.AccStatic, "empty", "()Lcom/example/Box;", "<U:Ljava/lang/Object;>()Lcom/example/Box<TU;>;")
	b.Method(classfile.AccPublic|classfile.AccBridge|classfile.AccSynthetic, "get", "()Ljava/lang/Object;", "")
	b.Method(classfile.AccStatic, "<clinit>", "()V", "")
	return b
}

func TestFromClassFile(t *testing.T) {
	info, err := FromClassFile(parseClass(t, boxBuilder()))
	require.NoError(t, err)

	assert.Equal(t, "com.example.Box", info.Name)
	assert.Equal(t, []string{"T"}, info.Generics)

	require.Len(t, info.Constructors, 2)
	assert.Empty(t, info.Constructors[0].Args)
	assert.Equal(t, []Type{ClassRef{
		Name:     "java.util.Collection",
		Generics: []RefType{Extends{Bound: TypeParameter{Name: "T"}}},
	}}, info.Constructors[1].Args)
	assert.Equal(t, "(Ljava/util/Collection;)V", info.Constructors[1].Descriptor)

	require.Len(t, info.Methods, 2)
	get := info.Methods[0]
	assert.Equal(t, "get", get.Name)
	assert.Equal(t, TypeParameter{Name: "T"}, get.Return)
	assert.False(t, get.Static)

	empty := info.Methods[1]
	assert.True(t, empty.Static)
	assert.Equal(t, []string{"U"}, empty.Generics)
	assert.Equal(t, ClassRef{Name: "com.example.Box", Generics: []RefType{TypeParameter{Name: "U"}}}, empty.Return)
}

func TestFromClassFileBadSignatureFallsBack(t *testing.T) {
	b := classfiletest.New("a/B")
	b.Method(classfile.AccPublic, "f", "(I)V", "(Lbroken)V")
	info, err := FromClassFile(parseClass(t, b))
	require.NoError(t, err)
	require.Len(t, info.Methods, 1)
	assert.Equal(t, []Type{Scalar{Kind: Int}}, info.Methods[0].Args)
}

func TestFromClassFileBadDescriptor(t *testing.T) {
	b := classfiletest.New("a/B")
	b.Method(classfile.AccPublic, "f", "(Q)V", "")
	_, err := FromClassFile(parseClass(t, b))
	assert.Error(t, err)
}

func TestFromClassFileBadClassSignature(t *testing.T) {
	b := classfiletest.New("a/B")
	b.Signature = "<T>"
	_, err := FromClassFile(parseClass(t, b))
	assert.Error(t, err)
}
