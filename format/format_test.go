package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dhamidi/jbind/classinfo"
	"github.com/dhamidi/jbind/decl"
)

func arrayList() *classinfo.ClassInfo {
	e := classinfo.TypeParameter{Name: "E"}
	return &classinfo.ClassInfo{
		Name:     "java.util.ArrayList",
		Generics: []string{"E"},
		Constructors: []classinfo.Constructor{
			{Descriptor: "()V"},
			{
				Args:       []classinfo.Type{classinfo.ClassRef{Name: "java.util.Collection", Generics: []classinfo.RefType{classinfo.Extends{Bound: e}}}},
				Descriptor: "(Ljava/util/Collection;)V",
			},
		},
		Methods: []classinfo.Method{
			{Name: "add", Args: []classinfo.Type{e}, Return: classinfo.Scalar{Kind: classinfo.Boolean}, Descriptor: "(Ljava/lang/Object;)Z"},
			{Name: "clear", Descriptor: "()V"},
			{
				Name:       "of",
				Generics:   []string{"T"},
				Args:       []classinfo.Type{classinfo.Array{Elem: classinfo.TypeParameter{Name: "T"}}},
				Return:     classinfo.ClassRef{Name: "java.util.List", Generics: []classinfo.RefType{classinfo.TypeParameter{Name: "T"}}},
				Descriptor: "([Ljava/lang/Object;)Ljava/util/List;",
				Static:     true,
			},
		},
	}
}

func TestJavaEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJavaEncoder(&buf).Encode(arrayList()); err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := `package java.util;

public class ArrayList<E> {
    public ArrayList();
    public ArrayList(java.util.Collection<? extends E> arg0);

    public boolean add(E arg0);
    public void clear();
    public static <T> java.util.List<T> of(T[] arg0);
}
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(arrayList()); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got jsonClass
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SimpleName != "ArrayList" || got.Package != "java.util" {
		t.Errorf("name = %s in %s", got.SimpleName, got.Package)
	}
	if len(got.Methods) != 3 {
		t.Fatalf("got %d methods, want 3", len(got.Methods))
	}
	if got.Methods[1].ReturnType != "void" {
		t.Errorf("clear returns %q, want void", got.Methods[1].ReturnType)
	}
	if !got.Methods[2].Static || got.Methods[2].Parameters[0] != "T[]" {
		t.Errorf("of = %+v", got.Methods[2])
	}
}

func TestNewEncoder(t *testing.T) {
	for _, name := range []string{"json", "java"} {
		if _, err := NewEncoder(name, &bytes.Buffer{}); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := NewEncoder("xml", &bytes.Buffer{}); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestDeclarationJSONEncoder(t *testing.T) {
	d, err := decl.Parse([]byte("package a.b;\nclass Foo { * }\n"), "x.jbind")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tests := []struct {
		positions bool
		want      string
	}{
		{false, `{
  "packages": [
    {
      "name": "a.b",
      "classes": [
        {
          "name": "Foo",
          "qualifiedName": "a.b.Foo"
        }
      ]
    }
  ]
}
`},
		{true, `{
  "packages": [
    {
      "name": "a.b",
      "position": {
        "line": 1,
        "column": 9
      },
      "classes": [
        {
          "name": "Foo",
          "qualifiedName": "a.b.Foo",
          "position": {
            "line": 2,
            "column": 7
          }
        }
      ]
    }
  ]
}
`},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := NewDeclarationJSONEncoder(&buf, tt.positions).Encode(d); err != nil {
			t.Fatalf("encode: %v", err)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("positions=%v got:\n%s\nwant:\n%s", tt.positions, got, tt.want)
		}
	}
}
