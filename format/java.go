package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/jbind/classinfo"
)

// JavaEncoder writes the bindable surface of a class as a Java stub.
type JavaEncoder struct {
	w     io.Writer
	class *classinfo.ClassInfo
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(class *classinfo.ClassInfo) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	c := e.class

	if pkg := c.Package(); pkg != "" {
		sb.WriteString("package ")
		sb.WriteString(pkg)
		sb.WriteString(";\n\n")
	}

	sb.WriteString("public class ")
	sb.WriteString(c.SimpleName())
	writeGenerics(&sb, c.Generics)
	sb.WriteString(" {\n")

	for _, ctor := range c.Constructors {
		sb.WriteString("    public ")
		if len(ctor.Generics) > 0 {
			writeGenerics(&sb, ctor.Generics)
			sb.WriteByte(' ')
		}
		sb.WriteString(c.SimpleName())
		writeParameters(&sb, ctor.Args)
		sb.WriteString(";\n")
	}
	if len(c.Constructors) > 0 && len(c.Methods) > 0 {
		sb.WriteString("\n")
	}
	for _, m := range c.Methods {
		sb.WriteString("    public ")
		if m.Static {
			sb.WriteString("static ")
		}
		if len(m.Generics) > 0 {
			writeGenerics(&sb, m.Generics)
			sb.WriteByte(' ')
		}
		sb.WriteString(returnTypeName(m.Return))
		sb.WriteByte(' ')
		sb.WriteString(m.Name)
		writeParameters(&sb, m.Args)
		sb.WriteString(";\n")
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

func writeGenerics(sb *strings.Builder, generics []string) {
	if len(generics) == 0 {
		return
	}
	sb.WriteByte('<')
	sb.WriteString(strings.Join(generics, ", "))
	sb.WriteByte('>')
}

func writeParameters(sb *strings.Builder, args []classinfo.Type) {
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
		sb.WriteString(" arg")
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte(')')
}
