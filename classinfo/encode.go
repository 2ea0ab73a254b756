package classinfo

import "strings"

var baseTypeChars = map[ScalarKind]byte{
	Byte:    'B',
	Char:    'C',
	F64:     'D',
	F32:     'F',
	Int:     'I',
	Long:    'J',
	Short:   'S',
	Boolean: 'Z',
}

// TypeSignature renders t in JVM signature syntax; the inverse of ParseFieldSignature.
func TypeSignature(t Type) string {
	var sb strings.Builder
	writeType(&sb, t)
	return sb.String()
}

// MethodSignatureString renders a method signature. Type parameter bounds are
// not tracked and are written as java.lang.Object.
func MethodSignatureString(generics []string, args []Type, ret Type) string {
	var sb strings.Builder
	writeTypeParameters(&sb, generics)
	sb.WriteByte('(')
	for _, a := range args {
		writeType(&sb, a)
	}
	sb.WriteByte(')')
	if ret == nil {
		sb.WriteByte('V')
	} else {
		writeType(&sb, ret)
	}
	return sb.String()
}

func writeTypeParameters(sb *strings.Builder, generics []string) {
	if len(generics) == 0 {
		return
	}
	sb.WriteByte('<')
	for _, g := range generics {
		sb.WriteString(g)
		sb.WriteString(":Ljava/lang/Object;")
	}
	sb.WriteByte('>')
}

func writeType(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case Scalar:
		sb.WriteByte(baseTypeChars[t.Kind])
	case ClassRef:
		sb.WriteByte('L')
		sb.WriteString(SourceToInternalName(t.Name))
		if len(t.Generics) > 0 {
			sb.WriteByte('<')
			for _, g := range t.Generics {
				writeType(sb, g)
			}
			sb.WriteByte('>')
		}
		sb.WriteByte(';')
	case Array:
		sb.WriteByte('[')
		writeType(sb, t.Elem)
	case TypeParameter:
		sb.WriteByte('T')
		sb.WriteString(t.Name)
		sb.WriteByte(';')
	case Extends:
		sb.WriteByte('+')
		writeType(sb, t.Bound)
	case Super:
		sb.WriteByte('-')
		writeType(sb, t.Bound)
	case Wildcard:
		sb.WriteByte('*')
	}
}
