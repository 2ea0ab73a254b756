package classinfo

import (
	"fmt"
	"strings"
)

// SignatureError reports a malformed JVM descriptor or generic signature.
type SignatureError struct {
	Signature string
	Offset    int
	Msg       string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("signature %q at offset %d: %s", e.Signature, e.Offset, e.Msg)
}

type MethodSignature struct {
	Generics []string
	Args     []Type
	// Return is nil for void.
	Return Type
	Throws []RefType
}

type ClassSignature struct {
	Generics   []string
	Super      RefType
	Interfaces []RefType
}

// ParseMethodSignature parses a method descriptor such as
// "(ILjava/lang/String;)V" or a generic method signature such as
// "<T:Ljava/lang/Object;>(Ljava/util/List<+TT;>;)TT;".
func ParseMethodSignature(sig string) (*MethodSignature, error) {
	p := &sigParser{sig: sig}
	ms := &MethodSignature{Generics: p.typeParameters()}
	p.expect('(')
	for p.err == nil && p.peek() != ')' {
		ms.Args = append(ms.Args, p.javaType())
	}
	p.expect(')')
	if p.peek() == 'V' {
		p.pos++
	} else {
		ms.Return = p.javaType()
	}
	for p.err == nil && p.peek() == '^' {
		p.pos++
		ms.Throws = append(ms.Throws, p.refType())
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return ms, nil
}

// ParseClassSignature parses the Signature attribute of a generic class, e.g.
// "<E:Ljava/lang/Object;>Ljava/util/AbstractList<TE;>;Ljava/util/List<TE;>;".
func ParseClassSignature(sig string) (*ClassSignature, error) {
	p := &sigParser{sig: sig}
	cs := &ClassSignature{Generics: p.typeParameters()}
	cs.Super = p.refType()
	for p.err == nil && p.pos < len(p.sig) {
		cs.Interfaces = append(cs.Interfaces, p.refType())
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return cs, nil
}

// ParseFieldSignature parses a single field descriptor or signature.
func ParseFieldSignature(sig string) (Type, error) {
	p := &sigParser{sig: sig}
	t := p.javaType()
	if err := p.finish(); err != nil {
		return nil, err
	}
	return t, nil
}

type sigParser struct {
	sig string
	pos int
	err error
}

func (p *sigParser) fail(msg string) {
	if p.err == nil {
		p.err = &SignatureError{Signature: p.sig, Offset: p.pos, Msg: msg}
	}
}

func (p *sigParser) peek() byte {
	if p.err != nil || p.pos >= len(p.sig) {
		return 0
	}
	return p.sig[p.pos]
}

func (p *sigParser) expect(ch byte) {
	if p.peek() != ch {
		p.fail(fmt.Sprintf("expected %q", ch))
		return
	}
	p.pos++
}

func (p *sigParser) finish() error {
	if p.err == nil && p.pos != len(p.sig) {
		p.fail("unexpected trailing characters")
	}
	return p.err
}

// identifier reads up to the first character in stop.
func (p *sigParser) identifier(stop string) string {
	start := p.pos
	for p.pos < len(p.sig) && !strings.ContainsRune(stop, rune(p.sig[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		p.fail("expected identifier")
	}
	return p.sig[start:p.pos]
}

func (p *sigParser) typeParameters() []string {
	if p.peek() != '<' {
		return nil
	}
	p.pos++
	var names []string
	for p.err == nil && p.peek() != '>' {
		names = append(names, p.identifier(":>;"))
		p.expect(':')
		// class bound is optional, interface bounds follow with their own ':'
		if c := p.peek(); c == 'L' || c == 'T' || c == '[' {
			p.refType()
		}
		for p.err == nil && p.peek() == ':' {
			p.pos++
			p.refType()
		}
	}
	p.expect('>')
	return names
}

func (p *sigParser) javaType() Type {
	kind, ok := baseTypes[p.peek()]
	if ok {
		p.pos++
		return Scalar{Kind: kind}
	}
	return p.refType()
}

var baseTypes = map[byte]ScalarKind{
	'B': Byte,
	'C': Char,
	'D': F64,
	'F': F32,
	'I': Int,
	'J': Long,
	'S': Short,
	'Z': Boolean,
}

func (p *sigParser) refType() RefType {
	switch p.peek() {
	case 'L':
		return p.classType()
	case 'T':
		p.pos++
		name := p.identifier(";")
		p.expect(';')
		return TypeParameter{Name: name}
	case '[':
		p.pos++
		return Array{Elem: p.javaType()}
	case 0:
		p.fail("unexpected end of signature")
	default:
		p.fail("expected reference type")
	}
	return nil
}

func (p *sigParser) classType() RefType {
	p.expect('L')
	name := InternalToSourceName(p.identifier("<.;"))
	args := p.typeArguments()
	for p.err == nil && p.peek() == '.' {
		p.pos++
		name += "$" + p.identifier("<.;")
		args = p.typeArguments()
	}
	p.expect(';')
	if p.err != nil {
		return nil
	}
	return ClassRef{Name: name, Generics: args}
}

func (p *sigParser) typeArguments() []RefType {
	if p.peek() != '<' {
		return nil
	}
	p.pos++
	var args []RefType
	for p.err == nil && p.peek() != '>' {
		switch p.peek() {
		case '*':
			p.pos++
			args = append(args, Wildcard{})
		case '+':
			p.pos++
			args = append(args, Extends{Bound: p.refType()})
		case '-':
			p.pos++
			args = append(args, Super{Bound: p.refType()})
		default:
			args = append(args, p.refType())
		}
	}
	p.expect('>')
	return args
}
