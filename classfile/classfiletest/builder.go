// Package classfiletest assembles small class files for tests.
package classfiletest

import (
	"bytes"
	"encoding/binary"

	"github.com/dhamidi/jbind/classfile"
)

type Member struct {
	Access     classfile.AccessFlags
	Name       string
	Descriptor string
	Signature  string
}

// Builder assembles a class file. Names are internal (slash-separated).
type Builder struct {
	Name       string
	Super      string
	Access     classfile.AccessFlags
	Signature  string
	Interfaces []string
	Fields     []Member
	Methods    []Member
	// Longs are added to the constant pool to exercise two-slot constants.
	Longs []int64

	pool    bytes.Buffer
	slots   uint16
	utf8    map[string]uint16
	classes map[string]uint16
}

func New(name string) *Builder {
	return &Builder{
		Name:   name,
		Super:  "java/lang/Object",
		Access: classfile.AccPublic,
	}
}

func (b *Builder) Method(access classfile.AccessFlags, name, descriptor, signature string) *Builder {
	b.Methods = append(b.Methods, Member{Access: access, Name: name, Descriptor: descriptor, Signature: signature})
	return b
}

func (b *Builder) Field(access classfile.AccessFlags, name, descriptor string) *Builder {
	b.Fields = append(b.Fields, Member{Access: access, Name: name, Descriptor: descriptor})
	return b
}

func (b *Builder) Bytes() []byte {
	b.pool.Reset()
	b.slots = 0
	b.utf8 = make(map[string]uint16)
	b.classes = make(map[string]uint16)

	for _, v := range b.Longs {
		b.pool.WriteByte(byte(classfile.ConstantLong))
		binary.Write(&b.pool, binary.BigEndian, v)
		b.slots += 2
	}

	var body bytes.Buffer
	u2 := func(v uint16) { binary.Write(&body, binary.BigEndian, v) }
	u4 := func(v uint32) { binary.Write(&body, binary.BigEndian, v) }

	u2(uint16(b.Access))
	u2(b.class(b.Name))
	if b.Super == "" {
		u2(0)
	} else {
		u2(b.class(b.Super))
	}
	u2(uint16(len(b.Interfaces)))
	for _, iface := range b.Interfaces {
		u2(b.class(iface))
	}

	writeMembers := func(members []Member, withCode bool) {
		u2(uint16(len(members)))
		for _, m := range members {
			u2(uint16(m.Access))
			u2(b.utf(m.Name))
			u2(b.utf(m.Descriptor))
			var attrs int
			if withCode {
				attrs++
			}
			if m.Signature != "" {
				attrs++
			}
			u2(uint16(attrs))
			if withCode {
				u2(b.utf("Code"))
				code := []byte{0, 1, 0, 1, 0, 0, 0, 1, 0xB1, 0, 0, 0, 0}
				u4(uint32(len(code)))
				body.Write(code)
			}
			if m.Signature != "" {
				u2(b.utf("Signature"))
				u4(2)
				u2(b.utf(m.Signature))
			}
		}
	}
	writeMembers(b.Fields, false)
	writeMembers(b.Methods, true)

	if b.Signature != "" {
		u2(2)
		u2(b.utf("SourceFile"))
		u4(2)
		u2(b.utf("Test.java"))
		u2(b.utf("Signature"))
		u4(2)
		u2(b.utf(b.Signature))
	} else {
		u2(0)
	}

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint32(classfile.Magic))
	binary.Write(&out, binary.BigEndian, uint16(0))
	binary.Write(&out, binary.BigEndian, uint16(61))
	binary.Write(&out, binary.BigEndian, b.slots+1)
	out.Write(b.pool.Bytes())
	out.Write(body.Bytes())
	return out.Bytes()
}

func (b *Builder) utf(s string) uint16 {
	if idx, ok := b.utf8[s]; ok {
		return idx
	}
	b.pool.WriteByte(byte(classfile.ConstantUtf8))
	binary.Write(&b.pool, binary.BigEndian, uint16(len(s)))
	b.pool.WriteString(s)
	b.slots++
	b.utf8[s] = b.slots
	return b.slots
}

func (b *Builder) class(name string) uint16 {
	if idx, ok := b.classes[name]; ok {
		return idx
	}
	nameIdx := b.utf(name)
	b.pool.WriteByte(byte(classfile.ConstantClass))
	binary.Write(&b.pool, binary.BigEndian, nameIdx)
	b.slots++
	b.classes[name] = b.slots
	return b.slots
}
