package classfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unicode/utf16"
)

// reader keeps the first error; later reads return zero values.
type reader struct {
	r   io.Reader
	err error
}

func (r *reader) readU1() uint8 {
	var buf [1]byte
	r.read(buf[:])
	return buf[0]
}

func (r *reader) readU2() uint16 {
	var buf [2]byte
	r.read(buf[:])
	return binary.BigEndian.Uint16(buf[:])
}

func (r *reader) readU4() uint32 {
	var buf [4]byte
	r.read(buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (r *reader) readBytes(n int) []byte {
	buf := make([]byte, n)
	r.read(buf)
	return buf
}

func (r *reader) read(buf []byte) {
	if r.err != nil {
		return
	}
	_, r.err = io.ReadFull(r.r, buf)
}

func ParseFile(path string) (*ClassFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

func Parse(rd io.Reader) (*ClassFile, error) {
	r := &reader{r: rd}

	magic := r.readU4()
	if r.err != nil {
		return nil, fmt.Errorf("read magic: %w", r.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0xCAFEBABE)", magic)
	}

	cf := &ClassFile{
		MinorVersion: r.readU2(),
		MajorVersion: r.readU2(),
	}

	pool, err := readConstantPool(r)
	if err != nil {
		return nil, fmt.Errorf("read constant pool: %w", err)
	}
	cf.ConstantPool = pool

	cf.AccessFlags = AccessFlags(r.readU2())
	cf.ThisClass = r.readU2()
	cf.SuperClass = r.readU2()
	cf.Interfaces = make([]uint16, r.readU2())
	for i := range cf.Interfaces {
		cf.Interfaces[i] = r.readU2()
	}
	if r.err != nil {
		return nil, fmt.Errorf("read class info: %w", r.err)
	}

	fieldsCount := int(r.readU2())
	for i := 0; i < fieldsCount; i++ {
		r.readU2() // access flags
		r.readU2() // name
		r.readU2() // descriptor
		readAttributes(r, pool)
	}
	if r.err != nil {
		return nil, fmt.Errorf("read fields: %w", r.err)
	}

	cf.Methods = make([]MethodInfo, r.readU2())
	for i := range cf.Methods {
		m := &cf.Methods[i]
		m.AccessFlags = AccessFlags(r.readU2())
		m.Name = pool.GetUtf8(r.readU2())
		m.Descriptor = pool.GetUtf8(r.readU2())
		m.Signature = readAttributes(r, pool)
		if r.err != nil {
			return nil, fmt.Errorf("read method %d: %w", i, r.err)
		}
	}

	cf.Signature = readAttributes(r, pool)
	if r.err != nil {
		return nil, fmt.Errorf("read class attributes: %w", r.err)
	}

	return cf, nil
}

func readConstantPool(r *reader) (ConstantPool, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, r.err
	}
	if count == 0 {
		return nil, fmt.Errorf("constant pool count is zero")
	}

	pool := make(ConstantPool, count-1)
	for i := 1; i < int(count); i++ {
		tag := ConstantTag(r.readU1())
		switch tag {
		case ConstantUtf8:
			pool[i-1] = decodeModifiedUtf8(r.readBytes(int(r.readU2())))
		case ConstantClass:
			pool[i-1] = classConstant{nameIndex: r.readU2()}
		default:
			size, ok := constantSizes[tag]
			if !ok {
				if r.err != nil {
					return nil, r.err
				}
				return nil, fmt.Errorf("unknown constant pool tag %d at index %d", tag, i)
			}
			r.readBytes(size)
			if tag == ConstantLong || tag == ConstantDouble {
				// 8-byte constants take two slots
				i++
			}
		}
		if r.err != nil {
			return nil, r.err
		}
	}
	return pool, nil
}

// readAttributes consumes an attribute table and returns the value of its
// Signature attribute, if any.
func readAttributes(r *reader, pool ConstantPool) string {
	var signature string
	count := int(r.readU2())
	for i := 0; i < count && r.err == nil; i++ {
		name := pool.GetUtf8(r.readU2())
		info := r.readBytes(int(r.readU4()))
		if name == "Signature" && len(info) == 2 {
			signature = pool.GetUtf8(binary.BigEndian.Uint16(info))
		}
	}
	return signature
}

// decodeModifiedUtf8 decodes the JVM's modified UTF-8: NUL is encoded in two
// bytes and supplementary characters as surrogate pairs.
func decodeModifiedUtf8(b []byte) string {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			units = append(units, uint16(c))
			i++
		}
	}
	return string(utf16.Decode(units))
}
