package jvm

import (
	"fmt"
	"math"
)

// Scalar lists the Go types that stand for Java primitives.
type Scalar interface {
	int32 | int64 | int16 | int8 | float64 | float32 | bool | uint16
}

type ValueKind uint8

const (
	KindVoid ValueKind = iota
	KindObject
	KindInt
	KindLong
	KindShort
	KindByte
	KindDouble
	KindFloat
	KindBoolean
	KindChar
)

var kindNames = [...]string{
	KindVoid:    "void",
	KindObject:  "object",
	KindInt:     "int",
	KindLong:    "long",
	KindShort:   "short",
	KindByte:    "byte",
	KindDouble:  "double",
	KindFloat:   "float",
	KindBoolean: "boolean",
	KindChar:    "char",
}

func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", k)
}

// Value is one argument to or result of a native call, the Go side of a jvalue.
type Value struct {
	Kind ValueKind
	bits uint64
	ref  Handle
}

func ObjectValue(h Handle) Value {
	return Value{Kind: KindObject, ref: h}
}

// Handle returns the object reference of an object value, and 0 otherwise.
func (v Value) Handle() Handle {
	if v.Kind != KindObject {
		return 0
	}
	return v.ref
}

func ScalarValue[T Scalar](x T) Value {
	switch x := any(x).(type) {
	case int32:
		return Value{Kind: KindInt, bits: uint64(uint32(x))}
	case int64:
		return Value{Kind: KindLong, bits: uint64(x)}
	case int16:
		return Value{Kind: KindShort, bits: uint64(uint16(x))}
	case int8:
		return Value{Kind: KindByte, bits: uint64(uint8(x))}
	case float64:
		return Value{Kind: KindDouble, bits: math.Float64bits(x)}
	case float32:
		return Value{Kind: KindFloat, bits: uint64(math.Float32bits(x))}
	case bool:
		if x {
			return Value{Kind: KindBoolean, bits: 1}
		}
		return Value{Kind: KindBoolean}
	case uint16:
		return Value{Kind: KindChar, bits: uint64(x)}
	}
	panic("unreachable")
}

// ScalarOf converts v back to T, failing if v holds a different kind.
func ScalarOf[T Scalar](v Value) (T, error) {
	var zero T
	var out any
	switch any(zero).(type) {
	case int32:
		out = int32(uint32(v.bits))
	case int64:
		out = int64(v.bits)
	case int16:
		out = int16(uint16(v.bits))
	case int8:
		out = int8(uint8(v.bits))
	case float64:
		out = math.Float64frombits(v.bits)
	case float32:
		out = math.Float32frombits(uint32(v.bits))
	case bool:
		out = v.bits != 0
	case uint16:
		out = uint16(v.bits)
	}
	if want := scalarKind(zero); v.Kind != want {
		return zero, fmt.Errorf("expected %s result, got %s", want, v.Kind)
	}
	return out.(T), nil
}

func scalarKind[T Scalar](x T) ValueKind {
	return ScalarValue(x).Kind
}
