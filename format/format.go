// Package format renders class metadata and declarations for humans and tools.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/jbind/classinfo"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(class *classinfo.ClassInfo) error
}

// NewEncoder returns the encoder called name: "json" or "java".
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "java":
		return NewJavaEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
