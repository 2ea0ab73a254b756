package classinfo

import (
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"
)

var log = commonlog.GetLogger("jbind.classinfo")

// FactBase holds class metadata keyed by dotted class name, in insertion order.
type FactBase struct {
	classes map[string]*ClassInfo
	order   []string
}

func NewFactBase() *FactBase {
	return &FactBase{classes: make(map[string]*ClassInfo)}
}

// Add stores c, replacing any earlier entry with the same name.
func (fb *FactBase) Add(c *ClassInfo) {
	if _, exists := fb.classes[c.Name]; exists {
		log.Debugf("replacing facts for %s", c.Name)
	} else {
		fb.order = append(fb.order, c.Name)
	}
	fb.classes[c.Name] = c
}

func (fb *FactBase) Merge(other *FactBase) {
	for _, c := range other.Classes() {
		fb.Add(c)
	}
}

func (fb *FactBase) Lookup(name string) (*ClassInfo, bool) {
	c, ok := fb.classes[name]
	return c, ok
}

func (fb *FactBase) Classes() []*ClassInfo {
	classes := make([]*ClassInfo, 0, len(fb.order))
	for _, name := range fb.order {
		classes = append(classes, fb.classes[name])
	}
	return classes
}

func (fb *FactBase) Len() int {
	return len(fb.order)
}

// factFile is the on-disk YAML (or JSON) layout of a fact base. Member types
// come from the generic signature when present and from the descriptor otherwise.
type factFile struct {
	Classes []classFact `yaml:"classes"`
}

type classFact struct {
	Name         string       `yaml:"name"`
	Generics     []string     `yaml:"generics,omitempty"`
	Signature    string       `yaml:"signature,omitempty"`
	Constructors []memberFact `yaml:"constructors,omitempty"`
	Methods      []memberFact `yaml:"methods,omitempty"`
}

type memberFact struct {
	Name       string `yaml:"name,omitempty"`
	Descriptor string `yaml:"descriptor"`
	Signature  string `yaml:"signature,omitempty"`
	Static     bool   `yaml:"static,omitempty"`
}

func LoadYAMLFile(path string) (*FactBase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fb, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fb, nil
}

func LoadYAML(r io.Reader) (*FactBase, error) {
	var file factFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode facts: %w", err)
	}

	fb := NewFactBase()
	for _, cf := range file.Classes {
		info, err := cf.classInfo()
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", cf.Name, err)
		}
		fb.Add(info)
	}
	return fb, nil
}

func (cf classFact) classInfo() (*ClassInfo, error) {
	if cf.Name == "" {
		return nil, fmt.Errorf("missing class name")
	}
	info := &ClassInfo{Name: cf.Name, Generics: cf.Generics}
	if cf.Signature != "" {
		sig, err := ParseClassSignature(cf.Signature)
		if err != nil {
			return nil, err
		}
		info.Generics = sig.Generics
	}

	for i, m := range cf.Constructors {
		sig, err := m.methodSignature()
		if err != nil {
			return nil, fmt.Errorf("constructor %d: %w", i, err)
		}
		info.Constructors = append(info.Constructors, Constructor{
			Generics:   sig.Generics,
			Args:       sig.Args,
			Descriptor: m.Descriptor,
		})
	}

	for _, m := range cf.Methods {
		if m.Name == "" {
			return nil, fmt.Errorf("method %q: missing name", m.Descriptor)
		}
		sig, err := m.methodSignature()
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", m.Name, err)
		}
		info.Methods = append(info.Methods, Method{
			Name:       m.Name,
			Generics:   sig.Generics,
			Args:       sig.Args,
			Return:     sig.Return,
			Descriptor: m.Descriptor,
			Static:     m.Static,
		})
	}
	return info, nil
}

func (m memberFact) methodSignature() (*MethodSignature, error) {
	if m.Descriptor == "" {
		return nil, fmt.Errorf("missing descriptor")
	}
	if m.Signature != "" {
		return ParseMethodSignature(m.Signature)
	}
	return ParseMethodSignature(m.Descriptor)
}

// WriteYAML writes fb in the layout LoadYAML reads.
func (fb *FactBase) WriteYAML(w io.Writer) error {
	var file factFile
	for _, c := range fb.Classes() {
		cf := classFact{Name: c.Name, Generics: c.Generics}
		for _, ctor := range c.Constructors {
			cf.Constructors = append(cf.Constructors, memberFact{
				Descriptor: ctor.Descriptor,
				Signature:  MethodSignatureString(ctor.Generics, ctor.Args, nil),
			})
		}
		for _, m := range c.Methods {
			cf.Methods = append(cf.Methods, memberFact{
				Name:       m.Name,
				Descriptor: m.Descriptor,
				Signature:  MethodSignatureString(m.Generics, m.Args, m.Return),
				Static:     m.Static,
			})
		}
		file.Classes = append(file.Classes, cf)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&file); err != nil {
		return fmt.Errorf("encode facts: %w", err)
	}
	return enc.Close()
}
