// Package classfile reads the parts of a compiled Java class that describe
// its callable surface: names, access flags, method descriptors and generic
// signatures.
package classfile

type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Methods      []MethodInfo
	// Signature is the generic class signature, "" if the class has none.
	Signature string
}

type MethodInfo struct {
	AccessFlags AccessFlags
	Name        string
	Descriptor  string
	Signature   string
}

// ClassName returns the internal (slash-separated) name of the class.
func (cf *ClassFile) ClassName() string {
	return cf.ConstantPool.GetClassName(cf.ThisClass)
}

func (cf *ClassFile) SuperClassName() string {
	if cf.SuperClass == 0 {
		return ""
	}
	return cf.ConstantPool.GetClassName(cf.SuperClass)
}

func (cf *ClassFile) InterfaceNames() []string {
	names := make([]string, len(cf.Interfaces))
	for i, idx := range cf.Interfaces {
		names[i] = cf.ConstantPool.GetClassName(idx)
	}
	return names
}

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.IsInterface() && !cf.AccessFlags.IsAnnotation()
}

func (cf *ClassFile) IsAbstract() bool {
	return cf.AccessFlags.IsAbstract()
}

func (m *MethodInfo) IsConstructor() bool {
	return m.Name == "<init>"
}

func (m *MethodInfo) IsStaticInitializer() bool {
	return m.Name == "<clinit>"
}

// GenericSignature returns the Signature attribute, or the descriptor when
// the method is not generic.
func (m *MethodInfo) GenericSignature() string {
	if m.Signature != "" {
		return m.Signature
	}
	return m.Descriptor
}
