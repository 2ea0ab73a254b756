package classinfo

import (
	"fmt"

	"github.com/dhamidi/jbind/classfile"
)

// FromClassFile extracts the public constructors and methods of cf.
// Synthetic and bridge members and static initializers are left out.
func FromClassFile(cf *classfile.ClassFile) (*ClassInfo, error) {
	name := cf.ClassName()
	if name == "" {
		return nil, fmt.Errorf("class file has no class name")
	}
	info := &ClassInfo{Name: InternalToSourceName(name)}

	if cf.Signature != "" {
		sig, err := ParseClassSignature(cf.Signature)
		if err != nil {
			return nil, fmt.Errorf("%s: class signature: %w", info.Name, err)
		}
		info.Generics = sig.Generics
	}

	for _, m := range cf.Methods {
		if !m.AccessFlags.IsPublic() || m.AccessFlags.IsSynthetic() || m.AccessFlags.IsBridge() || m.IsStaticInitializer() {
			continue
		}
		sig, err := ParseMethodSignature(m.GenericSignature())
		if err != nil && m.Signature != "" {
			// fall back to the erased form
			log.Warningf("%s.%s: ignoring generic signature: %s", info.Name, m.Name, err)
			sig, err = ParseMethodSignature(m.Descriptor)
		}
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", info.Name, m.Name, err)
		}

		if m.IsConstructor() {
			info.Constructors = append(info.Constructors, Constructor{
				Generics:   sig.Generics,
				Args:       sig.Args,
				Descriptor: m.Descriptor,
			})
			continue
		}
		info.Methods = append(info.Methods, Method{
			Name:       m.Name,
			Generics:   sig.Generics,
			Args:       sig.Args,
			Return:     sig.Return,
			Descriptor: m.Descriptor,
			Static:     m.AccessFlags.IsStatic(),
		})
	}
	return info, nil
}
