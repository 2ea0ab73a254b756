package classfile

// ConstantPool keeps the UTF-8 and class constants; every other slot is nil.
// Index i of the pool is stored at i-1.
type ConstantPool []any

type classConstant struct {
	nameIndex uint16
}

func (cp ConstantPool) entry(index uint16) any {
	if index == 0 || int(index) > len(cp) {
		return nil
	}
	return cp[index-1]
}

func (cp ConstantPool) GetUtf8(index uint16) string {
	if s, ok := cp.entry(index).(string); ok {
		return s
	}
	return ""
}

func (cp ConstantPool) GetClassName(index uint16) string {
	if c, ok := cp.entry(index).(classConstant); ok {
		return cp.GetUtf8(c.nameIndex)
	}
	return ""
}
