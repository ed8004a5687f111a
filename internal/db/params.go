package db

// Param is a positionally bound statement parameter. The original system
// declared parameter types with a side-channel string of type letters; here
// the kind travels with the value, so a mismatch between a placeholder and
// its type cannot happen at a call site.
type Param struct {
	kind paramKind
	str  string
	num  int64
	flt  float64
	bin  []byte
}

type paramKind int

const (
	kindString paramKind = iota
	kindInteger
	kindFloat
	kindBinary
)

// String binds a text parameter.
func String(v string) Param { return Param{kind: kindString, str: v} }

// Integer binds an integer parameter.
func Integer(v int64) Param { return Param{kind: kindInteger, num: v} }

// Float binds a floating point parameter.
func Float(v float64) Param { return Param{kind: kindFloat, flt: v} }

// Binary binds a byte-slice parameter.
func Binary(v []byte) Param { return Param{kind: kindBinary, bin: v} }

// value resolves the parameter to the driver value for binding.
func (p Param) value() any {
	switch p.kind {
	case kindInteger:
		return p.num
	case kindFloat:
		return p.flt
	case kindBinary:
		return p.bin
	default:
		return p.str
	}
}

func bindValues(params []Param) []any {
	if len(params) == 0 {
		return nil
	}
	args := make([]any, len(params))
	for i, p := range params {
		args[i] = p.value()
	}
	return args
}
