package memory

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindReal
	KindStr
	KindBoolean
	KindAddress
)

// String returns the type name used in dumps.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindStr:
		return "str"
	case KindBoolean:
		return "boolean"
	case KindAddress:
		return "ptr"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a typed value held in a memory cell. Only the payload field that
// matches Kind is meaningful; the constructors leave the others zeroed.
// The zero Value is None.
type Value struct {
	Kind Kind
	I64  int64   // Int and Address payload
	F64  float64 // Real payload
	Bool bool    // Boolean payload
	Str  string  // Str payload
}

// Int creates an integer Value.
func Int(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

// Real creates a floating point Value.
func Real(f float64) Value {
	return Value{Kind: KindReal, F64: f}
}

// Str creates a string Value holding its own copy of s.
func Str(s string) Value {
	return Value{Kind: KindStr, Str: strings.Clone(s)}
}

// StrBytes creates a string Value from a byte buffer. The buffer is copied, so
// the caller may reuse or mutate it afterwards.
func StrBytes(b []byte) Value {
	return Value{Kind: KindStr, Str: string(b)}
}

// Boolean creates a boolean Value.
func Boolean(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

// Address creates an opaque reference Value.
func Address(a int64) Value {
	return Value{Kind: KindAddress, I64: a}
}

// None returns the empty Value.
func None() Value {
	return Value{}
}

// Clone returns a deep copy of v with only the active payload set.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindInt:
		return Int(v.I64)
	case KindReal:
		return Real(v.F64)
	case KindStr:
		return Str(v.Str)
	case KindBoolean:
		return Boolean(v.Bool)
	case KindAddress:
		return Address(v.I64)
	default:
		return None()
	}
}

// Equal reports whether v and o have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindInt, KindAddress:
		return v.I64 == o.I64
	case KindReal:
		return v.F64 == o.F64
	case KindStr:
		return v.Str == o.Str
	case KindBoolean:
		return v.Bool == o.Bool
	default:
		return true
	}
}

// IsNone reports whether v holds no value.
func (v Value) IsNone() bool {
	return v.Kind == KindNone
}

// String renders the value the way the dump prints it.
func (v Value) String() string {
	switch v.Kind {
	case KindInt, KindAddress:
		return strconv.FormatInt(v.I64, 10)
	case KindReal:
		return strconv.FormatFloat(v.F64, 'f', 6, 64)
	case KindStr:
		return "'" + v.Str + "'"
	case KindBoolean:
		if v.Bool {
			return "True"
		}
		return "False"
	default:
		return "None"
	}
}

// Payload returns the active payload as a plain Go value (nil for None).
func (v Value) Payload() any {
	switch v.Kind {
	case KindInt, KindAddress:
		return v.I64
	case KindReal:
		return v.F64
	case KindStr:
		return v.Str
	case KindBoolean:
		return v.Bool
	default:
		return nil
	}
}
