package annot

import (
	"math"
	"strconv"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindString represents a text annotation value.
	KindString
	// KindFloat represents a floating-point annotation value.
	KindFloat
	// KindInt represents an integer annotation value. Interned string
	// codes are carried as KindInt, which is why interner codes are
	// bounded to the positive int32 range.
	KindInt
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindFloat:
		return "Float"
	case KindInt:
		return "Int"
	default:
		return "Invalid"
	}
}

// Value is a small tagged annotation value.
//
// The representation is designed to make storage and comparison fast and
// predictable: no reflection and no fmt-based stringification.
type Value struct {
	Kind Kind    `json:"k"`
	S    string  `json:"s,omitempty"`
	F64  float64 `json:"f,omitempty"`
	I64  int64   `json:"i,omitempty"`
}

// String returns a text Value.
func String(v string) Value { return Value{Kind: KindString, S: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Interned returns an integer Value carrying an interner code.
// It is a plain KindInt value; the code is only meaningful relative to
// the interner instance that produced it.
func Interned(code int32) Value { return Value{Kind: KindInt, I64: int64(code)} }

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.S, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsCode returns the interner code if Kind is KindInt and the value fits
// the int32 code range.
func (v Value) AsCode() (int32, bool) {
	if v.Kind != KindInt || v.I64 < 0 || v.I64 > math.MaxInt32 {
		return 0, false
	}
	return int32(v.I64), true
}

// GoString returns a debug representation.
func (v Value) GoString() string {
	switch v.Kind {
	case KindString:
		return "annot.String(" + strconv.Quote(v.S) + ")"
	case KindFloat:
		return "annot.Float(" + strconv.FormatFloat(v.F64, 'g', -1, 64) + ")"
	case KindInt:
		return "annot.Int(" + strconv.FormatInt(v.I64, 10) + ")"
	default:
		return "annot.Value{}"
	}
}
