package annot

import "fmt"

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for ingestion code that reads untyped
// input (e.g. parsed TSV/JSON columns) before building entries.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(^uint64(0)>>1) {
			// Avoid silently truncating large values.
			return Value{}, fmt.Errorf("annot uint64 out of range: %d", x)
		}
		return Int(int64(x)), nil
	default:
		return Value{}, fmt.Errorf("unsupported annotation value type %T", v)
	}
}
