package gbcast

import "github.com/katalvlaran/gbmatrix/gbtype"

// registerBoolCasts wires bool<->numeric casts (nonzero -> true, true -> 1),
// the same rule the real engine's GB_cast_matrix applies at the bool
// boundary.
func registerBoolCasts() {
	allNumeric := append(append(append([]gbtype.Code{}, signedInt...), unsignedInt...), floatCodes...)
	for _, from := range allNumeric {
		registerBoolFromNumeric(from)
		registerNumericFromBool(from)
	}
}

func registerBoolFromNumeric(from gbtype.Code) {
	switch from {
	case gbtype.Int8:
		register(gbtype.Bool, from, func(s gbtype.Value) gbtype.Value { return s.(int8) != 0 })
	case gbtype.Int16:
		register(gbtype.Bool, from, func(s gbtype.Value) gbtype.Value { return s.(int16) != 0 })
	case gbtype.Int32:
		register(gbtype.Bool, from, func(s gbtype.Value) gbtype.Value { return s.(int32) != 0 })
	case gbtype.Int64:
		register(gbtype.Bool, from, func(s gbtype.Value) gbtype.Value { return s.(int64) != 0 })
	case gbtype.UInt8:
		register(gbtype.Bool, from, func(s gbtype.Value) gbtype.Value { return s.(uint8) != 0 })
	case gbtype.UInt16:
		register(gbtype.Bool, from, func(s gbtype.Value) gbtype.Value { return s.(uint16) != 0 })
	case gbtype.UInt32:
		register(gbtype.Bool, from, func(s gbtype.Value) gbtype.Value { return s.(uint32) != 0 })
	case gbtype.UInt64:
		register(gbtype.Bool, from, func(s gbtype.Value) gbtype.Value { return s.(uint64) != 0 })
	case gbtype.Float32:
		register(gbtype.Bool, from, func(s gbtype.Value) gbtype.Value { return s.(float32) != 0 })
	case gbtype.Float64:
		register(gbtype.Bool, from, func(s gbtype.Value) gbtype.Value { return s.(float64) != 0 })
	}
}

func registerNumericFromBool(to gbtype.Code) {
	switch to {
	case gbtype.Int8:
		register(to, gbtype.Bool, func(s gbtype.Value) gbtype.Value { return boolTo[int8](s) })
	case gbtype.Int16:
		register(to, gbtype.Bool, func(s gbtype.Value) gbtype.Value { return boolTo[int16](s) })
	case gbtype.Int32:
		register(to, gbtype.Bool, func(s gbtype.Value) gbtype.Value { return boolTo[int32](s) })
	case gbtype.Int64:
		register(to, gbtype.Bool, func(s gbtype.Value) gbtype.Value { return boolTo[int64](s) })
	case gbtype.UInt8:
		register(to, gbtype.Bool, func(s gbtype.Value) gbtype.Value { return boolTo[uint8](s) })
	case gbtype.UInt16:
		register(to, gbtype.Bool, func(s gbtype.Value) gbtype.Value { return boolTo[uint16](s) })
	case gbtype.UInt32:
		register(to, gbtype.Bool, func(s gbtype.Value) gbtype.Value { return boolTo[uint32](s) })
	case gbtype.UInt64:
		register(to, gbtype.Bool, func(s gbtype.Value) gbtype.Value { return boolTo[uint64](s) })
	case gbtype.Float32:
		register(to, gbtype.Bool, func(s gbtype.Value) gbtype.Value { return boolTo[float32](s) })
	case gbtype.Float64:
		register(to, gbtype.Bool, func(s gbtype.Value) gbtype.Value { return boolTo[float64](s) })
	}
}

func boolTo[T number](s gbtype.Value) T {
	if s.(bool) {
		return T(1)
	}

	return T(0)
}
