package gbcast

import "github.com/katalvlaran/gbmatrix/gbtype"

// signedInt and unsignedInt list the codes participating in the
// "standard integer/floating rules (no saturation, C truncation)" cross
// casts spec.md §4.1 calls for.
var signedInt = []gbtype.Code{gbtype.Int8, gbtype.Int16, gbtype.Int32, gbtype.Int64}
var unsignedInt = []gbtype.Code{gbtype.UInt8, gbtype.UInt16, gbtype.UInt32, gbtype.UInt64}
var floatCodes = []gbtype.Code{gbtype.Float32, gbtype.Float64}

// number is the constraint over every built-in numeric Go type this
// package casts between; bool and complex are handled separately since
// they are not mutually convertible with the rest via a plain conversion.
type number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// convert performs the actual Go numeric conversion between two built-in
// numeric kinds. Both A and B range only over `number`, so this conversion
// is legal for every instantiation the registration functions below use.
func convert[A, B number](a A) B { return B(a) }

func registerIntCasts() {
	allInt := append(append([]gbtype.Code{}, signedInt...), unsignedInt...)
	for _, to := range allInt {
		for _, from := range allInt {
			if to == from {
				continue
			}
			registerIntPair(to, from)
		}
		for _, from := range floatCodes {
			registerIntFromFloat(to, from)
		}
	}
}

func registerFloatCasts() {
	for _, to := range floatCodes {
		for _, from := range floatCodes {
			if to == from {
				continue
			}
			registerFloatPair(to, from)
		}
		allInt := append(append([]gbtype.Code{}, signedInt...), unsignedInt...)
		for _, from := range allInt {
			registerFloatFromInt(to, from)
		}
	}
}

// registerIntPair registers an int<->int cast (any signedness combination).
func registerIntPair(to, from gbtype.Code) {
	switch from {
	case gbtype.Int8:
		registerFromInt8(to)
	case gbtype.Int16:
		registerFromInt16(to)
	case gbtype.Int32:
		registerFromInt32(to)
	case gbtype.Int64:
		registerFromInt64(to)
	case gbtype.UInt8:
		registerFromUInt8(to)
	case gbtype.UInt16:
		registerFromUInt16(to)
	case gbtype.UInt32:
		registerFromUInt32(to)
	case gbtype.UInt64:
		registerFromUInt64(to)
	}
}

func registerFromInt8(to gbtype.Code) {
	switch to {
	case gbtype.Int16:
		register(to, gbtype.Int8, func(s gbtype.Value) gbtype.Value { return convert[int8, int16](s.(int8)) })
	case gbtype.Int32:
		register(to, gbtype.Int8, func(s gbtype.Value) gbtype.Value { return convert[int8, int32](s.(int8)) })
	case gbtype.Int64:
		register(to, gbtype.Int8, func(s gbtype.Value) gbtype.Value { return convert[int8, int64](s.(int8)) })
	case gbtype.UInt8:
		register(to, gbtype.Int8, func(s gbtype.Value) gbtype.Value { return convert[int8, uint8](s.(int8)) })
	case gbtype.UInt16:
		register(to, gbtype.Int8, func(s gbtype.Value) gbtype.Value { return convert[int8, uint16](s.(int8)) })
	case gbtype.UInt32:
		register(to, gbtype.Int8, func(s gbtype.Value) gbtype.Value { return convert[int8, uint32](s.(int8)) })
	case gbtype.UInt64:
		register(to, gbtype.Int8, func(s gbtype.Value) gbtype.Value { return convert[int8, uint64](s.(int8)) })
	}
}

func registerFromInt16(to gbtype.Code) {
	switch to {
	case gbtype.Int8:
		register(to, gbtype.Int16, func(s gbtype.Value) gbtype.Value { return convert[int16, int8](s.(int16)) })
	case gbtype.Int32:
		register(to, gbtype.Int16, func(s gbtype.Value) gbtype.Value { return convert[int16, int32](s.(int16)) })
	case gbtype.Int64:
		register(to, gbtype.Int16, func(s gbtype.Value) gbtype.Value { return convert[int16, int64](s.(int16)) })
	case gbtype.UInt8:
		register(to, gbtype.Int16, func(s gbtype.Value) gbtype.Value { return convert[int16, uint8](s.(int16)) })
	case gbtype.UInt16:
		register(to, gbtype.Int16, func(s gbtype.Value) gbtype.Value { return convert[int16, uint16](s.(int16)) })
	case gbtype.UInt32:
		register(to, gbtype.Int16, func(s gbtype.Value) gbtype.Value { return convert[int16, uint32](s.(int16)) })
	case gbtype.UInt64:
		register(to, gbtype.Int16, func(s gbtype.Value) gbtype.Value { return convert[int16, uint64](s.(int16)) })
	}
}

func registerFromInt32(to gbtype.Code) {
	switch to {
	case gbtype.Int8:
		register(to, gbtype.Int32, func(s gbtype.Value) gbtype.Value { return convert[int32, int8](s.(int32)) })
	case gbtype.Int16:
		register(to, gbtype.Int32, func(s gbtype.Value) gbtype.Value { return convert[int32, int16](s.(int32)) })
	case gbtype.Int64:
		register(to, gbtype.Int32, func(s gbtype.Value) gbtype.Value { return convert[int32, int64](s.(int32)) })
	case gbtype.UInt8:
		register(to, gbtype.Int32, func(s gbtype.Value) gbtype.Value { return convert[int32, uint8](s.(int32)) })
	case gbtype.UInt16:
		register(to, gbtype.Int32, func(s gbtype.Value) gbtype.Value { return convert[int32, uint16](s.(int32)) })
	case gbtype.UInt32:
		register(to, gbtype.Int32, func(s gbtype.Value) gbtype.Value { return convert[int32, uint32](s.(int32)) })
	case gbtype.UInt64:
		register(to, gbtype.Int32, func(s gbtype.Value) gbtype.Value { return convert[int32, uint64](s.(int32)) })
	}
}

func registerFromInt64(to gbtype.Code) {
	switch to {
	case gbtype.Int8:
		register(to, gbtype.Int64, func(s gbtype.Value) gbtype.Value { return convert[int64, int8](s.(int64)) })
	case gbtype.Int16:
		register(to, gbtype.Int64, func(s gbtype.Value) gbtype.Value { return convert[int64, int16](s.(int64)) })
	case gbtype.Int32:
		register(to, gbtype.Int64, func(s gbtype.Value) gbtype.Value { return convert[int64, int32](s.(int64)) })
	case gbtype.UInt8:
		register(to, gbtype.Int64, func(s gbtype.Value) gbtype.Value { return convert[int64, uint8](s.(int64)) })
	case gbtype.UInt16:
		register(to, gbtype.Int64, func(s gbtype.Value) gbtype.Value { return convert[int64, uint16](s.(int64)) })
	case gbtype.UInt32:
		register(to, gbtype.Int64, func(s gbtype.Value) gbtype.Value { return convert[int64, uint32](s.(int64)) })
	case gbtype.UInt64:
		register(to, gbtype.Int64, func(s gbtype.Value) gbtype.Value { return convert[int64, uint64](s.(int64)) })
	}
}

func registerFromUInt8(to gbtype.Code) {
	switch to {
	case gbtype.Int8:
		register(to, gbtype.UInt8, func(s gbtype.Value) gbtype.Value { return convert[uint8, int8](s.(uint8)) })
	case gbtype.Int16:
		register(to, gbtype.UInt8, func(s gbtype.Value) gbtype.Value { return convert[uint8, int16](s.(uint8)) })
	case gbtype.Int32:
		register(to, gbtype.UInt8, func(s gbtype.Value) gbtype.Value { return convert[uint8, int32](s.(uint8)) })
	case gbtype.Int64:
		register(to, gbtype.UInt8, func(s gbtype.Value) gbtype.Value { return convert[uint8, int64](s.(uint8)) })
	case gbtype.UInt16:
		register(to, gbtype.UInt8, func(s gbtype.Value) gbtype.Value { return convert[uint8, uint16](s.(uint8)) })
	case gbtype.UInt32:
		register(to, gbtype.UInt8, func(s gbtype.Value) gbtype.Value { return convert[uint8, uint32](s.(uint8)) })
	case gbtype.UInt64:
		register(to, gbtype.UInt8, func(s gbtype.Value) gbtype.Value { return convert[uint8, uint64](s.(uint8)) })
	}
}

func registerFromUInt16(to gbtype.Code) {
	switch to {
	case gbtype.Int8:
		register(to, gbtype.UInt16, func(s gbtype.Value) gbtype.Value { return convert[uint16, int8](s.(uint16)) })
	case gbtype.Int16:
		register(to, gbtype.UInt16, func(s gbtype.Value) gbtype.Value { return convert[uint16, int16](s.(uint16)) })
	case gbtype.Int32:
		register(to, gbtype.UInt16, func(s gbtype.Value) gbtype.Value { return convert[uint16, int32](s.(uint16)) })
	case gbtype.Int64:
		register(to, gbtype.UInt16, func(s gbtype.Value) gbtype.Value { return convert[uint16, int64](s.(uint16)) })
	case gbtype.UInt8:
		register(to, gbtype.UInt16, func(s gbtype.Value) gbtype.Value { return convert[uint16, uint8](s.(uint16)) })
	case gbtype.UInt32:
		register(to, gbtype.UInt16, func(s gbtype.Value) gbtype.Value { return convert[uint16, uint32](s.(uint16)) })
	case gbtype.UInt64:
		register(to, gbtype.UInt16, func(s gbtype.Value) gbtype.Value { return convert[uint16, uint64](s.(uint16)) })
	}
}

func registerFromUInt32(to gbtype.Code) {
	switch to {
	case gbtype.Int8:
		register(to, gbtype.UInt32, func(s gbtype.Value) gbtype.Value { return convert[uint32, int8](s.(uint32)) })
	case gbtype.Int16:
		register(to, gbtype.UInt32, func(s gbtype.Value) gbtype.Value { return convert[uint32, int16](s.(uint32)) })
	case gbtype.Int32:
		register(to, gbtype.UInt32, func(s gbtype.Value) gbtype.Value { return convert[uint32, int32](s.(uint32)) })
	case gbtype.Int64:
		register(to, gbtype.UInt32, func(s gbtype.Value) gbtype.Value { return convert[uint32, int64](s.(uint32)) })
	case gbtype.UInt8:
		register(to, gbtype.UInt32, func(s gbtype.Value) gbtype.Value { return convert[uint32, uint8](s.(uint32)) })
	case gbtype.UInt16:
		register(to, gbtype.UInt32, func(s gbtype.Value) gbtype.Value { return convert[uint32, uint16](s.(uint32)) })
	case gbtype.UInt64:
		register(to, gbtype.UInt32, func(s gbtype.Value) gbtype.Value { return convert[uint32, uint64](s.(uint32)) })
	}
}

func registerFromUInt64(to gbtype.Code) {
	switch to {
	case gbtype.Int8:
		register(to, gbtype.UInt64, func(s gbtype.Value) gbtype.Value { return convert[uint64, int8](s.(uint64)) })
	case gbtype.Int16:
		register(to, gbtype.UInt64, func(s gbtype.Value) gbtype.Value { return convert[uint64, int16](s.(uint64)) })
	case gbtype.Int32:
		register(to, gbtype.UInt64, func(s gbtype.Value) gbtype.Value { return convert[uint64, int32](s.(uint64)) })
	case gbtype.Int64:
		register(to, gbtype.UInt64, func(s gbtype.Value) gbtype.Value { return convert[uint64, int64](s.(uint64)) })
	case gbtype.UInt8:
		register(to, gbtype.UInt64, func(s gbtype.Value) gbtype.Value { return convert[uint64, uint8](s.(uint64)) })
	case gbtype.UInt16:
		register(to, gbtype.UInt64, func(s gbtype.Value) gbtype.Value { return convert[uint64, uint16](s.(uint64)) })
	case gbtype.UInt32:
		register(to, gbtype.UInt64, func(s gbtype.Value) gbtype.Value { return convert[uint64, uint32](s.(uint64)) })
	}
}

func registerFloatPair(to, from gbtype.Code) {
	if from == gbtype.Float32 && to == gbtype.Float64 {
		register(to, from, func(s gbtype.Value) gbtype.Value { return convert[float32, float64](s.(float32)) })
	} else if from == gbtype.Float64 && to == gbtype.Float32 {
		register(to, from, func(s gbtype.Value) gbtype.Value { return convert[float64, float32](s.(float64)) })
	}
}

func registerIntFromFloat(to, from gbtype.Code) {
	switch {
	case from == gbtype.Float32:
		registerIntFromFloat32(to)
	case from == gbtype.Float64:
		registerIntFromFloat64(to)
	}
}

func registerIntFromFloat32(to gbtype.Code) {
	switch to {
	case gbtype.Int8:
		register(to, gbtype.Float32, func(s gbtype.Value) gbtype.Value { return convert[float32, int8](s.(float32)) })
	case gbtype.Int16:
		register(to, gbtype.Float32, func(s gbtype.Value) gbtype.Value { return convert[float32, int16](s.(float32)) })
	case gbtype.Int32:
		register(to, gbtype.Float32, func(s gbtype.Value) gbtype.Value { return convert[float32, int32](s.(float32)) })
	case gbtype.Int64:
		register(to, gbtype.Float32, func(s gbtype.Value) gbtype.Value { return convert[float32, int64](s.(float32)) })
	case gbtype.UInt8:
		register(to, gbtype.Float32, func(s gbtype.Value) gbtype.Value { return convert[float32, uint8](s.(float32)) })
	case gbtype.UInt16:
		register(to, gbtype.Float32, func(s gbtype.Value) gbtype.Value { return convert[float32, uint16](s.(float32)) })
	case gbtype.UInt32:
		register(to, gbtype.Float32, func(s gbtype.Value) gbtype.Value { return convert[float32, uint32](s.(float32)) })
	case gbtype.UInt64:
		register(to, gbtype.Float32, func(s gbtype.Value) gbtype.Value { return convert[float32, uint64](s.(float32)) })
	}
}

func registerIntFromFloat64(to gbtype.Code) {
	switch to {
	case gbtype.Int8:
		register(to, gbtype.Float64, func(s gbtype.Value) gbtype.Value { return convert[float64, int8](s.(float64)) })
	case gbtype.Int16:
		register(to, gbtype.Float64, func(s gbtype.Value) gbtype.Value { return convert[float64, int16](s.(float64)) })
	case gbtype.Int32:
		register(to, gbtype.Float64, func(s gbtype.Value) gbtype.Value { return convert[float64, int32](s.(float64)) })
	case gbtype.Int64:
		register(to, gbtype.Float64, func(s gbtype.Value) gbtype.Value { return convert[float64, int64](s.(float64)) })
	case gbtype.UInt8:
		register(to, gbtype.Float64, func(s gbtype.Value) gbtype.Value { return convert[float64, uint8](s.(float64)) })
	case gbtype.UInt16:
		register(to, gbtype.Float64, func(s gbtype.Value) gbtype.Value { return convert[float64, uint16](s.(float64)) })
	case gbtype.UInt32:
		register(to, gbtype.Float64, func(s gbtype.Value) gbtype.Value { return convert[float64, uint32](s.(float64)) })
	case gbtype.UInt64:
		register(to, gbtype.Float64, func(s gbtype.Value) gbtype.Value { return convert[float64, uint64](s.(float64)) })
	}
}

func registerFloatFromInt(to, from gbtype.Code) {
	switch from {
	case gbtype.Int8:
		registerFloatFrom(to, gbtype.Int8, func(s gbtype.Value) float64 { return float64(s.(int8)) })
	case gbtype.Int16:
		registerFloatFrom(to, gbtype.Int16, func(s gbtype.Value) float64 { return float64(s.(int16)) })
	case gbtype.Int32:
		registerFloatFrom(to, gbtype.Int32, func(s gbtype.Value) float64 { return float64(s.(int32)) })
	case gbtype.Int64:
		registerFloatFrom(to, gbtype.Int64, func(s gbtype.Value) float64 { return float64(s.(int64)) })
	case gbtype.UInt8:
		registerFloatFrom(to, gbtype.UInt8, func(s gbtype.Value) float64 { return float64(s.(uint8)) })
	case gbtype.UInt16:
		registerFloatFrom(to, gbtype.UInt16, func(s gbtype.Value) float64 { return float64(s.(uint16)) })
	case gbtype.UInt32:
		registerFloatFrom(to, gbtype.UInt32, func(s gbtype.Value) float64 { return float64(s.(uint32)) })
	case gbtype.UInt64:
		registerFloatFrom(to, gbtype.UInt64, func(s gbtype.Value) float64 { return float64(s.(uint64)) })
	}
}

// registerFloatFrom registers to<-from using a pre-widened float64 view of
// the integer source, then narrows to float32 if the destination wants it.
func registerFloatFrom(to, from gbtype.Code, widen func(gbtype.Value) float64) {
	switch to {
	case gbtype.Float64:
		register(to, from, func(s gbtype.Value) gbtype.Value { return widen(s) })
	case gbtype.Float32:
		register(to, from, func(s gbtype.Value) gbtype.Value { return float32(widen(s)) })
	}
}
