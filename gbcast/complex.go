package gbcast

import "github.com/katalvlaran/gbmatrix/gbtype"

// registerComplexCasts wires the two complex<->complex casts and the
// real-to-complex widening casts (imaginary part zero). Complex-to-real
// narrowing is not registered: the real engine rejects it as a domain
// mismatch rather than silently discarding the imaginary part, and so does
// this cast factory by simply leaving the pair absent from the table.
func registerComplexCasts() {
	register(gbtype.Complex128, gbtype.Complex64, func(s gbtype.Value) gbtype.Value {
		return complex128(s.(complex64))
	})
	register(gbtype.Complex64, gbtype.Complex128, func(s gbtype.Value) gbtype.Value {
		return complex64(s.(complex128))
	})

	for _, from := range append(append(append([]gbtype.Code{}, signedInt...), unsignedInt...), floatCodes...) {
		registerComplexFromReal(from)
	}
}

func registerComplexFromReal(from gbtype.Code) {
	widen := realWidener(from)
	if widen == nil {
		return
	}
	register(gbtype.Complex64, from, func(s gbtype.Value) gbtype.Value { return complex(float32(widen(s)), 0) })
	register(gbtype.Complex128, from, func(s gbtype.Value) gbtype.Value { return complex(widen(s), 0) })
}

func realWidener(from gbtype.Code) func(gbtype.Value) float64 {
	switch from {
	case gbtype.Int8:
		return func(s gbtype.Value) float64 { return float64(s.(int8)) }
	case gbtype.Int16:
		return func(s gbtype.Value) float64 { return float64(s.(int16)) }
	case gbtype.Int32:
		return func(s gbtype.Value) float64 { return float64(s.(int32)) }
	case gbtype.Int64:
		return func(s gbtype.Value) float64 { return float64(s.(int64)) }
	case gbtype.UInt8:
		return func(s gbtype.Value) float64 { return float64(s.(uint8)) }
	case gbtype.UInt16:
		return func(s gbtype.Value) float64 { return float64(s.(uint16)) }
	case gbtype.UInt32:
		return func(s gbtype.Value) float64 { return float64(s.(uint32)) }
	case gbtype.UInt64:
		return func(s gbtype.Value) float64 { return float64(s.(uint64)) }
	case gbtype.Float32:
		return func(s gbtype.Value) float64 { return float64(s.(float32)) }
	case gbtype.Float64:
		return func(s gbtype.Value) float64 { return s.(float64) }
	}

	return nil
}
