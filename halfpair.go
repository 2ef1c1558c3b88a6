package s64shift

// S64 represents the bit pattern of a 64-bit signed integer as two 32-bit lanes.
// Hi holds bits 63..32 (signed, so the sign of the original value lives here),
// Lo holds bits 31..0 as unsigned.
type S64 struct {
	Hi int32
	Lo uint32
}

// Split decomposes x into its two lanes. Defined for every int64 input,
// including negative values, MinInt64 and MaxInt64.
func Split(x int64) S64 {
	return S64{
		Hi: int32(x >> 32), // arithmetic shift, keeps the sign in the high lane
		Lo: uint32(x),
	}
}

// Join reassembles the 64-bit bit pattern from the two lanes.
// It is a total inverse of Split: Split(x).Join() == x for all x.
func (p S64) Join() int64 {
	return int64(p.Hi)<<32 | int64(p.Lo)
}
