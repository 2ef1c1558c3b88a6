package s64shift

import "math/bits"

const (
	laneBits = 32
	// MaxShift is the largest shift amount either direction accepts.
	MaxShift = laneBits - 1
)

// lshRef is the reference form of the lane-wise left shift: raw macro-style
// arithmetic keeping the high lane signed through the shift-then-OR, where
// Go wraps what a fixed-width signed model would leave undefined. Valid only
// for 1 <= n <= 31; at n == 0 the complementary shift amount reaches the full
// lane width. Only correct while the joined value is non-negative and the
// shifted result still fits the signed 64-bit range.
func lshRef(p S64, n uint) S64 {
	return S64{
		Hi: p.Hi<<n | int32(p.Lo>>(laneBits-n)),
		Lo: p.Lo << n,
	}
}

// rshRef is the reference form of the lane-wise right shift. The high lane is
// reinterpreted as unsigned before the left sub-shift; the lane itself is
// shifted with the signed (arithmetic) shift, so sign extension propagates
// for negative values. Valid only for 1 <= n <= 31.
func rshRef(p S64, n uint) S64 {
	return S64{
		Hi: p.Hi >> n,
		Lo: uint32(p.Hi)<<(laneBits-n) | p.Lo>>n,
	}
}

// Lsh returns p shifted left by n bits, lane-wise. For a non-negative joined
// value this multiplies by 2^n; the caller must keep n within 0..=MaxLsh of
// that value so the result still fits the signed 64-bit range. Intermediate
// shifts run on unsigned lanes, unlike the reference form.
// n == 0 returns p unchanged without touching the lanes.
func (p S64) Lsh(n uint) S64 {
	if n == 0 {
		return p
	}

	p.Hi = int32(uint32(p.Hi)<<n | p.Lo>>(laneBits-n))
	p.Lo <<= n
	return p
}

// Rsh returns p shifted right by n bits, lane-wise. For a non-negative joined
// value this divides by 2^n; for a negative one the high lane sign-extends.
// n must be within 0..=MaxShift; n == 0 returns p unchanged.
func (p S64) Rsh(n uint) S64 {
	if n == 0 {
		return p
	}

	p.Lo = uint32(p.Hi)<<(laneBits-n) | p.Lo>>n
	p.Hi >>= n
	return p
}

// MaxLsh returns the largest n, capped at MaxShift, such that left-shifting
// the non-negative value x by n does not overflow the signed 64-bit range.
// MaxLsh(0) is MaxShift: zero can be shifted by any legal amount.
func MaxLsh(x int64) uint {
	if x == 0 {
		return MaxShift
	}
	n := bits.LeadingZeros64(uint64(x)) - 1
	if n > MaxShift {
		return MaxShift
	}
	return uint(n)
}
