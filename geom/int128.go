package geom

import "math/bits"

// Int128 is a signed 128-bit integer, used for cross products and squared
// distances that can overflow int64 when coordinates are near the int32
// extremes (spec.md §3: "arithmetic that can overflow uses a 64-bit
// accumulator (ManhattanArea)" — cross products need the full 128 bits).
type Int128 struct {
	Hi int64
	Lo uint64
}

// NewInt128 widens a 64-bit integer into an Int128.
func NewInt128(val int64) Int128 {
	var hi int64
	if val < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(val)}
}

// IsNegative reports whether i < 0.
func (i Int128) IsNegative() bool {
	return i.Hi < 0
}

// IsZero reports whether i == 0.
func (i Int128) IsZero() bool {
	return i.Hi == 0 && i.Lo == 0
}

// Negate returns -i.
func (i Int128) Negate() Int128 {
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}
	return Int128{Hi: hi, Lo: lo}
}

// Add returns i+other.
func (i Int128) Add(other Int128) Int128 {
	lo, carry := bits.Add64(i.Lo, other.Lo, 0)
	hi, _ := bits.Add64(uint64(i.Hi), uint64(other.Hi), carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Sub returns i-other.
func (i Int128) Sub(other Int128) Int128 {
	lo, borrow := bits.Sub64(i.Lo, other.Lo, 0)
	hi, _ := bits.Sub64(uint64(i.Hi), uint64(other.Hi), borrow)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Cmp returns -1, 0, or 1 as i is less than, equal to, or greater than other.
func (i Int128) Cmp(other Int128) int {
	if i.Hi != other.Hi {
		if i.Hi < other.Hi {
			return -1
		}
		return 1
	}
	if i.Lo == other.Lo {
		return 0
	}
	if i.Lo < other.Lo {
		return -1
	}
	return 1
}

// Sign returns -1, 0, or 1 as i is negative, zero, or positive.
func (i Int128) Sign() int {
	if i.IsZero() {
		return 0
	}
	if i.IsNegative() {
		return -1
	}
	return 1
}

// Mul64 multiplies i by a 32-bit-range value widened to int64; safe for
// every product this package forms (coordinate deltas times coordinate
// deltas, both within int64 range after widening).
func (i Int128) Mul64(val int64) Int128 {
	if val == 0 {
		return Int128{}
	}
	negative := i.IsNegative() != (val < 0)

	absI := i
	if i.IsNegative() {
		absI = i.Negate()
	}
	absVal := val
	if val < 0 {
		absVal = -val
	}

	loHi, loLo := bits.Mul64(absI.Lo, uint64(absVal))
	_, hiLo := bits.Mul64(uint64(absI.Hi), uint64(absVal))

	hi, _ := bits.Add64(loHi, hiLo, 0)
	result := Int128{Hi: int64(hi), Lo: loLo}
	if negative {
		result = result.Negate()
	}
	return result
}

// ToFloat64 converts i to a float64, losing precision for very large
// magnitudes.
func (i Int128) ToFloat64() float64 {
	if (i.Hi == 0 && i.Lo < 1<<63) || (i.Hi == -1 && i.Lo >= 1<<63) {
		return float64(int64(i.Lo))
	}
	const two64 = 18446744073709551616.0
	return float64(i.Hi)*two64 + float64(i.Lo)
}

// CrossProduct128 computes the cross product of (p2-p1) and (p3-p1) with
// 128-bit intermediate precision, used by the orientation predicate that
// classifies offset corners (spec.md §4.6) and by collinearity checks.
func CrossProduct128(p1, p2, p3 Point) Int128 {
	v1x := int64(p2.X) - int64(p1.X)
	v1y := int64(p2.Y) - int64(p1.Y)
	v2x := int64(p3.X) - int64(p1.X)
	v2y := int64(p3.Y) - int64(p1.Y)

	term1 := NewInt128(v1x).Mul64(v2y)
	term2 := NewInt128(v1y).Mul64(v2x)
	return term1.Sub(term2)
}

// DistanceSquared128 computes the squared Euclidean distance between two
// points with 128-bit precision.
func DistanceSquared128(p1, p2 Point) Int128 {
	dx := int64(p2.X) - int64(p1.X)
	dy := int64(p2.Y) - int64(p1.Y)
	return NewInt128(dx).Mul64(dx).Add(NewInt128(dy).Mul64(dy))
}
