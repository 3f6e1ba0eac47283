package score

import "math"

// RampLength is the number of notes the combo multiplier takes to build up.
const RampLength = 100

// Ramp holds the per note value of the first RampLength notes,
// indexed by absolute note position.
type Ramp [RampLength]float64

// BuildRamp interpolates linearly from just above base at the first note to
// base*comboMul at note RampLength.
func BuildRamp(base, comboMul float64) Ramp {
	var r Ramp
	for i := range r {
		n := float64(i + 1)
		r[i] = base + (comboMul-1)*base/100*n
	}
	return r
}

// Sum floors each ramp value of [a, b) after scaling by mul.
func (r *Ramp) Sum(a, b int, mul float64) int64 {
	var sum int64
	for i := a; i < b; i++ {
		sum += int64(math.Floor(r[i] * mul))
	}
	return sum
}

// Block scores n notes starting at absolute position pos, using the ramp
// while it lasts and the flat rate afterwards.
func (r *Ramp) Block(pos, n int, flat int64, mul float64) int64 {
	if pos >= RampLength {
		return int64(n) * flat
	}
	if n > RampLength-pos {
		return r.Sum(pos, RampLength, mul) + int64(n-(RampLength-pos))*flat
	}
	return r.Sum(pos, pos+n, mul)
}
