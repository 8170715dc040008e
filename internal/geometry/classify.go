package geometry

// Fraction is one of the tiled size fractions a window dimension can be
// classified as. Unclassified carries the raw measured ratio instead.
type Fraction struct {
	Value      float64
	Classified bool
}

// The classification ladder, in check order. Order matters: a ratio
// within tolerance of two entries resolves to the earlier one.
var fractionLadder = []float64{
	1.0 / 2,
	1.0 / 3,
	1.0 / 4,
	2.0 / 3,
	3.0 / 4,
}

// Classify maps a measured dimension against a usable-area dimension to
// the nearest known tile fraction, or reports the raw ratio as
// unclassified when nothing in the ladder is within tolerance.
func Classify(dimension, usableDimension, tolerance float64) Fraction {
	if usableDimension <= 0 {
		return Fraction{Value: 0}
	}
	ratio := dimension / usableDimension
	for _, f := range fractionLadder {
		if AlmostEqual(ratio, f, tolerance) {
			return Fraction{Value: f, Classified: true}
		}
	}
	return Fraction{Value: ratio}
}

// Is reports whether the fraction was classified as the given value.
func (f Fraction) Is(value float64) bool {
	return f.Classified && f.Value == value
}
