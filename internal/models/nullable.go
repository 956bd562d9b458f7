package models

// NullFloat represents a metric value that can distinguish between:
// - No observation for the day: Valid=false, Value=0
// - An observed value (including zero): Valid=true, Value=the value
//
// This is needed because a day with no sleep records is not a day with zero
// sleep; aggregates built on top of such days must stay missing rather than
// collapse to 0.
type NullFloat struct {
	Value float64
	Valid bool
}

// Float wraps a measured value in a valid NullFloat.
func Float(v float64) NullFloat {
	return NullFloat{Value: v, Valid: true}
}

// Ptr converts NullFloat to *float64 for use with database drivers.
// Returns nil if Valid is false, otherwise returns pointer to Value.
func (n NullFloat) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	return &n.Value
}

// AddNullFloats sums its arguments with missing-propagation: the result is
// missing if any addend is missing.
func AddNullFloats(vals ...NullFloat) NullFloat {
	var total float64
	for _, v := range vals {
		if !v.Valid {
			return NullFloat{}
		}
		total += v.Value
	}
	return Float(total)
}
