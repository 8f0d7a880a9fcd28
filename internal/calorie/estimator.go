// Package calorie estimates energy expenditure for logged activities.
package calorie

import "math"

// DefaultWeightKg is used when the caller does not supply a body weight.
const DefaultWeightKg = 70.0

// Table holds the metabolic-equivalent coefficient for every activity type.
type Table struct {
	Run      float64 `toml:"run"`
	Cycle    float64 `toml:"cycle"`
	Pushup   float64 `toml:"pushup"`
	Yoga     float64 `toml:"yoga"`
	Fallback float64 `toml:"fallback"`
}

// DefaultTable is the stock coefficient table.
var DefaultTable = Table{
	Run:      8.0,
	Cycle:    7.5,
	Pushup:   3.8,
	Yoga:     2.5,
	Fallback: 3.0,
}

// Coefficient returns the coefficient for t. Other and any value outside the
// known set use the fallback.
func (tb Table) Coefficient(t ActivityType) float64 {
	switch t {
	case Run:
		return tb.Run
	case Cycle:
		return tb.Cycle
	case Pushup:
		return tb.Pushup
	case Yoga:
		return tb.Yoga
	default:
		return tb.Fallback
	}
}

// Estimator turns duration, activity type and weight into calories.
// DefaultWeightKg replaces a missing (zero) weight; when unset the package
// default applies.
type Estimator struct {
	Table           Table
	DefaultWeightKg float64
}

// NewEstimator builds an Estimator over the provided table.
func NewEstimator(table Table, defaultWeightKg float64) Estimator {
	return Estimator{Table: table, DefaultWeightKg: defaultWeightKg}
}

// Weight substitutes the default for a missing weight.
func (e Estimator) Weight(weightKg float64) float64 {
	if weightKg != 0 {
		return weightKg
	}
	if e.DefaultWeightKg > 0 {
		return e.DefaultWeightKg
	}
	return DefaultWeightKg
}

// Calories computes round((minutes/60) * coefficient * weightKg). It is total
// over its numeric domain: zero or negative input yields zero or negative output.
func (e Estimator) Calories(durationMinutes float64, t ActivityType, weightKg float64) int {
	kcal := (durationMinutes / 60) * e.Table.Coefficient(t) * weightKg
	return roundHalfUp(kcal)
}

// Preview is the live estimate shown while the form is being filled in. A
// missing weight takes the default; the result stays at zero until both
// duration and weight are positive.
func (e Estimator) Preview(durationMinutes float64, t ActivityType, weightKg float64) int {
	weightKg = e.Weight(weightKg)
	if durationMinutes > 0 && weightKg > 0 {
		return e.Calories(durationMinutes, t, weightKg)
	}
	return 0
}

// EstimateCalories uses DefaultTable.
func EstimateCalories(durationMinutes float64, t ActivityType, weightKg float64) int {
	return Estimator{Table: DefaultTable}.Calories(durationMinutes, t, weightKg)
}

// roundHalfUp rounds ties toward +Inf and saturates at the int bounds.
func roundHalfUp(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	switch {
	case f >= maxIntFloat:
		return math.MaxInt
	case f <= minIntFloat:
		return math.MinInt
	}
	return int(f)
}

const (
	maxIntFloat = float64(math.MaxInt)
	minIntFloat = float64(math.MinInt)
)
