package srs

// Params defines the configurable parameters of the review interval policy.
type Params struct {
	// IntervalBase is the exponent base of the interval formula: a card in
	// box b waits IntervalBase^b days between reviews.
	IntervalBase float64

	// MaxIntervalDays caps the computed interval so that high boxes never
	// push a card decades into the future.
	MaxIntervalDays int
}

// NewDefaultParams returns the standard policy: doubling intervals (box 1 ->
// 2 days, box 2 -> 4 days, ...) capped at one year.
//
// The doubling base is a pinned placeholder, not an inferred fact: upstream
// material defines what the review-state bands mean but not the interval
// formula, so this policy is an explicit choice that stakeholders can
// revisit by supplying different Params.
func NewDefaultParams() *Params {
	return &Params{
		IntervalBase:    2.0,
		MaxIntervalDays: 365,
	}
}
