package model

import "time"

// LuckPillar is a pillar governing a span of the subject's life,
// tagged with inclusive start age and exclusive end age (Western ages).
// Da Yun pillars span 10 years; Xiao Yun pillars span 1 year.
type LuckPillar struct {
	Pillar    Pillar
	StartAge  int
	EndAge    int
	Childhood bool
}

// Covers reports whether the pillar's [StartAge, EndAge) span contains
// the given age.
func (l LuckPillar) Covers(age int) bool {
	return age >= l.StartAge && age < l.EndAge
}

// LuckSelection is the luck pillar active at an analysis date, with the
// display date range derived from the birth date plus the span's ages.
type LuckSelection struct {
	Pillar    LuckPillar
	RangeFrom time.Time
	RangeTo   time.Time
}
