// Package calendar defines the solar/lunar calendar oracle the engine
// depends on, plus its production (lunar-go) and test (fake)
// implementations. The engine never does astronomical solar-term math
// itself; it treats this boundary as a synchronous, side-effect-free
// capability.
package calendar

import (
	"time"

	"github.com/zixuanlab/fourpillars/internal/model"
)

// PillarSet is the oracle's resolution of one instant into sexagenary
// pillars. Hour is only meaningful when the instant carried a time of
// day.
type PillarSet struct {
	Year  model.Pillar
	Month model.Pillar
	Day   model.Pillar
	Hour  model.Pillar
}

// Term is one solar-term event with its exact instant.
type Term struct {
	Name string
	At   time.Time
}

// LunarDate is the lunar-calendar reading of a Gregorian date.
type LunarDate struct {
	Year  int
	Month int
	Day   int
	Leap  bool
}

// Converter is the calendar oracle. Date-only resolution (hasTime
// false) uses day-granular solar-term boundaries and is inherently
// approximate on boundary days; timed resolution honors exact term
// instants.
type Converter interface {
	// ResolvePillars returns the pillars for the instant. The Hour
	// field is undefined when hasTime is false.
	ResolvePillars(at time.Time, hasTime bool) (PillarSet, error)

	// NextMajorTerm returns the nearest major (month-boundary) solar
	// term at or after the instant.
	NextMajorTerm(at time.Time) (Term, error)

	// PrevMajorTerm returns the nearest major solar term at or before
	// the instant.
	PrevMajorTerm(at time.Time) (Term, error)

	// TermOn returns the solar term whose exact instant falls on the
	// given calendar date, if any. Both major and minor terms are
	// reported.
	TermOn(date time.Time) (Term, bool, error)

	// LunarDate returns the lunar-calendar reading of the date.
	LunarDate(date time.Time) (LunarDate, error)
}
