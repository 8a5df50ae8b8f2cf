package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/zixuanlab/fourpillars/internal/model"
)

// Fake is a deterministic, map-driven Converter for tests. It lets
// golden solar-term instants and pillar resolutions be pinned without
// any astronomical math.
type Fake struct {
	// Pillars maps "2006-01-02" (date-only) and "2006-01-02T15:04"
	// (timed) keys to resolutions.
	Pillars map[string]PillarSet
	// Terms holds every configured solar-term event, any order.
	Terms []Term
	// LunarDates maps "2006-01-02" keys to lunar readings.
	LunarDates map[string]LunarDate
	// Err, when set, is returned by every call.
	Err error
}

// NewFake returns an empty fake converter.
func NewFake() *Fake {
	return &Fake{
		Pillars:    make(map[string]PillarSet),
		LunarDates: make(map[string]LunarDate),
	}
}

// DateKey formats the date-only lookup key.
func DateKey(at time.Time) string { return at.Format("2006-01-02") }

// TimeKey formats the timed lookup key.
func TimeKey(at time.Time) string { return at.Format("2006-01-02T15:04") }

// SetPillars registers a date-only resolution.
func (f *Fake) SetPillars(at time.Time, set PillarSet) {
	f.Pillars[DateKey(at)] = set
}

// SetTimedPillars registers a timed resolution.
func (f *Fake) SetTimedPillars(at time.Time, set PillarSet) {
	f.Pillars[TimeKey(at)] = set
}

// AddTerm registers a solar-term event.
func (f *Fake) AddTerm(name string, at time.Time) {
	f.Terms = append(f.Terms, Term{Name: name, At: at})
}

// ResolvePillars implements Converter.
func (f *Fake) ResolvePillars(at time.Time, hasTime bool) (PillarSet, error) {
	if f.Err != nil {
		return PillarSet{}, f.Err
	}
	key := DateKey(at)
	if hasTime {
		key = TimeKey(at)
	}
	set, ok := f.Pillars[key]
	if !ok {
		return PillarSet{}, fmt.Errorf("%w: no fake resolution for %s", model.ErrConversion, key)
	}
	return set, nil
}

func (f *Fake) sortedTerms() []Term {
	terms := make([]Term, len(f.Terms))
	copy(terms, f.Terms)
	sort.Slice(terms, func(i, j int) bool { return terms[i].At.Before(terms[j].At) })
	return terms
}

// NextMajorTerm implements Converter.
func (f *Fake) NextMajorTerm(at time.Time) (Term, error) {
	if f.Err != nil {
		return Term{}, f.Err
	}
	for _, t := range f.sortedTerms() {
		if IsMajorTerm(t.Name) && !t.At.Before(at) {
			return t, nil
		}
	}
	return Term{}, fmt.Errorf("%w: no major term after %s", model.ErrConversion, DateKey(at))
}

// PrevMajorTerm implements Converter.
func (f *Fake) PrevMajorTerm(at time.Time) (Term, error) {
	if f.Err != nil {
		return Term{}, f.Err
	}
	terms := f.sortedTerms()
	for i := len(terms) - 1; i >= 0; i-- {
		if IsMajorTerm(terms[i].Name) && !terms[i].At.After(at) {
			return terms[i], nil
		}
	}
	return Term{}, fmt.Errorf("%w: no major term before %s", model.ErrConversion, DateKey(at))
}

// TermOn implements Converter.
func (f *Fake) TermOn(date time.Time) (Term, bool, error) {
	if f.Err != nil {
		return Term{}, false, f.Err
	}
	key := DateKey(date)
	for _, t := range f.sortedTerms() {
		if DateKey(t.At) == key {
			return t, true, nil
		}
	}
	return Term{}, false, nil
}

// LunarDate implements Converter.
func (f *Fake) LunarDate(date time.Time) (LunarDate, error) {
	if f.Err != nil {
		return LunarDate{}, f.Err
	}
	ld, ok := f.LunarDates[DateKey(date)]
	if !ok {
		return LunarDate{}, fmt.Errorf("%w: no fake lunar date for %s", model.ErrConversion, DateKey(date))
	}
	return ld, nil
}

var _ Converter = (*Fake)(nil)
var _ Converter = (*LunarGo)(nil)
