// Package chart turns calendar instants into sexagenary pillars. All
// solar-term boundary logic is delegated to the calendar oracle; the
// one rule applied here is the 23:00 day boundary.
package chart

import (
	"context"
	"fmt"
	"time"

	"github.com/zixuanlab/fourpillars/internal/calendar"
	"github.com/zixuanlab/fourpillars/internal/model"
)

// BirthInput describes a birth instant. Hour and Minute are only
// meaningful when HasTime is set; without a birth time no hour pillar
// is generated and downstream consumers see its absence.
type BirthInput struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	HasTime bool
	Gender  model.Gender
}

// Instant returns the birth moment, at midnight when no time is known.
func (b BirthInput) Instant() time.Time {
	h, m := 0, 0
	if b.HasTime {
		h, m = b.Hour, b.Minute
	}
	return time.Date(b.Year, b.Month, b.Day, h, m, 0, 0, time.Local)
}

// Generator resolves dates into pillars via the calendar oracle.
type Generator struct {
	conv calendar.Converter
}

// NewGenerator creates a pillar generator backed by the given
// converter.
func NewGenerator(conv calendar.Converter) *Generator {
	return &Generator{conv: conv}
}

// Generate produces the natal chart for a birth input: year, month and
// day pillars always, the hour pillar only when the birth time is
// known.
//
// The sexagenary day begins at 23:00, one hour before the Gregorian
// day. For births at hour 23 the day pillar is taken from the following
// calendar date at 00:00 while year and month pillars keep the
// unshifted date's resolution.
func (g *Generator) Generate(_ context.Context, in BirthInput) (*model.Chart, error) {
	at := in.Instant()
	set, err := g.conv.ResolvePillars(at, in.HasTime)
	if err != nil {
		return nil, fmt.Errorf("resolving birth pillars: %w", err)
	}

	day := set.Day
	if in.HasTime && in.Hour >= 23 {
		nextMidnight := time.Date(in.Year, in.Month, in.Day, 0, 0, 0, 0, time.Local).AddDate(0, 0, 1)
		shifted, err := g.conv.ResolvePillars(nextMidnight, true)
		if err != nil {
			return nil, fmt.Errorf("resolving shifted day pillar: %w", err)
		}
		day = shifted.Day
	}

	slots := map[model.Slot]model.Pillar{
		model.SlotYear:  set.Year,
		model.SlotMonth: set.Month,
		model.SlotDay:   day,
	}
	if in.HasTime {
		slots[model.SlotHour] = set.Hour
	}

	birthDate := time.Date(in.Year, in.Month, in.Day, 0, 0, 0, 0, time.Local)
	return model.NewChart(slots, in.Gender, birthDate), nil
}

// AnalysisPillars resolves an analysis instant into annual, monthly,
// daily and hourly pillars, honoring the same 23:00 day boundary as
// natal generation. The hourly pillar is only meaningful when hasTime
// is set.
func (g *Generator) AnalysisPillars(_ context.Context, at time.Time, hasTime bool) (calendar.PillarSet, error) {
	set, err := g.conv.ResolvePillars(at, hasTime)
	if err != nil {
		return calendar.PillarSet{}, fmt.Errorf("resolving analysis pillars: %w", err)
	}
	if hasTime && at.Hour() >= 23 {
		nextMidnight := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, 1)
		shifted, err := g.conv.ResolvePillars(nextMidnight, true)
		if err != nil {
			return calendar.PillarSet{}, fmt.Errorf("resolving shifted day pillar: %w", err)
		}
		set.Day = shifted.Day
	}
	return set, nil
}
