package donggong

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/zixuanlab/fourpillars/internal/calendar"
	"github.com/zixuanlab/fourpillars/internal/model"
)

// fourExtinction are the season-start terms; the 24 hours before each
// are the Four Extinction window.
var fourExtinction = map[string]bool{
	"立春": true,
	"立夏": true,
	"立秋": true,
	"立冬": true,
}

// fourSeparation are the equinox and solstice terms; the 24 hours
// before each are the Four Separation window.
var fourSeparation = map[string]bool{
	"春分": true,
	"夏至": true,
	"秋分": true,
	"冬至": true,
}

// Engine rates calendar days. Stateless apart from the immutable
// reference tables; safe for concurrent use.
type Engine struct {
	conv   calendar.Converter
	tables *Tables
}

// NewEngine loads the embedded reference tables and returns a
// day-rating engine backed by the given converter.
func NewEngine(conv calendar.Converter) (*Engine, error) {
	tables, err := LoadTables()
	if err != nil {
		return nil, err
	}
	return &Engine{conv: conv, tables: tables}, nil
}

// Rate produces the Dong Gong verdict for one day. hour, when non-nil,
// is the evaluated decimal hour: a forbidden window then applies only
// if that hour falls inside it. A day whose lunar month is outside the
// table's coverage carries no officer, rating, forbidden or consult
// fields.
func (e *Engine) Rate(_ context.Context, date time.Time, hour *float64) (model.DayRecord, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	set, err := e.conv.ResolvePillars(day, false)
	if err != nil {
		return model.DayRecord{}, fmt.Errorf("resolving day pillars: %w", err)
	}
	ld, err := e.conv.LunarDate(day)
	if err != nil {
		return model.DayRecord{}, fmt.Errorf("resolving lunar date: %w", err)
	}

	rec := model.DayRecord{
		Pillar:    set.Day,
		LunarDay:  ld.Day,
		MoonPhase: MoonPhase(ld.Day),
	}

	lunarMonth, ok := MonthOrdinal(set.Month.Branch)
	if !ok {
		return rec, nil
	}
	rec.LunarMonth = lunarMonth

	// A missing (month, branch) cell is a soft absence of officer data
	// only; the forbidden scan still runs once the month resolved.
	entry, haveEntry := e.tables.Lookup(lunarMonth, set.Day.Branch)
	if haveEntry {
		officer := OfficerFor(set.Month.Branch, set.Day.Branch)
		rec.Officer = &officer
		rating := entry.Rating(set.Day.Stem)
		rec.Rating = &rating
		acts := entry.Activities()
		rec.Activities = &acts
	}

	window, err := e.forbiddenWindow(day)
	if err != nil {
		return model.DayRecord{}, err
	}
	if window != nil {
		applies := hour == nil || window.Contains(*hour)
		if applies {
			// Forbidden suppresses the officer-based rating entirely.
			dire := model.RatingDire
			rec.Rating = &dire
			rec.Forbidden = window
			return rec, nil
		}
	}

	if !haveEntry {
		return rec, nil
	}

	// Consult promotion: a stem override that raises the branch-level
	// base signals mixed indications, which the tradition refers to an
	// expert rather than scoring outright. Never applies to forbidden
	// days.
	rating := entry.Rating(set.Day.Stem)
	if rating.Value > entry.BaseRating().Value {
		consult := model.RatingConsult
		rec.Consult = &model.ConsultPromotion{
			Original: rating,
			Reason: fmt.Sprintf("day stem %s contradicts the %s officer's base rating",
				set.Day.Stem, *rec.Officer),
		}
		rec.Rating = &consult
	}

	return rec, nil
}

// forbiddenWindow scans the day and the next for one of the eight
// boundary terms and returns the 24-hour window preceding its exact
// instant, clipped to the day's [0,24) range. Nil when the day is
// clear.
func (e *Engine) forbiddenWindow(day time.Time) (*model.ForbiddenWindow, error) {
	for offset := 0; offset <= 1; offset++ {
		scan := day.AddDate(0, 0, offset)
		term, ok, err := e.conv.TermOn(scan)
		if err != nil {
			return nil, fmt.Errorf("scanning solar terms: %w", err)
		}
		if !ok {
			continue
		}

		var kind string
		switch {
		case fourExtinction[term.Name]:
			kind = "four_extinction"
		case fourSeparation[term.Name]:
			kind = "four_separation"
		default:
			continue
		}

		// Hours of the term instant relative to this day's midnight.
		endH := term.At.Sub(day).Hours()
		startH := endH - 24
		if startH < 0 {
			startH = 0
		}
		if endH > 24 {
			endH = 24
		}
		if endH <= 0 || startH >= 24 || startH >= endH {
			continue
		}
		return &model.ForbiddenWindow{
			TermName: term.Name,
			Kind:     kind,
			Start:    round2(startH),
			End:      round2(endH),
		}, nil
	}
	return nil, nil
}

// MoonPhase labels a lunar day of month 1-30.
func MoonPhase(lunarDay int) string {
	switch {
	case lunarDay <= 0:
		return ""
	case lunarDay == 1:
		return "new moon"
	case lunarDay < 8:
		return "waxing crescent"
	case lunarDay == 8:
		return "first quarter"
	case lunarDay < 15:
		return "waxing gibbous"
	case lunarDay <= 16:
		return "full moon"
	case lunarDay < 23:
		return "waning gibbous"
	case lunarDay == 23:
		return "last quarter"
	default:
		return "waning crescent"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
