package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/zixuanlab/fourpillars/internal/calendar"
	"github.com/zixuanlab/fourpillars/internal/common"
	"github.com/zixuanlab/fourpillars/internal/donggong"
	"github.com/zixuanlab/fourpillars/internal/model"
)

// LunarSpan names one lunar year/month combination touched by a
// Gregorian month.
type LunarSpan struct {
	Year  int
	Month int
	Leap  bool
}

// MonthCalendar is the Dong Gong view of one Gregorian month.
type MonthCalendar struct {
	Year         int
	Month        time.Month
	DayCount     int
	FirstWeekday time.Weekday
	Days         []model.DayRecord
	// Spans lists the distinct lunar years/months the Gregorian month
	// crosses, in calendar order.
	Spans []LunarSpan
}

// CalendarBuilder assembles month calendars from the day-rating
// engine.
type CalendarBuilder struct {
	conv   calendar.Converter
	rating *donggong.Engine
}

// NewCalendarBuilder creates a calendar builder backed by the given
// converter.
func NewCalendarBuilder(conv calendar.Converter) (*CalendarBuilder, error) {
	rating, err := donggong.NewEngine(conv)
	if err != nil {
		return nil, err
	}
	return &CalendarBuilder{conv: conv, rating: rating}, nil
}

// Month rates every day of a Gregorian month.
func (b *CalendarBuilder) Month(ctx context.Context, year int, month time.Month) (*MonthCalendar, error) {
	common.LogDebug("building month calendar", common.Fields{"year": year, "month": month.String()})

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	dayCount := first.AddDate(0, 1, -1).Day()

	cal := &MonthCalendar{
		Year:         year,
		Month:        month,
		DayCount:     dayCount,
		FirstWeekday: first.Weekday(),
		Days:         make([]model.DayRecord, 0, dayCount),
	}

	seen := make(map[LunarSpan]bool)
	for d := 0; d < dayCount; d++ {
		date := first.AddDate(0, 0, d)
		rec, err := b.rating.Rate(ctx, date, nil)
		if err != nil {
			return nil, fmt.Errorf("rating %s: %w", date.Format("2006-01-02"), err)
		}
		cal.Days = append(cal.Days, rec)

		ld, err := b.conv.LunarDate(date)
		if err != nil {
			return nil, fmt.Errorf("lunar date of %s: %w", date.Format("2006-01-02"), err)
		}
		span := LunarSpan{Year: ld.Year, Month: ld.Month, Leap: ld.Leap}
		if !seen[span] {
			seen[span] = true
			cal.Spans = append(cal.Spans, span)
		}
	}

	sort.Slice(cal.Spans, func(i, j int) bool {
		if cal.Spans[i].Year != cal.Spans[j].Year {
			return cal.Spans[i].Year < cal.Spans[j].Year
		}
		return cal.Spans[i].Month < cal.Spans[j].Month
	})
	return cal, nil
}
