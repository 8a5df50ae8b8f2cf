// Package luck computes the lifetime luck progression: the eight
// ten-year Da Yun pillars, the childhood Xiao Yun pillars, and the
// selection of whichever pillar governs an analysis year.
package luck

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/zixuanlab/fourpillars/internal/calendar"
	"github.com/zixuanlab/fourpillars/internal/model"
)

// daYunCount is the number of generated ten-year pillars.
const daYunCount = 8

// Forward reports the progression direction: forward through the cycle
// iff the subject's gender parity agrees with the year stem's polarity
// (male Yang or female Yin).
func Forward(gender model.Gender, yearStem model.Stem) bool {
	return (gender == model.Male) == (yearStem.Polarity() == model.Yang)
}

// Progression is the full luck sequence for one chart.
type Progression struct {
	DaYun    []model.LuckPillar
	XiaoYun  []model.LuckPillar
	StartAge int
	Forward  bool
}

// Engine computes luck progressions using the calendar oracle for
// solar-term distances.
type Engine struct {
	conv calendar.Converter
}

// NewEngine creates a luck engine backed by the given converter.
func NewEngine(conv calendar.Converter) *Engine {
	return &Engine{conv: conv}
}

// Compute derives the Da Yun and Xiao Yun sequences for a natal chart.
// birth is the exact birth instant (midnight when the time is unknown).
// Without an hour pillar no Xiao Yun pillars exist.
func (e *Engine) Compute(_ context.Context, chart *model.Chart, birth time.Time) (*Progression, error) {
	yearPillar, ok := chart.Pillar(model.SlotYear)
	if !ok {
		return nil, fmt.Errorf("%w: chart has no year pillar", model.ErrIntegrity)
	}
	monthPillar, ok := chart.Pillar(model.SlotMonth)
	if !ok {
		return nil, fmt.Errorf("%w: chart has no month pillar", model.ErrIntegrity)
	}

	forward := Forward(chart.Gender, yearPillar.Stem)

	var term calendar.Term
	var err error
	if forward {
		term, err = e.conv.NextMajorTerm(birth)
	} else {
		term, err = e.conv.PrevMajorTerm(birth)
	}
	if err != nil {
		return nil, fmt.Errorf("locating boundary term: %w", err)
	}

	daysDiff := int(math.Round(math.Abs(term.At.Sub(birth).Hours()) / 24))
	startAge := (daysDiff + 2) / 3 // ceil(daysDiff / 3)

	daYun, err := e.daYun(monthPillar, forward, startAge)
	if err != nil {
		return nil, err
	}

	var xiaoYun []model.LuckPillar
	if hourPillar, ok := chart.Pillar(model.SlotHour); ok {
		if xiaoYun, err = e.xiaoYun(hourPillar, forward, startAge); err != nil {
			return nil, err
		}
	}

	return &Progression{
		DaYun:    daYun,
		XiaoYun:  xiaoYun,
		StartAge: startAge,
		Forward:  forward,
	}, nil
}

// daYun steps the cycle away from the month pillar, one step per
// ten-year span. The month pillar itself is excluded.
func (e *Engine) daYun(month model.Pillar, forward bool, startAge int) ([]model.LuckPillar, error) {
	out := make([]model.LuckPillar, 0, daYunCount)
	for i := 1; i <= daYunCount; i++ {
		step := i
		if !forward {
			step = -i
		}
		p, err := month.Step(step)
		if err != nil {
			return nil, fmt.Errorf("%w: stepping month pillar: %v", model.ErrIntegrity, err)
		}
		from := startAge + 10*(i-1)
		out = append(out, model.LuckPillar{
			Pillar:   p,
			StartAge: from,
			EndAge:   from + 10,
		})
	}
	return out, nil
}

// xiaoYun covers Chinese ages 1 through the Da Yun start age, stepping
// the hour pillar one position per year. Chinese age n maps to Western
// age n-1.
func (e *Engine) xiaoYun(hour model.Pillar, forward bool, startAge int) ([]model.LuckPillar, error) {
	out := make([]model.LuckPillar, 0, startAge)
	for n := 1; n <= startAge; n++ {
		step := n
		if !forward {
			step = -n
		}
		p, err := hour.Step(step)
		if err != nil {
			return nil, fmt.Errorf("%w: stepping hour pillar: %v", model.ErrIntegrity, err)
		}
		out = append(out, model.LuckPillar{
			Pillar:    p,
			StartAge:  n - 1,
			EndAge:    n,
			Childhood: true,
		})
	}
	return out, nil
}

// Select picks the luck pillar active at an analysis year and derives
// its display date range from the birth date. Ages below the Da Yun
// start age select from Xiao Yun when available; a missing exact match
// falls back to the first pillar of the relevant regime.
func (p *Progression) Select(birthDate time.Time, analysisYear int) (model.LuckSelection, bool) {
	age := analysisYear - birthDate.Year()

	if age < p.StartAge && len(p.XiaoYun) > 0 {
		chosen := p.XiaoYun[0]
		for _, lp := range p.XiaoYun {
			if lp.StartAge == age {
				chosen = lp
				break
			}
		}
		return selection(chosen, birthDate), true
	}

	if len(p.DaYun) == 0 {
		return model.LuckSelection{}, false
	}
	chosen := p.DaYun[0]
	for _, lp := range p.DaYun {
		if lp.Covers(age) {
			chosen = lp
			break
		}
	}
	return selection(chosen, birthDate), true
}

func selection(lp model.LuckPillar, birthDate time.Time) model.LuckSelection {
	return model.LuckSelection{
		Pillar:    lp,
		RangeFrom: birthDate.AddDate(lp.StartAge, 0, 0),
		RangeTo:   birthDate.AddDate(lp.EndAge, 0, 0),
	}
}
