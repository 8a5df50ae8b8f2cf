package calendar

import (
	"fmt"
	"time"

	lunargo "github.com/6tail/lunar-go/calendar"

	"github.com/zixuanlab/fourpillars/internal/model"
)

// lunar-go carries solar-term data for roughly the 20th and 21st
// centuries; outside that range a resolution is refused rather than
// silently extrapolated.
const (
	minYear = 1902
	maxYear = 2098
)

// LunarGo implements Converter over the 6tail/lunar-go library.
type LunarGo struct{}

// NewLunarGo returns the production calendar converter.
func NewLunarGo() *LunarGo {
	return &LunarGo{}
}

func checkRange(at time.Time) error {
	if y := at.Year(); y < minYear || y > maxYear {
		return fmt.Errorf("%w: year %d outside supported range %d-%d", model.ErrConversion, y, minYear, maxYear)
	}
	return nil
}

// parseGanZhi turns a two-character ganzhi string from the oracle into
// a Pillar, failing if either character is outside the closed symbol
// sets or the pairing is impossible.
func parseGanZhi(gz string) (model.Pillar, error) {
	runes := []rune(gz)
	if len(runes) != 2 {
		return model.Pillar{}, fmt.Errorf("%w: malformed ganzhi %q", model.ErrParse, gz)
	}
	stem, err := model.ParseStemChinese(string(runes[0]))
	if err != nil {
		return model.Pillar{}, err
	}
	branch, err := model.ParseBranchChinese(string(runes[1]))
	if err != nil {
		return model.Pillar{}, err
	}
	if _, err := model.PillarIndex(stem, branch); err != nil {
		return model.Pillar{}, err
	}
	return model.Pillar{Stem: stem, Branch: branch}, nil
}

// ResolvePillars resolves the instant into year/month/day/hour pillars.
// With a known time the year and month honor exact solar-term instants;
// date-only resolution falls back to day-granular Li Chun and jie
// boundaries, which is approximate on boundary days.
func (c *LunarGo) ResolvePillars(at time.Time, hasTime bool) (PillarSet, error) {
	if err := checkRange(at); err != nil {
		return PillarSet{}, err
	}

	hour, minute := at.Hour(), at.Minute()
	if !hasTime {
		hour, minute = 0, 0
	}
	lunar := lunargo.NewSolar(at.Year(), int(at.Month()), at.Day(), hour, minute, 0).GetLunar()

	var yearGZ, monthGZ string
	if hasTime {
		yearGZ = lunar.GetYearInGanZhiExact()
		monthGZ = lunar.GetMonthInGanZhiExact()
	} else {
		yearGZ = lunar.GetYearInGanZhiByLiChun()
		monthGZ = lunar.GetMonthInGanZhi()
	}

	var set PillarSet
	var err error
	if set.Year, err = parseGanZhi(yearGZ); err != nil {
		return PillarSet{}, err
	}
	if set.Month, err = parseGanZhi(monthGZ); err != nil {
		return PillarSet{}, err
	}
	if set.Day, err = parseGanZhi(lunar.GetDayInGanZhi()); err != nil {
		return PillarSet{}, err
	}
	if hasTime {
		if set.Hour, err = parseGanZhi(lunar.GetTimeInGanZhi()); err != nil {
			return PillarSet{}, err
		}
	}
	return set, nil
}

func termFromJieQi(name string, s *lunargo.Solar) Term {
	return Term{
		Name: name,
		At:   time.Date(s.GetYear(), time.Month(s.GetMonth()), s.GetDay(), s.GetHour(), s.GetMinute(), s.GetSecond(), 0, time.Local),
	}
}

// NextMajorTerm returns the nearest month-boundary (jie) term at or
// after the instant.
func (c *LunarGo) NextMajorTerm(at time.Time) (Term, error) {
	if err := checkRange(at); err != nil {
		return Term{}, err
	}
	lunar := lunargo.NewSolar(at.Year(), int(at.Month()), at.Day(), at.Hour(), at.Minute(), 0).GetLunar()
	jie := lunar.GetNextJie()
	if jie == nil {
		return Term{}, fmt.Errorf("%w: no major term after %s", model.ErrConversion, at.Format("2006-01-02"))
	}
	return termFromJieQi(jie.GetName(), jie.GetSolar()), nil
}

// PrevMajorTerm returns the nearest month-boundary (jie) term at or
// before the instant.
func (c *LunarGo) PrevMajorTerm(at time.Time) (Term, error) {
	if err := checkRange(at); err != nil {
		return Term{}, err
	}
	lunar := lunargo.NewSolar(at.Year(), int(at.Month()), at.Day(), at.Hour(), at.Minute(), 0).GetLunar()
	jie := lunar.GetPrevJie()
	if jie == nil {
		return Term{}, fmt.Errorf("%w: no major term before %s", model.ErrConversion, at.Format("2006-01-02"))
	}
	return termFromJieQi(jie.GetName(), jie.GetSolar()), nil
}

// TermOn reports the solar term, major or minor, whose exact instant
// falls on the given date.
func (c *LunarGo) TermOn(date time.Time) (Term, bool, error) {
	if err := checkRange(date); err != nil {
		return Term{}, false, err
	}
	lunar := lunargo.NewSolar(date.Year(), int(date.Month()), date.Day(), 12, 0, 0).GetLunar()
	jq := lunar.GetCurrentJieQi()
	if jq == nil {
		return Term{}, false, nil
	}
	return termFromJieQi(jq.GetName(), jq.GetSolar()), true, nil
}

// LunarDate returns the lunar year, month (1-12), day of month, and
// leap-month flag for the date.
func (c *LunarGo) LunarDate(date time.Time) (LunarDate, error) {
	if err := checkRange(date); err != nil {
		return LunarDate{}, err
	}
	lunar := lunargo.NewSolar(date.Year(), int(date.Month()), date.Day(), 12, 0, 0).GetLunar()
	month := lunar.GetMonth()
	leap := month < 0
	if leap {
		month = -month
	}
	return LunarDate{
		Year:  lunar.GetYear(),
		Month: month,
		Day:   lunar.GetDay(),
		Leap:  leap,
	}, nil
}
