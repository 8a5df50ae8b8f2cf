package donggong

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zixuanlab/fourpillars/internal/calendar"
	"github.com/zixuanlab/fourpillars/internal/model"
)

func newTestEngine(t *testing.T) (*Engine, *calendar.Fake) {
	t.Helper()
	fake := calendar.NewFake()
	eng, err := NewEngine(fake)
	require.NoError(t, err)
	return eng, fake
}

// registerDay pins a date-only resolution plus a lunar reading.
func registerDay(fake *calendar.Fake, date time.Time, month, day model.Pillar, lunarDay int) {
	fake.SetPillars(date, calendar.PillarSet{
		Year:  model.Pillar{Stem: model.StemYi, Branch: model.BranchSi},
		Month: month,
		Day:   day,
	})
	fake.LunarDates[calendar.DateKey(date)] = calendar.LunarDate{Year: 2025, Month: 5, Day: lunarDay}
}

func hourPtr(h float64) *float64 { return &h }

func TestRateNormalDay(t *testing.T) {
	eng, fake := newTestEngine(t)
	date := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.Local)
	// Month branch Yin resolves to lunar month 1; the Yin day is the
	// establish day.
	registerDay(fake, date,
		model.Pillar{Stem: model.StemWu, Branch: model.BranchYin},
		model.Pillar{Stem: model.StemJia, Branch: model.BranchYin}, 15)

	rec, err := eng.Rate(context.Background(), date, nil)
	require.NoError(t, err)

	require.NotNil(t, rec.Officer)
	assert.Equal(t, model.OfficerJian, *rec.Officer)
	require.NotNil(t, rec.Rating)
	assert.Equal(t, model.RatingAverage, *rec.Rating)
	require.NotNil(t, rec.Activities)
	assert.NotEmpty(t, rec.Activities.Recommended)
	assert.Equal(t, 1, rec.LunarMonth)
	assert.Equal(t, "full moon", rec.MoonPhase)
	assert.Nil(t, rec.Forbidden)
	assert.Nil(t, rec.Consult)
}

func TestRateForbiddenFourExtinction(t *testing.T) {
	eng, fake := newTestEngine(t)
	date := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.Local)
	registerDay(fake, date,
		model.Pillar{Stem: model.StemWu, Branch: model.BranchYin},
		model.Pillar{Stem: model.StemJia, Branch: model.BranchYin}, 6)
	// Li Chun falls on the rated day at 10:13.
	fake.AddTerm("立春", time.Date(2025, time.February, 3, 10, 13, 0, 0, time.Local))

	rec, err := eng.Rate(context.Background(), date, nil)
	require.NoError(t, err)

	require.NotNil(t, rec.Forbidden)
	assert.Equal(t, "four_extinction", rec.Forbidden.Kind)
	assert.Equal(t, "立春", rec.Forbidden.TermName)
	assert.Equal(t, 0.0, rec.Forbidden.Start)
	assert.InDelta(t, 10.22, rec.Forbidden.End, 0.001)

	require.NotNil(t, rec.Rating)
	assert.Equal(t, model.RatingDire, *rec.Rating, "forbidden overrides the officer-based rating")
	assert.Nil(t, rec.Consult, "consult never applies to a forbidden day")
}

func TestRateForbiddenWindowEndExclusive(t *testing.T) {
	eng, fake := newTestEngine(t)
	date := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.Local)
	registerDay(fake, date,
		model.Pillar{Stem: model.StemWu, Branch: model.BranchYin},
		model.Pillar{Stem: model.StemJia, Branch: model.BranchYin}, 6)
	fake.AddTerm("立春", time.Date(2025, time.February, 3, 10, 13, 0, 0, time.Local))

	// The term's own hour is outside the window.
	atTerm, err := eng.Rate(context.Background(), date, hourPtr(10.22))
	require.NoError(t, err)
	assert.Nil(t, atTerm.Forbidden)
	require.NotNil(t, atTerm.Rating)
	assert.NotEqual(t, model.RatingDire, *atTerm.Rating)

	// The hour immediately before is forbidden.
	before, err := eng.Rate(context.Background(), date, hourPtr(10.21))
	require.NoError(t, err)
	require.NotNil(t, before.Forbidden)
	assert.Equal(t, model.RatingDire, *before.Rating)
}

func TestRateForbiddenFromNextDayTerm(t *testing.T) {
	eng, fake := newTestEngine(t)
	date := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.Local)
	registerDay(fake, date,
		model.Pillar{Stem: model.StemWu, Branch: model.BranchYin},
		model.Pillar{Stem: model.StemJia, Branch: model.BranchYin}, 3)
	// The solstice falls on the following day at 03:30, so this day is
	// forbidden from 03:30 onward.
	fake.AddTerm("夏至", time.Date(2025, time.June, 21, 3, 30, 0, 0, time.Local))

	morning, err := eng.Rate(context.Background(), date, hourPtr(2.0))
	require.NoError(t, err)
	assert.Nil(t, morning.Forbidden)

	noon, err := eng.Rate(context.Background(), date, hourPtr(12.0))
	require.NoError(t, err)
	require.NotNil(t, noon.Forbidden)
	assert.Equal(t, "four_separation", noon.Forbidden.Kind)
	assert.InDelta(t, 3.5, noon.Forbidden.Start, 0.001)
	assert.Equal(t, 24.0, noon.Forbidden.End)
}

func TestRateConsultPromotion(t *testing.T) {
	eng, fake := newTestEngine(t)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	// Month branch Mao (lunar month 2), day Bing Zi: the Bing stem
	// override raises the branch base, promoting the day to consult.
	registerDay(fake, date,
		model.Pillar{Stem: model.StemDing, Branch: model.BranchMao},
		model.Pillar{Stem: model.StemBing, Branch: model.BranchZi}, 11)

	rec, err := eng.Rate(context.Background(), date, nil)
	require.NoError(t, err)

	require.NotNil(t, rec.Consult)
	require.NotNil(t, rec.Rating)
	assert.Equal(t, model.RatingConsult, *rec.Rating)
	assert.Equal(t, model.RatingGood, rec.Consult.Original, "original rating retained for provenance")
	assert.Contains(t, rec.Consult.Reason, "Bing")
}

func TestRateUnresolvableMonthIsSoftAbsence(t *testing.T) {
	eng, fake := newTestEngine(t)
	date := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local)
	registerDay(fake, date,
		model.Pillar{Stem: model.StemWu, Branch: model.Branch(50)},
		model.Pillar{Stem: model.StemJia, Branch: model.BranchYin}, 4)

	rec, err := eng.Rate(context.Background(), date, nil)
	require.NoError(t, err, "unresolvable month is not an error")
	assert.Nil(t, rec.Officer)
	assert.Nil(t, rec.Rating)
	assert.Nil(t, rec.Forbidden)
	assert.Nil(t, rec.Consult)
	assert.Equal(t, "Jia Yin", rec.Pillar.String())
}

func TestRateMissingCellStillScansForbidden(t *testing.T) {
	// A resolvable month whose cell is absent from the tables loses
	// officer data only; the forbidden scan must still run.
	fake := calendar.NewFake()
	eng := &Engine{conv: fake, tables: &Tables{entries: map[int]map[model.Branch]dayEntry{}}}

	date := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.Local)
	registerDay(fake, date,
		model.Pillar{Stem: model.StemWu, Branch: model.BranchYin},
		model.Pillar{Stem: model.StemJia, Branch: model.BranchYin}, 6)
	fake.AddTerm("立春", time.Date(2025, time.February, 3, 10, 13, 0, 0, time.Local))

	rec, err := eng.Rate(context.Background(), date, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, rec.LunarMonth)
	assert.Nil(t, rec.Officer)
	assert.Nil(t, rec.Activities)
	require.NotNil(t, rec.Forbidden)
	assert.Equal(t, "立春", rec.Forbidden.TermName)
	require.NotNil(t, rec.Rating)
	assert.Equal(t, model.RatingDire, *rec.Rating)
}
