package chart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zixuanlab/fourpillars/internal/calendar"
	"github.com/zixuanlab/fourpillars/internal/model"
)

func pillar(s model.Stem, b model.Branch) model.Pillar {
	return model.Pillar{Stem: s, Branch: b}
}

func TestGenerateWithBirthTime(t *testing.T) {
	fake := calendar.NewFake()
	birth := time.Date(1990, time.January, 15, 10, 30, 0, 0, time.Local)
	fake.SetTimedPillars(birth, calendar.PillarSet{
		Year:  pillar(model.StemJi, model.BranchSi),      // Ji Si
		Month: pillar(model.StemDing, model.BranchChou),  // Ding Chou
		Day:   pillar(model.StemGeng, model.BranchChen),  // Geng Chen
		Hour:  pillar(model.StemXin, model.BranchSi),     // Xin Si
	})

	gen := NewGenerator(fake)
	chart, err := gen.Generate(context.Background(), BirthInput{
		Year: 1990, Month: time.January, Day: 15,
		Hour: 10, Minute: 30, HasTime: true,
		Gender: model.Male,
	})
	require.NoError(t, err)

	year, ok := chart.Pillar(model.SlotYear)
	require.True(t, ok)
	assert.Equal(t, "Ji Si", year.String())

	month, ok := chart.Pillar(model.SlotMonth)
	require.True(t, ok)
	assert.Equal(t, "Ding Chou", month.String())

	hour, ok := chart.Pillar(model.SlotHour)
	require.True(t, ok)
	assert.Equal(t, "Xin Si", hour.String())
	assert.True(t, chart.HasHour())
}

func TestGenerateWithoutBirthTimeOmitsHourPillar(t *testing.T) {
	fake := calendar.NewFake()
	date := time.Date(1990, time.January, 15, 0, 0, 0, 0, time.Local)
	fake.SetPillars(date, calendar.PillarSet{
		Year:  pillar(model.StemJi, model.BranchSi),
		Month: pillar(model.StemDing, model.BranchChou),
		Day:   pillar(model.StemGeng, model.BranchChen),
	})

	gen := NewGenerator(fake)
	chart, err := gen.Generate(context.Background(), BirthInput{
		Year: 1990, Month: time.January, Day: 15,
		Gender: model.Female,
	})
	require.NoError(t, err)

	_, ok := chart.Pillar(model.SlotHour)
	assert.False(t, ok)
	assert.False(t, chart.HasHour())
}

func TestGenerateLateHourShiftsDayPillarOnly(t *testing.T) {
	fake := calendar.NewFake()
	birth := time.Date(1995, time.August, 10, 23, 30, 0, 0, time.Local)
	fake.SetTimedPillars(birth, calendar.PillarSet{
		Year:  pillar(model.StemYi, model.BranchHai),
		Month: pillar(model.StemJia, model.BranchShen),
		Day:   pillar(model.StemWu, model.BranchShen), // unshifted 1995-08-10
		Hour:  pillar(model.StemRen, model.BranchZi),
	})
	nextMidnight := time.Date(1995, time.August, 11, 0, 0, 0, 0, time.Local)
	fake.SetTimedPillars(nextMidnight, calendar.PillarSet{
		Year:  pillar(model.StemYi, model.BranchHai),
		Month: pillar(model.StemJia, model.BranchShen),
		Day:   pillar(model.StemJi, model.BranchYou), // 1995-08-11
		Hour:  pillar(model.StemJia, model.BranchZi),
	})

	gen := NewGenerator(fake)
	chart, err := gen.Generate(context.Background(), BirthInput{
		Year: 1995, Month: time.August, Day: 10,
		Hour: 23, Minute: 30, HasTime: true,
		Gender: model.Male,
	})
	require.NoError(t, err)

	// Day pillar belongs to 1995-08-11.
	day, ok := chart.Pillar(model.SlotDay)
	require.True(t, ok)
	assert.Equal(t, "Ji You", day.String())

	// Year and month keep the unshifted date's resolution.
	year, _ := chart.Pillar(model.SlotYear)
	assert.Equal(t, "Yi Hai", year.String())
	month, _ := chart.Pillar(model.SlotMonth)
	assert.Equal(t, "Jia Shen", month.String())

	// The hour pillar comes from the original instant.
	hour, _ := chart.Pillar(model.SlotHour)
	assert.Equal(t, "Ren Zi", hour.String())
}

func TestGenerateHour23EqualsNextDayMidnightDayPillar(t *testing.T) {
	fake := calendar.NewFake()
	d := time.Date(2024, time.March, 5, 23, 0, 0, 0, time.Local)
	next := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.Local)

	fake.SetTimedPillars(d, calendar.PillarSet{
		Year:  pillar(model.StemJia, model.BranchChen),
		Month: pillar(model.StemDing, model.BranchMao),
		Day:   pillar(model.StemBing, model.BranchYin),
		Hour:  pillar(model.StemWu, model.BranchZi),
	})
	fake.SetTimedPillars(next, calendar.PillarSet{
		Year:  pillar(model.StemJia, model.BranchChen),
		Month: pillar(model.StemDing, model.BranchMao),
		Day:   pillar(model.StemDing, model.BranchMao),
		Hour:  pillar(model.StemGeng, model.BranchZi),
	})

	gen := NewGenerator(fake)

	at23, err := gen.Generate(context.Background(), BirthInput{
		Year: 2024, Month: time.March, Day: 5, Hour: 23, HasTime: true, Gender: model.Male,
	})
	require.NoError(t, err)
	atMidnight, err := gen.Generate(context.Background(), BirthInput{
		Year: 2024, Month: time.March, Day: 6, Hour: 0, HasTime: true, Gender: model.Male,
	})
	require.NoError(t, err)

	d1, _ := at23.Pillar(model.SlotDay)
	d2, _ := atMidnight.Pillar(model.SlotDay)
	assert.Equal(t, d2, d1, "23:00 day pillar must equal next day's midnight day pillar")
}

func TestGenerateConversionErrorPropagates(t *testing.T) {
	fake := calendar.NewFake() // no resolutions registered
	gen := NewGenerator(fake)

	_, err := gen.Generate(context.Background(), BirthInput{
		Year: 1990, Month: time.January, Day: 15, Gender: model.Male,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConversion)
}
