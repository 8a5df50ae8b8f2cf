package donggong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zixuanlab/fourpillars/internal/model"
)

func TestOfficerFor(t *testing.T) {
	tests := []struct {
		name        string
		monthBranch model.Branch
		dayBranch   model.Branch
		want        model.Officer
	}{
		{name: "day branch equals month branch is jian", monthBranch: model.BranchYin, dayBranch: model.BranchYin, want: model.OfficerJian},
		{name: "next branch is chu", monthBranch: model.BranchYin, dayBranch: model.BranchMao, want: model.OfficerChu},
		{name: "opposite branch is po", monthBranch: model.BranchYin, dayBranch: model.BranchShen, want: model.OfficerPo},
		{name: "wraps around the cycle", monthBranch: model.BranchHai, dayBranch: model.BranchZi, want: model.OfficerChu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OfficerFor(tt.monthBranch, tt.dayBranch))
		})
	}
}

func TestMonthOrdinal(t *testing.T) {
	tests := []struct {
		branch model.Branch
		want   int
	}{
		{model.BranchYin, 1},
		{model.BranchMao, 2},
		{model.BranchHai, 10},
		{model.BranchZi, 11},
		{model.BranchChou, 12},
	}
	for _, tt := range tests {
		got, ok := MonthOrdinal(tt.branch)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "branch %s", tt.branch)
	}

	_, ok := MonthOrdinal(model.Branch(50))
	assert.False(t, ok)
}

func TestLoadTablesCoversAllMonthsAndBranches(t *testing.T) {
	tables, err := LoadTables()
	require.NoError(t, err)

	for m := 1; m <= 12; m++ {
		for b := model.BranchZi; b <= model.BranchHai; b++ {
			entry, ok := tables.Lookup(m, b)
			require.True(t, ok, "month %d branch %s", m, b)
			assert.NotEmpty(t, entry.Activities().Recommended, "month %d branch %s", m, b)
			assert.NotEmpty(t, entry.Activities().DescriptionZH, "month %d branch %s", m, b)
		}
	}
}

func TestLookupOutsideCoverageIsSoftMiss(t *testing.T) {
	tables, err := LoadTables()
	require.NoError(t, err)

	_, ok := tables.Lookup(13, model.BranchZi)
	assert.False(t, ok)
}

func TestRatingStemOverride(t *testing.T) {
	tables, err := LoadTables()
	require.NoError(t, err)

	// Month 2, day branch Zi carries a Bing override one tier above
	// the branch base.
	entry, ok := tables.Lookup(2, model.BranchZi)
	require.True(t, ok)

	base := entry.BaseRating()
	withOverride := entry.Rating(model.StemBing)
	assert.Greater(t, withOverride.Value, base.Value)

	// A stem without an override keeps the base.
	assert.Equal(t, base, entry.Rating(model.StemJia))
}

func TestMoonPhase(t *testing.T) {
	assert.Equal(t, "new moon", MoonPhase(1))
	assert.Equal(t, "waxing crescent", MoonPhase(5))
	assert.Equal(t, "first quarter", MoonPhase(8))
	assert.Equal(t, "waxing gibbous", MoonPhase(12))
	assert.Equal(t, "full moon", MoonPhase(15))
	assert.Equal(t, "full moon", MoonPhase(16))
	assert.Equal(t, "waning gibbous", MoonPhase(20))
	assert.Equal(t, "last quarter", MoonPhase(23))
	assert.Equal(t, "waning crescent", MoonPhase(28))
	assert.Equal(t, "", MoonPhase(0))
}
