package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchHiddenQiSumsToHundred(t *testing.T) {
	for b := BranchZi; b <= BranchHai; b++ {
		total := 0
		for _, q := range b.HiddenQi() {
			total += q.Percent
		}
		assert.Equal(t, 100, total, "branch %s", b)
	}
}

func TestBranchHiddenQiPrimaryStemMatchesElement(t *testing.T) {
	// The heaviest hidden stem always carries the branch's primary
	// element.
	for b := BranchZi; b <= BranchHai; b++ {
		qi := b.HiddenQi()
		require.NotEmpty(t, qi, "branch %s", b)
		assert.Equal(t, b.Element(), qi[0].Stem.Element(), "branch %s", b)
	}
}

func TestBranchHarmonyPartnersSymmetric(t *testing.T) {
	for b := BranchZi; b <= BranchHai; b++ {
		partner, into := b.HarmonyPartner()
		back, into2 := partner.HarmonyPartner()
		assert.Equal(t, b, back, "%s harmony symmetric", b)
		assert.Equal(t, into, into2, "%s harmony element", b)
	}
}

func TestEveryBranchBelongsToOneMeetingAndOneCombination(t *testing.T) {
	for b := BranchZi; b <= BranchHai; b++ {
		meetings := 0
		for _, tr := range ThreeMeetings() {
			if tr.Contains(b) {
				meetings++
			}
		}
		assert.Equal(t, 1, meetings, "branch %s meeting membership", b)

		combos := 0
		for _, tr := range ThreeCombinations() {
			if tr.Contains(b) {
				combos++
			}
		}
		assert.Equal(t, 1, combos, "branch %s combination membership", b)
	}
}

func TestMeetingStorageIsEarthBranch(t *testing.T) {
	for _, tr := range ThreeMeetings() {
		require.True(t, tr.HasStorage)
		assert.Equal(t, Earth, tr.Storage.Element(), "storage of %v", tr.Members)
	}
}

func TestTripletOthers(t *testing.T) {
	tr := BranchZi.Combination() // Shen-Zi-Chen, Water
	assert.Equal(t, Water, tr.Into)
	others := tr.Others(BranchZi)
	assert.ElementsMatch(t, []Branch{BranchShen, BranchChen}, others[:])
}

func TestParseBranchChinese(t *testing.T) {
	b, err := ParseBranchChinese("丑")
	require.NoError(t, err)
	assert.Equal(t, BranchChou, b)

	_, err = ParseBranchChinese("甲")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}
