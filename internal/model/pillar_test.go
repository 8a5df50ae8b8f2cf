package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPillarIndexRoundTrip(t *testing.T) {
	for i := 0; i < CycleLength; i++ {
		p := PillarAt(i)
		got, err := PillarIndex(p.Stem, p.Branch)
		require.NoError(t, err, "index %d", i)
		assert.Equal(t, i, got, "round trip at %d (%s)", i, p)
	}
}

func TestPillarIndexRejectsImpossiblePairs(t *testing.T) {
	tests := []struct {
		name   string
		stem   Stem
		branch Branch
	}{
		{name: "parity mismatch jia chou", stem: StemJia, branch: BranchChou},
		{name: "parity mismatch yi zi", stem: StemYi, branch: BranchZi},
		{name: "parity mismatch gui wu", stem: StemGui, branch: BranchWu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PillarIndex(tt.stem, tt.branch)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPillar)
		})
	}
}

func TestPillarAtWrapsCycle(t *testing.T) {
	assert.Equal(t, PillarAt(0), PillarAt(60))
	assert.Equal(t, PillarAt(59), PillarAt(-1))
	assert.Equal(t, Pillar{Stem: StemJia, Branch: BranchZi}, PillarAt(0))
	assert.Equal(t, Pillar{Stem: StemGui, Branch: BranchHai}, PillarAt(59))
}

func TestPillarStep(t *testing.T) {
	p := Pillar{Stem: StemDing, Branch: BranchChou} // index 13
	next, err := p.Step(1)
	require.NoError(t, err)
	assert.Equal(t, Pillar{Stem: StemWu, Branch: BranchYin}, next)

	prev, err := p.Step(-1)
	require.NoError(t, err)
	assert.Equal(t, Pillar{Stem: StemBing, Branch: BranchZi}, prev)
}

func TestPillarChinese(t *testing.T) {
	assert.Equal(t, "甲子", PillarAt(0).Chinese())
	assert.Equal(t, "己巳", Pillar{Stem: StemJi, Branch: BranchSi}.Chinese())
}
