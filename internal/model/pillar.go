package model

import "fmt"

// CycleLength is the number of valid stem-branch pairings.
const CycleLength = 60

// Pillar is one valid stem-branch pair drawn from the 60-position
// sexagenary cycle.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

func (p Pillar) String() string {
	return p.Stem.String() + " " + p.Branch.String()
}

// Chinese returns the pillar as a two-character ganzhi string.
func (p Pillar) Chinese() string {
	return p.Stem.Chinese() + p.Branch.Chinese()
}

// Index returns the pillar's position 0..59 in the sexagenary cycle.
// Not every stem-branch cross product is a valid pillar: the stem index
// mod 10 and branch index mod 12 must land on the same cycle position.
func (p Pillar) Index() (int, error) {
	return PillarIndex(p.Stem, p.Branch)
}

// PillarIndex returns the cycle position of the (stem, branch) pair, or
// ErrInvalidPillar for the 60 impossible pairings.
func PillarIndex(s Stem, b Branch) (int, error) {
	if !s.Valid() {
		return 0, fmt.Errorf("%w: stem %d out of range", ErrInvalidPillar, int(s))
	}
	if !b.Valid() {
		return 0, fmt.Errorf("%w: branch %d out of range", ErrInvalidPillar, int(b))
	}
	// A pairing is valid iff stem and branch share parity; the unique
	// cycle index then satisfies i ≡ s (mod 10) and i ≡ b (mod 12).
	if int(s)%2 != int(b)%2 {
		return 0, fmt.Errorf("%w: %s does not pair with %s", ErrInvalidPillar, s, b)
	}
	for i := int(b); i < CycleLength; i += BranchCount {
		if i%StemCount == int(s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s does not pair with %s", ErrInvalidPillar, s, b)
}

// PillarAt returns the pillar at cycle position i, taken mod 60.
func PillarAt(i int) Pillar {
	i = ((i % CycleLength) + CycleLength) % CycleLength
	return Pillar{Stem: Stem(i % StemCount), Branch: Branch(i % BranchCount)}
}

// Step returns the pillar n positions away in the cycle; n may be
// negative.
func (p Pillar) Step(n int) (Pillar, error) {
	i, err := p.Index()
	if err != nil {
		return Pillar{}, err
	}
	return PillarAt(i + n), nil
}
