// Package interaction detects the combinatorial relationships among a
// chart's stems and branches — meetings, combinations, harmonies and
// stem pairings — and scores them with distance-based decay.
package interaction

import (
	"fmt"
	"sort"

	"github.com/zixuanlab/fourpillars/internal/model"
)

// Detector finds all interactions in a chart's populated pillar slots.
// Stateless; safe for concurrent use.
type Detector struct{}

// NewDetector creates an interaction detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect scans every populated slot of the chart and returns the merged
// interaction set keyed by canonical identity.
func (d *Detector) Detect(chart *model.Chart) (map[string]model.Interaction, error) {
	branchSlots := make(map[model.Branch][]model.Slot)
	stemSlots := make(map[model.Stem][]model.Slot)

	for _, slot := range chart.Slots() {
		p, _ := chart.Pillar(slot)
		if !p.Stem.Valid() || !p.Branch.Valid() {
			return nil, fmt.Errorf("%w: slot %s holds corrupt pillar (%d,%d)",
				model.ErrIntegrity, slot, int(p.Stem), int(p.Branch))
		}
		branchSlots[p.Branch] = append(branchSlots[p.Branch], slot)
		stemSlots[p.Stem] = append(stemSlots[p.Stem], slot)
	}

	out := make(map[string]model.Interaction)
	add := func(in model.Interaction) {
		out[in.Key()] = in
	}

	d.detectMeetings(branchSlots, add)
	d.detectCombinations(branchSlots, add)
	d.detectHarmonies(branchSlots, add)
	d.detectStemPairs(stemSlots, branchSlots, add)

	return out, nil
}

// DetectSorted returns the interaction set as a slice ordered by
// descending score, then key, for stable display.
func (d *Detector) DetectSorted(chart *model.Chart) ([]model.Interaction, error) {
	merged, err := d.Detect(chart)
	if err != nil {
		return nil, err
	}
	out := make([]model.Interaction, 0, len(merged))
	for _, in := range merged {
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Key() < out[j].Key()
	})
	return out, nil
}

// detectMeetings emits full three-meetings and, for exactly two present
// members including the storage branch, half meetings.
func (d *Detector) detectMeetings(branchSlots map[model.Branch][]model.Slot, add func(model.Interaction)) {
	for _, tr := range model.ThreeMeetings() {
		present := presentMembers(tr, branchSlots)
		switch len(present) {
		case 3:
			add(build(model.ThreeMeeting, present, nil, tr.Into, true, branchSlots))
		case 2:
			// Half meetings require the seasonal storage branch; two
			// non-storage members do not combine.
			if present[0] != tr.Storage && present[1] != tr.Storage {
				continue
			}
			missing := absentMembers(tr, present)
			add(build(model.HalfMeeting, present, missing, tr.Into, false, branchSlots))
		}
	}
}

// detectCombinations emits full three-combinations and, for incomplete
// triplets, an arched combination for every present pair.
func (d *Detector) detectCombinations(branchSlots map[model.Branch][]model.Slot, add func(model.Interaction)) {
	for _, tr := range model.ThreeCombinations() {
		present := presentMembers(tr, branchSlots)
		if len(present) == 3 {
			add(build(model.ThreeCombination, present, nil, tr.Into, true, branchSlots))
			continue
		}
		if len(present) != 2 {
			continue
		}
		// Any pair arches toward the triplet's element, no storage
		// requirement.
		missing := absentMembers(tr, present)
		add(build(model.ArchedCombination, present, missing, tr.Into, false, branchSlots))
	}
}

// detectHarmonies emits a six-harmony for each present partner pair.
func (d *Detector) detectHarmonies(branchSlots map[model.Branch][]model.Slot, add func(model.Interaction)) {
	for b := model.BranchZi; b <= model.BranchHai; b++ {
		partner, into := b.HarmonyPartner()
		if b > partner {
			continue // each pair once
		}
		if len(branchSlots[b]) == 0 || len(branchSlots[partner]) == 0 {
			continue
		}
		add(build(model.SixHarmony, []model.Branch{b, partner}, nil, into, true, branchSlots))
	}
}

// detectStemPairs emits stem combinations. Transformation is
// conditional on the target element appearing among the chart's
// branches; the condition is recorded, not resolved.
func (d *Detector) detectStemPairs(stemSlots map[model.Stem][]model.Slot, branchSlots map[model.Branch][]model.Slot, add func(model.Interaction)) {
	for s := model.StemJia; s <= model.StemGui; s++ {
		partner, into := s.CombinationPartner()
		if s > partner {
			continue
		}
		if len(stemSlots[s]) == 0 || len(stemSlots[partner]) == 0 {
			continue
		}

		stems := []model.Stem{s, partner}
		dist := pairDistance(stemSlots[s], stemSlots[partner])
		in := model.Interaction{
			Category:  model.StemCombination,
			Stems:     stems,
			Slots:     contributingSlots(nil, stems, nil, stemSlots),
			Into:      into,
			Condition: fmt.Sprintf("transforms only if %s is present among the chart's branches", into),
			Tier:      tierOf(model.StemCombination),
		}
		in.Score = score(model.StemCombination, false, dist)
		add(in)
	}
}

// presentMembers returns the triplet members present in the chart, in
// canonical (ascending) order.
func presentMembers(tr model.Triplet, branchSlots map[model.Branch][]model.Slot) []model.Branch {
	var present []model.Branch
	for _, m := range tr.Members {
		if len(branchSlots[m]) > 0 {
			present = append(present, m)
		}
	}
	sort.Slice(present, func(i, j int) bool { return present[i] < present[j] })
	return present
}

// absentMembers returns the triplet members not in present.
func absentMembers(tr model.Triplet, present []model.Branch) []model.Branch {
	var missing []model.Branch
	for _, m := range tr.Members {
		found := false
		for _, p := range present {
			if p == m {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, m)
		}
	}
	return missing
}

// build assembles a branch interaction with canonical ordering and its
// distance-decayed score.
func build(cat model.InteractionCategory, branches, missing []model.Branch, into model.Element, transformed bool, branchSlots map[model.Branch][]model.Slot) model.Interaction {
	sorted := make([]model.Branch, len(branches))
	copy(sorted, branches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	dist := groupDistance(sorted, branchSlots)
	in := model.Interaction{
		Category:    cat,
		Branches:    sorted,
		Slots:       contributingSlots(sorted, nil, branchSlots, nil),
		Into:        into,
		Missing:     missing,
		Tier:        tierOf(cat),
		Transformed: transformed,
	}
	in.Score = score(cat, transformed, dist)
	return in
}

// pairDistance is the smallest slot distance between any slot holding a
// and any slot holding b.
func pairDistance(a, b []model.Slot) int {
	best := 4
	for _, sa := range a {
		for _, sb := range b {
			if d := model.SlotDistance(sa, sb); d < best {
				best = d
			}
		}
	}
	return best
}

// groupDistance is the widest pairwise distance among the group's
// members, with each member contributing its nearest slot. A symbol
// present in several slots counts its closest occurrence.
func groupDistance(branches []model.Branch, branchSlots map[model.Branch][]model.Slot) int {
	worst := 1
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			d := pairDistance(branchSlots[branches[i]], branchSlots[branches[j]])
			if d > worst {
				worst = d
			}
		}
	}
	return worst
}

// contributingSlots returns the sorted distinct slots holding any of
// the participants.
func contributingSlots(branches []model.Branch, stems []model.Stem, branchSlots map[model.Branch][]model.Slot, stemSlots map[model.Stem][]model.Slot) []model.Slot {
	seen := make(map[model.Slot]bool)
	var out []model.Slot
	for _, b := range branches {
		for _, s := range branchSlots[b] {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	for _, st := range stems {
		for _, s := range stemSlots[st] {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
