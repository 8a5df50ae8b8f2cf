package interaction

import "github.com/zixuanlab/fourpillars/internal/model"

// scoreSpec is the per-category scoring rule: a base score for mere
// presence, a base score for full activation, a strength tier, and a
// decay multiplier per pillar distance 1..4.
type scoreSpec struct {
	combined    float64
	transformed float64
	tier        model.Tier
	decay       [5]float64 // indexed by distance; 0 unused
}

// scoreSpecs is the fixed scoring table, built once and never
// modified. Adjacent pillars score full; each further step decays per
// category.
var scoreSpecs = map[model.InteractionCategory]scoreSpec{
	model.ThreeMeeting: {
		combined:    80,
		transformed: 100,
		tier:        model.TierStrong,
		decay:       [5]float64{0, 1.0, 0.9, 0.75, 0.6},
	},
	model.ThreeCombination: {
		combined:    60,
		transformed: 80,
		tier:        model.TierNormal,
		decay:       [5]float64{0, 1.0, 0.8, 0.6, 0.4},
	},
	model.HalfMeeting: {
		combined:    40,
		transformed: 55,
		tier:        model.TierNormal,
		decay:       [5]float64{0, 1.0, 0.8, 0.6, 0.4},
	},
	model.ArchedCombination: {
		combined:    30,
		transformed: 40,
		tier:        model.TierNormal,
		decay:       [5]float64{0, 1.0, 0.75, 0.5, 0.25},
	},
	model.SixHarmony: {
		combined:    25,
		transformed: 35,
		tier:        model.TierWeak,
		decay:       [5]float64{0, 1.0, 0.7, 0.45, 0.2},
	},
	model.StemCombination: {
		combined:    35,
		transformed: 50,
		tier:        model.TierWeak,
		decay:       [5]float64{0, 1.0, 0.7, 0.45, 0.2},
	},
}

// score computes the effective score for a category at the observed
// pillar distance.
func score(cat model.InteractionCategory, transformed bool, distance int) float64 {
	spec := scoreSpecs[cat]
	if distance < 1 {
		distance = 1
	}
	if distance > 4 {
		distance = 4
	}
	base := spec.combined
	if transformed {
		base = spec.transformed
	}
	return base * spec.decay[distance]
}

// tierOf returns a category's strength tier.
func tierOf(cat model.InteractionCategory) model.Tier {
	return scoreSpecs[cat].tier
}

// ResolveTransformations decides, per branch, which single transformation
// (if any) changes its effective element for display. Only fully
// activated interactions compete; higher tiers win, ties broken by
// higher score.
func ResolveTransformations(interactions []model.Interaction) map[model.Branch]model.Element {
	type claim struct {
		tier  model.Tier
		score float64
	}
	winners := make(map[model.Branch]model.Element)
	best := make(map[model.Branch]claim)

	for _, in := range interactions {
		if !in.Transformed {
			continue
		}
		for _, b := range in.Branches {
			cur, ok := best[b]
			if !ok || in.Tier > cur.tier || (in.Tier == cur.tier && in.Score > cur.score) {
				best[b] = claim{tier: in.Tier, score: in.Score}
				winners[b] = in.Into
			}
		}
	}
	return winners
}
