package model

// InteractionCategory names one of the six relationship detections.
type InteractionCategory string

// Interaction categories.
const (
	// ThreeMeeting is a full seasonal (directional) triplet.
	ThreeMeeting InteractionCategory = "three_meeting"
	// ThreeCombination is a full triangular triplet.
	ThreeCombination InteractionCategory = "three_combination"
	// HalfMeeting is two of a seasonal triplet including its storage
	// branch.
	HalfMeeting InteractionCategory = "half_meeting"
	// ArchedCombination is any two of a triangular triplet.
	ArchedCombination InteractionCategory = "arched_combination"
	// SixHarmony is a branch paired with its harmony partner.
	SixHarmony InteractionCategory = "six_harmony"
	// StemCombination is a stem paired with its combination partner.
	StemCombination InteractionCategory = "stem_combination"
)

// Tier orders interaction categories for precedence when competing
// transformations claim the same symbol. Higher wins.
type Tier int

// Strength tiers, weakest first.
const (
	TierWeak Tier = iota
	TierNormal
	TierStrong
	TierUltraStrong
)

func (t Tier) String() string {
	switch t {
	case TierWeak:
		return "weak"
	case TierNormal:
		return "normal"
	case TierStrong:
		return "strong"
	case TierUltraStrong:
		return "ultra_strong"
	}
	return "unknown"
}

// Interaction is one detected relationship among 2-3 branches or 2
// stems.
type Interaction struct {
	Category InteractionCategory
	// Branches participating, in canonical (sorted) order; empty for
	// stem pairings.
	Branches []Branch
	// Stems participating, canonical order; empty for branch relations.
	Stems []Stem
	// Slots that contributed the participants, for distance scoring.
	Slots []Slot
	// Into is the transformation element, when the category declares
	// one.
	Into Element
	// Missing lists absent triplet members for partial matches.
	Missing []Branch
	// Condition, when set, is an unresolved activation requirement
	// (stem combinations transform only if Into is also present among
	// the chart's branches; recorded, not resolved here).
	Condition string
	// Tier is the category's strength tier.
	Tier Tier
	// Score is the effective score for the observed pillar distance.
	Score float64
	// Transformed reports full activation (vs mere presence).
	Transformed bool
}

// Key returns the canonical identity of the interaction: category plus
// sorted participant symbols. A relation keys identically no matter
// which pillar contributed which symbol first.
func (i Interaction) Key() string {
	k := string(i.Category)
	for _, b := range i.Branches {
		k += ":" + b.String()
	}
	for _, s := range i.Stems {
		k += ":" + s.String()
	}
	return k
}
