package model

// RatingTier classifies a day's auspiciousness in the Dong Gong
// calendar: a numeric value plus a display symbol and label.
type RatingTier struct {
	Value  int
	Symbol string
	Label  string
}

// The fixed rating tiers, best first. Dire is reserved for forbidden
// days; Consult marks days promoted for expert review.
var (
	RatingExcellent = RatingTier{Value: 4, Symbol: "◎", Label: "excellent"}
	RatingGood      = RatingTier{Value: 3, Symbol: "○", Label: "good"}
	RatingAverage   = RatingTier{Value: 2, Symbol: "—", Label: "average"}
	RatingBad       = RatingTier{Value: 1, Symbol: "×", Label: "bad"}
	RatingDire      = RatingTier{Value: 0, Symbol: "✕", Label: "dire"}
	RatingConsult   = RatingTier{Value: -1, Symbol: "?", Label: "consult"}
)

// Officer is one of the twelve day officers governing a day.
type Officer string

// The twelve officers in their fixed cycle order.
const (
	OfficerJian  Officer = "Jian"  // 建 establish
	OfficerChu   Officer = "Chu"   // 除 remove
	OfficerMan   Officer = "Man"   // 满 full
	OfficerPing  Officer = "Ping"  // 平 balance
	OfficerDing  Officer = "Ding"  // 定 stable
	OfficerZhi   Officer = "Zhi"   // 执 initiate
	OfficerPo    Officer = "Po"    // 破 destruction
	OfficerWei   Officer = "Wei"   // 危 danger
	OfficerCheng Officer = "Cheng" // 成 success
	OfficerShou  Officer = "Shou"  // 收 receive
	OfficerKai   Officer = "Kai"   // 开 open
	OfficerBi    Officer = "Bi"    // 闭 close
)

// Activities holds a day's recommended and inadvisable activity lists
// with bilingual descriptions.
type Activities struct {
	Recommended   []string
	Avoid         []string
	DescriptionEN string
	DescriptionZH string
}

// ForbiddenWindow is a day-specific inauspicious interval in decimal
// hours [Start, End), derived from a Four Extinction or Four Separation
// solar term. Computed on demand, never stored.
type ForbiddenWindow struct {
	TermName string
	// Kind is "four_extinction" or "four_separation".
	Kind string
	// Start and End are decimal hours within the evaluated day,
	// rounded to 2 decimal places; End is exclusive.
	Start float64
	End   float64
}

// Contains reports whether the decimal hour falls inside the window.
func (w ForbiddenWindow) Contains(hour float64) bool {
	return hour >= w.Start && hour < w.End
}

// ConsultPromotion records a rating promoted to the consult tier, with
// the original rating retained for display provenance.
type ConsultPromotion struct {
	Original RatingTier
	Reason   string
}

// DayRecord is the Dong Gong verdict for one calendar day. Officer,
// Rating, Activities, Forbidden and Consult are all optional: a day
// whose lunar month cannot be resolved simply omits them.
type DayRecord struct {
	Pillar     Pillar
	LunarMonth int
	LunarDay   int
	MoonPhase  string
	Officer    *Officer
	Rating     *RatingTier
	Activities *Activities
	Forbidden  *ForbiddenWindow
	Consult    *ConsultPromotion
}
