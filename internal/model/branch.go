package model

import "fmt"

// Branch is one of the twelve earthly branches, indexed 0 (Zi) through
// 11 (Hai).
type Branch int

// The twelve earthly branches in cycle order.
const (
	BranchZi   Branch = iota // 子 Water
	BranchChou               // 丑 Earth
	BranchYin                // 寅 Wood
	BranchMao                // 卯 Wood
	BranchChen               // 辰 Earth
	BranchSi                 // 巳 Fire
	BranchWu                 // 午 Fire
	BranchWei                // 未 Earth
	BranchShen               // 申 Metal
	BranchYou                // 酉 Metal
	BranchXu                 // 戌 Earth
	BranchHai                // 亥 Water
)

// BranchCount is the size of the earthly branch cycle.
const BranchCount = 12

var branchNames = [BranchCount]string{"Zi", "Chou", "Yin", "Mao", "Chen", "Si", "Wu", "Wei", "Shen", "You", "Xu", "Hai"}

var branchChinese = [BranchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var branchElements = [BranchCount]Element{Water, Earth, Wood, Wood, Earth, Fire, Fire, Earth, Metal, Metal, Earth, Water}

// QiShare is one entry of a branch's hidden-qi distribution: a stem
// latently stored inside the branch and its percentage weight.
type QiShare struct {
	Stem    Stem
	Percent int
}

// branchQi lists each branch's hidden stems in descending weight.
// Percentages sum to 100 per branch.
var branchQi = [BranchCount][]QiShare{
	BranchZi:   {{StemGui, 100}},
	BranchChou: {{StemJi, 60}, {StemGui, 30}, {StemXin, 10}},
	BranchYin:  {{StemJia, 60}, {StemBing, 30}, {StemWu, 10}},
	BranchMao:  {{StemYi, 100}},
	BranchChen: {{StemWu, 60}, {StemYi, 30}, {StemGui, 10}},
	BranchSi:   {{StemBing, 60}, {StemGeng, 30}, {StemWu, 10}},
	BranchWu:   {{StemDing, 70}, {StemJi, 30}},
	BranchWei:  {{StemJi, 60}, {StemDing, 30}, {StemYi, 10}},
	BranchShen: {{StemGeng, 60}, {StemRen, 30}, {StemWu, 10}},
	BranchYou:  {{StemXin, 100}},
	BranchXu:   {{StemWu, 60}, {StemXin, 30}, {StemDing, 10}},
	BranchHai:  {{StemRen, 70}, {StemJia, 30}},
}

// branchHarmonies maps each branch to its six-harmony partner and the
// element the pair transforms into.
var branchHarmonies = map[Branch]struct {
	Partner Branch
	Into    Element
}{
	BranchZi:   {BranchChou, Earth},
	BranchChou: {BranchZi, Earth},
	BranchYin:  {BranchHai, Wood},
	BranchHai:  {BranchYin, Wood},
	BranchMao:  {BranchXu, Fire},
	BranchXu:   {BranchMao, Fire},
	BranchChen: {BranchYou, Metal},
	BranchYou:  {BranchChen, Metal},
	BranchSi:   {BranchShen, Water},
	BranchShen: {BranchSi, Water},
	BranchWu:   {BranchWei, Fire},
	BranchWei:  {BranchWu, Fire},
}

// Triplet is a fixed three-branch grouping: a seasonal three-meeting or
// a triangular three-combination. Storage is the earth branch of a
// meeting triplet; it is unset (and Valid only for meetings) otherwise.
type Triplet struct {
	Members    [3]Branch
	Into       Element
	Storage    Branch
	HasStorage bool
}

// Contains reports whether b is a member of the triplet.
func (t Triplet) Contains(b Branch) bool {
	return t.Members[0] == b || t.Members[1] == b || t.Members[2] == b
}

// Others returns the two members of the triplet other than b.
func (t Triplet) Others(b Branch) [2]Branch {
	var out [2]Branch
	i := 0
	for _, m := range t.Members {
		if m != b && i < 2 {
			out[i] = m
			i++
		}
	}
	return out
}

// threeMeetings are the four seasonal (directional) triplets. The last
// member of each is its earth storage branch.
var threeMeetings = []Triplet{
	{Members: [3]Branch{BranchYin, BranchMao, BranchChen}, Into: Wood, Storage: BranchChen, HasStorage: true},
	{Members: [3]Branch{BranchSi, BranchWu, BranchWei}, Into: Fire, Storage: BranchWei, HasStorage: true},
	{Members: [3]Branch{BranchShen, BranchYou, BranchXu}, Into: Metal, Storage: BranchXu, HasStorage: true},
	{Members: [3]Branch{BranchHai, BranchZi, BranchChou}, Into: Water, Storage: BranchChou, HasStorage: true},
}

// threeCombinations are the four triangular triplets.
var threeCombinations = []Triplet{
	{Members: [3]Branch{BranchShen, BranchZi, BranchChen}, Into: Water},
	{Members: [3]Branch{BranchHai, BranchMao, BranchWei}, Into: Wood},
	{Members: [3]Branch{BranchYin, BranchWu, BranchXu}, Into: Fire},
	{Members: [3]Branch{BranchSi, BranchYou, BranchChou}, Into: Metal},
}

// ThreeMeetings returns the four seasonal meeting triplets.
func ThreeMeetings() []Triplet { return threeMeetings }

// ThreeCombinations returns the four triangular combination triplets.
func ThreeCombinations() []Triplet { return threeCombinations }

// Valid reports whether b is inside the closed branch set.
func (b Branch) Valid() bool {
	return b >= BranchZi && b <= BranchHai
}

func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchNames[b]
}

// Chinese returns the branch's Chinese character.
func (b Branch) Chinese() string {
	if !b.Valid() {
		return "?"
	}
	return branchChinese[b]
}

// Element returns the branch's primary element.
func (b Branch) Element() Element {
	return branchElements[b]
}

// Polarity returns Yang for even-indexed branches, Yin for odd.
func (b Branch) Polarity() Polarity {
	if b%2 == 0 {
		return Yang
	}
	return Yin
}

// HiddenQi returns the branch's hidden stem distribution in descending
// weight. Callers must not mutate the returned slice.
func (b Branch) HiddenQi() []QiShare {
	return branchQi[b]
}

// HarmonyPartner returns the branch's six-harmony partner and the
// harmony's transformation element.
func (b Branch) HarmonyPartner() (Branch, Element) {
	h := branchHarmonies[b]
	return h.Partner, h.Into
}

// Meeting returns the seasonal three-meeting triplet b belongs to.
// Every branch belongs to exactly one.
func (b Branch) Meeting() Triplet {
	for _, t := range threeMeetings {
		if t.Contains(b) {
			return t
		}
	}
	return Triplet{} // unreachable for valid branches
}

// Combination returns the triangular three-combination triplet b
// belongs to. Every branch belongs to exactly one.
func (b Branch) Combination() Triplet {
	for _, t := range threeCombinations {
		if t.Contains(b) {
			return t
		}
	}
	return Triplet{} // unreachable for valid branches
}

// ParseBranchChinese resolves a Chinese branch character back into the
// closed branch set.
func ParseBranchChinese(ch string) (Branch, error) {
	for i, c := range branchChinese {
		if c == ch {
			return Branch(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown branch symbol %q", ErrParse, ch)
}
