// Package model defines the sexagenary symbol space and the value types
// shared by every engine component: stems, branches, pillars, charts,
// luck pillars, interactions, and day-rating records.
package model

import "fmt"

// Element is one of the five phases a stem or branch belongs to.
type Element int

// The five elements in generation order.
const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

func (e Element) String() string {
	switch e {
	case Wood:
		return "Wood"
	case Fire:
		return "Fire"
	case Earth:
		return "Earth"
	case Metal:
		return "Metal"
	case Water:
		return "Water"
	}
	return fmt.Sprintf("Element(%d)", int(e))
}

// Chinese returns the element's Chinese character.
func (e Element) Chinese() string {
	switch e {
	case Wood:
		return "木"
	case Fire:
		return "火"
	case Earth:
		return "土"
	case Metal:
		return "金"
	case Water:
		return "水"
	}
	return "?"
}

// Polarity is the Yin/Yang quality of a stem or branch.
type Polarity int

// Polarity values.
const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	if p == Yang {
		return "Yang"
	}
	return "Yin"
}

// Stem is one of the ten heavenly stems, indexed 0 (Jia) through 9 (Gui).
type Stem int

// The ten heavenly stems in cycle order.
const (
	StemJia  Stem = iota // 甲 Yang Wood
	StemYi               // 乙 Yin Wood
	StemBing             // 丙 Yang Fire
	StemDing             // 丁 Yin Fire
	StemWu               // 戊 Yang Earth
	StemJi               // 己 Yin Earth
	StemGeng             // 庚 Yang Metal
	StemXin              // 辛 Yin Metal
	StemRen              // 壬 Yang Water
	StemGui              // 癸 Yin Water
)

// StemCount is the size of the heavenly stem cycle.
const StemCount = 10

var stemNames = [StemCount]string{"Jia", "Yi", "Bing", "Ding", "Wu", "Ji", "Geng", "Xin", "Ren", "Gui"}

var stemChinese = [StemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var stemElements = [StemCount]Element{Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water}

// stemCombinations maps each stem to its unique pairing partner and the
// element the pair transforms into: Jia+Ji Earth, Yi+Geng Metal,
// Bing+Xin Water, Ding+Ren Wood, Wu+Gui Fire.
var stemCombinations = map[Stem]struct {
	Partner Stem
	Into    Element
}{
	StemJia:  {StemJi, Earth},
	StemJi:   {StemJia, Earth},
	StemYi:   {StemGeng, Metal},
	StemGeng: {StemYi, Metal},
	StemBing: {StemXin, Water},
	StemXin:  {StemBing, Water},
	StemDing: {StemRen, Wood},
	StemRen:  {StemDing, Wood},
	StemWu:   {StemGui, Fire},
	StemGui:  {StemWu, Fire},
}

// Valid reports whether s is inside the closed stem set.
func (s Stem) Valid() bool {
	return s >= StemJia && s <= StemGui
}

func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemNames[s]
}

// Chinese returns the stem's Chinese character.
func (s Stem) Chinese() string {
	if !s.Valid() {
		return "?"
	}
	return stemChinese[s]
}

// Element returns the stem's fixed element.
func (s Stem) Element() Element {
	return stemElements[s]
}

// Polarity returns Yang for even-indexed stems, Yin for odd.
func (s Stem) Polarity() Polarity {
	if s%2 == 0 {
		return Yang
	}
	return Yin
}

// CombinationPartner returns the stem's unique combination partner and
// the transformation element of the pair.
func (s Stem) CombinationPartner() (Stem, Element) {
	c := stemCombinations[s]
	return c.Partner, c.Into
}

// ParseStemChinese resolves a Chinese stem character back into the
// closed stem set. This is the integrity check applied to every symbol
// the calendar oracle hands back.
func ParseStemChinese(ch string) (Stem, error) {
	for i, c := range stemChinese {
		if c == ch {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown stem symbol %q", ErrParse, ch)
}
