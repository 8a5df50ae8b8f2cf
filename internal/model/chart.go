package model

import "time"

// Gender of the chart's subject; it drives luck-progression direction.
type Gender string

// Gender values.
const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Slot names a pillar position within a chart.
type Slot string

// Chart slots. Natal slots come from the birth instant; the remaining
// slots are filled per analysis request.
const (
	SlotYear     Slot = "year"
	SlotMonth    Slot = "month"
	SlotDay      Slot = "day"
	SlotHour     Slot = "hour"
	SlotLuck     Slot = "luck"
	SlotAnnual   Slot = "annual"
	SlotMonthly  Slot = "monthly"
	SlotDaily    Slot = "daily"
	SlotHourly   Slot = "hourly"
	SlotTalisman Slot = "talisman"
)

// slotOrder fixes pillar adjacency for distance-based score decay:
// neighbouring slots are distance 1 apart.
var slotOrder = []Slot{SlotHour, SlotDay, SlotMonth, SlotYear, SlotLuck, SlotAnnual, SlotMonthly, SlotDaily, SlotHourly, SlotTalisman}

// SlotDistance returns the positional distance between two slots,
// clamped to 1..4. Unknown slots count as maximally distant.
func SlotDistance(a, b Slot) int {
	ia, ib := -1, -1
	for i, s := range slotOrder {
		if s == a {
			ia = i
		}
		if s == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return 4
	}
	d := ia - ib
	if d < 0 {
		d = -d
	}
	if d < 1 {
		d = 1
	}
	if d > 4 {
		d = 4
	}
	return d
}

// Chart is an immutable collection of named pillar slots plus birth
// metadata. Re-analysis builds a new chart; charts are never mutated
// in place.
type Chart struct {
	slots     map[Slot]Pillar
	BirthDate time.Time
	Gender    Gender
	BirthYear int
}

// NewChart builds a chart from its slot assignments. The map is copied;
// the caller's map is not retained.
func NewChart(slots map[Slot]Pillar, gender Gender, birthDate time.Time) *Chart {
	c := &Chart{
		slots:     make(map[Slot]Pillar, len(slots)),
		BirthDate: birthDate,
		Gender:    gender,
		BirthYear: birthDate.Year(),
	}
	for k, v := range slots {
		c.slots[k] = v
	}
	return c
}

// With returns a copy of the chart with one additional slot filled.
func (c *Chart) With(slot Slot, p Pillar) *Chart {
	next := &Chart{
		slots:     make(map[Slot]Pillar, len(c.slots)+1),
		BirthDate: c.BirthDate,
		Gender:    c.Gender,
		BirthYear: c.BirthYear,
	}
	for k, v := range c.slots {
		next.slots[k] = v
	}
	next.slots[slot] = p
	return next
}

// Pillar returns the pillar in the named slot, if present.
func (c *Chart) Pillar(slot Slot) (Pillar, bool) {
	p, ok := c.slots[slot]
	return p, ok
}

// Slots returns the populated slots in fixed adjacency order.
func (c *Chart) Slots() []Slot {
	out := make([]Slot, 0, len(c.slots))
	for _, s := range slotOrder {
		if _, ok := c.slots[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// HasHour reports whether the birth time was known, i.e. an hour pillar
// exists. No hour pillar also means no Xiao Yun.
func (c *Chart) HasHour() bool {
	_, ok := c.slots[SlotHour]
	return ok
}
