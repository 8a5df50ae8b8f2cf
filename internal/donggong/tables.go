// Package donggong implements the day-selection calendar: per-day
// officer and rating lookup, activity guidance, forbidden-window
// suppression and consult promotion.
package donggong

import (
	_ "embed"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/zixuanlab/fourpillars/internal/model"
)

//go:embed data/donggong.json
var rawTables []byte

// officerCycle is the fixed order of the twelve day officers. The day
// whose branch equals the month branch is the establish (Jian) day.
var officerCycle = [model.BranchCount]model.Officer{
	model.OfficerJian, model.OfficerChu, model.OfficerMan, model.OfficerPing,
	model.OfficerDing, model.OfficerZhi, model.OfficerPo, model.OfficerWei,
	model.OfficerCheng, model.OfficerShou, model.OfficerKai, model.OfficerBi,
}

// OfficerFor returns the day officer governing a (month branch, day
// branch) pairing.
func OfficerFor(monthBranch, dayBranch model.Branch) model.Officer {
	i := (int(dayBranch) - int(monthBranch) + model.BranchCount) % model.BranchCount
	return officerCycle[i]
}

// MonthOrdinal maps a month branch to its lunar month number: Yin is
// the first month, Chou the twelfth.
func MonthOrdinal(monthBranch model.Branch) (int, bool) {
	if !monthBranch.Valid() {
		return 0, false
	}
	return (int(monthBranch)+10)%model.BranchCount + 1, true
}

// ratingForValue maps a stored numeric value to its tier.
func ratingForValue(v int) (model.RatingTier, bool) {
	switch v {
	case model.RatingExcellent.Value:
		return model.RatingExcellent, true
	case model.RatingGood.Value:
		return model.RatingGood, true
	case model.RatingAverage.Value:
		return model.RatingAverage, true
	case model.RatingBad.Value:
		return model.RatingBad, true
	case model.RatingDire.Value:
		return model.RatingDire, true
	}
	return model.RatingTier{}, false
}

// dayEntry is one (lunar month, day branch) cell of the reference
// table.
type dayEntry struct {
	rating        model.RatingTier
	stemOverrides map[model.Stem]model.RatingTier
	activities    model.Activities
}

// Tables holds the immutable Dong Gong reference data, loaded once at
// startup from the embedded JSON and never modified.
type Tables struct {
	entries map[int]map[model.Branch]dayEntry
}

// LoadTables parses the embedded reference data.
func LoadTables() (*Tables, error) {
	root := gjson.ParseBytes(rawTables)
	months := root.Get("months")
	if !months.Exists() {
		return nil, fmt.Errorf("%w: reference data has no months table", model.ErrIntegrity)
	}

	t := &Tables{entries: make(map[int]map[model.Branch]dayEntry, 12)}
	var loadErr error
	months.ForEach(func(monthKey, monthVal gjson.Result) bool {
		m := int(monthKey.Int())
		if m < 1 || m > 12 {
			loadErr = fmt.Errorf("%w: month %s out of range", model.ErrIntegrity, monthKey.String())
			return false
		}
		cells := make(map[model.Branch]dayEntry, model.BranchCount)
		monthVal.ForEach(func(branchKey, cell gjson.Result) bool {
			branch, ok := branchByName(branchKey.String())
			if !ok {
				loadErr = fmt.Errorf("%w: unknown branch %q in month %d", model.ErrIntegrity, branchKey.String(), m)
				return false
			}
			rating, ok := ratingForValue(int(cell.Get("rating").Int()))
			if !ok {
				loadErr = fmt.Errorf("%w: bad rating for month %d branch %s", model.ErrIntegrity, m, branch)
				return false
			}

			entry := dayEntry{
				rating:        rating,
				stemOverrides: make(map[model.Stem]model.RatingTier),
				activities: model.Activities{
					Recommended:   stringList(cell.Get("recommended")),
					Avoid:         stringList(cell.Get("avoid")),
					DescriptionEN: cell.Get("en").String(),
					DescriptionZH: cell.Get("zh").String(),
				},
			}
			cell.Get("stem_overrides").ForEach(func(stemKey, v gjson.Result) bool {
				stem, ok := stemByName(stemKey.String())
				if !ok {
					loadErr = fmt.Errorf("%w: unknown stem %q in month %d branch %s", model.ErrIntegrity, stemKey.String(), m, branch)
					return false
				}
				tier, ok := ratingForValue(int(v.Int()))
				if !ok {
					loadErr = fmt.Errorf("%w: bad override for month %d branch %s stem %s", model.ErrIntegrity, m, branch, stem)
					return false
				}
				entry.stemOverrides[stem] = tier
				return true
			})
			if loadErr != nil {
				return false
			}
			cells[branch] = entry
			return true
		})
		if loadErr != nil {
			return false
		}
		t.entries[m] = cells
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return t, nil
}

// Lookup returns the table cell for a (lunar month, day branch) key.
// Absence is a normal soft miss, not an error.
func (t *Tables) Lookup(lunarMonth int, dayBranch model.Branch) (dayEntry, bool) {
	cells, ok := t.entries[lunarMonth]
	if !ok {
		return dayEntry{}, false
	}
	e, ok := cells[dayBranch]
	return e, ok
}

// Rating resolves the (lunar month, day branch, day stem) rating,
// applying any stem override to the branch-level base.
func (e dayEntry) Rating(dayStem model.Stem) model.RatingTier {
	if tier, ok := e.stemOverrides[dayStem]; ok {
		return tier
	}
	return e.rating
}

// BaseRating is the branch-level rating before stem overrides.
func (e dayEntry) BaseRating() model.RatingTier { return e.rating }

// Activities returns the cell's activity guidance.
func (e dayEntry) Activities() model.Activities { return e.activities }

func stringList(r gjson.Result) []string {
	var out []string
	for _, v := range r.Array() {
		out = append(out, v.String())
	}
	return out
}

func branchByName(name string) (model.Branch, bool) {
	for b := model.BranchZi; b <= model.BranchHai; b++ {
		if b.String() == name {
			return b, true
		}
	}
	return 0, false
}

func stemByName(name string) (model.Stem, bool) {
	for s := model.StemJia; s <= model.StemGui; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
