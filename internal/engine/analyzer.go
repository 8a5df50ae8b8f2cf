// Package engine orchestrates the pillar generator, luck progression
// and interaction detection into complete analysis results, and builds
// month calendars from the day-rating engine.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/zixuanlab/fourpillars/internal/calendar"
	"github.com/zixuanlab/fourpillars/internal/chart"
	"github.com/zixuanlab/fourpillars/internal/common"
	"github.com/zixuanlab/fourpillars/internal/interaction"
	"github.com/zixuanlab/fourpillars/internal/luck"
	"github.com/zixuanlab/fourpillars/internal/model"
)

// AnalysisInstant is the optional analysis moment for a chart request.
type AnalysisInstant struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	HasDate bool
	HasTime bool
}

// Instant returns the analysis moment as a time value.
func (a AnalysisInstant) Instant() time.Time {
	h, m := 0, 0
	if a.HasTime {
		h, m = a.Hour, a.Minute
	}
	return time.Date(a.Year, a.Month, a.Day, h, m, 0, 0, time.Local)
}

// AnalysisRequest describes one chart analysis.
type AnalysisRequest struct {
	Birth chart.BirthInput
	// Analysis, when set, selects the active luck pillar and resolves
	// the annual/monthly/daily/hourly cycle pillars.
	Analysis AnalysisInstant
	// IncludeAnnual controls whether the annual luck pillar joins the
	// interaction set. When excluded but an analysis year was still
	// supplied, the annual pillar is emitted as a display-only
	// disabled node.
	IncludeAnnual bool
}

// PillarView is one displayed pillar with its latent qi distribution.
type PillarView struct {
	Slot     model.Slot
	Pillar   model.Pillar
	HiddenQi []model.QiShare
	// Disabled marks a node shown for context but excluded from
	// interaction analysis.
	Disabled bool
}

// AnalysisResult is the full output record of a chart analysis.
type AnalysisResult struct {
	Natal   []PillarView
	Cycle   []PillarView
	DaYun   []model.LuckPillar
	XiaoYun []model.LuckPillar
	// Luck is the pillar active at the analysis instant, when one was
	// requested.
	Luck            *model.LuckSelection
	Interactions    []model.Interaction
	Transformations map[model.Branch]model.Element
}

// Analyzer wires the generator, luck engine and interaction detector.
type Analyzer struct {
	gen      *chart.Generator
	luck     *luck.Engine
	detector *interaction.Detector
}

// NewAnalyzer creates an analyzer backed by the given converter.
func NewAnalyzer(conv calendar.Converter) *Analyzer {
	return &Analyzer{
		gen:      chart.NewGenerator(conv),
		luck:     luck.NewEngine(conv),
		detector: interaction.NewDetector(),
	}
}

// Analyze runs one complete chart analysis. Integrity failures abort
// the whole request; no partial chart is returned.
func (a *Analyzer) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	common.LogDebug("analyzing chart", common.Fields{
		"birth":    req.Birth.Instant().Format("2006-01-02"),
		"has_time": req.Birth.HasTime,
		"gender":   req.Birth.Gender,
	})

	natal, err := a.gen.Generate(ctx, req.Birth)
	if err != nil {
		return nil, fmt.Errorf("generating natal chart: %w", err)
	}

	prog, err := a.luck.Compute(ctx, natal, req.Birth.Instant())
	if err != nil {
		return nil, fmt.Errorf("computing luck progression: %w", err)
	}

	result := &AnalysisResult{
		DaYun:   prog.DaYun,
		XiaoYun: prog.XiaoYun,
	}

	working := natal
	var disabled []PillarView

	if req.Analysis.HasDate {
		if sel, ok := prog.Select(natal.BirthDate, req.Analysis.Year); ok {
			result.Luck = &sel
			working = working.With(model.SlotLuck, sel.Pillar.Pillar)
		}

		set, err := a.gen.AnalysisPillars(ctx, req.Analysis.Instant(), req.Analysis.HasTime)
		if err != nil {
			return nil, fmt.Errorf("resolving analysis pillars: %w", err)
		}

		if req.IncludeAnnual {
			working = working.With(model.SlotAnnual, set.Year)
		} else {
			// Year supplied but annual luck excluded: show the node,
			// keep it out of the interaction set.
			disabled = append(disabled, PillarView{
				Slot:     model.SlotAnnual,
				Pillar:   set.Year,
				HiddenQi: set.Year.Branch.HiddenQi(),
				Disabled: true,
			})
		}
		working = working.With(model.SlotMonthly, set.Month)
		working = working.With(model.SlotDaily, set.Day)
		if req.Analysis.HasTime {
			working = working.With(model.SlotHourly, set.Hour)
		}
	}

	interactions, err := a.detector.DetectSorted(working)
	if err != nil {
		return nil, fmt.Errorf("detecting interactions: %w", err)
	}
	result.Interactions = interactions
	result.Transformations = interaction.ResolveTransformations(interactions)

	for _, slot := range natal.Slots() {
		p, _ := natal.Pillar(slot)
		result.Natal = append(result.Natal, PillarView{
			Slot:     slot,
			Pillar:   p,
			HiddenQi: p.Branch.HiddenQi(),
		})
	}
	for _, slot := range working.Slots() {
		if _, isNatal := natal.Pillar(slot); isNatal {
			continue
		}
		p, _ := working.Pillar(slot)
		result.Cycle = append(result.Cycle, PillarView{
			Slot:     slot,
			Pillar:   p,
			HiddenQi: p.Branch.HiddenQi(),
		})
	}
	result.Cycle = append(result.Cycle, disabled...)

	return result, nil
}
