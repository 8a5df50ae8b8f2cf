// Package service defines the contracts the surrounding application
// layer (profile storage, rendering, transport) codes against. The
// engine implements these; the collaborators are out of scope here.
package service

import (
	"context"
	"time"

	"github.com/zixuanlab/fourpillars/internal/engine"
	"github.com/zixuanlab/fourpillars/internal/model"
)

// ChartAnalyzer produces complete chart analyses.
type ChartAnalyzer interface {
	Analyze(ctx context.Context, req engine.AnalysisRequest) (*engine.AnalysisResult, error)
}

// DayRater produces a single day's Dong Gong verdict. hour, when
// non-nil, is the evaluated decimal hour.
type DayRater interface {
	Rate(ctx context.Context, date time.Time, hour *float64) (model.DayRecord, error)
}

// CalendarBuilder produces month calendars.
type CalendarBuilder interface {
	Month(ctx context.Context, year int, month time.Month) (*engine.MonthCalendar, error)
}

// Profile is the stored birth data a caller analyzes repeatedly. The
// persistence layer behind it is not part of the engine.
type Profile struct {
	CreatedAt time.Time
	BirthDate time.Time
	ID        string
	Name      string
	Gender    model.Gender
	HasTime   bool
}

// ProfileStore is the boundary contract for profile persistence.
type ProfileStore interface {
	SaveProfile(ctx context.Context, p *Profile) error
	GetProfile(ctx context.Context, id string) (*Profile, error)
	ListProfiles(ctx context.Context) ([]Profile, error)
	DeleteProfile(ctx context.Context, id string) error
}
