package app

import (
	"time"

	"github.com/alexanderramin/portions/internal/domain"
	"github.com/alexanderramin/portions/internal/scoring"
)

type DayRequest struct {
	Now *time.Time
	// DayKey selects a day directly; when empty the day containing Now is used.
	DayKey string
}

func NewDayRequest() DayRequest {
	return DayRequest{}
}

type CategoryView struct {
	CategoryID    string
	Name          string
	Unit          string
	Kind          domain.TargetKind
	Target        string
	Total         float64
	AdjustedTotal float64
	TargetMet     bool
	Score         float64
	Reason        scoring.ScoreReasonCode
	Deviation     float64
	Weight        float64
}

type OffsetView struct {
	From   string
	To     string
	Amount float64
}

type DayReport struct {
	DayKey        string
	GeneratedAt   time.Time
	Overall       float64
	AllTargetsMet bool
	MetCount      int
	Categories    []CategoryView
	Offsets       []OffsetView
}

type HistoryRequest struct {
	Now *time.Time
	// EndKey is the last day evaluated; defaults to the day containing Now.
	EndKey string
	Days   int
	Window int
}

func NewHistoryRequest() HistoryRequest {
	return HistoryRequest{
		Days:   30,
		Window: 7,
	}
}

type HistoryDayView struct {
	DayKey        string
	Overall       float64
	RollingAvg    float64
	AllTargetsMet bool
	MetCount      int
	CategoryCount int
}

type HistoryReport struct {
	StartKey     string
	EndKey       string
	Window       int
	Days         []HistoryDayView
	Streak       int
	BestStreak   int
	MetDays      int
	AverageScore float64
}

type ResolvedProfile struct {
	CategoryID string
	Name       string
	Target     string
	Enabled    bool
	// Overridden is true when the dataset supplies the profile.
	Overridden bool
	Profile    domain.ScoreProfile
}

type CheckReport struct {
	DataFile        string
	CategoryCount   int
	EnabledCount    int
	EntryCount      int
	RuleCount       int
	ExplicitRules   bool
	FirstDayKey     string
	LastDayKey      string
	OverriddenCount int
}
