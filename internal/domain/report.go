package domain

// ReportType selects the window of a periodic report.
type ReportType string

const (
	ReportWeekly  ReportType = "WEEKLY"  // trailing 7 days, inclusive of today
	ReportMonthly ReportType = "MONTHLY" // calendar month to date
	ReportYearly  ReportType = "YEARLY"  // calendar year to date
)

// PeriodicReport summarizes one user's consistency over a date window,
// with a group comparison snapshot.
type PeriodicReport struct {
	Type        ReportType `json:"type"`
	PeriodLabel string     `json:"period_label"`

	DaysCheckedIn int     `json:"days_checked_in"`
	PointsGained  float64 `json:"points_gained"`
	Consistency   int     `json:"consistency"` // whole percent

	BestResolution  string `json:"best_resolution"`
	WorstResolution string `json:"worst_resolution"`

	GroupConsistency int    `json:"group_consistency"` // whole percent
	GroupHero        string `json:"group_hero"`
}

// BreakdownRow is one resolution's contribution to a user's lifetime score.
type BreakdownRow struct {
	Title      string  `json:"title"`
	Days       int     `json:"days"`
	Difficulty float64 `json:"difficulty"`
	Points     int     `json:"points"`
}

// DayStatus summarizes a user's check-in state for today across their
// active public resolutions.
type DayStatus string

const (
	DayChecked DayStatus = "checked" // everything completed
	DayMissed  DayStatus = "missed"  // at least one miss recorded
	DayPending DayStatus = "pending" // work remaining (or nothing tracked)
)

// Period selects which score a leaderboard ranks by.
type Period string

const (
	PeriodAllTime Period = "ALL"
	PeriodMonthly Period = "MONTHLY"
)
