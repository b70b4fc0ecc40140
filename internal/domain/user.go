package domain

// RankChange records how a user's leaderboard position moved since the
// previous persisted ranking.
type RankChange string

const (
	RankUp   RankChange = "up"
	RankDown RankChange = "down"
	RankSame RankChange = "same"
)

// IdentityLabel is a behavioral classification of a user's quarter-to-date
// completion pattern. Fixed six-value taxonomy.
type IdentityLabel string

const (
	LabelRelentlessMaintainer IdentityLabel = "Relentless Maintainer"
	LabelConsistentStarter    IdentityLabel = "Consistent Starter"
	LabelStrongFinisher       IdentityLabel = "Strong Finisher"
	LabelLateBloomer          IdentityLabel = "Late Bloomer"
	LabelOnAndOffGrinder      IdentityLabel = "On-and-Off Grinder"
	LabelSleepingGiant        IdentityLabel = "Sleeping Giant"
)

// User is one group member. Score, MonthlyScore, Streak, SeasonalLabel,
// Rank, and RankChange are derived fields — outputs of the engine, never
// edited directly. They are recomputed from scratch whenever any
// contributing resolution changes.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	GroupID string `json:"group_id,omitempty"`

	Score        float64       `json:"score"`
	MonthlyScore float64       `json:"monthly_score"`
	Streak       int           `json:"streak"`
	Rank         int           `json:"rank"`
	RankChange   RankChange    `json:"rank_change"`
	SeasonalLabel IdentityLabel `json:"seasonal_label"`

	// HonestyScore is an external trust signal (0–100), read-only here.
	HonestyScore int `json:"honesty_score"`

	Badges []string `json:"badges,omitempty"`
}

// HasBadge reports whether the user already holds the named badge.
func (u *User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b == name {
			return true
		}
	}
	return false
}
