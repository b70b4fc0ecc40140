package domain

// Group is a small accountability circle. Hero fields are once-per-period
// caches keyed by stored day keys: the daily hero is reselected when
// LastHeroSelectionDate falls behind today, the comeback hero when
// LastComebackSelectionDate falls behind the current ISO week's Monday.
type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`

	DailyHeroID           string `json:"daily_hero_id,omitempty"`
	LastHeroSelectionDate string `json:"last_hero_selection_date,omitempty"`

	WeeklyComebackHeroID     string `json:"weekly_comeback_hero_id,omitempty"`
	LastComebackSelectionDate string `json:"last_comeback_selection_date,omitempty"`
}
