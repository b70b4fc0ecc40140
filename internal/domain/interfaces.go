package domain

// Store is the persistence collaborator. The engine is handed a consistent
// snapshot of entities per invocation and returns derived values; the
// caller performs the persist-back as a single logical write.
type Store interface {
	User(id string) (*User, error)
	UsersByGroup(groupID string) ([]*User, error)
	SaveUser(u *User) error

	Group(id string) (*Group, error)
	SaveGroup(g *Group) error

	Resolution(id string) (*Resolution, error)
	ResolutionsByOwner(ownerID string) ([]*Resolution, error)
	SaveResolution(r *Resolution) error
}

// FeedSink accepts typed feed events. The engine decides whether and what
// to emit, not how events are displayed or delivered.
type FeedSink interface {
	Append(e FeedEvent) error
}

// TrustSource exposes the external honesty signal consumed by daily hero
// selection. Read-only to the engine.
type TrustSource interface {
	HonestyScore(userID string) (int, error)
}
