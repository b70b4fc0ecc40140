package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/resolvehq/resolve/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ─── Database Lifecycle ─────────────────────────────────────────────────────

func TestOpen_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(dir, "state.db")); os.IsNotExist(err) {
		t.Error("state.db should exist")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("first Open() error: %v", err)
	}
	db.Close()

	// Re-opening runs the migrations again against existing tables.
	db, err = Open(dir)
	if err != nil {
		t.Fatalf("second Open() error: %v", err)
	}
	db.Close()
}

// ─── Users ──────────────────────────────────────────────────────────────────

func TestSaveUser_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	u := &domain.User{
		ID:            "u1",
		Name:          "Ana",
		GroupID:       "g1",
		Score:         42.5,
		MonthlyScore:  12,
		Streak:        6,
		Rank:          2,
		RankChange:    domain.RankUp,
		SeasonalLabel: domain.LabelStrongFinisher,
		HonestyScore:  90,
		Badges:        []string{"7-Day Streak"},
	}
	if err := db.SaveUser(u); err != nil {
		t.Fatalf("SaveUser() error: %v", err)
	}

	got, err := db.User("u1")
	if err != nil {
		t.Fatalf("User() error: %v", err)
	}
	if got.Name != "Ana" || got.Score != 42.5 || got.Rank != 2 {
		t.Errorf("unexpected user: %+v", got)
	}
	if got.RankChange != domain.RankUp || got.SeasonalLabel != domain.LabelStrongFinisher {
		t.Errorf("derived fields lost: %+v", got)
	}
	if len(got.Badges) != 1 || got.Badges[0] != "7-Day Streak" {
		t.Errorf("badges lost: %v", got.Badges)
	}
}

func TestSaveUser_Update(t *testing.T) {
	db := newTestDB(t)

	u := &domain.User{ID: "u1", Name: "Ana"}
	if err := db.SaveUser(u); err != nil {
		t.Fatalf("SaveUser() error: %v", err)
	}
	u.Score = 99
	if err := db.SaveUser(u); err != nil {
		t.Fatalf("SaveUser() update error: %v", err)
	}

	got, err := db.User("u1")
	if err != nil {
		t.Fatalf("User() error: %v", err)
	}
	if got.Score != 99 {
		t.Errorf("Score = %v, want 99", got.Score)
	}
}

func TestUser_NotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := db.User("nope")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUsersByGroup(t *testing.T) {
	db := newTestDB(t)

	for _, u := range []*domain.User{
		{ID: "u1", Name: "Zoe", GroupID: "g1"},
		{ID: "u2", Name: "Ana", GroupID: "g1"},
		{ID: "u3", Name: "Ben", GroupID: "g2"},
	} {
		if err := db.SaveUser(u); err != nil {
			t.Fatalf("SaveUser() error: %v", err)
		}
	}

	members, err := db.UsersByGroup("g1")
	if err != nil {
		t.Fatalf("UsersByGroup() error: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Name != "Ana" || members[1].Name != "Zoe" {
		t.Errorf("expected name order, got %q then %q", members[0].Name, members[1].Name)
	}
}

func TestHonestyScore(t *testing.T) {
	db := newTestDB(t)

	if err := db.SaveUser(&domain.User{ID: "u1", Name: "Ana", HonestyScore: 75}); err != nil {
		t.Fatalf("SaveUser() error: %v", err)
	}

	score, err := db.HonestyScore("u1")
	if err != nil {
		t.Fatalf("HonestyScore() error: %v", err)
	}
	if score != 75 {
		t.Errorf("HonestyScore = %d, want 75", score)
	}

	if _, err := db.HonestyScore("nope"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ─── Groups ─────────────────────────────────────────────────────────────────

func TestSaveGroup_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	g := &domain.Group{
		ID:                    "g1",
		Name:                  "Morning Crew",
		MemberIDs:             []string{"u1", "u2"},
		DailyHeroID:           "u2",
		LastHeroSelectionDate: "2025-07-15",
	}
	if err := db.SaveGroup(g); err != nil {
		t.Fatalf("SaveGroup() error: %v", err)
	}

	got, err := db.Group("g1")
	if err != nil {
		t.Fatalf("Group() error: %v", err)
	}
	if got.Name != "Morning Crew" || len(got.MemberIDs) != 2 {
		t.Errorf("unexpected group: %+v", got)
	}
	if got.DailyHeroID != "u2" || got.LastHeroSelectionDate != "2025-07-15" {
		t.Errorf("hero cache lost: %+v", got)
	}
}

func TestGroup_NotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := db.Group("nope")
	if !errors.Is(err, domain.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

// ─── Resolutions ────────────────────────────────────────────────────────────

func TestSaveResolution_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	created := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	r := &domain.Resolution{
		ID:                  "r1",
		OwnerID:             "u1",
		CreatedAt:           created,
		Title:               "Run every day",
		Category:            "fitness",
		DeclaredDifficulty:  4,
		EffectiveDifficulty: 3.5,
		History: domain.History{
			"2025-07-14": domain.StatusCompleted,
			"2025-07-15": domain.StatusMissed,
		},
		PeerDifficultyVotes: map[string]int{"u2": 3},
		CurrentStreak:       1,
		TodayStatus:         domain.StatusMissed,
	}
	if err := db.SaveResolution(r); err != nil {
		t.Fatalf("SaveResolution() error: %v", err)
	}

	got, err := db.Resolution("r1")
	if err != nil {
		t.Fatalf("Resolution() error: %v", err)
	}
	if got.Title != "Run every day" || got.EffectiveDifficulty != 3.5 {
		t.Errorf("unexpected resolution: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if got.History["2025-07-14"] != domain.StatusCompleted {
		t.Errorf("history lost: %v", got.History)
	}
	if got.PeerDifficultyVotes["u2"] != 3 {
		t.Errorf("votes lost: %v", got.PeerDifficultyVotes)
	}
	if got.Archived() {
		t.Error("fresh resolution should not be archived")
	}
}

func TestSaveResolution_ArchivedSurvives(t *testing.T) {
	db := newTestDB(t)

	archived := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	r := &domain.Resolution{
		ID:                 "r1",
		OwnerID:            "u1",
		CreatedAt:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Title:              "Old habit",
		DeclaredDifficulty: 2,
		History:            domain.History{},
		ArchivedAt:         archived,
		ArchivedReason:     "injury",
	}
	if err := db.SaveResolution(r); err != nil {
		t.Fatalf("SaveResolution() error: %v", err)
	}

	got, err := db.Resolution("r1")
	if err != nil {
		t.Fatalf("Resolution() error: %v", err)
	}
	if !got.Archived() || got.ArchivedReason != "injury" {
		t.Errorf("archive state lost: %+v", got)
	}
	if !got.ArchivedAt.Equal(archived) {
		t.Errorf("ArchivedAt = %v, want %v", got.ArchivedAt, archived)
	}
}

func TestResolutionsByOwner_OldestFirst(t *testing.T) {
	db := newTestDB(t)

	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"r2", "r1", "r3"} {
		r := &domain.Resolution{
			ID:                 id,
			OwnerID:            "u1",
			CreatedAt:          base.AddDate(0, 0, 2-i),
			Title:              id,
			DeclaredDifficulty: 1,
			History:            domain.History{},
		}
		if err := db.SaveResolution(r); err != nil {
			t.Fatalf("SaveResolution() error: %v", err)
		}
	}

	got, err := db.ResolutionsByOwner("u1")
	if err != nil {
		t.Fatalf("ResolutionsByOwner() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 resolutions, got %d", len(got))
	}
	if got[0].ID != "r3" || got[2].ID != "r2" {
		t.Errorf("expected creation order, got %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestResolution_NotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := db.Resolution("nope")
	if !errors.Is(err, domain.ErrResolutionNotFound) {
		t.Fatalf("expected ErrResolutionNotFound, got %v", err)
	}
}

// ─── Feed ───────────────────────────────────────────────────────────────────

func TestFeed_AppendAndList(t *testing.T) {
	db := newTestDB(t)

	base := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		e := domain.FeedEvent{
			ID:        []string{"e1", "e2", "e3"}[i],
			Type:      domain.EventCheckIn,
			UserID:    "u1",
			UserName:  "Ana",
			Message:   "checked in",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Append(e); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	events, err := db.Feed(2)
	if err != nil {
		t.Fatalf("Feed() error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != "e3" {
		t.Errorf("expected newest first, got %s", events[0].ID)
	}
}
