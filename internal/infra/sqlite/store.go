package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/resolvehq/resolve/internal/domain"
)

// ─── Users ──────────────────────────────────────────────────────────────────

// SaveUser inserts or updates a user record.
func (d *DB) SaveUser(u *domain.User) error {
	badges, err := json.Marshal(u.Badges)
	if err != nil {
		return fmt.Errorf("encode badges: %w", err)
	}
	_, err = d.db.Exec(
		`INSERT INTO users (id, name, group_id, score, monthly_score, streak, rank, rank_change, seasonal_label, honesty_score, badges)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			group_id=excluded.group_id,
			score=excluded.score,
			monthly_score=excluded.monthly_score,
			streak=excluded.streak,
			rank=excluded.rank,
			rank_change=excluded.rank_change,
			seasonal_label=excluded.seasonal_label,
			honesty_score=excluded.honesty_score,
			badges=excluded.badges`,
		u.ID, u.Name, u.GroupID, u.Score, u.MonthlyScore, u.Streak,
		u.Rank, string(u.RankChange), string(u.SeasonalLabel), u.HonestyScore, string(badges),
	)
	return err
}

// User retrieves a single user by id.
func (d *DB) User(id string) (*domain.User, error) {
	row := d.db.QueryRow(
		`SELECT id, name, group_id, score, monthly_score, streak, rank, rank_change, seasonal_label, honesty_score, badges
		 FROM users WHERE id = ?`, id,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// UsersByGroup returns all members of a group ordered by name.
func (d *DB) UsersByGroup(groupID string) ([]*domain.User, error) {
	rows, err := d.db.Query(
		`SELECT id, name, group_id, score, monthly_score, streak, rank, rank_change, seasonal_label, honesty_score, badges
		 FROM users WHERE group_id = ? ORDER BY name`, groupID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// HonestyScore satisfies the trust source read by hero selection.
func (d *DB) HonestyScore(userID string) (int, error) {
	var score int
	err := d.db.QueryRow(`SELECT honesty_score FROM users WHERE id = ?`, userID).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, domain.ErrUserNotFound
	}
	return score, err
}

// ─── Groups ─────────────────────────────────────────────────────────────────

// SaveGroup inserts or updates a group record.
func (d *DB) SaveGroup(g *domain.Group) error {
	members, err := json.Marshal(g.MemberIDs)
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}
	_, err = d.db.Exec(
		`INSERT INTO groups (id, name, member_ids, daily_hero_id, last_hero_selection_date, weekly_comeback_hero_id, last_comeback_selection_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			member_ids=excluded.member_ids,
			daily_hero_id=excluded.daily_hero_id,
			last_hero_selection_date=excluded.last_hero_selection_date,
			weekly_comeback_hero_id=excluded.weekly_comeback_hero_id,
			last_comeback_selection_date=excluded.last_comeback_selection_date`,
		g.ID, g.Name, string(members), g.DailyHeroID, g.LastHeroSelectionDate,
		g.WeeklyComebackHeroID, g.LastComebackSelectionDate,
	)
	return err
}

// Group retrieves a single group by id.
func (d *DB) Group(id string) (*domain.Group, error) {
	var g domain.Group
	var members string
	err := d.db.QueryRow(
		`SELECT id, name, member_ids, daily_hero_id, last_hero_selection_date, weekly_comeback_hero_id, last_comeback_selection_date
		 FROM groups WHERE id = ?`, id,
	).Scan(&g.ID, &g.Name, &members, &g.DailyHeroID, &g.LastHeroSelectionDate,
		&g.WeeklyComebackHeroID, &g.LastComebackSelectionDate)
	if err == sql.ErrNoRows {
		return nil, domain.ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(members), &g.MemberIDs); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	return &g, nil
}

// ─── Resolutions ────────────────────────────────────────────────────────────

// SaveResolution inserts or updates a resolution record.
func (d *DB) SaveResolution(r *domain.Resolution) error {
	history, err := json.Marshal(r.History)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	votes, err := json.Marshal(r.PeerDifficultyVotes)
	if err != nil {
		return fmt.Errorf("encode votes: %w", err)
	}
	_, err = d.db.Exec(
		`INSERT INTO resolutions (id, owner_id, created_at, title, category, declared_difficulty, effective_difficulty, is_private, history, peer_votes, current_streak, today_status, archived_at, archived_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			category=excluded.category,
			effective_difficulty=excluded.effective_difficulty,
			is_private=excluded.is_private,
			history=excluded.history,
			peer_votes=excluded.peer_votes,
			current_streak=excluded.current_streak,
			today_status=excluded.today_status,
			archived_at=excluded.archived_at,
			archived_reason=excluded.archived_reason`,
		r.ID, r.OwnerID, r.CreatedAt.Unix(), r.Title, r.Category,
		r.DeclaredDifficulty, r.EffectiveDifficulty, r.IsPrivate,
		string(history), string(votes), r.CurrentStreak, string(r.TodayStatus),
		nullableUnix(r.ArchivedAt), r.ArchivedReason,
	)
	return err
}

// Resolution retrieves a single resolution by id.
func (d *DB) Resolution(id string) (*domain.Resolution, error) {
	row := d.db.QueryRow(
		`SELECT id, owner_id, created_at, title, category, declared_difficulty, effective_difficulty, is_private, history, peer_votes, current_streak, today_status, archived_at, archived_reason
		 FROM resolutions WHERE id = ?`, id,
	)
	r, err := scanResolution(row)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrResolutionNotFound
	}
	return r, nil
}

// ResolutionsByOwner returns all of a user's resolutions, oldest first.
func (d *DB) ResolutionsByOwner(ownerID string) ([]*domain.Resolution, error) {
	rows, err := d.db.Query(
		`SELECT id, owner_id, created_at, title, category, declared_difficulty, effective_difficulty, is_private, history, peer_votes, current_streak, today_status, archived_at, archived_reason
		 FROM resolutions WHERE owner_id = ? ORDER BY created_at`, ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resolutions []*domain.Resolution
	for rows.Next() {
		r, err := scanResolution(rows)
		if err != nil {
			return nil, err
		}
		resolutions = append(resolutions, r)
	}
	return resolutions, rows.Err()
}

// ─── Feed ───────────────────────────────────────────────────────────────────

// Append stores one feed event.
func (d *DB) Append(e domain.FeedEvent) error {
	_, err := d.db.Exec(
		`INSERT INTO feed (id, type, user_id, user_name, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Type), e.UserID, e.UserName, e.Message, e.Timestamp.Unix(),
	)
	return err
}

// Feed returns the most recent events, newest first.
func (d *DB) Feed(limit int) ([]domain.FeedEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.db.Query(
		`SELECT id, type, user_id, user_name, message, created_at
		 FROM feed ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.FeedEvent
	for rows.Next() {
		var e domain.FeedEvent
		var typ string
		var createdAt int64
		if err := rows.Scan(&e.ID, &typ, &e.UserID, &e.UserName, &e.Message, &createdAt); err != nil {
			return nil, err
		}
		e.Type = domain.EventType(typ)
		e.Timestamp = time.Unix(createdAt, 0)
		events = append(events, e)
	}
	return events, rows.Err()
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*domain.User, error) {
	var u domain.User
	var rankChange, label, badges string

	err := s.Scan(&u.ID, &u.Name, &u.GroupID, &u.Score, &u.MonthlyScore,
		&u.Streak, &u.Rank, &rankChange, &label, &u.HonestyScore, &badges)
	if err == sql.ErrNoRows {
		return nil, nil // Not found, no error
	}
	if err != nil {
		return nil, err
	}

	u.RankChange = domain.RankChange(rankChange)
	u.SeasonalLabel = domain.IdentityLabel(label)
	if err := json.Unmarshal([]byte(badges), &u.Badges); err != nil {
		return nil, fmt.Errorf("decode badges: %w", err)
	}
	return &u, nil
}

func scanResolution(s scanner) (*domain.Resolution, error) {
	var r domain.Resolution
	var createdAt int64
	var archivedAt sql.NullInt64
	var history, votes, status string

	err := s.Scan(&r.ID, &r.OwnerID, &createdAt, &r.Title, &r.Category,
		&r.DeclaredDifficulty, &r.EffectiveDifficulty, &r.IsPrivate,
		&history, &votes, &r.CurrentStreak, &status, &archivedAt, &r.ArchivedReason)
	if err == sql.ErrNoRows {
		return nil, nil // Not found, no error
	}
	if err != nil {
		return nil, err
	}

	r.CreatedAt = time.Unix(createdAt, 0)
	r.TodayStatus = domain.Status(status)
	if archivedAt.Valid {
		r.ArchivedAt = time.Unix(archivedAt.Int64, 0)
	}
	if err := json.Unmarshal([]byte(history), &r.History); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if err := json.Unmarshal([]byte(votes), &r.PeerDifficultyVotes); err != nil {
		return nil, fmt.Errorf("decode votes: %w", err)
	}
	return &r, nil
}

func nullableUnix(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}
