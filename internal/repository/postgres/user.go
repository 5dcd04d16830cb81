package postgres

import (
	"database/sql"
	"fmt"

	"marketbot/internal/domain"
)

// UserRepository implements repository.UserRepository for PostgreSQL
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) EnsureUser(userID int64, profile domain.Profile) error {
	query := `
		INSERT INTO users (user_id, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = NOW()`

	if _, err := r.db.Exec(query, userID, profile.Username, profile.FirstName, profile.LastName); err != nil {
		return fmt.Errorf("ensure user %d: %w", userID, err)
	}
	return nil
}

func (r *UserRepository) UpsertCredential(userID int64, credential string, profile domain.Profile) error {
	query := `
		INSERT INTO users (user_id, username, first_name, last_name, api_key)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			api_key = EXCLUDED.api_key,
			updated_at = NOW()`

	if _, err := r.db.Exec(query, userID, profile.Username, profile.FirstName, profile.LastName, credential); err != nil {
		return fmt.Errorf("upsert credential for user %d: %w", userID, err)
	}
	return nil
}

func (r *UserRepository) Credential(userID int64) (string, bool, error) {
	var key sql.NullString
	query := `SELECT api_key FROM users WHERE user_id = $1`

	err := r.db.QueryRow(query, userID).Scan(&key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get credential for user %d: %w", userID, err)
	}
	if !key.Valid || key.String == "" {
		return "", false, nil
	}
	return key.String, true, nil
}

func (r *UserRepository) ClearCredential(userID int64) error {
	query := `UPDATE users SET api_key = NULL, updated_at = NOW() WHERE user_id = $1`

	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("clear credential for user %d: %w", userID, err)
	}
	return nil
}

func (r *UserRepository) IsBlocked(userID int64) (bool, error) {
	var blocked bool
	query := `SELECT is_blocked FROM users WHERE user_id = $1`

	err := r.db.QueryRow(query, userID).Scan(&blocked)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check blocked for user %d: %w", userID, err)
	}
	return blocked, nil
}

func (r *UserRepository) SetBlocked(userID int64, blocked bool) error {
	query := `
		INSERT INTO users (user_id, is_blocked)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			is_blocked = EXCLUDED.is_blocked,
			updated_at = NOW()`

	if _, err := r.db.Exec(query, userID, blocked); err != nil {
		return fmt.Errorf("set blocked=%v for user %d: %w", blocked, userID, err)
	}
	return nil
}

func (r *UserRepository) TouchActivity(userID int64) error {
	query := `UPDATE users SET last_activity = NOW() WHERE user_id = $1`

	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("touch activity for user %d: %w", userID, err)
	}
	return nil
}

func (r *UserRepository) ListUsers(limit int, filter domain.UserFilter) ([]domain.User, error) {
	query := `
		SELECT user_id, COALESCE(username, ''), COALESCE(first_name, ''),
		       COALESCE(last_name, ''),
		       api_key IS NOT NULL AND api_key <> '',
		       is_blocked, last_activity, created_at
		FROM users`
	if filter == domain.FilterWithCredential {
		query += ` WHERE api_key IS NOT NULL AND api_key <> ''`
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var lastActivity sql.NullTime
		if err := rows.Scan(&u.UserID, &u.Username, &u.FirstName, &u.LastName,
			&u.HasCredential, &u.IsBlocked, &lastActivity, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		if lastActivity.Valid {
			t := lastActivity.Time
			u.LastActivity = &t
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

func (r *UserRepository) RecipientIDs() ([]int64, error) {
	query := `SELECT user_id FROM users WHERE NOT is_blocked`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan recipient id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipient rows: %w", err)
	}
	return ids, nil
}

func (r *UserRepository) Stats() (domain.UserStats, error) {
	var stats domain.UserStats
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE last_activity > NOW() - INTERVAL '7 days'),
		       COUNT(*) FILTER (WHERE is_blocked),
		       COUNT(*) FILTER (WHERE api_key IS NOT NULL AND api_key <> '')
		FROM users`

	err := r.db.QueryRow(query).Scan(&stats.Total, &stats.ActiveLastWeek,
		&stats.Blocked, &stats.WithCredential)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("get user stats: %w", err)
	}
	return stats, nil
}

func (r *UserRepository) ActivityStats() (domain.ActivityStats, error) {
	var stats domain.ActivityStats
	query := `
		SELECT COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE),
		       COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '7 days'),
		       COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '30 days')
		FROM users`

	err := r.db.QueryRow(query).Scan(&stats.Today, &stats.Week, &stats.Month)
	if err != nil {
		return domain.ActivityStats{}, fmt.Errorf("get activity stats: %w", err)
	}
	return stats, nil
}
