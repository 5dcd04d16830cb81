package postgres

import (
	"database/sql"
	"fmt"

	"marketbot/internal/domain"
)

// AdminRepository implements repository.AdminRepository for PostgreSQL
type AdminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) AdminIDs() ([]int64, error) {
	rows, err := r.db.Query(`SELECT user_id FROM admin_users`)
	if err != nil {
		return nil, fmt.Errorf("list admin ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan admin id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admin rows: %w", err)
	}
	return ids, nil
}

func (r *AdminRepository) Grant(admin domain.Administrator) error {
	query := `
		INSERT INTO admin_users (user_id, username, full_name, permissions)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			full_name = EXCLUDED.full_name,
			permissions = EXCLUDED.permissions`

	if _, err := r.db.Exec(query, admin.UserID, admin.Username, admin.FullName, admin.Permissions); err != nil {
		return fmt.Errorf("grant admin %d: %w", admin.UserID, err)
	}
	return nil
}

func (r *AdminRepository) Revoke(userID int64) error {
	if _, err := r.db.Exec(`DELETE FROM admin_users WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("revoke admin %d: %w", userID, err)
	}
	return nil
}

func (r *AdminRepository) ListAdmins() ([]domain.Administrator, error) {
	query := `
		SELECT user_id, COALESCE(username, ''), COALESCE(full_name, ''),
		       added_date, permissions
		FROM admin_users
		ORDER BY added_date`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var admins []domain.Administrator
	for rows.Next() {
		var a domain.Administrator
		if err := rows.Scan(&a.UserID, &a.Username, &a.FullName, &a.AddedDate, &a.Permissions); err != nil {
			return nil, fmt.Errorf("scan admin row: %w", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admin rows: %w", err)
	}
	return admins, nil
}
