package postgres

import (
	"database/sql"
	"fmt"

	"marketbot/internal/domain"
)

// AuditRepository implements repository.AuditRepository for PostgreSQL
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) SaveBroadcast(adminID int64, text string, result domain.BroadcastResult) error {
	query := `
		INSERT INTO broadcast_history (admin_id, message_text, success_count, failed_count, total_count)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(query, adminID, text, result.Success, result.Failed, result.Total); err != nil {
		return fmt.Errorf("save broadcast by admin %d: %w", adminID, err)
	}
	return nil
}

func (r *AuditRepository) LogAction(userID int64, actionType, actionData string) error {
	query := `
		INSERT INTO user_actions (user_id, action_type, action_data)
		VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(query, userID, actionType, actionData); err != nil {
		return fmt.Errorf("log action %q for user %d: %w", actionType, userID, err)
	}
	return nil
}
