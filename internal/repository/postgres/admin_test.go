package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"marketbot/internal/domain"
)

func TestAdminRepository_AdminIDs(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT user_id FROM admin_users`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).
			AddRow(int64(100)).AddRow(int64(200)))

	repo := NewAdminRepository(db)
	ids, err := repo.AdminIDs()

	assert.NoError(t, err)
	assert.Equal(t, []int64{100, 200}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_Grant(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO admin_users`).
		WithArgs(int64(100), "boss", "Big Boss", domain.PermissionsAll).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewAdminRepository(db)
	err := repo.Grant(domain.Administrator{
		UserID:      100,
		Username:    "boss",
		FullName:    "Big Boss",
		Permissions: domain.PermissionsAll,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_Revoke(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM admin_users WHERE user_id = \$1`).
		WithArgs(int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewAdminRepository(db)
	assert.NoError(t, repo.Revoke(100))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_ListAdmins(t *testing.T) {
	db, mock := newMockDB(t)
	added := time.Now()
	mock.ExpectQuery(`SELECT user_id, COALESCE\(username, ''\)`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "full_name", "added_date", "permissions"}).
			AddRow(int64(100), "boss", "Big Boss", added, "ALL"))

	repo := NewAdminRepository(db)
	admins, err := repo.ListAdmins()

	assert.NoError(t, err)
	assert.Len(t, admins, 1)
	assert.Equal(t, int64(100), admins[0].UserID)
	assert.Equal(t, "ALL", admins[0].Permissions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_AdminIDs_Error(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT user_id FROM admin_users`).
		WillReturnError(sql.ErrConnDone)

	repo := NewAdminRepository(db)
	_, err := repo.AdminIDs()

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_SaveBroadcast(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO broadcast_history`).
		WithArgs(int64(100), "hello all", 48, 2, 50).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewAuditRepository(db)
	err := repo.SaveBroadcast(100, "hello all", domain.BroadcastResult{
		Success: 48,
		Failed:  2,
		Total:   50,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_LogAction(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO user_actions`).
		WithArgs(int64(42), "register_credential", "shop probe ok").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewAuditRepository(db)
	err := repo.LogAction(42, "register_credential", "shop probe ok")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
