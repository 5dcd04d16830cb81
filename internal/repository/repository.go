package repository

import "marketbot/internal/domain"

// UserRepository defines methods for user data access
type UserRepository interface {
	// EnsureUser inserts the user if missing and refreshes the profile
	// fields if present.
	EnsureUser(userID int64, profile domain.Profile) error

	// UpsertCredential stores the seller API credential for the user,
	// creating the row if needed.
	UpsertCredential(userID int64, credential string, profile domain.Profile) error

	// Credential returns the stored credential. The bool reports
	// whether a non-empty credential exists.
	Credential(userID int64) (string, bool, error)

	// ClearCredential removes the stored credential
	ClearCredential(userID int64) error

	// IsBlocked reports whether the user is blocked. Unknown users are
	// not blocked.
	IsBlocked(userID int64) (bool, error)

	// SetBlocked toggles the blocked flag
	SetBlocked(userID int64, blocked bool) error

	// TouchActivity bumps the last activity timestamp
	TouchActivity(userID int64) error

	// ListUsers returns up to limit most recent users matching filter
	ListUsers(limit int, filter domain.UserFilter) ([]domain.User, error)

	// RecipientIDs returns ids of all non-blocked users
	RecipientIDs() ([]int64, error)

	// Stats returns aggregate user counters
	Stats() (domain.UserStats, error)

	// ActivityStats counts registrations today and over the trailing
	// week and month.
	ActivityStats() (domain.ActivityStats, error)
}

// AdminRepository defines methods for administrator data access
type AdminRepository interface {
	// AdminIDs returns ids of all administrators
	AdminIDs() ([]int64, error)

	// Grant inserts an administrator row, refreshing it if present
	Grant(admin domain.Administrator) error

	// Revoke deletes an administrator row
	Revoke(userID int64) error

	// ListAdmins returns all administrators
	ListAdmins() ([]domain.Administrator, error)
}

// AuditRepository records operator-visible history
type AuditRepository interface {
	// SaveBroadcast records one completed broadcast run
	SaveBroadcast(adminID int64, text string, result domain.BroadcastResult) error

	// LogAction records one user action
	LogAction(userID int64, actionType, actionData string) error
}
