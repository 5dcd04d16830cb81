package domain

import "time"

// User represents a bot user
type User struct {
	UserID        int64
	Username      string
	FirstName     string
	LastName      string
	HasCredential bool
	IsBlocked     bool
	LastActivity  *time.Time
	CreatedAt     time.Time
}

// Profile carries the externally supplied name fields refreshed on
// every interaction.
type Profile struct {
	Username  string
	FirstName string
	LastName  string
}

// FullName joins first and last name, falling back to the username.
func (p Profile) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	case p.LastName != "":
		return p.LastName
	default:
		return p.Username
	}
}

// UserFilter selects which users ListUsers returns
type UserFilter string

const (
	FilterAll            UserFilter = "all"
	FilterWithCredential UserFilter = "has_credential"
)

// UserStats is the aggregate view shown in the admin panel.
// Active counts users with activity inside a trailing 7-day window.
type UserStats struct {
	Total          int
	ActiveLastWeek int
	Blocked        int
	WithCredential int
}

// ActivityStats counts registrations over trailing windows
type ActivityStats struct {
	Today int
	Week  int
	Month int
}

// BroadcastResult tallies one broadcast run
type BroadcastResult struct {
	Success int
	Failed  int
	Total   int
}
