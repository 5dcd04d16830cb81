package domain

import "time"

// Administrator is a privileged overlay over the user id space
type Administrator struct {
	UserID      int64
	Username    string
	FullName    string
	AddedDate   time.Time
	Permissions string
}

// PermissionsAll is the only permission tier currently issued.
const PermissionsAll = "ALL"
