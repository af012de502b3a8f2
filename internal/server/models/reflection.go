package models

import (
	"time"

	"cloud.google.com/go/civil"
)

// Reflection is one user's week. (UserID, WeekStartDate) is unique.
// EncryptedContent is an envelope produced by the client and stored as is.
// LockedAt is informational; the lock is always recomputed from the clock.
type Reflection struct {
	ID               string
	UserID           string
	WeekStartDate    civil.Date
	EncryptedContent string
	IsCompleted      bool
	IsDeleted        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	LockedAt         *time.Time
}
