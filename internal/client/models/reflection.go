// Package models holds the client-side view of journal data.
package models

import (
	"time"

	"cloud.google.com/go/civil"
)

// Reflection is a stored week as the client sees it. EncryptedContent is
// empty when the server was asked for a listing without content.
type Reflection struct {
	ID               string
	WeekStartDate    civil.Date
	EncryptedContent string
	IsCompleted      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	LockedAt         *time.Time
}

type Profile struct {
	Timezone          string
	EmailReminders    bool
	PushNotifications bool
}
