package models

import "time"

type Profile struct {
	UserID            string
	Timezone          string
	EmailReminders    bool
	PushNotifications bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
