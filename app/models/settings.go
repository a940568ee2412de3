package models

import "time"

// AdminSettings is the single general settings document.
type AdminSettings struct {
	AvailableFunds          float64   `json:"availableFunds"`
	LowFundsThreshold       float64   `json:"lowFundsThreshold"`
	ProgressReminderEnabled bool      `json:"progressReminderEnabled"`
	ProgressReminderDays    int       `json:"progressReminderDays"`
	UpdatedAt               time.Time `json:"updatedAt"`
	UpdatedBy               string    `json:"updatedBy"`
}
