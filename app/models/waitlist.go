package models

import "time"

// WaitlistEntry queues an application for admission once funds free up.
// At most one entry exists per application; position values are unique and
// increase in insertion order (not necessarily contiguous after removals).
type WaitlistEntry struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"applicationId"`
	Reason        string    `json:"reason"`
	Priority      string    `json:"priority"`
	Notes         string    `json:"notes"`
	Position      int       `json:"position"`
	AddedAt       time.Time `json:"addedAt"`
	AddedBy       string    `json:"addedBy"`
}
