package models

import "time"

// EmailTemplate is an admin-managed template with {{placeholder}} tokens in
// its subject and body.
type EmailTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BulkDetails carries the aggregate counts of a bulk send.
type BulkDetails struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// EmailLogEntry is one append-only audit record of an email attempt.
type EmailLogEntry struct {
	ID            string       `json:"id"`
	Recipient     string       `json:"recipient"`
	Subject       string       `json:"subject"`
	TemplateID    string       `json:"templateId,omitempty"`
	Type          EmailType    `json:"type"`
	Status        EmailStatus  `json:"status"`
	Error         string       `json:"error,omitempty"`
	SentAt        time.Time    `json:"sentAt"`
	SentBy        string       `json:"sentBy,omitempty"`
	ApplicationID string       `json:"applicationId,omitempty"`
	Details       *BulkDetails `json:"details,omitempty"`
}
