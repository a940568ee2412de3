package models

import "time"

// NewsletterSubscriber is one newsletter signup.
type NewsletterSubscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	SubscribedAt time.Time `json:"subscribedAt"`
	Source       string    `json:"source,omitempty"`
	ImportedBy   string    `json:"importedBy,omitempty"`
}

// ContactSubmission is a message submitted through the public contact form.
type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// CorporateInquiry is a partnership inquiry from the public site.
type CorporateInquiry struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	ContactName    string    `json:"contactName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	InterestedTier string    `json:"interestedTier"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
