package models

// ApplicationStatus defines the possible status values for a scholarship application.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusNew         ApplicationStatus = "new"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusApproved    ApplicationStatus = "approved"
	StatusDenied      ApplicationStatus = "denied"
	StatusActive      ApplicationStatus = "active"
	StatusCompleted   ApplicationStatus = "completed"
)

// ValidStatuses lists every accepted application status, in display order.
var ValidStatuses = []ApplicationStatus{
	StatusPending,
	StatusNew,
	StatusUnderReview,
	StatusApproved,
	StatusDenied,
	StatusActive,
	StatusCompleted,
}

// Valid reports whether s is a member of the accepted status set.
func (s ApplicationStatus) Valid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PaymentMethod identifies the payment provider a donation arrived through.
type PaymentMethod string

const (
	PaymentPayPal PaymentMethod = "paypal"
	PaymentStripe PaymentMethod = "stripe"
)

// EmailStatus defines the outcome recorded for an email attempt.
type EmailStatus string

const (
	EmailSent    EmailStatus = "sent"
	EmailFailed  EmailStatus = "failed"
	EmailPartial EmailStatus = "partial"
)

// EmailType categorizes email log entries.
type EmailType string

const (
	EmailTypeStatusChange EmailType = "status_change"
	EmailTypeCustom       EmailType = "custom"
	EmailTypeBulk         EmailType = "bulk"
	EmailTypeWaitlist     EmailType = "waitlist"
	EmailTypeReminder     EmailType = "reminder"
)
