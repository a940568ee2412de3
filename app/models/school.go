package models

import "time"

// SwimSchool is a partner school that delivers funded lessons.
type SwimSchool struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	ContactPerson     string    `json:"contactPerson"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	StateZip          string    `json:"stateZip"`
	Capacity          int       `json:"capacity"`
	RatePerLesson     float64   `json:"ratePerLesson"`
	Status            string    `json:"status"`
	AcceptingStudents bool      `json:"acceptingStudents"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
	CreatedBy         string    `json:"createdBy"`
}

// SchoolPayment records a payout made to a partner school.
type SchoolPayment struct {
	ID            string    `json:"id"`
	SchoolID      string    `json:"schoolId"`
	Amount        float64   `json:"amount"`
	PaymentDate   string    `json:"paymentDate"`
	ApplicationID string    `json:"applicationId,omitempty"`
	PaymentMethod string    `json:"paymentMethod"`
	Reference     string    `json:"reference,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}
