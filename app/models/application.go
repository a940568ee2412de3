package models

import "time"

// ParentInfo holds the applying parent or guardian's contact details.
type ParentInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Child is one child covered by a scholarship application.
type Child struct {
	Name string `json:"name"`
	DOB  string `json:"dob"`
}

// NoteEntry is one append-only note on an application. Notes are never
// removed or reordered.
type NoteEntry struct {
	Text         string    `json:"text"`
	Author       string    `json:"author"`
	CreatedAt    time.Time `json:"createdAt"`
	StatusChange string    `json:"statusChange"`
}

// AwardInfo describes a granted scholarship. Only meaningful once an
// application reaches approved, active or completed.
type AwardInfo struct {
	SwimSchool         string  `json:"swimSchool"`
	Amount             float64 `json:"amount"`
	AwardDate          string  `json:"awardDate"`
	TotalLessons       int     `json:"totalLessons"`
	LessonsCompleted   int     `json:"lessonsCompleted"`
	ExpectedCompletion string  `json:"expectedCompletion"`
	Notes              string  `json:"notes"`
}

// ScholarshipApplication is a family's scholarship application record.
type ScholarshipApplication struct {
	ID            string            `json:"id"`
	ApplicationID string            `json:"applicationId"`
	ParentInfo    ParentInfo        `json:"parentInfo"`
	Children      []Child           `json:"children"`
	Documents     map[string]string `json:"documents"`
	Status        ApplicationStatus `json:"status"`
	AwardInfo     *AwardInfo        `json:"awardInfo,omitempty"`
	Notes         []NoteEntry       `json:"notes"`
	SubmittedAt   time.Time         `json:"submittedAt"`
	LastUpdated   time.Time         `json:"lastUpdated"`
	UpdatedBy     string            `json:"updatedBy,omitempty"`
}
