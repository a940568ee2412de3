package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// Placeholders is the data context for template rendering. Every recognized
// {{token}} maps to one field here; a zero field renders as empty string.
type Placeholders struct {
	FirstName     string
	LastName      string
	Email         string
	ChildName     string
	Status        string
	ApplicationID string
	AwardAmount   float64
	SwimSchool    string
}

// RenderTemplate substitutes every recognized {{token}} in text with its
// value from p. Tokens outside the recognized set are left literally in
// place. awardAmount renders with a dollar sign when positive, empty
// otherwise.
func RenderTemplate(text string, p Placeholders) string {
	awardAmount := ""
	if p.AwardAmount > 0 {
		awardAmount = "$" + strconv.FormatFloat(p.AwardAmount, 'f', -1, 64)
	}

	replacements := [][2]string{
		{"{{firstName}}", p.FirstName},
		{"{{lastName}}", p.LastName},
		{"{{email}}", p.Email},
		{"{{childName}}", p.ChildName},
		{"{{status}}", p.Status},
		{"{{applicationId}}", p.ApplicationID},
		{"{{awardAmount}}", awardAmount},
		{"{{swimSchool}}", p.SwimSchool},
		{"{{currentDate}}", time.Now().Format("1/2/2006")},
	}

	result := text
	for _, r := range replacements {
		result = strings.ReplaceAll(result, r[0], r[1])
	}
	return result
}

// PlaceholdersFromApplication builds the rendering context for an
// application's parent.
func PlaceholdersFromApplication(app *models.ScholarshipApplication) Placeholders {
	p := Placeholders{
		FirstName:     app.ParentInfo.FirstName,
		LastName:      app.ParentInfo.LastName,
		Email:         app.ParentInfo.Email,
		Status:        string(app.Status),
		ApplicationID: app.ApplicationID,
	}
	if p.ApplicationID == "" {
		p.ApplicationID = app.ID
	}
	if len(app.Children) > 0 {
		p.ChildName = app.Children[0].Name
	}
	if app.AwardInfo != nil {
		p.AwardAmount = app.AwardInfo.Amount
		p.SwimSchool = app.AwardInfo.SwimSchool
	}
	return p
}
