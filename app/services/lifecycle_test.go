package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

func seedApplication(store *fakeStore, id string, status models.ApplicationStatus) *models.ScholarshipApplication {
	app := &models.ScholarshipApplication{
		ID:            id,
		ApplicationID: "MAS-2026-" + id,
		ParentInfo:    models.ParentInfo{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		Children:      []models.Child{{Name: "Sam"}},
		Status:        status,
	}
	store.apps[id] = app
	return app
}

func seedStatusTemplates(store *fakeStore) {
	store.templates = []models.EmailTemplate{
		{ID: "t-approved", Name: "Scholarship Approved", Type: string(models.EmailTypeStatusChange),
			Subject: "Great news {{firstName}}", Body: "{{childName}} is {{status}}"},
		{ID: "t-denied", Name: "Application Denied", Type: string(models.EmailTypeStatusChange),
			Subject: "Application update", Body: "Status: {{status}}"},
	}
}

func TestUpdateStatusRejectsInvalidStatus(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusNew)
	svc := NewLifecycleService(store)

	err := svc.UpdateStatus("app-1", "bogus", "admin@test", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Application untouched
	assert.Equal(t, models.StatusNew, store.apps["app-1"].Status)
	assert.Empty(t, svc.events)
}

func TestUpdateStatusUnknownApplication(t *testing.T) {
	svc := NewLifecycleService(newFakeStore())
	err := svc.UpdateStatus("missing", models.StatusApproved, "admin@test", "", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusAppendsNoteAndEmitsEvent(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusUnderReview)
	svc := NewLifecycleService(store)

	err := svc.UpdateStatus("app-1", models.StatusApproved, "admin@test", "  <b>Looks great</b>  ", nil)
	require.NoError(t, err)

	app := store.apps["app-1"]
	assert.Equal(t, models.StatusApproved, app.Status)
	require.Len(t, app.Notes, 1)
	assert.Equal(t, "Looks great", app.Notes[0].Text)
	assert.Equal(t, "admin@test", app.Notes[0].Author)
	assert.Equal(t, "approved", app.Notes[0].StatusChange)

	select {
	case ev := <-svc.Events():
		assert.Equal(t, "app-1", ev.ApplicationID)
		assert.Equal(t, models.StatusUnderReview, ev.From)
		assert.Equal(t, models.StatusApproved, ev.To)
	default:
		t.Fatal("expected a status change event")
	}
}

func TestUpdateStatusSanitizesAwardInfo(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusApproved)
	svc := NewLifecycleService(store)

	award := &models.AwardInfo{SwimSchool: "<i>Aqua Kids</i>", Amount: 450, Notes: "<script>x</script>ok"}
	require.NoError(t, svc.UpdateStatus("app-1", models.StatusActive, "admin@test", "", award))

	assert.Equal(t, "Aqua Kids", store.apps["app-1"].AwardInfo.SwimSchool)
	assert.Equal(t, "xok", store.apps["app-1"].AwardInfo.Notes)
}

func TestNotifierSendsOnApprovedTransition(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusApproved)
	seedStatusTemplates(store)
	mailer := newFakeMailer()
	n := NewNotifier(store, store, store, mailer)

	n.HandleStatusChange(StatusChanged{ApplicationID: "app-1", From: models.StatusUnderReview, To: models.StatusApproved})

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0].to)
	assert.Equal(t, "Great news Jane", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "Sam is approved")

	require.Len(t, store.logs, 1)
	assert.Equal(t, models.EmailSent, store.logs[0].Status)
	assert.Equal(t, models.EmailTypeStatusChange, store.logs[0].Type)
	assert.Equal(t, "t-approved", store.logs[0].TemplateID)
	assert.Equal(t, "app-1", store.logs[0].ApplicationID)
}

func TestNotifierMatchesDeniedTemplateByName(t *testing.T) {
	store := newFakeStore()
	store.apps["app-1"] = &models.ScholarshipApplication{
		ID:         "app-1",
		ParentInfo: models.ParentInfo{Email: "jane@example.com"},
		Status:     models.StatusDenied,
	}
	seedStatusTemplates(store)
	mailer := newFakeMailer()
	n := NewNotifier(store, store, store, mailer)

	n.HandleStatusChange(StatusChanged{ApplicationID: "app-1", From: models.StatusNew, To: models.StatusDenied})

	require.Len(t, store.logs, 1)
	assert.Equal(t, "t-denied", store.logs[0].TemplateID)
}

func TestNotifierFallsBackToFirstTemplate(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusApproved)
	store.templates = []models.EmailTemplate{
		{ID: "t-generic", Name: "Status Update", Type: string(models.EmailTypeStatusChange),
			Subject: "Update", Body: "{{status}}"},
	}
	mailer := newFakeMailer()
	n := NewNotifier(store, store, store, mailer)

	n.HandleStatusChange(StatusChanged{ApplicationID: "app-1", From: models.StatusNew, To: models.StatusApproved})

	require.Len(t, store.logs, 1)
	assert.Equal(t, "t-generic", store.logs[0].TemplateID)
}

func TestNotifierIgnoresNonTerminalTransitions(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusUnderReview)
	seedStatusTemplates(store)
	mailer := newFakeMailer()
	n := NewNotifier(store, store, store, mailer)

	n.HandleStatusChange(StatusChanged{ApplicationID: "app-1", From: models.StatusNew, To: models.StatusUnderReview})
	n.HandleStatusChange(StatusChanged{ApplicationID: "app-1", From: models.StatusApproved, To: models.StatusApproved})
	n.HandleStatusChange(StatusChanged{ApplicationID: "app-1", From: models.StatusApproved, To: models.StatusActive})

	assert.Empty(t, mailer.sent)
	assert.Empty(t, store.logs)
}

func TestNotifierLogsFailedSend(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusApproved)
	seedStatusTemplates(store)
	mailer := newFakeMailer()
	mailer.failAll = true
	n := NewNotifier(store, store, store, mailer)

	n.HandleStatusChange(StatusChanged{ApplicationID: "app-1", From: models.StatusNew, To: models.StatusApproved})

	require.Len(t, store.logs, 1)
	assert.Equal(t, models.EmailFailed, store.logs[0].Status)
	assert.NotEmpty(t, store.logs[0].Error)
}
