package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

func newReminderFixture() (*fakeStore, *fakeMailer, *ReminderService) {
	store := newFakeStore()
	store.settings.ProgressReminderEnabled = true
	mailer := newFakeMailer()
	svc := NewReminderService(store, store, store, store, mailer)
	return store, mailer, svc
}

func seedStaleActive(store *fakeStore, id string, ageDays int) *models.ScholarshipApplication {
	app := seedApplication(store, id, models.StatusActive)
	app.LastUpdated = time.Now().AddDate(0, 0, -ageDays)
	app.AwardInfo = &models.AwardInfo{TotalLessons: 10, LessonsCompleted: 3}
	return app
}

func TestReminderSweepSendsForStaleApplications(t *testing.T) {
	store, mailer, svc := newReminderFixture()
	seedStaleActive(store, "app-1", 20)

	sent, err := svc.RunSweep()
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, "3 of 10")

	require.Len(t, store.logs, 1)
	assert.Equal(t, models.EmailTypeReminder, store.logs[0].Type)
	assert.Equal(t, "app-1", store.logs[0].ApplicationID)
}

func TestReminderSweepDisabledByDefault(t *testing.T) {
	store, mailer, svc := newReminderFixture()
	store.settings.ProgressReminderEnabled = false
	seedStaleActive(store, "app-1", 20)

	sent, err := svc.RunSweep()
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, mailer.sent)
}

func TestReminderSweepSkipsRecentlyUpdated(t *testing.T) {
	store, mailer, svc := newReminderFixture()
	seedStaleActive(store, "app-1", 5)

	sent, err := svc.RunSweep()
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, mailer.sent)
}

func TestReminderSweepSuppressesRepeatsWithinAWeek(t *testing.T) {
	store, mailer, svc := newReminderFixture()
	seedStaleActive(store, "app-1", 20)

	sent, err := svc.RunSweep()
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	// Second sweep right after: the reminder record blocks a repeat
	sent, err = svc.RunSweep()
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Len(t, mailer.sent, 1)
}

func TestReminderSweepSkipsCompletedLessons(t *testing.T) {
	store, mailer, svc := newReminderFixture()
	app := seedStaleActive(store, "app-1", 20)
	app.AwardInfo.LessonsCompleted = 10

	sent, err := svc.RunSweep()
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, mailer.sent)
}
