package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

func newBulkFixture() (*fakeStore, *fakeMailer, *BulkMailer) {
	store := newFakeStore()
	store.templates = []models.EmailTemplate{
		{ID: "t-news", Name: "Newsletter", Type: string(models.EmailTypeBulk),
			Subject: "Hello {{firstName}}", Body: "News for {{firstName}}"},
	}
	mailer := newFakeMailer()
	b := NewBulkMailer(store, store, store, store, mailer)
	b.sleep = func(time.Duration) {}
	return store, mailer, b
}

func TestBulkDispatchToSubscribers(t *testing.T) {
	store, mailer, b := newBulkFixture()
	store.subs = []models.NewsletterSubscriber{
		{Email: "a@example.com", Name: "Ann"},
		{Email: "b@example.com"},
		{Email: "a@example.com", Name: "Ann Again"}, // duplicate, first wins
		{Email: "not-an-email"},
	}

	result, err := b.Dispatch("t-news", "subscribers", "", "admin@test")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 2, result.Total)
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "Hello Ann", mailer.sent[0].subject)
	// Missing name falls back to the generic salutation
	assert.Equal(t, "Hello Friend", mailer.sent[1].subject)
}

func TestBulkDispatchCustomSubjectOverride(t *testing.T) {
	store, mailer, b := newBulkFixture()
	store.subs = []models.NewsletterSubscriber{{Email: "a@example.com", Name: "Ann"}}

	_, err := b.Dispatch("t-news", "subscribers", "Special Announcement", "admin@test")
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Special Announcement", mailer.sent[0].subject)
	require.Len(t, store.logs, 1)
	assert.Equal(t, "Special Announcement", store.logs[0].Subject)
}

func TestBulkDispatchPartialFailure(t *testing.T) {
	store, mailer, b := newBulkFixture()
	store.subs = []models.NewsletterSubscriber{
		{Email: "ok@example.com", Name: "Ok"},
		{Email: "bad@example.com", Name: "Bad"},
	}
	mailer.failFor["bad@example.com"] = true

	result, err := b.Dispatch("t-news", "subscribers", "", "admin@test")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, result.Total, result.Sent+result.Failed)

	require.Len(t, store.logs, 1)
	entry := store.logs[0]
	assert.Equal(t, models.EmailPartial, entry.Status)
	assert.Equal(t, models.EmailTypeBulk, entry.Type)
	assert.Equal(t, "Bulk: 1 sent, 1 failed", entry.Recipient)
	require.NotNil(t, entry.Details)
	assert.Equal(t, 1, entry.Details.Sent)
	assert.Equal(t, 1, entry.Details.Failed)
	assert.Equal(t, 2, entry.Details.Total)
}

func TestBulkDispatchToApplicantsByStatus(t *testing.T) {
	store, mailer, b := newBulkFixture()
	seedApplication(store, "app-1", models.StatusApproved)
	store.apps["app-2"] = &models.ScholarshipApplication{
		ID: "app-2", ParentInfo: models.ParentInfo{FirstName: "Mo", Email: "mo@example.com"},
		Status: models.StatusDenied,
	}

	result, err := b.Dispatch("t-news", "approved", "", "admin@test")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0].to)
}

func TestBulkDispatchAllApplicants(t *testing.T) {
	store, _, b := newBulkFixture()
	seedApplication(store, "app-1", models.StatusApproved)
	store.apps["app-2"] = &models.ScholarshipApplication{
		ID: "app-2", ParentInfo: models.ParentInfo{FirstName: "Mo", Email: "mo@example.com"},
		Status: models.StatusDenied,
	}

	result, err := b.Dispatch("t-news", "all_applicants", "", "admin@test")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
}

func TestBulkDispatchUnknownTemplate(t *testing.T) {
	_, _, b := newBulkFixture()
	_, err := b.Dispatch("missing", "subscribers", "", "admin@test")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBulkDispatchBatchesWithDelay(t *testing.T) {
	store, _, b := newBulkFixture()
	for i := 0; i < 120; i++ {
		store.subs = append(store.subs, models.NewsletterSubscriber{
			Email: fmt.Sprintf("sub%d@example.com", i),
		})
	}
	var pauses int
	b.sleep = func(d time.Duration) {
		assert.Equal(t, 2*time.Second, d)
		pauses++
	}

	result, err := b.Dispatch("t-news", "subscribers", "", "admin@test")
	require.NoError(t, err)

	assert.Equal(t, 120, result.Sent)
	// 3 batches of 50/50/20: pauses between batches only, none after the last
	assert.Equal(t, 2, pauses)
}
