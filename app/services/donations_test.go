package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

func TestDonationProcessRecordsAndReceipts(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	svc := NewDonationService(store, mailer)

	id, err := svc.Process(DonationInput{
		DonorEmail:    "donor@example.com",
		DonorName:     "Pat Donor",
		Amount:        25,
		TransactionID: "evt_123",
		PaymentMethod: models.PaymentStripe,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	d := store.donations["evt_123"]
	require.NotNil(t, d)
	assert.Equal(t, 25.0, d.Amount)
	assert.True(t, d.ReceiptSent)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "donor@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, "$25.00")
	assert.Contains(t, mailer.sent[0].body, "evt_123")
	assert.Contains(t, mailer.sent[0].body, "Credit Card (Stripe)")
}

func TestDonationProcessReplayIsNoOp(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	svc := NewDonationService(store, mailer)

	_, err := svc.Process(DonationInput{
		DonorEmail: "donor@example.com", Amount: 25,
		TransactionID: "evt_123", PaymentMethod: models.PaymentStripe,
	})
	require.NoError(t, err)

	id, err := svc.Process(DonationInput{
		DonorEmail: "donor@example.com", Amount: 25,
		TransactionID: "evt_123", PaymentMethod: models.PaymentStripe,
	})
	require.NoError(t, err)
	assert.Empty(t, id)

	// Still exactly one record and one receipt
	assert.Len(t, store.donations, 1)
	assert.Len(t, mailer.sent, 1)
}

func TestDonationProcessIgnoresMalformedInput(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	svc := NewDonationService(store, mailer)

	// No donor email
	id, err := svc.Process(DonationInput{
		Amount: 25, TransactionID: "TXN-NOEMAIL", PaymentMethod: models.PaymentPayPal,
	})
	require.NoError(t, err)
	assert.Empty(t, id)

	// Zero amount
	id, err = svc.Process(DonationInput{
		DonorEmail: "donor@example.com", Amount: 0,
		TransactionID: "TXN-ZERO", PaymentMethod: models.PaymentPayPal,
	})
	require.NoError(t, err)
	assert.Empty(t, id)

	// Nothing recorded, no receipts attempted
	assert.Empty(t, store.donations)
	assert.Empty(t, mailer.sent)
}

func TestDonationReceiptFailureLeavesReceiptUnsent(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	mailer.failAll = true
	svc := NewDonationService(store, mailer)

	id, err := svc.Process(DonationInput{
		DonorEmail: "donor@example.com", Amount: 50,
		TransactionID: "txn-9", PaymentMethod: models.PaymentPayPal,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Donation recorded, receipt flag stays false for a later retry
	d := store.donations["txn-9"]
	require.NotNil(t, d)
	assert.False(t, d.ReceiptSent)
}

func TestDonationReceiptAnonymousAndRecurring(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	svc := NewDonationService(store, mailer)

	_, err := svc.Process(DonationInput{
		DonorEmail:    "donor@example.com",
		Amount:        10,
		TransactionID: "sub-1",
		PaymentMethod: models.PaymentPayPal,
		Recurring:     true,
	})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].body, "Generous Donor")
	assert.Contains(t, mailer.sent[0].body, "recurring donation")
	assert.Contains(t, mailer.sent[0].body, "PayPal")
}
