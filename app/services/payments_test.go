package services

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

func TestPayPalNormalizationCompleted(t *testing.T) {
	values := url.Values{
		"payment_status": {"Completed"},
		"payer_email":    {"donor@example.com"},
		"first_name":     {"Pat"},
		"last_name":      {"Donor"},
		"mc_gross":       {"25.00"},
		"txn_id":         {"TXN123"},
	}

	input, ok := DonationFromPayPalIPN(values)
	require.True(t, ok)
	assert.Equal(t, "donor@example.com", input.DonorEmail)
	assert.Equal(t, "Pat Donor", input.DonorName)
	assert.Equal(t, 25.0, input.Amount)
	assert.Equal(t, "TXN123", input.TransactionID)
	assert.Equal(t, models.PaymentPayPal, input.PaymentMethod)
	assert.False(t, input.Recurring)
}

func TestPayPalNormalizationIgnoresIncomplete(t *testing.T) {
	for _, status := range []string{"Pending", "Refunded", "Failed", ""} {
		_, ok := DonationFromPayPalIPN(url.Values{"payment_status": {status}})
		assert.False(t, ok, "status %q should be ignored", status)
	}
}

func TestPayPalNormalizationRejectsMalformedCompleted(t *testing.T) {
	// Completed but no email and no amount
	_, ok := DonationFromPayPalIPN(url.Values{
		"payment_status": {"Completed"},
		"txn_id":         {"TXN-NOEMAIL"},
	})
	assert.False(t, ok)

	// Email present, amount missing
	_, ok = DonationFromPayPalIPN(url.Values{
		"payment_status": {"Completed"},
		"payer_email":    {"donor@example.com"},
		"txn_id":         {"TXN-NOAMOUNT"},
	})
	assert.False(t, ok)

	// Unparseable amount treated the same as absent
	_, ok = DonationFromPayPalIPN(url.Values{
		"payment_status": {"Completed"},
		"payer_email":    {"donor@example.com"},
		"mc_gross":       {"not-a-number"},
		"txn_id":         {"TXN-BADAMOUNT"},
	})
	assert.False(t, ok)
}

func TestPayPalNormalizationFallbacks(t *testing.T) {
	values := url.Values{
		"payment_status": {"Completed"},
		"email":          {"alt@example.com"},
		"payment_gross":  {"10.50"},
		"txn_type":       {"subscr_payment"},
	}

	input, ok := DonationFromPayPalIPN(values)
	require.True(t, ok)
	assert.Equal(t, "alt@example.com", input.DonorEmail)
	assert.Equal(t, 10.5, input.Amount)
	assert.True(t, input.Recurring)
	// Missing txn_id gets a generated placeholder
	assert.True(t, strings.HasPrefix(input.TransactionID, "PP-"))
}

func stripeEvent(t *testing.T, eventType string, payload interface{}) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return stripe.Event{
		ID:   "evt_test",
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestStripeCheckoutSessionCompleted(t *testing.T) {
	event := stripeEvent(t, "checkout.session.completed", map[string]interface{}{
		"id":             "cs_test_123",
		"amount_total":   2500,
		"customer_email": "donor@example.com",
		"mode":           "payment",
		"customer_details": map[string]interface{}{
			"name": "Pat Donor",
		},
	})

	input, err := DonationFromStripeEvent(event)
	require.NoError(t, err)
	require.NotNil(t, input)
	assert.Equal(t, "donor@example.com", input.DonorEmail)
	assert.Equal(t, "Pat Donor", input.DonorName)
	assert.Equal(t, 25.0, input.Amount)
	assert.Equal(t, "cs_test_123", input.TransactionID)
	assert.Equal(t, models.PaymentStripe, input.PaymentMethod)
	assert.False(t, input.Recurring)
}

func TestStripeSubscriptionCheckoutIsRecurring(t *testing.T) {
	event := stripeEvent(t, "checkout.session.completed", map[string]interface{}{
		"id":           "cs_test_sub",
		"amount_total": 1000,
		"mode":         "subscription",
		"customer_details": map[string]interface{}{
			"email": "donor@example.com",
		},
	})

	input, err := DonationFromStripeEvent(event)
	require.NoError(t, err)
	require.NotNil(t, input)
	assert.True(t, input.Recurring)
	assert.Equal(t, "donor@example.com", input.DonorEmail)
}

func TestStripeInvoicePaymentSucceeded(t *testing.T) {
	event := stripeEvent(t, "invoice.payment_succeeded", map[string]interface{}{
		"id":             "in_test_1",
		"amount_paid":    1000,
		"customer_email": "donor@example.com",
		"customer_name":  "Pat Donor",
	})

	input, err := DonationFromStripeEvent(event)
	require.NoError(t, err)
	require.NotNil(t, input)
	assert.Equal(t, 10.0, input.Amount)
	assert.True(t, input.Recurring)
	assert.Equal(t, "in_test_1", input.TransactionID)
}

func TestStripeZeroAmountEventsSkipped(t *testing.T) {
	session := stripeEvent(t, "checkout.session.completed", map[string]interface{}{
		"id":             "cs_test_zero",
		"amount_total":   0,
		"customer_email": "donor@example.com",
		"mode":           "payment",
	})
	input, err := DonationFromStripeEvent(session)
	require.NoError(t, err)
	assert.Nil(t, input)

	invoice := stripeEvent(t, "invoice.payment_succeeded", map[string]interface{}{
		"id":             "in_test_zero",
		"amount_paid":    0,
		"customer_email": "donor@example.com",
	})
	input, err = DonationFromStripeEvent(invoice)
	require.NoError(t, err)
	assert.Nil(t, input)
}

func TestStripeInvoiceWithoutEmailSkipped(t *testing.T) {
	event := stripeEvent(t, "invoice.payment_succeeded", map[string]interface{}{
		"id":          "in_test_2",
		"amount_paid": 1000,
	})

	input, err := DonationFromStripeEvent(event)
	require.NoError(t, err)
	assert.Nil(t, input)
}

func TestStripeUnhandledEventSkipped(t *testing.T) {
	event := stripeEvent(t, "customer.created", map[string]interface{}{"id": "cus_1"})
	input, err := DonationFromStripeEvent(event)
	require.NoError(t, err)
	assert.Nil(t, input)
}
