package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// DonationFromPayPalIPN normalizes a PayPal IPN form post into a donation.
// Returns (nil, false) for any payment_status other than Completed.
func DonationFromPayPalIPN(values url.Values) (*DonationInput, bool) {
	if values.Get("payment_status") != "Completed" {
		return nil, false
	}

	email := values.Get("payer_email")
	if email == "" {
		email = values.Get("email")
	}

	name := strings.TrimSpace(values.Get("first_name") + " " + values.Get("last_name"))
	if name == "" {
		name = email
	}

	gross := values.Get("mc_gross")
	if gross == "" {
		gross = values.Get("payment_gross")
	}
	amount, err := strconv.ParseFloat(gross, 64)
	if err != nil {
		amount = 0
	}

	txnID := values.Get("txn_id")
	if txnID == "" {
		txnID = fmt.Sprintf("PP-%d", time.Now().UnixMilli())
	}

	// Completed events missing an email or a positive amount are acknowledged
	// without recording.
	if email == "" || amount <= 0 {
		return nil, false
	}

	txnType := values.Get("txn_type")
	recurring := txnType == "subscr_payment" || txnType == "recurring_payment"

	return &DonationInput{
		DonorEmail:    email,
		DonorName:     name,
		Amount:        amount,
		TransactionID: txnID,
		PaymentMethod: models.PaymentPayPal,
		Recurring:     recurring,
	}, true
}

// DonationFromStripeEvent normalizes a verified Stripe event into a donation.
// Returns nil for event types we don't record.
func DonationFromStripeEvent(event stripe.Event) (*DonationInput, error) {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to parse checkout session: %w", err)
		}
		email := session.CustomerEmail
		if email == "" && session.CustomerDetails != nil {
			email = session.CustomerDetails.Email
		}
		name := ""
		if session.CustomerDetails != nil {
			name = session.CustomerDetails.Name
		}
		if session.AmountTotal <= 0 {
			return nil, nil
		}
		return &DonationInput{
			DonorEmail:    email,
			DonorName:     name,
			Amount:        float64(session.AmountTotal) / 100,
			TransactionID: session.ID,
			PaymentMethod: models.PaymentStripe,
			Recurring:     session.Mode == stripe.CheckoutSessionModeSubscription,
		}, nil

	case "invoice.payment_succeeded":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return nil, fmt.Errorf("failed to parse invoice: %w", err)
		}
		if invoice.CustomerEmail == "" || invoice.AmountPaid <= 0 {
			// Nothing to record without an address and a positive amount.
			return nil, nil
		}
		return &DonationInput{
			DonorEmail:    invoice.CustomerEmail,
			DonorName:     invoice.CustomerName,
			Amount:        float64(invoice.AmountPaid) / 100,
			TransactionID: invoice.ID,
			PaymentMethod: models.PaymentStripe,
			Recurring:     true,
		}, nil

	default:
		log.Printf("Unhandled Stripe event type: %s", event.Type)
		return nil, nil
	}
}
