package services

import (
	"fmt"
	"log"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

const receiptSubject = "Thank You for Your Donation - Make A Splash Foundation"

// DonationInput is a payment event normalized from either provider.
type DonationInput struct {
	DonorEmail    string
	DonorName     string
	Amount        float64
	TransactionID string
	PaymentMethod models.PaymentMethod
	Recurring     bool
}

// DonationService records donations at most once per external transaction id
// and sends tax receipts.
type DonationService struct {
	donations DonationStore
	mailer    Mailer
}

func NewDonationService(donations DonationStore, mailer Mailer) *DonationService {
	return &DonationService{donations: donations, mailer: mailer}
}

// Process records one donation. Replays of an already-recorded transaction
// id are acknowledged no-ops. The receipt email is best-effort: a send
// failure leaves receipt_sent false with no retry, the donation record
// itself is already durable.
func (s *DonationService) Process(in DonationInput) (string, error) {
	donation := &models.Donation{
		DonorEmail:    Sanitize(in.DonorEmail),
		DonorName:     Sanitize(in.DonorName),
		Amount:        in.Amount,
		TransactionID: Sanitize(in.TransactionID),
		PaymentMethod: in.PaymentMethod,
		Recurring:     in.Recurring,
	}

	// A donation record always has a donor address and a positive amount;
	// events that lack either are acknowledged without recording.
	if donation.DonorEmail == "" || donation.Amount <= 0 {
		log.Printf("Ignoring donation event without email or positive amount: %q", donation.TransactionID)
		return "", nil
	}

	exists, err := s.donations.DonationExists(donation.TransactionID)
	if err != nil {
		return "", err
	}
	if exists {
		log.Printf("Duplicate transaction ignored: %s", donation.TransactionID)
		return "", nil
	}

	id, inserted, err := s.donations.InsertDonation(donation)
	if err != nil {
		return "", err
	}
	if !inserted {
		// The unique constraint caught a near-simultaneous duplicate.
		log.Printf("Duplicate transaction ignored: %s", donation.TransactionID)
		return "", nil
	}

	if err := s.sendReceipt(donation); err != nil {
		log.Printf("Error sending donation receipt: %v", err)
	} else {
		if err := s.donations.MarkReceiptSent(id); err != nil {
			log.Printf("Failed to mark receipt sent for donation %s: %v", id, err)
		}
		log.Printf("Donation receipt sent to: %s", donation.DonorEmail)
	}

	return id, nil
}

// SendReceipt sends a standalone tax receipt, used by the manual retrigger
// endpoint.
func (s *DonationService) SendReceipt(donorEmail, donorName string, amount float64, transactionID string) error {
	return s.sendReceipt(&models.Donation{
		DonorEmail:    donorEmail,
		DonorName:     donorName,
		Amount:        amount,
		TransactionID: transactionID,
	})
}

func (s *DonationService) sendReceipt(d *models.Donation) error {
	donorName := d.DonorName
	if donorName == "" {
		donorName = "Generous Donor"
	}
	recurringNote := ""
	if d.Recurring {
		recurringNote = "recurring "
	}
	methodLabel := "PayPal"
	if d.PaymentMethod == models.PaymentStripe {
		methodLabel = "Credit Card (Stripe)"
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for your %sdonation of <strong>$%.2f</strong> to Make A Splash Foundation!</p>
		<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<h3 style="color: #4A90E2;">Your Impact</h3>
			<p>Your gift will help provide life-saving swim lessons to children in need. Together, we're preventing childhood drowning and making water safety accessible to every child.</p>
		</div>
		<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border: 2px solid #4A90E2;">
			<h3 style="color: #1E3A5F; margin-top: 0;">Tax Receipt</h3>
			<p><strong>Transaction ID:</strong> %s</p>
			<p><strong>Amount:</strong> $%.2f</p>
			<p><strong>Payment Method:</strong> %s</p>
			<p style="font-size: 14px; color: #666; margin-top: 15px;">
				Make A Splash Foundation Inc. is a 501(c)(3) nonprofit organization.<br>
				Tax ID: 92-3713877<br>
				Your donation is tax-deductible to the fullest extent allowed by law.
			</p>
		</div>
		<p>If you have any questions about your donation, please contact us at <a href="mailto:contact@makeasplashfoundation.co">contact@makeasplashfoundation.co</a></p>
		<p style="margin-top: 30px;">With gratitude,<br><strong>Make A Splash Foundation Team</strong></p>`,
		donorName, recurringNote, d.Amount, d.TransactionID, d.Amount, methodLabel)

	return s.mailer.Send(d.DonorEmail, receiptSubject, BrandedHTML("Thank You!", body))
}
