package models

import "time"

// Donation is a normalized donation record from either payment provider.
// TransactionID is unique across all donations; ingestion enforces it.
type Donation struct {
	ID            string        `json:"id"`
	DonorEmail    string        `json:"donorEmail"`
	DonorName     string        `json:"donorName"`
	Amount        float64       `json:"amount"`
	TransactionID string        `json:"transactionId"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Recurring     bool          `json:"recurring"`
	CreatedAt     time.Time     `json:"createdAt"`
	ReceiptSent   bool          `json:"receiptSent"`
}
