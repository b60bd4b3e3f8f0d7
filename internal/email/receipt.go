package email

import "fmt"

// Donor-facing wording. The frontend and old donors' inboxes both know
// these strings, so they stay byte for byte.
const ReceiptSubject = "Thank you for your donation — Pratibha Charitable Trust"

// NewDonationReceipt builds the thank-you message with the certificate
// attached.
func NewDonationReceipt(to, donorName string, amount int, orderID string, cert Attachment) *Email {
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for your generous donation of INR %d.\n"+
			"Please find your donation certificate attached.\n\n"+
			"Order ID: %s\n"+
			"Warm regards,\nPratibha Charitable Trust",
		donorName, amount, orderID,
	)

	return &Email{
		To:          []string{to},
		Subject:     ReceiptSubject,
		Body:        body,
		Attachments: []Attachment{cert},
	}
}
