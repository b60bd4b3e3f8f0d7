package dto

import "encoding/json"

// VerifyPaymentRequest is the callback the checkout posts after a payment
// attempt. The three razorpay_* fields are the signature material; the
// rest personalizes the certificate and receipt.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`

	// Simulate lets dummy-mode checkouts skip the signature entirely.
	Simulate bool `json:"simulate"`

	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Amount json.RawMessage `json:"amount"`

	// Some widget builds send order_id instead of razorpay_order_id.
	FallbackOrderID string `json:"order_id"`
}

// PaymentInfo echoes the verified payment back to the frontend.
type PaymentInfo struct {
	OrderID string `json:"order_id"`
	Amount  int    `json:"amount"`
}

// VerifyPaymentResponse is the full verification result. EmailError is a
// pointer so the frontend sees an explicit null when nothing went wrong.
type VerifyPaymentResponse struct {
	Status         string      `json:"status"`
	Message        string      `json:"message"`
	Payment        PaymentInfo `json:"payment"`
	CertificateURL string      `json:"certificate_url"`
	EmailSent      bool        `json:"email_sent"`
	EmailError     *string     `json:"email_error"`
}
