package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the donation pipeline domains:
order creation, signature verification, certificate generation, email.
*/

// --- Orders ---

// ErrInvalidAmount - the amount field is missing or not an integer.
var ErrInvalidAmount = New(
	CodeValidationFailed,
	"order",
	"Invalid amount",
	http.StatusBadRequest,
)

// ErrAmountNotPositive - the amount is zero or negative.
var ErrAmountNotPositive = New(
	CodeValidationFailed,
	"order",
	"Amount must be > 0",
	http.StatusBadRequest,
)

// ErrGatewayOrder - the payment gateway rejected or failed order creation.
func ErrGatewayOrder(err error) *AppError {
	return Wrap(err, CodeGatewayError, "gateway", "Razorpay order creation failed", http.StatusInternalServerError).
		WithDetails(err.Error())
}

// --- Payments ---

// ErrSignatureVerification - the callback signature did not verify.
// details carries the gateway's reason ("Missing fields", the dummy-mode
// hint, or the SDK error text).
func ErrSignatureVerification(details string) *AppError {
	return New(CodeSignatureInvalid, "payment", "Signature verification failed", http.StatusBadRequest).
		WithDetails(details)
}

// ErrWebhookSignature - the webhook HMAC did not verify.
func ErrWebhookSignature(details string) *AppError {
	return New(CodeSignatureInvalid, "payment", "Webhook signature verification failed", http.StatusBadRequest).
		WithDetails(details)
}

// --- Certificates ---

// ErrCertificateGeneration - rendering or storing the PDF failed.
func ErrCertificateGeneration(err error) *AppError {
	return Wrap(err, CodeCertificateError, "certificate", "Internal error generating certificate", http.StatusInternalServerError).
		WithDetails(err.Error())
}

// ErrCertificateNotFound - no certificate file with that name exists.
var ErrCertificateNotFound = New(
	CodeNotFound,
	"certificate",
	"Certificate not found",
	http.StatusNotFound,
)

// --- Email ---

// ErrEmailDelivery - SMTP delivery failed. Never fatal for the request;
// handlers report it inline next to the success payload.
func ErrEmailDelivery(err error) *AppError {
	return Wrap(err, CodeEmailError, "email", "Failed to send certificate email", http.StatusInternalServerError).
		WithDetails(err.Error())
}
