package gateway

import (
	"context"
	"errors"

	"github.com/Hazykiller/NGO-WEBSITE/internal/logger"
)

// Gateway modes reported by GET / and echoed on every order.
const (
	ModeRazorpay = "razorpay"
	ModeDummy    = "dummy"
)

// SimSignature is the magic signature the dummy gateway accepts, so the
// checkout flow can be exercised without Razorpay credentials.
const SimSignature = "sim_signature"

// Error strings below are wire-visible: handlers surface them verbatim in
// the "details" field of signature-failure responses.
var (
	ErrMissingFields     = errors.New("Missing fields")
	ErrSignatureMismatch = errors.New("Razorpay Signature Verification Failed")
	ErrDummyRejected     = errors.New("Dummy mode requires simulate:true or sim_signature")

	ErrWebhookMismatch      = errors.New("Invalid webhook signature")
	ErrWebhookNotConfigured = errors.New("Webhook secret is not configured")
)

// Order is the gateway's view of a payment intent. It is never persisted;
// the response to the donor is its only record.
type Order struct {
	ID       string
	Amount   int // minor units (paise)
	Currency string
	KeyID    string
	Mode     string
}

// CreateOrderInput carries what an order needs. Amount is whole rupees;
// gateways convert to paise themselves.
type CreateOrderInput struct {
	Amount int
	Notes  map[string]string
}

// Verification is the callback payload a checkout posts back.
type Verification struct {
	OrderID   string
	PaymentID string
	Signature string
	Simulate  bool
}

// Gateway abstracts the payment provider so the services never know
// whether real Razorpay credentials are configured.
type Gateway interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*Order, error)
	VerifySignature(v Verification) error
	VerifyWebhook(body []byte, signature string) error
	Mode() string
	KeyID() string
}

// Config holds the gateway credentials.
type Config struct {
	Enabled       bool
	KeyID         string
	KeySecret     string
	WebhookSecret string
}

// New выбирает реализацию шлюза по конфигурации.
// Без секретного ключа реальный режим невозможен, поэтому падаем в dummy.
func New(cfg Config) Gateway {
	if cfg.Enabled {
		if cfg.KeySecret == "" {
			logger.Warn("USE_RAZORPAY is set but RAZORPAY_KEY_SECRET is empty, falling back to dummy mode")
			return NewDummyGateway(cfg.KeyID)
		}
		return NewRazorpayGateway(cfg)
	}
	return NewDummyGateway(cfg.KeyID)
}
