package gateway

import (
	"context"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// razorpayGateway wraps the official Razorpay SDK.
type razorpayGateway struct {
	client        *razorpay.Client
	keyID         string
	keySecret     string
	webhookSecret string
}

func NewRazorpayGateway(cfg Config) Gateway {
	return &razorpayGateway{
		client:        razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		keyID:         cfg.KeyID,
		keySecret:     cfg.KeySecret,
		webhookSecret: cfg.WebhookSecret,
	}
}

func (g *razorpayGateway) Mode() string  { return ModeRazorpay }
func (g *razorpayGateway) KeyID() string { return g.keyID }

// CreateOrder registers the order with Razorpay. payment_capture:1 makes
// Razorpay capture automatically, so no separate capture call exists here.
func (g *razorpayGateway) CreateOrder(ctx context.Context, in CreateOrderInput) (*Order, error) {
	data := map[string]interface{}{
		"amount":          in.Amount * 100,
		"currency":        "INR",
		"receipt":         fmt.Sprintf("rcpt_%d", time.Now().Unix()),
		"payment_capture": 1,
	}
	if len(in.Notes) > 0 {
		notes := make(map[string]interface{}, len(in.Notes))
		for k, v := range in.Notes {
			notes[k] = v
		}
		data["notes"] = notes
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("unexpected order response: missing id")
	}

	order := &Order{
		ID:       id,
		Amount:   in.Amount * 100,
		Currency: "INR",
		KeyID:    g.keyID,
		Mode:     ModeRazorpay,
	}
	// Razorpay echoes amount/currency back; prefer its values when present.
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int(amount)
	}
	if currency, ok := body["currency"].(string); ok && currency != "" {
		order.Currency = currency
	}
	return order, nil
}

func (g *razorpayGateway) VerifySignature(v Verification) error {
	if v.OrderID == "" || v.PaymentID == "" || v.Signature == "" {
		return ErrMissingFields
	}
	params := map[string]interface{}{
		"razorpay_order_id":   v.OrderID,
		"razorpay_payment_id": v.PaymentID,
	}
	if !utils.VerifyPaymentSignature(params, v.Signature, g.keySecret) {
		return ErrSignatureMismatch
	}
	return nil
}

func (g *razorpayGateway) VerifyWebhook(body []byte, signature string) error {
	if g.webhookSecret == "" {
		return ErrWebhookNotConfigured
	}
	if signature == "" {
		return ErrMissingFields
	}
	if !utils.VerifyWebhookSignature(string(body), signature, g.webhookSecret) {
		return ErrWebhookMismatch
	}
	return nil
}
