package gateway

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// dummyGateway lets the whole donation flow run without Razorpay
// credentials. Orders get a recognizable fake id and verification is a
// string comparison.
type dummyGateway struct {
	keyID string
}

func NewDummyGateway(keyID string) Gateway {
	if keyID == "" {
		keyID = "rzp_test_dummy"
	}
	return &dummyGateway{keyID: keyID}
}

func (g *dummyGateway) Mode() string  { return ModeDummy }
func (g *dummyGateway) KeyID() string { return g.keyID }

func (g *dummyGateway) CreateOrder(ctx context.Context, in CreateOrderInput) (*Order, error) {
	id := uuid.New()
	return &Order{
		ID:       fmt.Sprintf("order_fake_%s", hex.EncodeToString(id[:])[:12]),
		Amount:   in.Amount * 100,
		Currency: "INR",
		KeyID:    g.keyID,
		Mode:     ModeDummy,
	}, nil
}

// VerifySignature принимает платёж, если клиент явно попросил симуляцию
// или прислал магическую подпись. Всё остальное отклоняется с подсказкой.
func (g *dummyGateway) VerifySignature(v Verification) error {
	if v.OrderID == "" || v.PaymentID == "" || v.Signature == "" {
		return ErrMissingFields
	}
	if v.Simulate {
		return nil
	}
	if v.Signature == SimSignature {
		return nil
	}
	return ErrDummyRejected
}

// VerifyWebhook accepts the magic signature only; there is no secret to
// run a real HMAC against in dummy mode.
func (g *dummyGateway) VerifyWebhook(body []byte, signature string) error {
	if signature == "" {
		return ErrMissingFields
	}
	if signature == SimSignature {
		return nil
	}
	return ErrWebhookMismatch
}
