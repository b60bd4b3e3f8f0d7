package gateway_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/Hazykiller/NGO-WEBSITE/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakeOrderID = regexp.MustCompile(`^order_fake_[0-9a-f]{12}$`)

func TestDummyGateway_CreateOrder(t *testing.T) {
	t.Parallel()

	g := gateway.NewDummyGateway("")

	order, err := g.CreateOrder(context.Background(), gateway.CreateOrderInput{Amount: 500})
	require.NoError(t, err)

	assert.Regexp(t, fakeOrderID, order.ID)
	assert.Equal(t, 50000, order.Amount, "сумма заказа хранится в пайсах")
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rzp_test_dummy", order.KeyID, "пустой key id заменяется тестовым")
	assert.Equal(t, gateway.ModeDummy, order.Mode)

	second, err := g.CreateOrder(context.Background(), gateway.CreateOrderInput{Amount: 500})
	require.NoError(t, err)
	assert.NotEqual(t, order.ID, second.ID)
}

func TestDummyGateway_VerifySignature(t *testing.T) {
	t.Parallel()

	g := gateway.NewDummyGateway("rzp_test_abc")

	base := gateway.Verification{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "whatever",
	}

	t.Run("Simulate Accepted", func(t *testing.T) {
		v := base
		v.Simulate = true
		assert.NoError(t, g.VerifySignature(v))
	})

	t.Run("Magic Signature Accepted", func(t *testing.T) {
		v := base
		v.Signature = gateway.SimSignature
		assert.NoError(t, g.VerifySignature(v))
	})

	t.Run("Anything Else Rejected", func(t *testing.T) {
		assert.ErrorIs(t, g.VerifySignature(base), gateway.ErrDummyRejected)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		v := base
		v.PaymentID = ""
		v.Simulate = true
		assert.ErrorIs(t, g.VerifySignature(v), gateway.ErrMissingFields, "simulate не спасает от неполного запроса")
	})
}

func TestDummyGateway_VerifyWebhook(t *testing.T) {
	t.Parallel()

	g := gateway.NewDummyGateway("rzp_test_abc")
	body := []byte(`{"event":"payment.captured"}`)

	assert.NoError(t, g.VerifyWebhook(body, gateway.SimSignature))
	assert.ErrorIs(t, g.VerifyWebhook(body, "forged"), gateway.ErrWebhookMismatch)
	assert.ErrorIs(t, g.VerifyWebhook(body, ""), gateway.ErrMissingFields)
}
