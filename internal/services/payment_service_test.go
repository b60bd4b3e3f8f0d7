package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Hazykiller/NGO-WEBSITE/internal/app"
	"github.com/Hazykiller/NGO-WEBSITE/internal/certificate"
	"github.com/Hazykiller/NGO-WEBSITE/internal/email"
	"github.com/Hazykiller/NGO-WEBSITE/internal/gateway"
	"github.com/Hazykiller/NGO-WEBSITE/internal/services"
	"github.com/Hazykiller/NGO-WEBSITE/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentService(t *testing.T, mailer email.Provider) (*services.PaymentService, string) {
	dir := t.TempDir()
	store, err := storage.NewStorage(storage.Config{Type: "local", BasePath: dir})
	require.NoError(t, err)

	certs := services.NewCertificateService(certificate.NewRenderer(), store)
	return services.NewPaymentService(gateway.NewDummyGateway(""), certs, mailer), dir
}

func capturedEvent(t *testing.T, orderID string, amountPaise int, donorEmail string) []byte {
	event := map[string]interface{}{
		"event": "payment.captured",
		"payload": map[string]interface{}{
			"payment": map[string]interface{}{
				"entity": map[string]interface{}{
					"id":       "pay_unit_1",
					"order_id": orderID,
					"amount":   amountPaise,
					"email":    donorEmail,
				},
			},
		},
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return raw
}

// Razorpay может прислать захват без order_id (платеж по ссылке);
// тогда id заказа генерируется на месте
func TestHandleWebhook_GeneratesOrderID(t *testing.T) {
	t.Parallel()

	svc, dir := newPaymentService(t, &app.MockEmailProvider{})

	body := capturedEvent(t, "", 50000, "")
	err := svc.HandleWebhook(context.Background(), body, gateway.SimSignature)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "certificate_order_*.pdf"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Regexp(t, `certificate_order_\d+_\d+\.pdf$`, matches[0])
}

// Отказ SMTP не мешает подтвердить вебхук: Razorpay не должен ретраить
func TestHandleWebhook_MailFailureStillAcks(t *testing.T) {
	t.Parallel()

	mailer := &app.MockEmailProvider{Err: errors.New("smtp unavailable")}
	svc, dir := newPaymentService(t, mailer)

	body := capturedEvent(t, "order_unit_mail", 20000, "donor@example.com")
	err := svc.HandleWebhook(context.Background(), body, gateway.SimSignature)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "certificate_order_unit_mail_*.pdf"))
	require.NoError(t, err)
	assert.Len(t, matches, 1, "сертификат выписан, хотя письмо не ушло")
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	t.Parallel()

	svc, dir := newPaymentService(t, &app.MockEmailProvider{})

	body := capturedEvent(t, "order_unit_sig", 10000, "")
	err := svc.HandleWebhook(context.Background(), body, "forged")
	require.Error(t, err)

	matches, globErr := filepath.Glob(filepath.Join(dir, "*.pdf"))
	require.NoError(t, globErr)
	assert.Empty(t, matches)
}
