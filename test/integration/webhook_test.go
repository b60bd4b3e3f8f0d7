package integration_test

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webhookBody(t *testing.T, event, paymentID, orderID string, amountPaise int, email string, notes interface{}) []byte {
	payload := map[string]interface{}{
		"event": event,
		"payload": map[string]interface{}{
			"payment": map[string]interface{}{
				"entity": map[string]interface{}{
					"id":       paymentID,
					"order_id": orderID,
					"amount":   amountPaise,
					"email":    email,
					"notes":    notes,
				},
			},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Ошибка кодирования webhook-события: %v", err)
	}
	return raw
}

// TestWebhook_PaymentCaptured - payment.captured выпускает сертификат и шлет письмо
func TestWebhook_PaymentCaptured(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	body := webhookBody(t, "payment.captured", "pay_wh_1", "order_wh_1", 120000,
		"hook@test.com", map[string]string{"name": "Вебхук Донор"})

	res, bodyStr := ts.SendRawRequest(t, "POST", "/webhook", body, map[string]string{
		"Content-Type":         "application/json",
		"X-Razorpay-Signature": "sim_signature",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"status":"ok"`)

	// Сертификат выписан без участия браузера
	matches, err := filepath.Glob(filepath.Join(ts.CertDir, "certificate_order_wh_1_*.pdf"))
	require.NoError(t, err)
	assert.Len(t, matches, 1, "Для заказа из вебхука должен появиться ровно один PDF")

	// Письмо ушло на адрес из платежа
	msgs := ts.Mailer.SentTo("hook@test.com")
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Body, "Dear Вебхук Донор,")
	assert.Contains(t, msgs[0].Body, "INR 1200", "120000 пайс - это 1200 рупий")
	t.Logf("ВЕБХУК: Обработан. Ответ: %s", bodyStr)
}

// TestWebhook_BadSignature - неверная подпись отклоняется
func TestWebhook_BadSignature(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	body := webhookBody(t, "payment.captured", "pay_wh_bad", "order_wh_bad", 5000, "", nil)

	res, bodyStr := ts.SendRawRequest(t, "POST", "/webhook", body, map[string]string{
		"Content-Type":         "application/json",
		"X-Razorpay-Signature": "forged",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Webhook signature verification failed")
	assert.Contains(t, bodyStr, "Invalid webhook signature")
}

// TestWebhook_MissingSignature - без заголовка подписи отказ
func TestWebhook_MissingSignature(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	body := webhookBody(t, "payment.captured", "pay_wh_nosig", "order_wh_nosig", 5000, "", nil)

	res, bodyStr := ts.SendRawRequest(t, "POST", "/webhook", body, map[string]string{
		"Content-Type": "application/json",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Missing fields")
}

// TestWebhook_IgnoresOtherEvents - не payment.captured подтверждаем, но не обрабатываем
func TestWebhook_IgnoresOtherEvents(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	body := webhookBody(t, "payment.authorized", "pay_wh_auth", "order_wh_auth", 5000,
		"auth@test.com", nil)

	res, bodyStr := ts.SendRawRequest(t, "POST", "/webhook", body, map[string]string{
		"Content-Type":         "application/json",
		"X-Razorpay-Signature": "sim_signature",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"status":"ok"`)

	matches, err := filepath.Glob(filepath.Join(ts.CertDir, "certificate_order_wh_auth_*.pdf"))
	require.NoError(t, err)
	assert.Empty(t, matches, "Для неподтвержденного платежа сертификата быть не должно")
	assert.Empty(t, ts.Mailer.SentTo("auth@test.com"))
}

// TestWebhook_EmptyNotesArray - Razorpay шлет notes как [] при их отсутствии
func TestWebhook_EmptyNotesArray(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	body := webhookBody(t, "payment.captured", "pay_wh_nonotes", "order_wh_nonotes", 10000,
		"nonotes@test.com", []interface{}{})

	res, _ := ts.SendRawRequest(t, "POST", "/webhook", body, map[string]string{
		"Content-Type":         "application/json",
		"X-Razorpay-Signature": "sim_signature",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)

	msgs := ts.Mailer.SentTo("nonotes@test.com")
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Body, "Dear Donor,", "Без notes донор подписывается как Donor")
}

// TestWebhook_InvalidPayload - подпись верна, но тело не JSON
func TestWebhook_InvalidPayload(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRawRequest(t, "POST", "/webhook", []byte("not a json body"), map[string]string{
		"Content-Type":         "application/json",
		"X-Razorpay-Signature": "sim_signature",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid webhook payload")
}
