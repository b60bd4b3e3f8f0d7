package dto

import "encoding/json"

// WebhookEvent is the envelope Razorpay posts to the webhook endpoint.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity WebhookPayment `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// WebhookPayment is the payment entity inside a webhook event. Amount is
// in paise. Notes stays raw: Razorpay serializes empty notes as [] and
// populated notes as an object.
type WebhookPayment struct {
	ID      string          `json:"id"`
	OrderID string          `json:"order_id"`
	Amount  int             `json:"amount"`
	Email   string          `json:"email"`
	Notes   json.RawMessage `json:"notes"`
}

// Note returns the named entry from the notes object, or "" when notes
// are absent, empty, or the empty-array form.
func (p *WebhookPayment) Note(key string) string {
	if len(p.Notes) == 0 {
		return ""
	}
	var notes map[string]string
	if err := json.Unmarshal(p.Notes, &notes); err != nil {
		return ""
	}
	return notes[key]
}
