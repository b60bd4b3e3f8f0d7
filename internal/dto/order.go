package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CreateOrderRequest is the donation widget's order payload. Amount stays
// raw because deployed widgets send numbers and numeric strings
// interchangeably; name/email/phone are optional donor metadata.
type CreateOrderRequest struct {
	Amount json.RawMessage `json:"amount"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Phone  string          `json:"phone"`
}

// OrderResponse is what the checkout needs to open: the gateway order id,
// the amount in paise and the public key.
type OrderResponse struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
	Mode     string `json:"mode"`
}

// CoerceAmount converts the raw amount field to whole rupees: integers
// pass through, floats truncate toward zero, numeric strings parse.
// A missing field coerces to 0 and is left for the positivity check.
func CoerceAmount(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	if string(raw) == "null" {
		return 0, fmt.Errorf("amount must be a number")
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n), nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to an integer", s)
		}
		return int(v), nil
	}

	return 0, fmt.Errorf("amount must be a number")
}
