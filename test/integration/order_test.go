package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/Hazykiller/NGO-WEBSITE/internal/dto"
	"github.com/stretchr/testify/assert"
)

// TestCreateOrder_Success - happy path в dummy-режиме
func TestCreateOrder_Success(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	// 1. Подготовка (Arrange)
	orderBody := map[string]interface{}{
		"amount": 500,
		"name":   "Асель Нурланова",
		"email":  "asel@test.com",
		"phone":  "+77001234567",
	}

	// 2. Действие (Act)
	res, bodyStr := ts.SendRequest(t, "POST", "/create_order", orderBody)

	// 3. Проверка (Assert)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var order dto.OrderResponse
	err := json.Unmarshal([]byte(bodyStr), &order)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.ID, "order_fake_"), "dummy order id должен начинаться с order_fake_. Получен: %s", order.ID)
	assert.Equal(t, 50000, order.Amount, "Сумма в ответе должна быть в пайсах")
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rzp_test_dummy", order.Key)
	assert.Equal(t, "dummy", order.Mode)
	t.Logf("ЗАКАЗ: Успешно создан. Ответ: %s", bodyStr)
}

// TestCreateOrder_UniqueIDs - каждый вызов выдает новый идентификатор заказа
func TestCreateOrder_UniqueIDs(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	first := CreateDummyOrder(t, ts, 100)
	second := CreateDummyOrder(t, ts, 100)

	assert.NotEqual(t, first.ID, second.ID)
	t.Logf("ЗАКАЗ: Идентификаторы уникальны (%s, %s)", first.ID, second.ID)
}

// TestCreateOrder_AmountCoercion - сумма принимается в том же виде,
// в каком ее шлют задеплоенные виджеты: числом, строкой или float
func TestCreateOrder_AmountCoercion(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	t.Run("Numeric String", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, "POST", "/create_order", map[string]interface{}{"amount": "250"})
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var order dto.OrderResponse
		assert.NoError(t, json.Unmarshal([]byte(bodyStr), &order))
		assert.Equal(t, 25000, order.Amount)
	})

	t.Run("Float Truncates", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, "POST", "/create_order", map[string]interface{}{"amount": 12.9})
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var order dto.OrderResponse
		assert.NoError(t, json.Unmarshal([]byte(bodyStr), &order))
		assert.Equal(t, 1200, order.Amount, "12.9 рупий усекается до 12, то есть 1200 пайс")
	})

	t.Run("String With Spaces", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, "POST", "/create_order", map[string]interface{}{"amount": " 75 "})
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var order dto.OrderResponse
		assert.NoError(t, json.Unmarshal([]byte(bodyStr), &order))
		assert.Equal(t, 7500, order.Amount)
	})
}

// TestCreateOrder_Rejections - матрица отказов по сумме
func TestCreateOrder_Rejections(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	t.Run("Zero Amount", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, "POST", "/create_order", map[string]interface{}{"amount": 0})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, bodyStr, "Amount must be > 0")
	})

	t.Run("Negative Amount", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, "POST", "/create_order", map[string]interface{}{"amount": -50})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, bodyStr, "Amount must be > 0")
	})

	t.Run("Missing Amount", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, "POST", "/create_order", map[string]interface{}{"name": "No Amount"})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, bodyStr, "Amount must be > 0", "Отсутствующая сумма трактуется как 0")
	})

	t.Run("Empty Body", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, "POST", "/create_order", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, bodyStr, "Amount must be > 0")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		res, bodyStr := ts.SendRawRequest(t, "POST", "/create_order", []byte(`{"amount": 5`), map[string]string{
			"Content-Type": "application/json",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, bodyStr, "Amount must be > 0", "Битое тело трактуется как пустое")
	})

	t.Run("Garbage Amount", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, "POST", "/create_order", map[string]interface{}{"amount": "abc"})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, bodyStr, "Invalid amount")
	})

	t.Run("Null Amount", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, "POST", "/create_order", map[string]interface{}{"amount": nil})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, bodyStr, "Invalid amount", "null - это присутствующее, но нечисловое значение")
	})
}
