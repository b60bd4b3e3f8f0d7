package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHealth_ReportsMode - корневой эндпоинт отдает статус и активный режим шлюза
func TestHealth_ReportsMode(t *testing.T) {
	t.Parallel() // ✅ Параллельный запуск

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"status":"ok"`)
	assert.Contains(t, bodyStr, `"mode":"dummy"`)
	t.Logf("HEALTH: Успешно. Ответ: %s", bodyStr)
}
