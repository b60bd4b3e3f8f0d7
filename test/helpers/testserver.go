package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Hazykiller/NGO-WEBSITE/internal/app"
	"github.com/Hazykiller/NGO-WEBSITE/internal/config"
	"github.com/Hazykiller/NGO-WEBSITE/internal/email"
)

// TestServer - обертка вокруг httptest.Server для интеграционных тестов
type TestServer struct {
	Server  *httptest.Server
	Mailer  *app.MockEmailProvider
	CertDir string
}

// NewTestServer создает тестовый сервер в dummy-режиме с мок-почтой
func NewTestServer(t *testing.T) *TestServer {
	return NewTestServerWithMailer(t, &app.MockEmailProvider{})
}

// NewTestServerWithMailer создает сервер с кастомным почтовым провайдером.
// mailer == nil воспроизводит запуск без настроенного SMTP.
func NewTestServerWithMailer(t *testing.T, mailer *app.MockEmailProvider) *TestServer {
	// 1. Каталог сертификатов живет до Close(), а не до конца первого теста
	certDir, err := os.MkdirTemp("", "certificates-*")
	if err != nil {
		t.Fatalf("Не удалось создать каталог сертификатов: %v", err)
	}

	// 2. Конфиг собираем напрямую, без env, чтобы тесты были герметичными
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 4001
	cfg.Server.Env = "test"
	cfg.Razorpay.Enabled = false
	cfg.Razorpay.KeyID = "rzp_test_dummy"
	cfg.Certificates.Dir = certDir
	cfg.Certificates.BaseURL = "/certificate"

	// 3. Настраиваем Gin-роутер
	var provider email.Provider
	if mailer != nil {
		provider = mailer
	}
	router := app.SetupRouter(cfg, provider)

	// 4. Запускаем тестовый сервер httptest
	server := httptest.NewServer(router)

	log.Printf("✅ Тестовый сервер запущен, каталог сертификатов: %s", certDir)

	return &TestServer{
		Server:  server,
		Mailer:  mailer,
		CertDir: certDir,
	}
}

// Close останавливает сервер и удаляет каталог сертификатов
func (ts *TestServer) Close() {
	ts.Server.Close()
	os.RemoveAll(ts.CertDir)
}

// SendRequest отправляет JSON-запрос на тестовый сервер
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader = nil
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}

// SendRawRequest отправляет запрос с произвольным телом и заголовками.
// Нужен для вебхуков (подпись считается от сырых байт) и битого JSON.
func (ts *TestServer) SendRawRequest(t *testing.T, method, path string, body []byte, headers map[string]string) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader = nil
	if body != nil {
		reqBody = bytes.NewBuffer(body)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
