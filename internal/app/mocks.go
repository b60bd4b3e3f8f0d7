package app

import (
	"sync"

	"github.com/Hazykiller/NGO-WEBSITE/internal/email"
)

// MockEmailProvider используется для тестов и локальной разработки.
// Запоминает отправленные письма; заданный Err имитирует отказ SMTP.
type MockEmailProvider struct {
	mu   sync.Mutex
	Sent []*email.Email
	Err  error
}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// SentTo возвращает письма, отправленные на указанный адрес.
func (m *MockEmailProvider) SentTo(addr string) []*email.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*email.Email
	for _, msg := range m.Sent {
		for _, to := range msg.To {
			if to == addr {
				out = append(out, msg)
				break
			}
		}
	}
	return out
}

func (m *MockEmailProvider) Validate() error { return nil }

func (m *MockEmailProvider) Close() error { return nil }
