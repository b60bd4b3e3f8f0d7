package email

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail.
// На 587 порту gomail сам делает STARTTLS перед аутентификацией.
type SMTPProvider struct {
	config *SMTPConfig
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{config: config}
}

// Send отправляет email сообщение
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m, err := BuildMessage(email, p.config.FromEmail)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	d := gomail.NewDialer(p.config.Host, p.config.Port, p.config.Username, p.config.Password)
	return d.DialAndSend(m)
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}

	return nil
}

// Close закрывает соединение (для SMTP обычно не требуется)
func (p *SMTPProvider) Close() error {
	return nil
}

// BuildMessage строит MIME сообщение из структуры Email.
// gomail парсит "Name <addr>" в заголовке From сам, включая envelope-from.
func BuildMessage(email *Email, defaultFrom string) (*gomail.Message, error) {
	if len(email.To) == 0 {
		return nil, fmt.Errorf("no recipients")
	}

	from := email.From
	if from == "" {
		from = defaultFrom
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	for _, att := range email.Attachments {
		content := att.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {fmt.Sprintf("%s; name=%q", att.ContentType, att.Name)},
			}))
		}
		m.Attach(att.Name, settings...)
	}

	return m, nil
}
