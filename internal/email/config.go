package email

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string // either "addr@host" or "Name <addr@host>"
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Port:      587,
		FromEmail: "no-reply@example.com",
	}
}

// Configured reports whether enough is set to attempt a delivery.
// Without host and credentials sends are skipped, never failed.
func (c *SMTPConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}
