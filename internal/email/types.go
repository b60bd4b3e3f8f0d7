package email

// Attachment представляет вложение в email
type Attachment struct {
	Name        string
	Content     []byte
	ContentType string
}

// Email представляет структуру email сообщения
type Email struct {
	From        string // empty means the provider's configured sender
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}
