package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	HealthHandler      *HealthHandler
	OrderHandler       *OrderHandler
	PaymentHandler     *PaymentHandler
	CertificateHandler *CertificateHandler
}
