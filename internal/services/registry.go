package services

import (
	"github.com/Hazykiller/NGO-WEBSITE/internal/email"
	"github.com/Hazykiller/NGO-WEBSITE/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	OrderService       *OrderService
	PaymentService     *PaymentService
	CertificateService *CertificateService
	EmailProvider      email.Provider
	Storage            storage.Storage
}
