package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Hazykiller/NGO-WEBSITE/internal/certificate"
	"github.com/Hazykiller/NGO-WEBSITE/internal/logger"
	"github.com/Hazykiller/NGO-WEBSITE/internal/storage"
	"github.com/Hazykiller/NGO-WEBSITE/pkg/apperrors"
)

// IssuedCertificate описывает созданный и сохранённый сертификат.
type IssuedCertificate struct {
	Filename string
	URL      string
	PDF      []byte
}

// CertificateService рендерит сертификаты и отвечает за их файлы.
type CertificateService struct {
	renderer *certificate.Renderer
	storage  storage.Storage
}

func NewCertificateService(renderer *certificate.Renderer, store storage.Storage) *CertificateService {
	return &CertificateService{renderer: renderer, storage: store}
}

// Issue renders the donation certificate and stores it under the
// timestamped filename. The PDF bytes come back so callers can attach
// the file without a second disk read.
func (s *CertificateService) Issue(ctx context.Context, donorName string, amount int, orderID string) (*IssuedCertificate, error) {
	now := time.Now()

	var buf bytes.Buffer
	err := s.renderer.Render(&buf, certificate.Data{
		DonorName: donorName,
		Amount:    amount,
		OrderID:   orderID,
		Date:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render certificate: %w", err)
	}

	filename := certificate.Filename(orderID, now)
	if err := s.storage.Save(ctx, filename, bytes.NewReader(buf.Bytes()), "application/pdf"); err != nil {
		return nil, fmt.Errorf("failed to store certificate: %w", err)
	}

	url, err := s.storage.GetURL(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build certificate URL: %w", err)
	}

	logger.CtxInfo(ctx, "Certificate issued", "filename", filename, "order_id", orderID)

	return &IssuedCertificate{
		Filename: filename,
		URL:      url,
		PDF:      buf.Bytes(),
	}, nil
}

// Fetch opens a stored certificate for download. Unknown names and
// names that do not resolve inside the certificate directory both come
// back as not found.
func (s *CertificateService) Fetch(ctx context.Context, filename string) (io.ReadCloser, int64, error) {
	exists, err := s.storage.Exists(ctx, filename)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	if !exists {
		return nil, 0, apperrors.ErrCertificateNotFound
	}

	size, err := s.storage.GetSize(ctx, filename)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	reader, err := s.storage.Get(ctx, filename)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	return reader, size, nil
}
