package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Hazykiller/NGO-WEBSITE/internal/dto"
	"github.com/Hazykiller/NGO-WEBSITE/internal/email"
	"github.com/Hazykiller/NGO-WEBSITE/internal/gateway"
	"github.com/Hazykiller/NGO-WEBSITE/internal/logger"
	"github.com/Hazykiller/NGO-WEBSITE/pkg/apperrors"
)

const defaultDonorName = "Donor"

// PaymentService проверяет подпись платежа и запускает выдачу:
// сертификат, затем письмо с квитанцией.
type PaymentService struct {
	gateway      gateway.Gateway
	certificates *CertificateService

	// mailer is nil when SMTP is not configured; receipts are then
	// skipped silently, which the response reports as email_sent:false.
	mailer email.Provider
}

func NewPaymentService(gw gateway.Gateway, certificates *CertificateService, mailer email.Provider) *PaymentService {
	return &PaymentService{
		gateway:      gw,
		certificates: certificates,
		mailer:       mailer,
	}
}

// fulfillment is what the donor gets after a verified payment.
type fulfillment struct {
	certURL    string
	emailSent  bool
	emailError *string
}

// Verify checks the callback signature and, on success, issues the
// certificate and emails the receipt. Email failures never fail the
// request; they are reported inline.
func (s *PaymentService) Verify(ctx context.Context, req dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	err := s.gateway.VerifySignature(gateway.Verification{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		Simulate:  req.Simulate,
	})
	if err != nil {
		logger.CtxWarn(ctx, "Signature verification failed", "order_id", req.OrderID, "reason", err.Error())
		return nil, apperrors.ErrSignatureVerification(err.Error())
	}

	donorName := req.Name
	if donorName == "" {
		donorName = defaultDonorName
	}

	amount, err := dto.CoerceAmount(req.Amount)
	if err != nil {
		return nil, apperrors.ErrCertificateGeneration(err)
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = req.FallbackOrderID
	}
	if orderID == "" {
		orderID = fmt.Sprintf("order_%d", time.Now().Unix())
	}

	f, err := s.fulfill(ctx, donorName, amount, orderID, req.Email)
	if err != nil {
		logger.CtxError(ctx, "Certificate pipeline failed", "order_id", orderID, "error", err)
		return nil, apperrors.ErrCertificateGeneration(err)
	}

	message := "Dummy payment accepted"
	if s.gateway.Mode() == gateway.ModeRazorpay {
		message = "Payment verified"
	}

	return &dto.VerifyPaymentResponse{
		Status:         "success",
		Message:        message,
		Payment:        dto.PaymentInfo{OrderID: orderID, Amount: amount},
		CertificateURL: f.certURL,
		EmailSent:      f.emailSent,
		EmailError:     f.emailError,
	}, nil
}

// HandleWebhook verifies the gateway's server-to-server notification and
// runs the same fulfillment for captured payments. Unknown events are
// acknowledged without action.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if err := s.gateway.VerifyWebhook(body, signature); err != nil {
		logger.CtxWarn(ctx, "Webhook rejected", "reason", err.Error())
		return apperrors.ErrWebhookSignature(err.Error())
	}

	var event dto.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return apperrors.NewBadRequestError("Invalid webhook payload")
	}

	if event.Event != "payment.captured" {
		logger.CtxInfo(ctx, "Webhook event ignored", "event", event.Event)
		return nil
	}

	payment := event.Payload.Payment.Entity

	donorName := payment.Note("name")
	if donorName == "" {
		donorName = defaultDonorName
	}

	orderID := payment.OrderID
	if orderID == "" {
		orderID = fmt.Sprintf("order_%d", time.Now().Unix())
	}

	// Webhook amounts arrive in paise.
	f, err := s.fulfill(ctx, donorName, payment.Amount/100, orderID, payment.Email)
	if err != nil {
		logger.CtxError(ctx, "Webhook fulfillment failed", "order_id", orderID, "error", err)
		return apperrors.ErrCertificateGeneration(err)
	}

	logger.CtxInfo(ctx, "Webhook payment fulfilled",
		"payment_id", payment.ID, "order_id", orderID, "email_sent", f.emailSent)
	return nil
}

// fulfill issues the certificate and attempts the receipt email. Only
// the certificate step can fail the fulfillment.
func (s *PaymentService) fulfill(ctx context.Context, donorName string, amount int, orderID, donorEmail string) (*fulfillment, error) {
	issued, err := s.certificates.Issue(ctx, donorName, amount, orderID)
	if err != nil {
		return nil, err
	}

	result := &fulfillment{certURL: issued.URL}

	if donorEmail == "" || s.mailer == nil {
		return result, nil
	}

	receipt := email.NewDonationReceipt(donorEmail, donorName, amount, orderID, email.Attachment{
		Name:        issued.Filename,
		Content:     issued.PDF,
		ContentType: "application/pdf",
	})

	if err := s.mailer.Send(receipt); err != nil {
		logger.CtxWarn(ctx, "Receipt email failed", "to", donorEmail, "error", err)
		msg := err.Error()
		result.emailError = &msg
		return result, nil
	}

	result.emailSent = true
	logger.CtxInfo(ctx, "Receipt email sent", "to", donorEmail)
	return result, nil
}
