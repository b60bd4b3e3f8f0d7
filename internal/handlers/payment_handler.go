package handlers

import (
	"net/http"

	"github.com/Hazykiller/NGO-WEBSITE/internal/dto"
	"github.com/Hazykiller/NGO-WEBSITE/internal/gateway"
	"github.com/Hazykiller/NGO-WEBSITE/internal/services"
	"github.com/Hazykiller/NGO-WEBSITE/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	payments *services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler: base,
		payments:    payments,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/verify_payment", h.Verify)
	r.POST("/webhook", h.Webhook)
}

// Verify godoc
// @Summary Verify a payment callback
// @Description Checks the checkout's signature, then issues the certificate and emails the receipt
// @Tags payments
// @Accept json
// @Produce json
// @Param callback body dto.VerifyPaymentRequest true "Checkout callback fields"
// @Success 200 {object} dto.VerifyPaymentResponse
// @Failure 400 {object} apperrors.AppError "Missing fields or bad signature"
// @Failure 500 {object} apperrors.AppError "Certificate generation failed"
// @Router /verify_payment [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = dto.VerifyPaymentRequest{}
	}

	if err := h.ValidateStruct(&req); err != nil {
		// Whichever signature field is absent, the contract answer is
		// the same.
		h.HandleServiceError(c, apperrors.ErrSignatureVerification(gateway.ErrMissingFields.Error()))
		return
	}

	resp, err := h.payments.Verify(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Webhook handles Razorpay's server-to-server notifications. The raw
// body is what the signature covers, so it is read before any parsing.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Cannot read request body"))
		return
	}

	signature := c.GetHeader("X-Razorpay-Signature")
	if err := h.payments.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
