package services

import (
	"context"

	"github.com/Hazykiller/NGO-WEBSITE/internal/dto"
	"github.com/Hazykiller/NGO-WEBSITE/internal/gateway"
	"github.com/Hazykiller/NGO-WEBSITE/internal/logger"
	"github.com/Hazykiller/NGO-WEBSITE/pkg/apperrors"
)

// OrderService создает заказы на оплату через платёжный шлюз.
type OrderService struct {
	gateway gateway.Gateway
}

func NewOrderService(gw gateway.Gateway) *OrderService {
	return &OrderService{gateway: gw}
}

// Create validates the requested amount and registers an order with the
// gateway. Donor fields ride along as order notes so the payment shows
// who it came from.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	amount, err := dto.CoerceAmount(req.Amount)
	if err != nil {
		return nil, apperrors.ErrInvalidAmount
	}
	if amount <= 0 {
		return nil, apperrors.ErrAmountNotPositive
	}

	in := gateway.CreateOrderInput{Amount: amount}
	notes := make(map[string]string)
	if req.Name != "" {
		notes["name"] = req.Name
	}
	if req.Email != "" {
		notes["email"] = req.Email
	}
	if req.Phone != "" {
		notes["phone"] = req.Phone
	}
	if len(notes) > 0 {
		in.Notes = notes
	}

	order, err := s.gateway.CreateOrder(ctx, in)
	if err != nil {
		logger.CtxError(ctx, "Order creation failed", "amount", amount, "error", err)
		return nil, apperrors.ErrGatewayOrder(err)
	}

	logger.CtxInfo(ctx, "Order created", "order_id", order.ID, "amount", order.Amount, "mode", order.Mode)

	return &dto.OrderResponse{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Key:      order.KeyID,
		Mode:     order.Mode,
	}, nil
}

// Mode reports which gateway is active, for the health endpoint.
func (s *OrderService) Mode() string {
	return s.gateway.Mode()
}
