package handlers

import (
	"github.com/Hazykiller/NGO-WEBSITE/internal/logger"
	"github.com/Hazykiller/NGO-WEBSITE/internal/validator"
	"github.com/Hazykiller/NGO-WEBSITE/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler держит общие зависимости всех хендлеров.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// ValidateStruct выполняет валидацию DTO по его тегам.
// Перевод результата в ответ остаётся за хендлером: у каждого эндпоинта
// свой формат ошибок.
func (h *BaseHandler) ValidateStruct(obj interface{}) error {
	return h.validator.Validate(obj)
}

// HandleServiceError переводит ошибку сервиса в HTTP-ответ
// (с контекстным логгированием).
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}
