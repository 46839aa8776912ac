package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
)

// authErrorEnvelope response lỗi của middleware (cùng cấu trúc với handler)
type authErrorEnvelope struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Status  string                 `json:"status"`
}

// HandleAuthError trả về response lỗi xác thực và dừng chuỗi middleware
func HandleAuthError(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		appErr = common.NewError(common.ErrCodeSystem, err.Error(), common.StatusInternalServerError, nil)
	}

	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(appErr.StatusCode).JSON(authErrorEnvelope{
		Code:    appErr.Code.Code,
		Message: appErr.Message,
		Details: appErr.Details,
		Status:  "error",
	})
}
