// Package basehdl cung cấp handler CRUD generic và các helper response chuẩn.
package basehdl

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/logger"
)

// ResponseEnvelope cấu trúc response chuẩn của toàn bộ API
type ResponseEnvelope struct {
	Code     string                 `json:"code"`               // Mã lỗi (rỗng khi thành công)
	Message  string                 `json:"message"`            // Thông điệp cho người dùng
	Data     interface{}            `json:"data,omitempty"`     // Dữ liệu trả về
	Details  map[string]interface{} `json:"details,omitempty"`  // Chi tiết lỗi bổ sung
	Warnings []string               `json:"warnings,omitempty"` // Cảnh báo (ghi phụ thất bại, giá trị ngoài options, ...)
	Status   string                 `json:"status"`             // success | error
}

// JSONResponse ghi response JSON với charset utf-8
func JSONResponse(c fiber.Ctx, statusCode int, payload interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(payload)
}

// HandleResponse trả về response thành công hoặc lỗi tùy theo err
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	return JSONResponse(c, common.StatusOK, ResponseEnvelope{
		Message: "Thành công",
		Data:    data,
		Status:  "success",
	})
}

// HandleResponseWithWarnings trả về response thành công kèm cảnh báo các ghi phụ thất bại
func HandleResponseWithWarnings(c fiber.Ctx, data interface{}, warnings []string, err error) error {
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	return JSONResponse(c, common.StatusOK, ResponseEnvelope{
		Message:  "Thành công",
		Data:     data,
		Warnings: warnings,
		Status:   "success",
	})
}

// HandleErrorResponse trả về response lỗi theo Error chuẩn của hệ thống
func HandleErrorResponse(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		appErr = common.NewError(common.ErrCodeSystem, err.Error(), common.StatusInternalServerError, nil)
	}

	return JSONResponse(c, appErr.StatusCode, ResponseEnvelope{
		Code:    appErr.Code.Code,
		Message: appErr.Message,
		Details: appErr.Details,
		Status:  "error",
	})
}

// SafeHandler bọc handler để bắt panic, tránh làm sập server vì một request lỗi
func SafeHandler(handler func(c fiber.Ctx) error) fiber.Handler {
	return func(c fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithField("panic", r).Error("Handler panic")
				_ = HandleErrorResponse(c, common.NewError(
					common.ErrCodeSystem,
					"Lỗi hệ thống nội bộ",
					common.StatusInternalServerError,
					nil,
				))
			}
		}()
		return handler(c)
	}
}
