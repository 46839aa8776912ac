// Package notificationhdl chứa handler HTTP của domain notification.
package notificationhdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/handler"
	notificationsvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/notification/service"
)

// NotificationHandler handler quét deadline theo yêu cầu
type NotificationHandler struct {
	deadlineService *notificationsvc.DeadlineService
}

// NewNotificationHandler tạo NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	service, err := notificationsvc.NewDeadlineService(notificationsvc.NewSMTPSender())
	if err != nil {
		return nil, err
	}
	return &NotificationHandler{deadlineService: service}, nil
}

// ScanDeadlines POST /notifications/scan-deadlines — quét toàn bộ request
// đang chạy và gửi mail nhắc những step đã vào cửa sổ nhắc
func (h *NotificationHandler) ScanDeadlines(c fiber.Ctx) error {
	result, err := h.deadlineService.ScanAndNotify(c.Context(), time.Now())
	return basehdl.HandleResponse(c, result, err)
}
