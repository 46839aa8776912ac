// Package notificationrouter đăng ký route cho domain notification.
package notificationrouter

import (
	"github.com/gofiber/fiber/v3"

	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/api/middleware"
	notificationhdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/notification/handler"
	apirouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/router"
)

// Register đăng ký các route notification vào group v1
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	notificationHandler, err := notificationhdl.NewNotificationHandler()
	if err != nil {
		return err
	}

	managerOnly := middleware.AuthMiddleware(authmodels.RoleManager)

	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "POST", "/scan-deadlines",
		[]fiber.Handler{managerOnly}, notificationHandler.ScanDeadlines)

	return nil
}
