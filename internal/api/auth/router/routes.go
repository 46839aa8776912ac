// Package authrouter đăng ký route cho domain auth.
package authrouter

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/handler"
	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/api/middleware"
	apirouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/router"
)

// Register đăng ký các route của domain auth vào group v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return err
	}

	// Login là route công khai duy nhất của API
	v1.Post("/auth/login", userHandler.Login)

	authOnly := middleware.AuthMiddleware("")
	adminOnly := middleware.AuthMiddleware(authmodels.RoleAdmin)

	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authOnly}, userHandler.Logout)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{authOnly}, userHandler.Me)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth/users", "POST", "/block", []fiber.Handler{adminOnly}, userHandler.BlockUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth/users", "POST", "/unblock", []fiber.Handler{adminOnly}, userHandler.UnblockUser)

	// CRUD người dùng: ghi yêu cầu admin
	r.RegisterCRUDRoutes(v1, "/users", userHandler, apirouter.ReadWriteConfig, authmodels.RoleAdmin)

	return nil
}
