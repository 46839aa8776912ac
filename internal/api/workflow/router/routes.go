// Package workflowrouter đăng ký route cho domain workflow template.
package workflowrouter

import (
	"github.com/gofiber/fiber/v3"

	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/api/middleware"
	apirouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/router"
	workflowhdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/handler"
)

// Register đăng ký các route workflow template vào group v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	templateHandler, err := workflowhdl.NewTemplateHandler()
	if err != nil {
		return err
	}

	authOnly := middleware.AuthMiddleware("")
	managerOnly := middleware.AuthMiddleware(authmodels.RoleManager)

	// Đọc template qua CRUD chung; ghi bị tắt, đi qua các endpoint có version + lịch sử
	r.RegisterCRUDRoutes(v1, "/workflow-templates", templateHandler, apirouter.ReadOnlyConfig, "")

	prefix := "/workflow-templates"
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/standard", []fiber.Handler{authOnly}, templateHandler.GetStandardTemplate)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/create", []fiber.Handler{managerOnly}, templateHandler.CreateTemplate)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id/info", []fiber.Handler{managerOnly}, templateHandler.UpdateTemplateInfo)

	// Step
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/:id/steps", []fiber.Handler{managerOnly}, templateHandler.AddStep)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id/steps-reorder", []fiber.Handler{managerOnly}, templateHandler.ReorderSteps)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id/steps/:stepId", []fiber.Handler{managerOnly}, templateHandler.UpdateStep)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:id/steps/:stepId", []fiber.Handler{managerOnly}, templateHandler.DeleteStep)

	// Field
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/:id/steps/:stepId/fields", []fiber.Handler{managerOnly}, templateHandler.AddField)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id/steps/:stepId/fields/:fieldId", []fiber.Handler{managerOnly}, templateHandler.UpdateField)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:id/steps/:stepId/fields/:fieldId", []fiber.Handler{managerOnly}, templateHandler.DeleteField)

	// Lịch sử thay đổi (chỉ đọc, append-only phía ghi)
	apirouter.RegisterRouteWithMiddleware(v1, "/workflow-changes", "GET", "/find", []fiber.Handler{authOnly}, templateHandler.FindChanges)

	return nil
}
