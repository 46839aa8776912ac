// Package subworkflowrouter đăng ký route cho domain sub-workflow.
package subworkflowrouter

import (
	"github.com/gofiber/fiber/v3"

	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/api/middleware"
	apirouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/router"
	subworkflowhdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/handler"
)

// Register đăng ký các route sub-workflow vào group v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	subWorkflowHandler, err := subworkflowhdl.NewSubWorkflowHandler()
	if err != nil {
		return err
	}

	authOnly := middleware.AuthMiddleware("")

	// InsertOne/UpdateById đã được override để kiểm tra ràng buộc duy nhất
	r.RegisterCRUDRoutes(v1, "/sub-workflows", subWorkflowHandler, apirouter.ReadWriteConfig, authmodels.RoleManager)

	apirouter.RegisterRouteWithMiddleware(v1, "/sub-workflows", "GET", "/by-trigger/:id", []fiber.Handler{authOnly}, subWorkflowHandler.FindByTriggerCondition)

	return nil
}
