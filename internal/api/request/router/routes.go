// Package requestrouter đăng ký route cho domain request.
package requestrouter

import (
	"github.com/gofiber/fiber/v3"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/api/middleware"
	requesthdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/handler"
	apirouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/router"
)

// Register đăng ký các route request vào group v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	requestHandler, err := requesthdl.NewRequestHandler()
	if err != nil {
		return err
	}
	materialHandler, err := requesthdl.NewMaterialImportHandler()
	if err != nil {
		return err
	}
	customerRequestHandler, err := requesthdl.NewCustomerRequestHandler()
	if err != nil {
		return err
	}

	authOnly := middleware.AuthMiddleware("")
	auth := []fiber.Handler{authOnly}

	// InsertOne/FindOneById đã được override để sinh mã và trả trạng thái suy ra
	r.RegisterCRUDRoutes(v1, "/requests", requestHandler, apirouter.ReadWriteConfig, "")

	// Các thao tác trên workflow instance nhúng trong request
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "PUT", "/:id/complete-step", auth, requestHandler.CompleteStep)
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "PUT", "/:id/revert-step", auth, requestHandler.RevertStep)
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "PUT", "/:id/manual-status", auth, requestHandler.SetManualStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "PUT", "/:id/field-value", auth, requestHandler.SetFieldValue)
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "POST", "/:id/random-assignee", auth, requestHandler.RandomAssignee)
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "GET", "/:id/materials", auth, requestHandler.FindMaterials)

	r.RegisterCRUDRoutes(v1, "/material-import-requests", materialHandler, apirouter.ReadWriteConfig, "")
	r.RegisterCRUDRoutes(v1, "/customer-requests", customerRequestHandler, apirouter.ReadWriteConfig, "")

	return nil
}
