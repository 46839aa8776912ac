// Package catalogrouter đăng ký route cho các danh mục.
package catalogrouter

import (
	"github.com/gofiber/fiber/v3"

	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	cataloghdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/catalog/handler"
	apirouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/router"
)

// Register đăng ký các route danh mục vào group v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	departmentHandler, err := cataloghdl.NewDepartmentHandler()
	if err != nil {
		return err
	}
	customerHandler, err := cataloghdl.NewCustomerHandler()
	if err != nil {
		return err
	}
	dataSourceHandler, err := cataloghdl.NewDataSourceHandler()
	if err != nil {
		return err
	}
	productStatusHandler, err := cataloghdl.NewProductStatusHandler()
	if err != nil {
		return err
	}

	// Phòng ban và trạng thái sản phẩm chỉ manager trở lên được sửa
	r.RegisterCRUDRoutes(v1, "/departments", departmentHandler, apirouter.CatalogConfig, authmodels.RoleManager)
	r.RegisterCRUDRoutes(v1, "/product-statuses", productStatusHandler, apirouter.CatalogConfig, authmodels.RoleManager)

	// Khách hàng và nguồn dữ liệu mọi nhân viên đều thao tác được
	r.RegisterCRUDRoutes(v1, "/customers", customerHandler, apirouter.ReadWriteConfig, "")
	r.RegisterCRUDRoutes(v1, "/data-sources", dataSourceHandler, apirouter.CatalogConfig, "")

	return nil
}
