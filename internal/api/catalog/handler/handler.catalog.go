// Package cataloghdl chứa handler HTTP cho các danh mục.
package cataloghdl

import (
	basehdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/handler"
	catalogdto "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/catalog/dto"
	catalogmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/catalog/models"
	catalogsvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/catalog/service"
)

// DepartmentHandler handler CRUD phòng ban
type DepartmentHandler struct {
	*basehdl.BaseHandler[catalogmodels.Department, catalogdto.DepartmentCreateInput, catalogdto.DepartmentUpdateInput]
}

// NewDepartmentHandler tạo DepartmentHandler
func NewDepartmentHandler() (*DepartmentHandler, error) {
	service, err := catalogsvc.NewDepartmentService()
	if err != nil {
		return nil, err
	}
	return &DepartmentHandler{
		basehdl.NewBaseHandler[catalogmodels.Department, catalogdto.DepartmentCreateInput, catalogdto.DepartmentUpdateInput](service),
	}, nil
}

// CustomerHandler handler CRUD khách hàng
type CustomerHandler struct {
	*basehdl.BaseHandler[catalogmodels.Customer, catalogdto.CustomerCreateInput, catalogdto.CustomerUpdateInput]
}

// NewCustomerHandler tạo CustomerHandler
func NewCustomerHandler() (*CustomerHandler, error) {
	service, err := catalogsvc.NewCustomerService()
	if err != nil {
		return nil, err
	}
	return &CustomerHandler{
		basehdl.NewBaseHandler[catalogmodels.Customer, catalogdto.CustomerCreateInput, catalogdto.CustomerUpdateInput](service),
	}, nil
}

// DataSourceHandler handler CRUD nguồn dữ liệu
type DataSourceHandler struct {
	*basehdl.BaseHandler[catalogmodels.DataSource, catalogdto.DataSourceCreateInput, catalogdto.DataSourceUpdateInput]
}

// NewDataSourceHandler tạo DataSourceHandler
func NewDataSourceHandler() (*DataSourceHandler, error) {
	service, err := catalogsvc.NewDataSourceService()
	if err != nil {
		return nil, err
	}
	return &DataSourceHandler{
		basehdl.NewBaseHandler[catalogmodels.DataSource, catalogdto.DataSourceCreateInput, catalogdto.DataSourceUpdateInput](service),
	}, nil
}

// ProductStatusHandler handler CRUD trạng thái sản phẩm
type ProductStatusHandler struct {
	*basehdl.BaseHandler[catalogmodels.ProductStatus, catalogdto.ProductStatusCreateInput, catalogdto.ProductStatusUpdateInput]
}

// NewProductStatusHandler tạo ProductStatusHandler
func NewProductStatusHandler() (*ProductStatusHandler, error) {
	service, err := catalogsvc.NewProductStatusService()
	if err != nil {
		return nil, err
	}
	return &ProductStatusHandler{
		basehdl.NewBaseHandler[catalogmodels.ProductStatus, catalogdto.ProductStatusCreateInput, catalogdto.ProductStatusUpdateInput](service),
	}, nil
}
