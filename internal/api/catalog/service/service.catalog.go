// Package catalogsvc chứa service cho các collection danh mục.
package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/service"
	catalogmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/catalog/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
)

// getCollection lấy collection đã đăng ký theo tên
func getCollection(name string) (*mongo.Collection, error) {
	col, ok := global.RegistryCollections.Get(name)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", name)
	}
	return col, nil
}

// DepartmentService service phòng ban
type DepartmentService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Department]
}

// NewDepartmentService tạo DepartmentService
func NewDepartmentService() (*DepartmentService, error) {
	col, err := getCollection(global.MongoDB_ColNames.Departments)
	if err != nil {
		return nil, err
	}
	return &DepartmentService{basesvc.NewBaseServiceMongo[catalogmodels.Department](col)}, nil
}

// CustomerService service khách hàng
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Customer]
}

// NewCustomerService tạo CustomerService
func NewCustomerService() (*CustomerService, error) {
	col, err := getCollection(global.MongoDB_ColNames.Customers)
	if err != nil {
		return nil, err
	}
	return &CustomerService{basesvc.NewBaseServiceMongo[catalogmodels.Customer](col)}, nil
}

// DataSourceService service nguồn dữ liệu
type DataSourceService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.DataSource]
}

// NewDataSourceService tạo DataSourceService
func NewDataSourceService() (*DataSourceService, error) {
	col, err := getCollection(global.MongoDB_ColNames.DataSources)
	if err != nil {
		return nil, err
	}
	return &DataSourceService{basesvc.NewBaseServiceMongo[catalogmodels.DataSource](col)}, nil
}

// ProductStatusService service trạng thái sản phẩm
type ProductStatusService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.ProductStatus]
}

// NewProductStatusService tạo ProductStatusService
func NewProductStatusService() (*ProductStatusService, error) {
	col, err := getCollection(global.MongoDB_ColNames.ProductStatuses)
	if err != nil {
		return nil, err
	}
	return &ProductStatusService{basesvc.NewBaseServiceMongo[catalogmodels.ProductStatus](col)}, nil
}

// DeleteById chặn xóa trạng thái hệ thống
func (s *ProductStatusService) DeleteById(ctx context.Context, id interface{}) error {
	status, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if status.IsSystem {
		return common.NewError(common.ErrCodeAuthRole,
			"Không thể xóa trạng thái hệ thống", common.StatusForbidden, nil)
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
