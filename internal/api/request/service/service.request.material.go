package requestsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/service"
	requestmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
)

// MaterialImportService service yêu cầu nhập nguyên vật liệu
type MaterialImportService struct {
	*basesvc.BaseServiceMongoImpl[requestmodels.MaterialImportRequest]
}

// NewMaterialImportService tạo MaterialImportService
func NewMaterialImportService() (*MaterialImportService, error) {
	col, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.MaterialImportRequests)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.MaterialImportRequests)
	}
	return &MaterialImportService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[requestmodels.MaterialImportRequest](col),
	}, nil
}

// FindByRequest liệt kê các yêu cầu nhập nguyên vật liệu của một request
func (s *MaterialImportService) FindByRequest(ctx context.Context, requestID primitive.ObjectID) ([]requestmodels.MaterialImportRequest, error) {
	return s.Find(ctx, bson.M{"requestId": requestID}, nil)
}

// CustomerRequestService service yêu cầu thô từ khách hàng
type CustomerRequestService struct {
	*basesvc.BaseServiceMongoImpl[requestmodels.CustomerRequest]
}

// NewCustomerRequestService tạo CustomerRequestService
func NewCustomerRequestService() (*CustomerRequestService, error) {
	col, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.CustomerRequests)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.CustomerRequests)
	}
	return &CustomerRequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[requestmodels.CustomerRequest](col),
	}, nil
}
