// Package workflowsvc chứa nghiệp vụ workflow template và lịch sử thay đổi.
package workflowsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/service"
	workflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/logger"
)

// ChangeService service lịch sử thay đổi quy trình (collection chỉ ghi thêm)
type ChangeService struct {
	*basesvc.BaseServiceMongoImpl[workflowmodels.WorkflowChange]
}

// NewChangeService tạo ChangeService
func NewChangeService() (*ChangeService, error) {
	col, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.WorkflowChanges)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.WorkflowChanges)
	}
	return &ChangeService{basesvc.NewBaseServiceMongo[workflowmodels.WorkflowChange](col)}, nil
}

// Append ghi một bản ghi lịch sử. Lỗi ghi lịch sử chỉ log cảnh báo,
// không làm hỏng thao tác chính đã thành công.
func (s *ChangeService) Append(ctx context.Context, changeType, entityType, entityID string, templateID primitive.ObjectID, diffs []workflowmodels.FieldDiff, changedBy string) {
	change := workflowmodels.WorkflowChange{
		ChangeType: changeType,
		EntityType: entityType,
		EntityID:   entityID,
		TemplateID: templateID,
		FieldDiffs: diffs,
		ChangedBy:  changedBy,
		ChangedAt:  time.Now().UnixMilli(),
	}

	if _, err := s.InsertOne(ctx, change); err != nil {
		logger.GetErrorLogger().WithField("entityId", entityID).
			WithError(err).Warn("Không ghi được lịch sử thay đổi quy trình")
	}
}

// FindByEntity truy vấn lịch sử của một entity, mới nhất trước
func (s *ChangeService) FindByEntity(ctx context.Context, entityID string) ([]workflowmodels.WorkflowChange, error) {
	opts := options.Find().SetSort(bson.D{{Key: "changedAt", Value: -1}})
	return s.Find(ctx, bson.M{"entityId": entityID}, opts)
}

// FindByTemplate truy vấn toàn bộ lịch sử của một template, mới nhất trước
func (s *ChangeService) FindByTemplate(ctx context.Context, templateID primitive.ObjectID) ([]workflowmodels.WorkflowChange, error) {
	opts := options.Find().SetSort(bson.D{{Key: "changedAt", Value: -1}})
	return s.Find(ctx, bson.M{"templateId": templateID}, opts)
}
