// Package subworkflowsvc chứa nghiệp vụ sub-workflow (workflow view).
package subworkflowsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/service"
	subworkflowdto "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/dto"
	subworkflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/models"
	workflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/utility"
)

// SubWorkflowService service sub-workflow
type SubWorkflowService struct {
	*basesvc.BaseServiceMongoImpl[subworkflowmodels.SubWorkflow]
	templates *basesvc.BaseServiceMongoImpl[workflowmodels.WorkflowTemplate]
}

// NewSubWorkflowService tạo SubWorkflowService
func NewSubWorkflowService() (*SubWorkflowService, error) {
	col, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.SubWorkflows)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.SubWorkflows)
	}
	templateCol, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.WorkflowTemplates)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.WorkflowTemplates)
	}

	return &SubWorkflowService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[subworkflowmodels.SubWorkflow](col),
		templates:            basesvc.NewBaseServiceMongo[workflowmodels.WorkflowTemplate](templateCol),
	}, nil
}

// Create tạo sub-workflow mới.
// Từ chối khi triggerConditionId đã có view hoặc name đã tồn tại
// (so khớp phân biệt hoa thường). perStepEstimate là snapshot thời lượng
// của từng step lấy từ template cha tại thời điểm tạo.
func (s *SubWorkflowService) Create(ctx context.Context, input *subworkflowdto.SubWorkflowCreateInput) (subworkflowmodels.SubWorkflow, error) {
	var zero subworkflowmodels.SubWorkflow

	templateID := utility.String2ObjectID(input.ParentTemplateID)
	triggerID := utility.String2ObjectID(input.TriggerConditionID)
	if templateID.IsZero() || triggerID.IsZero() {
		return zero, common.ErrInvalidFormat
	}

	// Một trigger condition chỉ được gắn với tối đa một view,
	// name duy nhất toàn hệ thống (so khớp phân biệt hoa thường)
	bound, err := s.DocumentExists(ctx, bson.M{"triggerConditionId": triggerID})
	if err != nil {
		return zero, err
	}
	nameTaken, err := s.DocumentExists(ctx, bson.M{"name": input.Name})
	if err != nil {
		return zero, err
	}
	if err := bindingConflict(bound, nameTaken, input.TriggerConditionID, input.Name); err != nil {
		return zero, err
	}

	template, err := s.templates.FindOneById(ctx, templateID)
	if err != nil {
		return zero, common.NewNotFoundError("workflow template")
	}

	estimates, err := snapshotEstimates(&template, input.VisibleSteps)
	if err != nil {
		return zero, err
	}

	view := subworkflowmodels.SubWorkflow{
		Name:               input.Name,
		Description:        input.Description,
		ParentTemplateID:   templateID,
		TriggerConditionID: triggerID,
		VisibleSteps:       input.VisibleSteps,
		PerStepEstimate:    estimates,
	}
	return s.InsertOne(ctx, view)
}

// Update cập nhật sub-workflow. Đổi trigger/name kiểm tra lại ràng buộc duy nhất;
// step mới thêm vào visibleSteps lấy snapshot thời lượng tại thời điểm cập nhật.
func (s *SubWorkflowService) Update(ctx context.Context, id primitive.ObjectID, input *subworkflowdto.SubWorkflowUpdateInput) (subworkflowmodels.SubWorkflow, error) {
	current, err := s.FindOneById(ctx, id)
	if err != nil {
		return current, err
	}

	set := bson.M{}

	if input.Name != "" && input.Name != current.Name {
		nameTaken, err := s.DocumentExists(ctx, bson.M{"name": input.Name, "_id": bson.M{"$ne": id}})
		if err != nil {
			return current, err
		}
		if err := bindingConflict(false, nameTaken, "", input.Name); err != nil {
			return current, err
		}
		set["name"] = input.Name
	}

	if input.Description != nil {
		set["description"] = *input.Description
	}

	if input.TriggerConditionID != "" {
		triggerID := utility.String2ObjectID(input.TriggerConditionID)
		if triggerID.IsZero() {
			return current, common.ErrInvalidFormat
		}
		if triggerID != current.TriggerConditionID {
			bound, err := s.DocumentExists(ctx, bson.M{"triggerConditionId": triggerID, "_id": bson.M{"$ne": id}})
			if err != nil {
				return current, err
			}
			if err := bindingConflict(bound, false, input.TriggerConditionID, ""); err != nil {
				return current, err
			}
			set["triggerConditionId"] = triggerID
		}
	}

	if input.VisibleSteps != nil {
		template, err := s.templates.FindOneById(ctx, current.ParentTemplateID)
		if err != nil {
			return current, common.NewNotFoundError("workflow template")
		}

		estimates := current.PerStepEstimate
		if estimates == nil {
			estimates = map[string]workflowmodels.EstimatedDuration{}
		}
		for _, stepID := range input.VisibleSteps {
			if _, have := estimates[stepID]; have {
				continue // Step đã có snapshot, không lấy lại từ template
			}
			step := template.FindStep(stepID)
			if step == nil {
				return current, common.NewValidationError("Step không thuộc template cha: "+stepID, nil)
			}
			estimates[stepID] = step.EstimatedDuration
		}

		set["visibleSteps"] = input.VisibleSteps
		set["perStepEstimate"] = estimates
	}

	if len(set) == 0 {
		return current, common.NewValidationError("Không có thay đổi nào để cập nhật", nil)
	}

	return s.UpdateById(ctx, id, set)
}

// bindingConflict trả lỗi xung đột khi trigger condition hoặc tên đã được
// một view khác sử dụng
func bindingConflict(triggerBound, nameTaken bool, triggerConditionID, name string) error {
	if triggerBound {
		return common.NewConflictError(
			"Trigger condition đã được gắn với một sub-workflow khác",
			map[string]interface{}{"triggerConditionId": triggerConditionID})
	}
	if nameTaken {
		return common.NewConflictError(
			"Tên sub-workflow đã tồn tại",
			map[string]interface{}{"name": name})
	}
	return nil
}

// FindByTriggerCondition tìm view gắn với một trigger condition
func (s *SubWorkflowService) FindByTriggerCondition(ctx context.Context, triggerConditionID primitive.ObjectID) (subworkflowmodels.SubWorkflow, error) {
	return s.FindOne(ctx, bson.M{"triggerConditionId": triggerConditionID}, nil)
}

// snapshotEstimates copy thời lượng từng step được tham chiếu từ template cha.
// Mọi step trong visibleSteps phải thuộc template.
func snapshotEstimates(template *workflowmodels.WorkflowTemplate, visibleSteps []string) (map[string]workflowmodels.EstimatedDuration, error) {
	estimates := make(map[string]workflowmodels.EstimatedDuration, len(visibleSteps))
	for _, stepID := range visibleSteps {
		step := template.FindStep(stepID)
		if step == nil {
			return nil, common.NewValidationError("Step không thuộc template cha: "+stepID, nil)
		}
		estimates[stepID] = step.EstimatedDuration
	}
	return estimates, nil
}
