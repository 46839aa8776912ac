package workflowsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/service"
	subworkflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/models"
	workflowdto "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/dto"
	workflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
)

// TemplateService service workflow template: quản lý template, step, field.
// Mọi thao tác ghi đều tăng version và ghi một bản ghi lịch sử.
type TemplateService struct {
	*basesvc.BaseServiceMongoImpl[workflowmodels.WorkflowTemplate]
	changes *ChangeService
	views   *basesvc.BaseServiceMongoImpl[subworkflowmodels.SubWorkflow]
}

// NewTemplateService tạo TemplateService
func NewTemplateService() (*TemplateService, error) {
	col, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.WorkflowTemplates)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.WorkflowTemplates)
	}
	viewCol, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.SubWorkflows)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.SubWorkflows)
	}
	changes, err := NewChangeService()
	if err != nil {
		return nil, err
	}

	return &TemplateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[workflowmodels.WorkflowTemplate](col),
		changes:              changes,
		views:                basesvc.NewBaseServiceMongo[subworkflowmodels.SubWorkflow](viewCol),
	}, nil
}

// Changes trả về service lịch sử (cho handler truy vấn lịch sử)
func (s *TemplateService) Changes() *ChangeService {
	return s.changes
}

// buildStep dựng StepDefinition từ DTO, sinh id mới cho step và các field
func buildStep(input *workflowdto.StepCreateInput, order int) workflowmodels.StepDefinition {
	step := workflowmodels.StepDefinition{
		ID:          primitive.NewObjectID().Hex(),
		Name:        input.Name,
		Description: input.Description,
		Order:       order,
		EstimatedDuration: workflowmodels.EstimatedDuration{
			Value: input.EstimatedDuration.Value,
			Unit:  workflowmodels.DurationUnit(input.EstimatedDuration.Unit),
		},
		IsRequired:           input.IsRequired,
		AssigneeRole:         input.AssigneeRole,
		NotifyBeforeDeadline: input.NotifyBeforeDeadline,
		HasCost:              input.HasCost,
	}
	for _, f := range input.Fields {
		step.Fields = append(step.Fields, workflowmodels.FieldSchema{
			ID:           primitive.NewObjectID().Hex(),
			Name:         f.Name,
			Type:         workflowmodels.FieldType(f.Type),
			Required:     f.Required,
			Options:      f.Options,
			DefaultValue: f.DefaultValue,
			IsSystem:     f.IsSystem,
		})
	}
	return step
}

// CreateTemplate tạo template mới với version = 1
func (s *TemplateService) CreateTemplate(ctx context.Context, input *workflowdto.TemplateCreateInput, actor string) (workflowmodels.WorkflowTemplate, error) {
	template := workflowmodels.WorkflowTemplate{
		Name:           input.Name,
		Description:    input.Description,
		Version:        1,
		IsStandard:     input.IsStandard,
		LastModifiedBy: actor,
	}
	for i := range input.Steps {
		template.Steps = append(template.Steps, buildStep(&input.Steps[i], i))
	}
	workflowmodels.NormalizeStepOrder(template.Steps)

	created, err := s.InsertOne(ctx, template)
	if err != nil {
		return created, err
	}

	s.changes.Append(ctx, workflowmodels.ChangeTypeCreate, workflowmodels.EntityTypeTemplate,
		created.ID.Hex(), created.ID, nil, actor)
	return created, nil
}

// withVersionBump bọc $set với $inc version. Mọi lần ghi template đều đi qua
// đây: version chỉ tăng qua $inc, không bao giờ được set trực tiếp.
func withVersionBump(set bson.M) bson.M {
	return bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}
}

// saveSteps ghi lại danh sách step, tăng version và cập nhật người sửa cuối
func (s *TemplateService) saveSteps(ctx context.Context, template *workflowmodels.WorkflowTemplate, actor string) (workflowmodels.WorkflowTemplate, error) {
	return s.UpdateById(ctx, template.ID, withVersionBump(bson.M{
		"steps":          template.Steps,
		"lastModifiedBy": actor,
	}))
}

// UpdateTemplateInfo cập nhật name/description của template (partial).
// Thay đổi step/field không đi qua đây.
func (s *TemplateService) UpdateTemplateInfo(ctx context.Context, id primitive.ObjectID, input *workflowdto.TemplateUpdateInput, actor string) (workflowmodels.WorkflowTemplate, error) {
	current, err := s.FindOneById(ctx, id)
	if err != nil {
		return current, err
	}

	set := bson.M{"lastModifiedBy": actor}
	var diffs []workflowmodels.FieldDiff
	if input.Name != "" && input.Name != current.Name {
		set["name"] = input.Name
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "name", OldValue: current.Name, NewValue: input.Name})
	}
	if input.Description != "" && input.Description != current.Description {
		set["description"] = input.Description
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "description", OldValue: current.Description, NewValue: input.Description})
	}
	if len(diffs) == 0 {
		return current, common.NewValidationError("Không có thay đổi nào để cập nhật", nil)
	}

	updated, err := s.UpdateById(ctx, id, withVersionBump(set))
	if err != nil {
		return updated, err
	}

	s.changes.Append(ctx, workflowmodels.ChangeTypeUpdate, workflowmodels.EntityTypeTemplate,
		id.Hex(), id, diffs, actor)
	return updated, nil
}

// AddStep thêm step vào cuối template
func (s *TemplateService) AddStep(ctx context.Context, templateID primitive.ObjectID, input *workflowdto.StepCreateInput, actor string) (workflowmodels.WorkflowTemplate, error) {
	template, err := s.FindOneById(ctx, templateID)
	if err != nil {
		return template, err
	}

	step := buildStep(input, len(template.Steps))
	template.Steps = append(template.Steps, step)
	workflowmodels.NormalizeStepOrder(template.Steps)

	updated, err := s.saveSteps(ctx, &template, actor)
	if err != nil {
		return updated, err
	}

	s.changes.Append(ctx, workflowmodels.ChangeTypeCreate, workflowmodels.EntityTypeStep,
		step.ID, templateID, nil, actor)
	return updated, nil
}

// UpdateStep cập nhật các thuộc tính của một step (partial)
func (s *TemplateService) UpdateStep(ctx context.Context, templateID primitive.ObjectID, stepID string, input *workflowdto.StepUpdateInput, actor string) (workflowmodels.WorkflowTemplate, error) {
	template, err := s.FindOneById(ctx, templateID)
	if err != nil {
		return template, err
	}

	step := template.FindStep(stepID)
	if step == nil {
		return template, common.NewNotFoundError("step " + stepID)
	}

	var diffs []workflowmodels.FieldDiff
	if input.Name != "" && input.Name != step.Name {
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "name", OldValue: step.Name, NewValue: input.Name})
		step.Name = input.Name
	}
	if input.Description != nil && *input.Description != step.Description {
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "description", OldValue: step.Description, NewValue: *input.Description})
		step.Description = *input.Description
	}
	if input.EstimatedDuration != nil {
		newDuration := workflowmodels.EstimatedDuration{
			Value: input.EstimatedDuration.Value,
			Unit:  workflowmodels.DurationUnit(input.EstimatedDuration.Unit),
		}
		if newDuration != step.EstimatedDuration {
			diffs = append(diffs, workflowmodels.FieldDiff{Field: "estimatedDuration", OldValue: step.EstimatedDuration, NewValue: newDuration})
			step.EstimatedDuration = newDuration
		}
	}
	if input.AssigneeRole != nil && *input.AssigneeRole != step.AssigneeRole {
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "assigneeRole", OldValue: step.AssigneeRole, NewValue: *input.AssigneeRole})
		step.AssigneeRole = *input.AssigneeRole
	}
	if input.NotifyBeforeDeadline != nil && *input.NotifyBeforeDeadline != step.NotifyBeforeDeadline {
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "notifyBeforeDeadline", OldValue: step.NotifyBeforeDeadline, NewValue: *input.NotifyBeforeDeadline})
		step.NotifyBeforeDeadline = *input.NotifyBeforeDeadline
	}
	if input.HasCost != nil && *input.HasCost != step.HasCost {
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "hasCost", OldValue: step.HasCost, NewValue: *input.HasCost})
		step.HasCost = *input.HasCost
	}
	if len(diffs) == 0 {
		return template, common.NewValidationError("Không có thay đổi nào để cập nhật", nil)
	}

	updated, err := s.saveSteps(ctx, &template, actor)
	if err != nil {
		return updated, err
	}

	s.changes.Append(ctx, workflowmodels.ChangeTypeUpdate, workflowmodels.EntityTypeStep,
		stepID, templateID, diffs, actor)
	return updated, nil
}

// DeleteStep xóa step khỏi template. Bị chặn khi step bắt buộc
// hoặc đang được một sub-workflow nào đó tham chiếu.
func (s *TemplateService) DeleteStep(ctx context.Context, templateID primitive.ObjectID, stepID string, actor string) (workflowmodels.WorkflowTemplate, error) {
	template, err := s.FindOneById(ctx, templateID)
	if err != nil {
		return template, err
	}

	step := template.FindStep(stepID)
	if step == nil {
		return template, common.NewNotFoundError("step " + stepID)
	}
	if step.IsRequired {
		return template, common.NewError(common.ErrCodeAuthRole,
			"Không thể xóa step bắt buộc", common.StatusForbidden, nil)
	}

	// Step đang nằm trong visibleSteps của một view thì không được xóa
	referenced, err := s.views.DocumentExists(ctx, bson.M{"visibleSteps": stepID})
	if err != nil {
		return template, err
	}
	if referenced {
		return template, common.NewConflictError(
			"Step đang được sử dụng trong một sub-workflow, không thể xóa",
			map[string]interface{}{"stepId": stepID})
	}

	for i := range template.Steps {
		if template.Steps[i].ID == stepID {
			template.Steps = append(template.Steps[:i], template.Steps[i+1:]...)
			break
		}
	}
	workflowmodels.NormalizeStepOrder(template.Steps)

	updated, err := s.saveSteps(ctx, &template, actor)
	if err != nil {
		return updated, err
	}

	s.changes.Append(ctx, workflowmodels.ChangeTypeDelete, workflowmodels.EntityTypeStep,
		stepID, templateID, nil, actor)
	return updated, nil
}

// ReorderSteps sắp xếp lại step theo danh sách id mới.
// Sau khi sắp xếp, order luôn là dãy 0..n-1 liên tục.
func (s *TemplateService) ReorderSteps(ctx context.Context, templateID primitive.ObjectID, stepIDs []string, actor string) (workflowmodels.WorkflowTemplate, error) {
	template, err := s.FindOneById(ctx, templateID)
	if err != nil {
		return template, err
	}

	if len(stepIDs) != len(template.Steps) {
		return template, common.NewValidationError("Danh sách sắp xếp phải chứa đủ toàn bộ step", nil)
	}

	position := make(map[string]int, len(stepIDs))
	for i, id := range stepIDs {
		position[id] = i
	}
	for i := range template.Steps {
		pos, ok := position[template.Steps[i].ID]
		if !ok {
			return template, common.NewValidationError("Step không thuộc template: "+template.Steps[i].ID, nil)
		}
		template.Steps[i].Order = pos
	}
	workflowmodels.NormalizeStepOrder(template.Steps)

	updated, err := s.saveSteps(ctx, &template, actor)
	if err != nil {
		return updated, err
	}

	s.changes.Append(ctx, workflowmodels.ChangeTypeUpdate, workflowmodels.EntityTypeTemplate,
		templateID.Hex(), templateID,
		[]workflowmodels.FieldDiff{{Field: "stepOrder", NewValue: stepIDs}}, actor)
	return updated, nil
}

// AddField thêm field vào một step
func (s *TemplateService) AddField(ctx context.Context, templateID primitive.ObjectID, stepID string, input *workflowdto.FieldCreateInput, actor string) (workflowmodels.WorkflowTemplate, error) {
	template, err := s.FindOneById(ctx, templateID)
	if err != nil {
		return template, err
	}

	step := template.FindStep(stepID)
	if step == nil {
		return template, common.NewNotFoundError("step " + stepID)
	}

	field := workflowmodels.FieldSchema{
		ID:           primitive.NewObjectID().Hex(),
		Name:         input.Name,
		Type:         workflowmodels.FieldType(input.Type),
		Required:     input.Required,
		Options:      input.Options,
		DefaultValue: input.DefaultValue,
		IsSystem:     input.IsSystem,
	}
	step.Fields = append(step.Fields, field)

	updated, err := s.saveSteps(ctx, &template, actor)
	if err != nil {
		return updated, err
	}

	s.changes.Append(ctx, workflowmodels.ChangeTypeCreate, workflowmodels.EntityTypeField,
		field.ID, templateID, nil, actor)
	return updated, nil
}

// UpdateField cập nhật một field trong step (partial)
func (s *TemplateService) UpdateField(ctx context.Context, templateID primitive.ObjectID, stepID, fieldID string, input *workflowdto.FieldUpdateInput, actor string) (workflowmodels.WorkflowTemplate, error) {
	template, err := s.FindOneById(ctx, templateID)
	if err != nil {
		return template, err
	}

	step := template.FindStep(stepID)
	if step == nil {
		return template, common.NewNotFoundError("step " + stepID)
	}
	field := step.FindField(fieldID)
	if field == nil {
		return template, common.NewNotFoundError("field " + fieldID)
	}

	var diffs []workflowmodels.FieldDiff
	if input.Name != "" && input.Name != field.Name {
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "name", OldValue: field.Name, NewValue: input.Name})
		field.Name = input.Name
	}
	if input.Type != "" && workflowmodels.FieldType(input.Type) != field.Type {
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "type", OldValue: field.Type, NewValue: input.Type})
		field.Type = workflowmodels.FieldType(input.Type)
	}
	if input.Required != nil && *input.Required != field.Required {
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "required", OldValue: field.Required, NewValue: *input.Required})
		field.Required = *input.Required
	}
	if input.Options != nil {
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "options", OldValue: field.Options, NewValue: input.Options})
		field.Options = input.Options
	}
	if input.DefaultValue != nil {
		diffs = append(diffs, workflowmodels.FieldDiff{Field: "defaultValue", OldValue: field.DefaultValue, NewValue: input.DefaultValue})
		field.DefaultValue = input.DefaultValue
	}
	if len(diffs) == 0 {
		return template, common.NewValidationError("Không có thay đổi nào để cập nhật", nil)
	}

	updated, err := s.saveSteps(ctx, &template, actor)
	if err != nil {
		return updated, err
	}

	s.changes.Append(ctx, workflowmodels.ChangeTypeUpdate, workflowmodels.EntityTypeField,
		fieldID, templateID, diffs, actor)
	return updated, nil
}

// DeleteField xóa field khỏi step. Field hệ thống bị chặn trong RemoveField.
func (s *TemplateService) DeleteField(ctx context.Context, templateID primitive.ObjectID, stepID, fieldID string, actor string) (workflowmodels.WorkflowTemplate, error) {
	template, err := s.FindOneById(ctx, templateID)
	if err != nil {
		return template, err
	}

	step := template.FindStep(stepID)
	if step == nil {
		return template, common.NewNotFoundError("step " + stepID)
	}
	if err := step.RemoveField(fieldID); err != nil {
		return template, err
	}

	updated, err := s.saveSteps(ctx, &template, actor)
	if err != nil {
		return updated, err
	}

	s.changes.Append(ctx, workflowmodels.ChangeTypeDelete, workflowmodels.EntityTypeField,
		fieldID, templateID, nil, actor)
	return updated, nil
}

// FindStandardTemplate trả về template chuẩn của tổ chức
func (s *TemplateService) FindStandardTemplate(ctx context.Context) (workflowmodels.WorkflowTemplate, error) {
	return s.FindOne(ctx, bson.M{"isStandard": true}, nil)
}
