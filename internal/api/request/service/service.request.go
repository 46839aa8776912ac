// Package requestsvc chứa nghiệp vụ request và workflow instance nhúng trong request.
package requestsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/service"
	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	requestdto "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/dto"
	requestmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/models"
	subworkflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/models"
	subworkflowsvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/service"
	workflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/logger"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/utility"
)

// orgTimezone múi giờ của tổ chức, dùng để xác định "cùng ngày" khi sinh mã request
var orgTimezone = time.FixedZone("UTC+7", 7*60*60)

// RequestService service request
type RequestService struct {
	*basesvc.BaseServiceMongoImpl[requestmodels.Request]
	materials    *MaterialImportService
	subWorkflows *subworkflowsvc.SubWorkflowService
	templates    *basesvc.BaseServiceMongoImpl[workflowmodels.WorkflowTemplate]
	users        *basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewRequestService tạo RequestService
func NewRequestService() (*RequestService, error) {
	col, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Requests)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.Requests)
	}
	templateCol, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.WorkflowTemplates)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.WorkflowTemplates)
	}
	userCol, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.Users)
	}

	materials, err := NewMaterialImportService()
	if err != nil {
		return nil, err
	}
	subWorkflows, err := subworkflowsvc.NewSubWorkflowService()
	if err != nil {
		return nil, err
	}

	return &RequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[requestmodels.Request](col),
		materials:            materials,
		subWorkflows:         subWorkflows,
		templates:            basesvc.NewBaseServiceMongo[workflowmodels.WorkflowTemplate](templateCol),
		users:                basesvc.NewBaseServiceMongo[authmodels.User](userCol),
	}, nil
}

// Materials trả về service yêu cầu nhập nguyên vật liệu dùng chung
func (s *RequestService) Materials() *MaterialImportService {
	return s.materials
}

// generateRequestCode sinh mã request dạng REQ-yyyyMMdd-NNN bằng cách đếm
// số request cùng ngày (theo giờ tổ chức) rồi cộng một.
//
// Đây là read-then-write: hai request cùng lúc trong cùng ngày có thể nhận
// cùng số thứ tự. Index unique trên requestCode biến va chạm thành lỗi trùng
// thay vì lặng lẽ cho qua.
func (s *RequestService) generateRequestCode(ctx context.Context, now time.Time) (string, error) {
	local := now.In(orgTimezone)
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, orgTimezone)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	count, err := s.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{
			"$gte": utility.UnixMilli(startOfDay),
			"$lt":  utility.UnixMilli(endOfDay),
		},
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("REQ-%s-%03d", local.Format("20060102"), count+1), nil
}

// CreateRequest tạo request mới:
//   - sinh requestCode theo ngày
//   - nếu productStatusId có sub-workflow gắn vào thì tạo workflow instance
//     với snapshot visibleSteps của view
//   - các dòng nguyên vật liệu được ghi best-effort SAU khi request chính
//     đã ghi thành công; dòng nào lỗi trả về cảnh báo, không rollback request
func (s *RequestService) CreateRequest(ctx context.Context, input *requestdto.RequestCreateInput) (requestmodels.Request, []string, error) {
	var zero requestmodels.Request
	now := time.Now()

	code, err := s.generateRequestCode(ctx, now)
	if err != nil {
		return zero, nil, err
	}

	receiveDate := utility.UnixMilli(now)
	if input.ReceiveDate != "" {
		t, err := time.Parse(time.RFC3339, input.ReceiveDate)
		if err != nil {
			return zero, nil, common.NewValidationError("receiveDate không đúng định dạng RFC3339", nil)
		}
		receiveDate = utility.UnixMilli(t)
	}

	request := requestmodels.Request{
		RequestCode:     code,
		Title:           input.Title,
		Description:     input.Description,
		CustomerID:      utility.String2ObjectID(input.CustomerID),
		DataSourceID:    utility.String2ObjectID(input.DataSourceID),
		ProductStatusID: utility.String2ObjectID(input.ProductStatusID),
		Assignee:        input.Assignee,
		ReceiveDate:     receiveDate,
	}

	// Trạng thái sản phẩm có view gắn vào thì khởi tạo instance với snapshot.
	// Chỉ lỗi not-found mới được hiểu là "trạng thái không có view"; lỗi
	// kết nối/truy vấn phải chặn việc tạo, không được ghi request thiếu workflow.
	if !request.ProductStatusID.IsZero() {
		view, findErr := s.subWorkflows.FindByTriggerCondition(ctx, request.ProductStatusID)
		instance, err := resolveWorkflowInstance(&view, findErr)
		if err != nil {
			return zero, nil, err
		}
		request.Workflow = instance
	}

	created, err := s.InsertOne(ctx, request)
	if err != nil {
		return zero, nil, err
	}

	return created, s.writeMaterialLines(ctx, &created, input.Materials), nil
}

// resolveWorkflowInstance dựng workflow instance từ kết quả tra view theo
// trigger condition. Not-found nghĩa là trạng thái không gắn view nào và
// request chạy không có workflow; mọi lỗi khác trả thẳng về caller.
func resolveWorkflowInstance(view *subworkflowmodels.SubWorkflow, err error) (*requestmodels.WorkflowInstance, error) {
	if err != nil {
		if common.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	visibleSteps := make([]string, len(view.VisibleSteps))
	copy(visibleSteps, view.VisibleSteps)

	instance := &requestmodels.WorkflowInstance{
		SubWorkflowID: view.ID,
		VisibleSteps:  visibleSteps,
		FieldValues:   map[string]interface{}{},
	}
	if len(visibleSteps) > 0 {
		instance.CurrentStepID = visibleSteps[0]
	}
	return instance, nil
}

// writeMaterialLines ghi các dòng nguyên vật liệu best-effort sau khi request
// chính đã ghi xong: mỗi dòng lỗi là một cảnh báo, không rollback request
func (s *RequestService) writeMaterialLines(ctx context.Context, created *requestmodels.Request, lines []requestdto.MaterialLineInput) []string {
	var warnings []string
	for _, line := range lines {
		material := requestmodels.MaterialImportRequest{
			RequestID:    created.ID,
			MaterialName: line.MaterialName,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
			Note:         line.Note,
			Status:       "pending",
		}
		if _, err := s.materials.InsertOne(ctx, material); err != nil {
			logger.GetErrorLogger().WithError(err).
				WithField("requestCode", created.RequestCode).
				Warn("Không ghi được yêu cầu nhập nguyên vật liệu")
			warnings = append(warnings,
				fmt.Sprintf("Không ghi được yêu cầu nhập nguyên vật liệu '%s'", line.MaterialName))
		}
	}
	return warnings
}

// CompleteStep đánh dấu hoàn thành step hiện tại và mở khóa step kế tiếp.
// Quy trình tuyến tính: chỉ step hiện tại mới hoàn thành được.
func (s *RequestService) CompleteStep(ctx context.Context, requestID primitive.ObjectID, stepID, completedBy string) (requestmodels.Request, error) {
	request, err := s.FindOneById(ctx, requestID)
	if err != nil {
		return request, err
	}
	w := request.Workflow
	if w == nil {
		return request, common.NewValidationError("Request không có workflow", nil)
	}

	if stepID != w.CurrentStepID {
		return request, common.NewValidationError(
			"Chỉ step hiện tại mới có thể hoàn thành", map[string]interface{}{
				"currentStepId": w.CurrentStepID,
			})
	}
	if w.IsStepCompleted(stepID) {
		return request, common.NewConflictError("Step đã được hoàn thành trước đó", nil)
	}

	w.CompletedSteps = append(w.CompletedSteps, requestmodels.CompletedStep{
		StepID:      stepID,
		CompletedAt: utility.CurrentTimeInMilli(),
		CompletedBy: completedBy,
	})

	// Mở khóa step kế tiếp trong snapshot (nếu còn)
	if idx := w.StepIndex(stepID); idx >= 0 && idx+1 < len(w.VisibleSteps) {
		w.CurrentStepID = w.VisibleSteps[idx+1]
	}

	return s.UpdateById(ctx, requestID, bson.M{"workflow": w})
}

// RevertToStep quay lại một step: mọi step sau nó trở về chưa bắt đầu
// (bản ghi hoàn thành bị gỡ), chính nó thành step hiện tại. Trạng thái ép tay
// được xóa để instance quay về trạng thái suy ra.
func (s *RequestService) RevertToStep(ctx context.Context, requestID primitive.ObjectID, stepID string) (requestmodels.Request, error) {
	request, err := s.FindOneById(ctx, requestID)
	if err != nil {
		return request, err
	}
	w := request.Workflow
	if w == nil {
		return request, common.NewValidationError("Request không có workflow", nil)
	}

	idx := w.StepIndex(stepID)
	if idx < 0 {
		return request, common.NewNotFoundError("step " + stepID)
	}

	// Giữ lại bản ghi hoàn thành của các step đứng trước step quay lại
	kept := w.CompletedSteps[:0]
	for _, done := range w.CompletedSteps {
		if pos := w.StepIndex(done.StepID); pos >= 0 && pos < idx {
			kept = append(kept, done)
		}
	}
	w.CompletedSteps = kept
	w.CurrentStepID = stepID
	w.ManualStatus = ""

	return s.UpdateById(ctx, requestID, bson.M{"workflow": w})
}

// SetManualStatus ép trạng thái tay (rejected/on_hold/completed) hoặc mở lại
// ("reopen" xóa trạng thái ép tay, trạng thái quay về suy ra từ tiến độ).
func (s *RequestService) SetManualStatus(ctx context.Context, requestID primitive.ObjectID, status string) (requestmodels.Request, error) {
	request, err := s.FindOneById(ctx, requestID)
	if err != nil {
		return request, err
	}
	if request.Workflow == nil {
		return request, common.NewValidationError("Request không có workflow", nil)
	}

	if status == "reopen" {
		request.Workflow.ManualStatus = ""
	} else {
		request.Workflow.ManualStatus = status
	}

	return s.UpdateById(ctx, requestID, bson.M{"workflow": request.Workflow})
}

// SetFieldValue ghi giá trị một field của step vào instance, ép kiểu theo
// field schema của template cha. Giá trị ngoài options chỉ cảnh báo.
func (s *RequestService) SetFieldValue(ctx context.Context, requestID primitive.ObjectID, input *requestdto.SetFieldValueInput) (requestmodels.Request, []string, error) {
	request, err := s.FindOneById(ctx, requestID)
	if err != nil {
		return request, nil, err
	}
	w := request.Workflow
	if w == nil {
		return request, nil, common.NewValidationError("Request không có workflow", nil)
	}
	if w.StepIndex(input.StepID) < 0 {
		return request, nil, common.NewNotFoundError("step " + input.StepID)
	}

	field, err := s.findFieldSchema(ctx, w.SubWorkflowID, input.StepID, input.FieldID)
	if err != nil {
		return request, nil, err
	}

	value, warnings, err := workflowmodels.CoerceFieldValue(*field, input.Value)
	if err != nil {
		return request, nil, err
	}

	if w.FieldValues == nil {
		w.FieldValues = map[string]interface{}{}
	}
	w.FieldValues[fmt.Sprintf("%s_%s", input.StepID, input.FieldID)] = value

	updated, err := s.UpdateById(ctx, requestID, bson.M{"workflow": w})
	return updated, warnings, err
}

// findFieldSchema tra field schema từ template cha của view
func (s *RequestService) findFieldSchema(ctx context.Context, subWorkflowID primitive.ObjectID, stepID, fieldID string) (*workflowmodels.FieldSchema, error) {
	view, err := s.subWorkflows.FindOneById(ctx, subWorkflowID)
	if err != nil {
		return nil, common.NewNotFoundError("sub-workflow")
	}
	template, err := s.templates.FindOneById(ctx, view.ParentTemplateID)
	if err != nil {
		return nil, common.NewNotFoundError("workflow template")
	}
	step := template.FindStep(stepID)
	if step == nil {
		return nil, common.NewNotFoundError("step " + stepID)
	}
	field := step.FindField(fieldID)
	if field == nil {
		return nil, common.NewNotFoundError("field " + fieldID)
	}
	return field, nil
}

// RandomAssigneeForStep chọn ngẫu nhiên một người trong allowedUsers đang
// hoạt động và gán làm assignee của step (ghi vào fieldValues).
func (s *RequestService) RandomAssigneeForStep(ctx context.Context, requestID primitive.ObjectID, input *requestdto.RandomAssigneeInput) (string, error) {
	request, err := s.FindOneById(ctx, requestID)
	if err != nil {
		return "", err
	}
	w := request.Workflow
	if w == nil {
		return "", common.NewValidationError("Request không có workflow", nil)
	}
	if w.StepIndex(input.StepID) < 0 {
		return "", common.NewNotFoundError("step " + input.StepID)
	}

	activeUsers, err := s.users.Find(ctx, bson.M{"status": authmodels.UserStatusActive}, nil)
	if err != nil {
		return "", err
	}
	directory := make([]string, 0, len(activeUsers))
	for _, u := range activeUsers {
		directory = append(directory, u.Username)
	}

	picked, err := requestmodels.RandomAssignee(input.AllowedUsers, directory)
	if err != nil {
		return "", err
	}

	if w.FieldValues == nil {
		w.FieldValues = map[string]interface{}{}
	}
	w.FieldValues[fmt.Sprintf("step_%s_assignee", input.StepID)] = picked

	if _, err := s.UpdateById(ctx, requestID, bson.M{"workflow": w}); err != nil {
		return "", err
	}
	return picked, nil
}

// StepDeadline tính deadline của một step trong instance:
// receiveDate của request + thời lượng snapshot của step trong view.
func (s *RequestService) StepDeadline(ctx context.Context, request *requestmodels.Request, stepID string) (time.Time, int, error) {
	w := request.Workflow
	if w == nil {
		return time.Time{}, 0, common.NewValidationError("Request không có workflow", nil)
	}

	view, err := s.subWorkflows.FindOneById(ctx, w.SubWorkflowID)
	if err != nil {
		return time.Time{}, 0, common.NewNotFoundError("sub-workflow")
	}
	estimate, ok := view.PerStepEstimate[stepID]
	if !ok {
		return time.Time{}, 0, common.NewNotFoundError("ước lượng thời gian của step " + stepID)
	}

	// notifyBeforeDeadline lấy từ định nghĩa step trong template cha
	notifyDays := 0
	if template, err := s.templates.FindOneById(ctx, view.ParentTemplateID); err == nil {
		if step := template.FindStep(stepID); step != nil {
			notifyDays = step.NotifyBeforeDeadline
		}
	}

	receive := time.UnixMilli(request.ReceiveDate).UTC()
	return workflowmodels.ComputeDeadline(receive, estimate), notifyDays, nil
}
