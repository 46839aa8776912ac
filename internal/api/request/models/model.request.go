// Package requestmodels chứa model request, workflow instance nhúng trong request
// và các phép suy ra trạng thái / người phụ trách.
package requestmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái suy ra của một workflow instance
const (
	InstanceStatusPending    = "pending"
	InstanceStatusInProgress = "in_progress"
	InstanceStatusCompleted  = "completed"
	InstanceStatusRejected   = "rejected"
	InstanceStatusOnHold     = "on_hold"
)

// UnassignedLabel giá trị trả về khi không tìm được người phụ trách
const UnassignedLabel = "unassigned"

// CompletedStep một step đã hoàn thành trong instance
type CompletedStep struct {
	StepID      string `json:"stepId" bson:"stepId"`
	CompletedAt int64  `json:"completedAt" bson:"completedAt"` // UnixMilli
	CompletedBy string `json:"completedBy" bson:"completedBy"`
}

// WorkflowInstance tiến trình của một request qua một sub-workflow.
// Nhúng trong Request, không có vòng đời riêng: tạo cùng request, xóa cùng request.
type WorkflowInstance struct {
	SubWorkflowID primitive.ObjectID `json:"subWorkflowId" bson:"subWorkflowId"`
	CurrentStepID string             `json:"currentStepId" bson:"currentStepId"`

	// VisibleSteps snapshot danh sách step của view tại thời điểm tạo instance.
	// View bị sửa sau đó không ảnh hưởng đến instance đang chạy.
	VisibleSteps []string `json:"visibleSteps" bson:"visibleSteps"`

	// FieldValues giá trị field theo key "<stepId>_<fieldId>"
	FieldValues map[string]interface{} `json:"fieldValues" bson:"fieldValues,omitempty"`

	CompletedSteps []CompletedStep `json:"completedSteps" bson:"completedSteps,omitempty"`

	// ManualStatus trạng thái ép tay (rejected/on_hold/completed), thắng mọi suy ra
	ManualStatus string `json:"manualStatus" bson:"manualStatus,omitempty"`
}

// Request yêu cầu sản phẩm của khách hàng
type Request struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RequestCode     string             `json:"requestCode" bson:"requestCode" index:"unique"` // REQ-yyyyMMdd-NNN
	Title           string             `json:"title" bson:"title" index:"text"`
	Description     string             `json:"description" bson:"description,omitempty"`
	CustomerID      primitive.ObjectID `json:"customerId" bson:"customerId,omitempty" index:"single"`
	DataSourceID    primitive.ObjectID `json:"dataSourceId" bson:"dataSourceId,omitempty"`
	ProductStatusID primitive.ObjectID `json:"productStatusId" bson:"productStatusId,omitempty" index:"single"` // Trigger condition chọn sub-workflow

	// Assignee gán trực tiếp trên request, mức ưu tiên cao nhất khi hiển thị
	Assignee string `json:"assignee" bson:"assignee,omitempty"`

	// CurrentStepAssignee field cũ, giữ để tương thích dữ liệu đã có
	CurrentStepAssignee string `json:"currentStepAssignee" bson:"currentStepAssignee,omitempty"`

	ReceiveDate int64             `json:"receiveDate" bson:"receiveDate"` // UnixMilli
	Workflow    *WorkflowInstance `json:"workflow" bson:"workflow,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// MaterialImportRequest yêu cầu nhập nguyên vật liệu sinh ra từ một request.
// Ghi best-effort sau khi request chính đã ghi thành công.
type MaterialImportRequest struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RequestID    primitive.ObjectID `json:"requestId" bson:"requestId" index:"single"`
	MaterialName string             `json:"materialName" bson:"materialName"`
	Quantity     float64            `json:"quantity" bson:"quantity"`
	Unit         string             `json:"unit" bson:"unit,omitempty"`
	Note         string             `json:"note" bson:"note,omitempty"`
	Status       string             `json:"status" bson:"status"` // pending | ordered | received
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// CustomerRequest yêu cầu/liên hệ thô từ khách hàng trước khi thành request chính thức
type CustomerRequest struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID   primitive.ObjectID `json:"customerId" bson:"customerId,omitempty" index:"single"`
	DataSourceID primitive.ObjectID `json:"dataSourceId" bson:"dataSourceId,omitempty"`
	Content      string             `json:"content" bson:"content"`
	Status       string             `json:"status" bson:"status"` // new | processed
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
