// Package subworkflowmodels chứa model sub-workflow (workflow view):
// một tập con có sắp xếp lại các step của template, gắn với một trigger condition.
package subworkflowmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	workflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/models"
)

// SubWorkflow một workflow view trên template cha.
// Ràng buộc: mỗi triggerConditionId chỉ được gắn với tối đa một view;
// name duy nhất toàn hệ thống (so khớp phân biệt hoa thường).
type SubWorkflow struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name" index:"unique"`
	Description        string             `json:"description" bson:"description,omitempty"`
	ParentTemplateID   primitive.ObjectID `json:"parentTemplateId" bson:"parentTemplateId" index:"single"`
	TriggerConditionID primitive.ObjectID `json:"triggerConditionId" bson:"triggerConditionId" index:"unique"` // ProductStatus kích hoạt view này
	VisibleSteps       []string           `json:"visibleSteps" bson:"visibleSteps"` // Danh sách step id, thứ tự có thể khác template cha

	// PerStepEstimate snapshot thời lượng từng step tại thời điểm tạo view.
	// Template sửa sau đó không làm thay đổi ước lượng của view đã tạo.
	PerStepEstimate map[string]workflowmodels.EstimatedDuration `json:"perStepEstimate" bson:"perStepEstimate"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
