package workflowmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Loại thay đổi trong lịch sử quy trình
const (
	ChangeTypeCreate = "create"
	ChangeTypeUpdate = "update"
	ChangeTypeDelete = "delete"
)

// Loại entity trong lịch sử quy trình
const (
	EntityTypeTemplate = "template"
	EntityTypeStep     = "step"
	EntityTypeField    = "field"
)

// FieldDiff một thay đổi giá trị field trong lịch sử
type FieldDiff struct {
	Field    string      `json:"field" bson:"field"`       // Tên field thay đổi
	OldValue interface{} `json:"oldValue" bson:"oldValue"` // Giá trị trước
	NewValue interface{} `json:"newValue" bson:"newValue"` // Giá trị sau
}

// WorkflowChange một bản ghi lịch sử thay đổi của template/step/field.
// Collection chỉ ghi thêm, không bao giờ sửa hay xóa.
type WorkflowChange struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ChangeType string             `json:"changeType" bson:"changeType"`                 // create | update | delete
	EntityType string             `json:"entityType" bson:"entityType" index:"single"`  // template | step | field
	EntityID   string             `json:"entityId" bson:"entityId" index:"single"`      // ID của entity bị thay đổi
	TemplateID primitive.ObjectID `json:"templateId" bson:"templateId" index:"single"`  // Template chứa entity
	FieldDiffs []FieldDiff        `json:"fieldDiffs" bson:"fieldDiffs,omitempty"`
	ChangedBy  string             `json:"changedBy" bson:"changedBy"`
	ChangedAt  int64              `json:"changedAt" bson:"changedAt"` // UnixMilli
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
