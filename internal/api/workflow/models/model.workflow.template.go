// Package workflowmodels chứa model quy trình: template, step, field schema
// và các phép tính thuần (chuẩn hóa thứ tự, deadline, ép kiểu giá trị field).
package workflowmodels

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
)

// FieldType loại field trong field schema của một step
type FieldType string

// Các loại field được hỗ trợ
const (
	FieldTypeText        FieldType = "text"
	FieldTypeDate        FieldType = "date"
	FieldTypeSelect      FieldType = "select"
	FieldTypeUser        FieldType = "user"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeNumber      FieldType = "number"
	FieldTypeCurrency    FieldType = "currency"
	FieldTypeMultiselect FieldType = "multiselect"
)

// DurationUnit đơn vị ước lượng thời gian của step
type DurationUnit string

// Các đơn vị thời lượng được hỗ trợ
const (
	DurationUnitHours  DurationUnit = "hours"
	DurationUnitDays   DurationUnit = "days"
	DurationUnitWeeks  DurationUnit = "weeks"
	DurationUnitMonths DurationUnit = "months"
)

// EstimatedDuration thời lượng ước tính của một step
type EstimatedDuration struct {
	Value int          `json:"value" bson:"value"` // Số lượng
	Unit  DurationUnit `json:"unit" bson:"unit"`   // hours | days | weeks | months
}

// FieldSchema một ô nhập liệu có kiểu trong field schema của step
type FieldSchema struct {
	ID           string      `json:"id" bson:"id"`     // Duy nhất trong một step
	Name         string      `json:"name" bson:"name"` // Nhãn hiển thị
	Type         FieldType   `json:"type" bson:"type"`
	Required     bool        `json:"required" bson:"required"`
	Options      []string    `json:"options" bson:"options,omitempty"` // Cho select/multiselect
	DefaultValue interface{} `json:"defaultValue" bson:"defaultValue,omitempty"`
	IsSystem     bool        `json:"isSystem" bson:"isSystem"` // Field hệ thống (assignee, receiveDate, deadline, status) không cho xóa
}

// StepDefinition một bước trong quy trình, có field schema và ước lượng thời gian
type StepDefinition struct {
	ID                   string            `json:"id" bson:"id"`
	Name                 string            `json:"name" bson:"name"`
	Description          string            `json:"description" bson:"description,omitempty"`
	Order                int               `json:"order" bson:"order"` // 0-based, liên tục, duy nhất trong template
	EstimatedDuration    EstimatedDuration `json:"estimatedDuration" bson:"estimatedDuration"`
	Fields               []FieldSchema     `json:"fields" bson:"fields"`
	IsRequired           bool              `json:"isRequired" bson:"isRequired"` // Step bắt buộc không cho xóa khỏi template
	AssigneeRole         string            `json:"assigneeRole" bson:"assigneeRole,omitempty"` // Nhãn tự do, không phải khóa ngoại
	NotifyBeforeDeadline int               `json:"notifyBeforeDeadline" bson:"notifyBeforeDeadline"` // Số ngày báo trước deadline
	HasCost              bool              `json:"hasCost" bson:"hasCost"`
}

// WorkflowTemplate quy trình chuẩn của tổ chức, có version tăng dần
type WorkflowTemplate struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	Description    string             `json:"description" bson:"description,omitempty"`
	Steps          []StepDefinition   `json:"steps" bson:"steps"`
	Version        int64              `json:"version" bson:"version"` // Tăng 1 trên mọi thay đổi của template/step/field
	IsStandard     bool               `json:"isStandard" bson:"isStandard"` // Template chuẩn toàn tổ chức
	LastModifiedBy string             `json:"lastModifiedBy" bson:"lastModifiedBy,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// NormalizeStepOrder chuẩn hóa order của các step về dãy 0..n-1 liên tục,
// giữ thứ tự tương đối hiện có. Gọi sau mọi thao tác thêm/xóa/đổi chỗ step.
func NormalizeStepOrder(steps []StepDefinition) {
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Order < steps[j].Order
	})
	for i := range steps {
		steps[i].Order = i
	}
}

// FindStep tìm step theo id trong template, trả về con trỏ vào slice
func (t *WorkflowTemplate) FindStep(stepID string) *StepDefinition {
	for i := range t.Steps {
		if t.Steps[i].ID == stepID {
			return &t.Steps[i]
		}
	}
	return nil
}

// RemoveField xóa field khỏi step. Field hệ thống không bao giờ được xóa.
func (s *StepDefinition) RemoveField(fieldID string) error {
	for i := range s.Fields {
		if s.Fields[i].ID != fieldID {
			continue
		}
		if s.Fields[i].IsSystem {
			return common.NewError(common.ErrCodeAuthRole,
				"Không thể xóa field hệ thống", common.StatusForbidden, nil)
		}
		s.Fields = append(s.Fields[:i], s.Fields[i+1:]...)
		return nil
	}
	return common.NewNotFoundError("field " + fieldID)
}

// FindField tìm field theo id trong step
func (s *StepDefinition) FindField(fieldID string) *FieldSchema {
	for i := range s.Fields {
		if s.Fields[i].ID == fieldID {
			return &s.Fields[i]
		}
	}
	return nil
}
