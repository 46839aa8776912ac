// Package workflowdto chứa DTO của domain workflow template.
package workflowdto

// DurationInput thời lượng ước tính trong payload
type DurationInput struct {
	Value int    `json:"value" validate:"required,min=1"`
	Unit  string `json:"unit" validate:"required,duration_unit"`
}

// FieldCreateInput đầu vào thêm field vào step
type FieldCreateInput struct {
	Name         string      `json:"name" validate:"required"`
	Type         string      `json:"type" validate:"required,field_type"`
	Required     bool        `json:"required"`
	Options      []string    `json:"options"`
	DefaultValue interface{} `json:"defaultValue"`
	IsSystem     bool        `json:"isSystem"`
}

// FieldUpdateInput đầu vào cập nhật field (partial)
type FieldUpdateInput struct {
	Name         string      `json:"name"`
	Type         string      `json:"type" validate:"omitempty,field_type"`
	Required     *bool       `json:"required"`
	Options      []string    `json:"options"`
	DefaultValue interface{} `json:"defaultValue"`
}

// StepCreateInput đầu vào thêm step vào template
type StepCreateInput struct {
	Name                 string             `json:"name" validate:"required"`
	Description          string             `json:"description"`
	EstimatedDuration    DurationInput      `json:"estimatedDuration" validate:"required"`
	Fields               []FieldCreateInput `json:"fields" validate:"dive"`
	IsRequired           bool               `json:"isRequired"`
	AssigneeRole         string             `json:"assigneeRole"`
	NotifyBeforeDeadline int                `json:"notifyBeforeDeadline" validate:"min=0"`
	HasCost              bool               `json:"hasCost"`
}

// StepUpdateInput đầu vào cập nhật step (partial)
type StepUpdateInput struct {
	Name                 string         `json:"name"`
	Description          *string        `json:"description"`
	EstimatedDuration    *DurationInput `json:"estimatedDuration"`
	AssigneeRole         *string        `json:"assigneeRole"`
	NotifyBeforeDeadline *int           `json:"notifyBeforeDeadline" validate:"omitempty,min=0"`
	HasCost              *bool          `json:"hasCost"`
}

// StepReorderInput đầu vào sắp xếp lại step: danh sách step id theo thứ tự mới
type StepReorderInput struct {
	StepIDs []string `json:"stepIds" validate:"required,min=1"`
}

// TemplateCreateInput đầu vào tạo workflow template
type TemplateCreateInput struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Steps       []StepCreateInput `json:"steps" validate:"dive"`
	IsStandard  bool              `json:"isStandard"`
}

// TemplateUpdateInput đầu vào cập nhật template: chỉ name/description.
// Mọi thay đổi step/field đi qua các endpoint riêng của step/field.
type TemplateUpdateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
