// Package subworkflowdto chứa DTO của domain sub-workflow.
package subworkflowdto

// SubWorkflowCreateInput đầu vào tạo sub-workflow
type SubWorkflowCreateInput struct {
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description"`
	ParentTemplateID   string   `json:"parentTemplateId" validate:"required"`
	TriggerConditionID string   `json:"triggerConditionId" validate:"required"`
	VisibleSteps       []string `json:"visibleSteps" validate:"required,min=1"`
}

// SubWorkflowUpdateInput đầu vào cập nhật sub-workflow (partial)
type SubWorkflowUpdateInput struct {
	Name               string   `json:"name"`
	Description        *string  `json:"description"`
	TriggerConditionID string   `json:"triggerConditionId"`
	VisibleSteps       []string `json:"visibleSteps"`
}
