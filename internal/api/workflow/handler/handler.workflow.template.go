// Package workflowhdl chứa handler HTTP của domain workflow template.
package workflowhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/handler"
	workflowdto "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/dto"
	workflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/models"
	workflowsvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/service"
)

// TemplateHandler handler workflow template.
// CRUD mặc định của BaseHandler chỉ dùng cho đọc; mọi thao tác ghi đi qua
// các endpoint riêng bên dưới để tăng version và ghi lịch sử.
type TemplateHandler struct {
	*basehdl.BaseHandler[workflowmodels.WorkflowTemplate, workflowdto.TemplateCreateInput, workflowdto.TemplateUpdateInput]
	templateService *workflowsvc.TemplateService
}

// NewTemplateHandler tạo TemplateHandler
func NewTemplateHandler() (*TemplateHandler, error) {
	service, err := workflowsvc.NewTemplateService()
	if err != nil {
		return nil, err
	}
	return &TemplateHandler{
		BaseHandler:     basehdl.NewBaseHandler[workflowmodels.WorkflowTemplate, workflowdto.TemplateCreateInput, workflowdto.TemplateUpdateInput](service),
		templateService: service,
	}, nil
}

// actor lấy username người thao tác từ context (middleware auth đã gán)
func actor(c fiber.Ctx) string {
	if username, ok := c.Locals("username").(string); ok {
		return username
	}
	return "unknown"
}

// CreateTemplate POST /workflow-templates
func (h *TemplateHandler) CreateTemplate(c fiber.Ctx) error {
	var input workflowdto.TemplateCreateInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.templateService.CreateTemplate(c.Context(), &input, actor(c))
	return basehdl.HandleResponse(c, result, err)
}

// UpdateTemplateInfo PUT /workflow-templates/:id/info — chỉ name/description
func (h *TemplateHandler) UpdateTemplateInfo(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input workflowdto.TemplateUpdateInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.templateService.UpdateTemplateInfo(c.Context(), id, &input, actor(c))
	return basehdl.HandleResponse(c, result, err)
}

// GetStandardTemplate GET /workflow-templates/standard
func (h *TemplateHandler) GetStandardTemplate(c fiber.Ctx) error {
	result, err := h.templateService.FindStandardTemplate(c.Context())
	return basehdl.HandleResponse(c, result, err)
}

// AddStep POST /workflow-templates/:id/steps
func (h *TemplateHandler) AddStep(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input workflowdto.StepCreateInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.templateService.AddStep(c.Context(), id, &input, actor(c))
	return basehdl.HandleResponse(c, result, err)
}

// UpdateStep PUT /workflow-templates/:id/steps/:stepId
func (h *TemplateHandler) UpdateStep(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input workflowdto.StepUpdateInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.templateService.UpdateStep(c.Context(), id, c.Params("stepId"), &input, actor(c))
	return basehdl.HandleResponse(c, result, err)
}

// DeleteStep DELETE /workflow-templates/:id/steps/:stepId
func (h *TemplateHandler) DeleteStep(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.templateService.DeleteStep(c.Context(), id, c.Params("stepId"), actor(c))
	return basehdl.HandleResponse(c, result, err)
}

// ReorderSteps PUT /workflow-templates/:id/steps-reorder
func (h *TemplateHandler) ReorderSteps(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input workflowdto.StepReorderInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.templateService.ReorderSteps(c.Context(), id, input.StepIDs, actor(c))
	return basehdl.HandleResponse(c, result, err)
}

// AddField POST /workflow-templates/:id/steps/:stepId/fields
func (h *TemplateHandler) AddField(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input workflowdto.FieldCreateInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.templateService.AddField(c.Context(), id, c.Params("stepId"), &input, actor(c))
	return basehdl.HandleResponse(c, result, err)
}

// UpdateField PUT /workflow-templates/:id/steps/:stepId/fields/:fieldId
func (h *TemplateHandler) UpdateField(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input workflowdto.FieldUpdateInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.templateService.UpdateField(c.Context(), id, c.Params("stepId"), c.Params("fieldId"), &input, actor(c))
	return basehdl.HandleResponse(c, result, err)
}

// DeleteField DELETE /workflow-templates/:id/steps/:stepId/fields/:fieldId
func (h *TemplateHandler) DeleteField(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.templateService.DeleteField(c.Context(), id, c.Params("stepId"), c.Params("fieldId"), actor(c))
	return basehdl.HandleResponse(c, result, err)
}

// FindChanges GET /workflow-changes?entityId=... | ?templateId=...
func (h *TemplateHandler) FindChanges(c fiber.Ctx) error {
	if entityID := c.Query("entityId"); entityID != "" {
		result, err := h.templateService.Changes().FindByEntity(c.Context(), entityID)
		return basehdl.HandleResponse(c, result, err)
	}
	if raw := c.Query("templateId"); raw != "" {
		templateID, err := basehdl.GetIDFromQuery(c, "templateId")
		if err != nil {
			return basehdl.HandleErrorResponse(c, err)
		}
		result, err := h.templateService.Changes().FindByTemplate(c.Context(), templateID)
		return basehdl.HandleResponse(c, result, err)
	}
	return basehdl.HandleErrorResponse(c,
		basehdl.MissingQueryError("entityId hoặc templateId"))
}
