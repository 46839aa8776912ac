// Package subworkflowhdl chứa handler HTTP của domain sub-workflow.
package subworkflowhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/handler"
	subworkflowdto "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/dto"
	subworkflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/models"
	subworkflowsvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/service"
)

// SubWorkflowHandler handler sub-workflow. Tạo/cập nhật override CRUD chung
// vì phải kiểm tra ràng buộc duy nhất và snapshot thời lượng.
type SubWorkflowHandler struct {
	*basehdl.BaseHandler[subworkflowmodels.SubWorkflow, subworkflowdto.SubWorkflowCreateInput, subworkflowdto.SubWorkflowUpdateInput]
	subWorkflowService *subworkflowsvc.SubWorkflowService
}

// NewSubWorkflowHandler tạo SubWorkflowHandler
func NewSubWorkflowHandler() (*SubWorkflowHandler, error) {
	service, err := subworkflowsvc.NewSubWorkflowService()
	if err != nil {
		return nil, err
	}
	return &SubWorkflowHandler{
		BaseHandler:        basehdl.NewBaseHandler[subworkflowmodels.SubWorkflow, subworkflowdto.SubWorkflowCreateInput, subworkflowdto.SubWorkflowUpdateInput](service),
		subWorkflowService: service,
	}, nil
}

// InsertOne POST /sub-workflows/insert-one — đi qua Create để giữ ràng buộc
func (h *SubWorkflowHandler) InsertOne(c fiber.Ctx) error {
	var input subworkflowdto.SubWorkflowCreateInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.subWorkflowService.Create(c.Context(), &input)
	return basehdl.HandleResponse(c, result, err)
}

// UpdateById PUT /sub-workflows/update-by-id/:id — đi qua Update để giữ ràng buộc
func (h *SubWorkflowHandler) UpdateById(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input subworkflowdto.SubWorkflowUpdateInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.subWorkflowService.Update(c.Context(), id, &input)
	return basehdl.HandleResponse(c, result, err)
}

// FindByTriggerCondition GET /sub-workflows/by-trigger/:id
func (h *SubWorkflowHandler) FindByTriggerCondition(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.subWorkflowService.FindByTriggerCondition(c.Context(), id)
	return basehdl.HandleResponse(c, result, err)
}
