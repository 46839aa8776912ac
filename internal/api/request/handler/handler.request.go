// Package requesthdl chứa handler HTTP của domain request.
package requesthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/handler"
	requestdto "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/dto"
	requestmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/models"
	requestsvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/service"
)

// RequestHandler handler request. Tạo request override CRUD chung vì phải
// sinh requestCode và khởi tạo workflow instance.
type RequestHandler struct {
	*basehdl.BaseHandler[requestmodels.Request, requestdto.RequestCreateInput, requestdto.RequestUpdateInput]
	requestService *requestsvc.RequestService
}

// NewRequestHandler tạo RequestHandler
func NewRequestHandler() (*RequestHandler, error) {
	service, err := requestsvc.NewRequestService()
	if err != nil {
		return nil, err
	}
	return &RequestHandler{
		BaseHandler:    basehdl.NewBaseHandler[requestmodels.Request, requestdto.RequestCreateInput, requestdto.RequestUpdateInput](service),
		requestService: service,
	}, nil
}

// actor lấy username đang đăng nhập từ context (set bởi AuthMiddleware)
func actor(c fiber.Ctx) string {
	if username, ok := c.Locals("username").(string); ok {
		return username
	}
	return ""
}

// requestView request kèm các giá trị suy ra, không lưu vào database
type requestView struct {
	requestmodels.Request
	Status          string `json:"status"`
	CurrentAssignee string `json:"currentAssignee"`
}

// newRequestView gắn trạng thái và người phụ trách suy ra vào request
func newRequestView(r requestmodels.Request) requestView {
	return requestView{
		Request:         r,
		Status:          requestmodels.DeriveStatus(r.Workflow),
		CurrentAssignee: requestmodels.ResolveAssignee(&r),
	}
}

// InsertOne POST /requests/insert-one — đi qua CreateRequest để sinh mã
// và khởi tạo workflow instance; cảnh báo ghi phụ trả kèm response
func (h *RequestHandler) InsertOne(c fiber.Ctx) error {
	var input requestdto.RequestCreateInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, warnings, err := h.requestService.CreateRequest(c.Context(), &input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	return basehdl.HandleResponseWithWarnings(c, newRequestView(result), warnings, nil)
}

// FindOneById GET /requests/find-by-id/:id — trả kèm trạng thái suy ra
func (h *RequestHandler) FindOneById(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.requestService.FindOneById(c.Context(), id)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	return basehdl.HandleResponse(c, newRequestView(result), nil)
}

// CompleteStep PUT /requests/:id/complete-step
func (h *RequestHandler) CompleteStep(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input requestdto.CompleteStepInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.requestService.CompleteStep(c.Context(), id, input.StepID, actor(c))
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	return basehdl.HandleResponse(c, newRequestView(result), nil)
}

// RevertStep PUT /requests/:id/revert-step
func (h *RequestHandler) RevertStep(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input requestdto.RevertStepInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.requestService.RevertToStep(c.Context(), id, input.StepID)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	return basehdl.HandleResponse(c, newRequestView(result), nil)
}

// SetManualStatus PUT /requests/:id/manual-status
func (h *RequestHandler) SetManualStatus(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input requestdto.SetManualStatusInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.requestService.SetManualStatus(c.Context(), id, input.Status)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	return basehdl.HandleResponse(c, newRequestView(result), nil)
}

// SetFieldValue PUT /requests/:id/field-value — giá trị ngoài options chỉ cảnh báo
func (h *RequestHandler) SetFieldValue(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input requestdto.SetFieldValueInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, warnings, err := h.requestService.SetFieldValue(c.Context(), id, &input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	return basehdl.HandleResponseWithWarnings(c, newRequestView(result), warnings, nil)
}

// RandomAssignee POST /requests/:id/random-assignee
func (h *RequestHandler) RandomAssignee(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input requestdto.RandomAssigneeInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	picked, err := h.requestService.RandomAssigneeForStep(c.Context(), id, &input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	return basehdl.HandleResponse(c, fiber.Map{"assignee": picked, "stepId": input.StepID}, nil)
}

// FindMaterials GET /requests/:id/materials
func (h *RequestHandler) FindMaterials(c fiber.Ctx) error {
	id, err := basehdl.GetIDFromParams(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	materials, err := h.requestService.Materials().FindByRequest(c.Context(), id)
	return basehdl.HandleResponse(c, materials, err)
}

// MaterialImportHandler handler yêu cầu nhập nguyên vật liệu, CRUD thuần
type MaterialImportHandler struct {
	*basehdl.BaseHandler[requestmodels.MaterialImportRequest, requestdto.MaterialImportCreateInput, requestdto.MaterialImportUpdateInput]
}

// NewMaterialImportHandler tạo MaterialImportHandler
func NewMaterialImportHandler() (*MaterialImportHandler, error) {
	service, err := requestsvc.NewMaterialImportService()
	if err != nil {
		return nil, err
	}
	return &MaterialImportHandler{
		BaseHandler: basehdl.NewBaseHandler[requestmodels.MaterialImportRequest, requestdto.MaterialImportCreateInput, requestdto.MaterialImportUpdateInput](service),
	}, nil
}

// CustomerRequestHandler handler yêu cầu thô từ khách hàng, CRUD thuần
type CustomerRequestHandler struct {
	*basehdl.BaseHandler[requestmodels.CustomerRequest, requestdto.CustomerRequestCreateInput, requestdto.CustomerRequestUpdateInput]
}

// NewCustomerRequestHandler tạo CustomerRequestHandler
func NewCustomerRequestHandler() (*CustomerRequestHandler, error) {
	service, err := requestsvc.NewCustomerRequestService()
	if err != nil {
		return nil, err
	}
	return &CustomerRequestHandler{
		BaseHandler: basehdl.NewBaseHandler[requestmodels.CustomerRequest, requestdto.CustomerRequestCreateInput, requestdto.CustomerRequestUpdateInput](service),
	}, nil
}
