package basehdl

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
)

// ==================== Create ====================

// InsertOne POST /insert-one: parse DTO, validate, chuyển sang model rồi ghi
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	var input CreateInput
	if err := ParseRequestBody(c, &input); err != nil {
		return HandleErrorResponse(c, err)
	}

	model, err := TransformInputToModel[CreateInput, T](input)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	result, err := h.Service.InsertOne(c.Context(), model)
	return HandleResponse(c, result, err)
}

// InsertMany POST /insert-many
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertMany(c fiber.Ctx) error {
	var inputs []CreateInput
	if err := json.Unmarshal(c.Body(), &inputs); err != nil {
		return HandleErrorResponse(c, common.NewError(common.ErrCodeValidationFormat, "Body không phải mảng JSON hợp lệ", common.StatusBadRequest, nil))
	}
	if len(inputs) == 0 {
		return HandleErrorResponse(c, common.NewValidationError("Danh sách dữ liệu rỗng", nil))
	}

	models := make([]T, 0, len(inputs))
	for _, input := range inputs {
		model, err := TransformInputToModel[CreateInput, T](input)
		if err != nil {
			return HandleErrorResponse(c, err)
		}
		models = append(models, model)
	}

	result, err := h.Service.InsertMany(c.Context(), models)
	return HandleResponse(c, result, err)
}

// ==================== Read ====================

// Find GET /find?filter=...&sort=...&limit=...&skip=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	opts, err := ProcessMongoOptions(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	result, err := h.Service.Find(c.Context(), filter, opts)
	return HandleResponse(c, result, err)
}

// FindOne GET /find-one?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	result, err := h.Service.FindOne(c.Context(), filter, nil)
	return HandleResponse(c, result, err)
}

// FindOneById GET /find-by-id/:id
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	id, err := GetIDFromParams(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	result, err := h.Service.FindOneById(c.Context(), id)
	return HandleResponse(c, result, err)
}

// FindManyByIds POST /find-by-ids, body: {"ids": ["...", ...]}
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindManyByIds(c fiber.Ctx) error {
	var input struct {
		IDs []string `json:"ids" validate:"required,min=1"`
	}
	if err := ParseRequestBody(c, &input); err != nil {
		return HandleErrorResponse(c, err)
	}

	ids := make([]interface{}, 0, len(input.IDs))
	for _, raw := range input.IDs {
		id, err := parseObjectID(raw)
		if err != nil {
			return HandleErrorResponse(c, err)
		}
		ids = append(ids, id)
	}

	result, err := h.Service.FindManyByIds(c.Context(), ids)
	return HandleResponse(c, result, err)
}

// FindWithPagination GET /find-with-pagination?page=...&limit=...&filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	opts, err := ProcessMongoOptions(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	page := fiber.Query[int64](c, "page", 1)
	limit := fiber.Query[int64](c, "limit", 10)

	result, err := h.Service.FindWithPagination(c.Context(), filter, page, limit, opts)
	return HandleResponse(c, result, err)
}

// ==================== Update ====================

// parseUpdateBody parse DTO cập nhật và trả về update document $set
func (h *BaseHandler[T, CreateInput, UpdateInput]) parseUpdateBody(c fiber.Ctx) (bson.M, error) {
	var input UpdateInput
	if err := ParseRequestBody(c, &input); err != nil {
		return nil, err
	}

	// Chỉ set các field client thực sự gửi lên (partial update)
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Body không phải JSON hợp lệ", common.StatusBadRequest, nil)
	}

	set := bson.M{}
	var full map[string]interface{}
	data, err := json.Marshal(input)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if err := json.Unmarshal(data, &full); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	for key := range raw {
		if value, ok := full[key]; ok {
			set[key] = value
		}
	}
	if len(set) == 0 {
		return nil, common.NewValidationError("Không có field nào để cập nhật", nil)
	}

	return set, nil
}

// UpdateOne PUT /update-one?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateOne(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	set, err := h.parseUpdateBody(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	result, err := h.Service.UpdateOne(c.Context(), filter, set)
	return HandleResponse(c, result, err)
}

// UpdateMany PUT /update-many?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateMany(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	set, err := h.parseUpdateBody(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	count, err := h.Service.UpdateMany(c.Context(), filter, set)
	return HandleResponse(c, fiber.Map{"modifiedCount": count}, err)
}

// UpdateById PUT /update-by-id/:id
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	id, err := GetIDFromParams(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	set, err := h.parseUpdateBody(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	result, err := h.Service.UpdateById(c.Context(), id, set)
	return HandleResponse(c, result, err)
}

// FindOneAndUpdate PUT /find-one-and-update?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndUpdate(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	set, err := h.parseUpdateBody(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	result, err := h.Service.FindOneAndUpdate(c.Context(), filter, set, nil)
	return HandleResponse(c, result, err)
}

// ==================== Delete ====================

// DeleteOne DELETE /delete-one?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteOne(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	if len(filter) == 0 {
		return HandleErrorResponse(c, common.NewValidationError("Không cho phép xóa với filter rỗng", nil))
	}

	err = h.Service.DeleteOne(c.Context(), filter)
	return HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
}

// DeleteMany DELETE /delete-many?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteMany(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	if len(filter) == 0 {
		return HandleErrorResponse(c, common.NewValidationError("Không cho phép xóa với filter rỗng", nil))
	}

	count, err := h.Service.DeleteMany(c.Context(), filter)
	return HandleResponse(c, fiber.Map{"deletedCount": count}, err)
}

// DeleteById DELETE /delete-by-id/:id
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	id, err := GetIDFromParams(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	err = h.Service.DeleteById(c.Context(), id)
	return HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
}

// FindOneAndDelete DELETE /find-one-and-delete?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndDelete(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	if len(filter) == 0 {
		return HandleErrorResponse(c, common.NewValidationError("Không cho phép xóa với filter rỗng", nil))
	}

	result, err := h.Service.FindOneAndDelete(c.Context(), filter)
	return HandleResponse(c, result, err)
}

// ==================== Other ====================

// CountDocuments GET /count?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	count, err := h.Service.CountDocuments(c.Context(), filter)
	return HandleResponse(c, fiber.Map{"count": count}, err)
}

// Distinct GET /distinct?field=...&filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) Distinct(c fiber.Ctx) error {
	field := c.Query("field")
	if field == "" {
		return HandleErrorResponse(c, common.NewValidationError("Thiếu query param field", nil))
	}
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	values, err := h.Service.Distinct(c.Context(), field, filter)
	return HandleResponse(c, values, err)
}

// Upsert POST /upsert-one?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) Upsert(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	var input CreateInput
	if err := ParseRequestBody(c, &input); err != nil {
		return HandleErrorResponse(c, err)
	}
	model, err := TransformInputToModel[CreateInput, T](input)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	result, err := h.Service.Upsert(c.Context(), filter, model)
	return HandleResponse(c, result, err)
}

// UpsertMany POST /upsert-many?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpsertMany(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	var inputs []CreateInput
	if err := json.Unmarshal(c.Body(), &inputs); err != nil {
		return HandleErrorResponse(c, common.NewError(common.ErrCodeValidationFormat, "Body không phải mảng JSON hợp lệ", common.StatusBadRequest, nil))
	}

	models := make([]T, 0, len(inputs))
	for _, input := range inputs {
		model, err := TransformInputToModel[CreateInput, T](input)
		if err != nil {
			return HandleErrorResponse(c, err)
		}
		models = append(models, model)
	}

	result, err := h.Service.UpsertMany(c.Context(), filter, models)
	return HandleResponse(c, result, err)
}

// DocumentExists GET /exists?filter=...
func (h *BaseHandler[T, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	filter, err := ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	exists, err := h.Service.DocumentExists(c.Context(), filter)
	return HandleResponse(c, fiber.Map{"exists": exists}, err)
}
