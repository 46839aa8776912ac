package basehdl

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/service"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
)

// BaseHandler handler CRUD generic cho model T với DTO tạo/cập nhật riêng.
// Handler domain nhúng struct này và override các method cần nghiệp vụ riêng.
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	Service basesvc.BaseServiceMongo[T]
}

// NewBaseHandler tạo BaseHandler với service cho trước
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{Service: service}
}

// ParseRequestBody parse body JSON vào DTO và validate bằng validator chung.
// Lỗi validate được gom thành danh sách field trong Details (fail-fast trước khi ghi).
func ParseRequestBody[I any](c fiber.Ctx, input *I) error {
	if err := json.Unmarshal(c.Body(), input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "Body không phải JSON hợp lệ", common.StatusBadRequest, nil)
	}

	if err := global.Validate.Struct(input); err != nil {
		// Gom lỗi validate thành danh sách đánh số để client hiển thị trước khi ghi
		fieldErrors := map[string]interface{}{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for i, ve := range verrs {
				fieldErrors[fmt.Sprintf("%d", i+1)] = fmt.Sprintf("%s: không thỏa điều kiện %s", ve.Field(), ve.Tag())
			}
		} else {
			fieldErrors["1"] = err.Error()
		}
		return common.NewValidationError("Dữ liệu đầu vào không hợp lệ", fieldErrors)
	}
	return nil
}

// GetIDFromParams lấy ObjectID từ path param :id
func GetIDFromParams(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, nil)
	}
	return id, nil
}

// GetIDFromQuery lấy ObjectID từ một query param
func GetIDFromQuery(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Query(name))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat,
			fmt.Sprintf("Query param %s không đúng định dạng", name), common.StatusBadRequest, nil)
	}
	return id, nil
}

// MissingQueryError lỗi chuẩn khi thiếu query param bắt buộc
func MissingQueryError(name string) error {
	return common.NewValidationError("Thiếu query param "+name, nil)
}

// parseObjectID chuyển chuỗi hex thành ObjectID với lỗi chuẩn khi không hợp lệ
func parseObjectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng: "+raw, common.StatusBadRequest, nil)
	}
	return id, nil
}

// deniedFilterFields các field không bao giờ cho phép filter từ ngoài vào
var deniedFilterFields = []string{"password", "token", "secret", "key", "hash"}

// allowedFilterOperators các toán tử mongo cho phép trong filter từ client
var allowedFilterOperators = map[string]bool{
	"$eq": true, "$gt": true, "$gte": true, "$lt": true,
	"$lte": true, "$in": true, "$nin": true, "$exists": true,
}

// maxFilterFields giới hạn số field trong một filter từ client
const maxFilterFields = 10

// ProcessFilter đọc query param `filter` (JSON), validate và chuẩn hóa:
//   - chặn các field nhạy cảm và toán tử không cho phép
//   - các field kết thúc bằng "Id" hoặc tên "_id" được ép từ chuỗi hex sang ObjectID
func ProcessFilter(c fiber.Ctx) (bson.M, error) {
	raw := c.Query("filter")
	if raw == "" {
		return bson.M{}, nil
	}

	var filter bson.M
	if err := json.Unmarshal([]byte(raw), &filter); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Filter không phải JSON hợp lệ", common.StatusBadRequest, nil)
	}

	if len(filter) > maxFilterFields {
		return nil, common.NewValidationError("Filter có quá nhiều field", nil)
	}

	for field, value := range filter {
		lower := strings.ToLower(field)
		for _, denied := range deniedFilterFields {
			if strings.Contains(lower, denied) {
				return nil, common.NewValidationError("Filter chứa field không được phép: "+field, nil)
			}
		}

		// Kiểm tra toán tử trong giá trị dạng object
		if m, ok := value.(map[string]interface{}); ok {
			for op := range m {
				if strings.HasPrefix(op, "$") && !allowedFilterOperators[op] {
					return nil, common.NewValidationError("Filter chứa toán tử không được phép: "+op, nil)
				}
			}
		}

		// Ép chuỗi hex sang ObjectID cho các field tham chiếu
		if field == "_id" || strings.HasSuffix(field, "Id") {
			if str, ok := value.(string); ok {
				if oid, err := primitive.ObjectIDFromHex(str); err == nil {
					filter[field] = oid
				}
			}
		}
	}

	return filter, nil
}

// ProcessMongoOptions đọc các query param phân trang/sắp xếp/projection thành FindOptions
func ProcessMongoOptions(c fiber.Ctx) (*options.FindOptions, error) {
	opts := options.Find()

	if raw := c.Query("sort"); raw != "" {
		// Dùng json.Decoder đọc token để giữ nguyên thứ tự các field sort
		sort, err := parseOrderedSort(raw)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Sort không phải JSON hợp lệ", common.StatusBadRequest, nil)
		}
		opts.SetSort(sort)
	}

	if raw := c.Query("projection"); raw != "" {
		var projection bson.M
		if err := json.Unmarshal([]byte(raw), &projection); err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Projection không phải JSON hợp lệ", common.StatusBadRequest, nil)
		}
		opts.SetProjection(projection)
	}

	if limit := fiber.Query[int64](c, "limit"); limit > 0 {
		opts.SetLimit(limit)
	}
	if skip := fiber.Query[int64](c, "skip"); skip > 0 {
		opts.SetSkip(skip)
	}

	return opts, nil
}

// parseOrderedSort parse JSON sort giữ đúng thứ tự khai báo của client
func parseOrderedSort(raw string) (bson.D, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("sort phải là object")
	}

	var sort bson.D
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("key sort không hợp lệ")
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("giá trị sort phải là 1 hoặc -1")
		}
		order, err := num.Int64()
		if err != nil || (order != 1 && order != -1) {
			return nil, fmt.Errorf("giá trị sort phải là 1 hoặc -1")
		}
		sort = append(sort, bson.E{Key: key, Value: order})
	}

	return sort, nil
}

// TransformInputToModel chuyển DTO sang model bằng cách copy field trùng tên.
// Chuỗi hex được ép sang ObjectID khi field đích là primitive.ObjectID.
func TransformInputToModel[I any, T any](input I) (T, error) {
	var model T

	src := reflect.ValueOf(input)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	dst := reflect.ValueOf(&model).Elem()

	if src.Kind() != reflect.Struct || dst.Kind() != reflect.Struct {
		return model, common.NewError(common.ErrCodeSystem, "Không chuyển đổi được dữ liệu đầu vào", common.StatusInternalServerError, nil)
	}

	objectIDType := reflect.TypeOf(primitive.ObjectID{})

	for i := 0; i < src.NumField(); i++ {
		name := src.Type().Field(i).Name
		srcField := src.Field(i)
		dstField := dst.FieldByName(name)
		if !dstField.IsValid() || !dstField.CanSet() {
			continue
		}

		switch {
		case srcField.Type() == dstField.Type():
			dstField.Set(srcField)
		case srcField.Kind() == reflect.String && dstField.Type() == objectIDType:
			oid, err := primitive.ObjectIDFromHex(srcField.String())
			if err != nil {
				return model, common.NewError(common.ErrCodeValidationFormat,
					fmt.Sprintf("Field %s không phải ObjectID hợp lệ", name), common.StatusBadRequest, nil)
			}
			dstField.Set(reflect.ValueOf(oid))
		case srcField.Type().ConvertibleTo(dstField.Type()):
			dstField.Set(srcField.Convert(dstField.Type()))
		}
	}

	return model, nil
}
