package workflowmodels

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/utility"
)

// orgTimezone múi giờ hiển thị của tổ chức (UTC+7). Giá trị date luôn lưu UTC.
var orgTimezone = time.FixedZone("UTC+7", 7*60*60)

// CoerceFieldValue ép giá trị thô về đúng kiểu của field.
// Trả về giá trị đã ép, danh sách cảnh báo (giá trị ngoài options không bị
// loại bỏ, chỉ cảnh báo) và lỗi khi giá trị không ép được.
// Switch phủ đủ mọi FieldType; thêm loại field mới phải bổ sung nhánh ở đây.
func CoerceFieldValue(field FieldSchema, raw interface{}) (interface{}, []string, error) {
	if raw == nil {
		return nil, nil, nil
	}

	switch field.Type {
	case FieldTypeText, FieldTypeUser:
		return fmt.Sprintf("%v", raw), nil, nil

	case FieldTypeNumber, FieldTypeCurrency:
		return coerceNumeric(field, raw)

	case FieldTypeCheckbox:
		switch v := raw.(type) {
		case bool:
			return v, nil, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, nil, invalidValueError(field, raw)
			}
			return b, nil, nil
		default:
			return nil, nil, invalidValueError(field, raw)
		}

	case FieldTypeDate:
		str, ok := raw.(string)
		if !ok {
			return nil, nil, invalidValueError(field, raw)
		}
		if str == "" {
			return nil, nil, nil
		}
		t, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return nil, nil, invalidValueError(field, raw)
		}
		// Lưu UTC; hiển thị theo giờ tổ chức là việc của FormatOrgTime
		return t.UTC().Format(time.RFC3339), nil, nil

	case FieldTypeSelect:
		str, ok := raw.(string)
		if !ok {
			return nil, nil, invalidValueError(field, raw)
		}
		var warnings []string
		if str != "" && !utility.Contains(field.Options, str) {
			warnings = append(warnings, fmt.Sprintf("Giá trị '%s' của field %s nằm ngoài options", str, field.Name))
		}
		return str, warnings, nil

	case FieldTypeMultiselect:
		values, err := toStringSlice(raw)
		if err != nil {
			return nil, nil, invalidValueError(field, raw)
		}
		var warnings []string
		for _, v := range values {
			if !utility.Contains(field.Options, v) {
				warnings = append(warnings, fmt.Sprintf("Giá trị '%s' của field %s nằm ngoài options", v, field.Name))
			}
		}
		return values, warnings, nil

	default:
		return nil, nil, common.NewError(common.ErrCodeValidationFormat,
			fmt.Sprintf("Loại field không được hỗ trợ: %s", field.Type), common.StatusBadRequest, nil)
	}
}

// coerceNumeric ép giá trị number/currency về float64.
// Chuỗi rỗng trả về nil, không bao giờ ép thành 0.
func coerceNumeric(field FieldSchema, raw interface{}) (interface{}, []string, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil, nil
	case int:
		return float64(v), nil, nil
	case int64:
		return float64(v), nil, nil
	case string:
		if v == "" {
			return nil, nil, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, nil, invalidValueError(field, raw)
		}
		return f, nil, nil
	default:
		return nil, nil, invalidValueError(field, raw)
	}
}

// toStringSlice chuyển giá trị multiselect về []string
func toStringSlice(raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []interface{}:
		values := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("phần tử không phải chuỗi")
			}
			values = append(values, str)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("không phải mảng chuỗi")
	}
}

// invalidValueError lỗi validate chuẩn cho một giá trị field không hợp lệ
func invalidValueError(field FieldSchema, raw interface{}) error {
	return common.NewValidationError(
		fmt.Sprintf("Giá trị không hợp lệ cho field %s (kiểu %s): %v", field.Name, field.Type, raw), nil)
}

// FormatOrgTime định dạng một thời điểm UTC theo múi giờ tổ chức (UTC+7) để hiển thị
func FormatOrgTime(t time.Time) string {
	return t.In(orgTimezone).Format("02/01/2006 15:04")
}
