package global

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldTypes các loại field schema hợp lệ (khớp với workflow models)
var fieldTypes = map[string]bool{
	"text": true, "date": true, "select": true, "user": true,
	"checkbox": true, "number": true, "currency": true, "multiselect": true,
}

// durationUnits các đơn vị thời lượng hợp lệ
var durationUnits = map[string]bool{
	"hours": true, "days": true, "weeks": true, "months": true,
}

// InitValidator khởi tạo validator dùng chung và đăng ký các rule nghiệp vụ
func InitValidator() error {
	Validate = validator.New()

	// field_type: loại field của field schema
	if err := Validate.RegisterValidation("field_type", func(fl validator.FieldLevel) bool {
		return fieldTypes[fl.Field().String()]
	}); err != nil {
		return fmt.Errorf("không đăng ký được validator field_type: %w", err)
	}

	// duration_unit: đơn vị ước lượng thời gian của step
	if err := Validate.RegisterValidation("duration_unit", func(fl validator.FieldLevel) bool {
		return durationUnits[fl.Field().String()]
	}); err != nil {
		return fmt.Errorf("không đăng ký được validator duration_unit: %w", err)
	}

	return nil
}
