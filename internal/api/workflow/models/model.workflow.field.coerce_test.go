package workflowmodels

import (
	"testing"
)

func TestCoerceFieldValue_SoChuoiRongThanhNil(t *testing.T) {
	field := FieldSchema{ID: "price", Name: "Giá", Type: FieldTypeCurrency}

	value, warnings, err := CoerceFieldValue(field, "")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if value != nil {
		// Chuỗi rỗng không bao giờ được ép thành 0
		t.Errorf("chuỗi rỗng phải thành nil, nhận %v", value)
	}
	if len(warnings) != 0 {
		t.Errorf("không mong đợi cảnh báo, nhận %v", warnings)
	}
}

func TestCoerceFieldValue_SoTuChuoi(t *testing.T) {
	field := FieldSchema{ID: "qty", Name: "Số lượng", Type: FieldTypeNumber}

	value, _, err := CoerceFieldValue(field, "42.5")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if f, ok := value.(float64); !ok || f != 42.5 {
		t.Errorf("value = %v (%T), muốn 42.5 float64", value, value)
	}
}

func TestCoerceFieldValue_SoKhongHopLe(t *testing.T) {
	field := FieldSchema{ID: "qty", Name: "Số lượng", Type: FieldTypeNumber}

	if _, _, err := CoerceFieldValue(field, "abc"); err == nil {
		t.Error("chuỗi không phải số phải trả về lỗi")
	}
}

func TestCoerceFieldValue_SelectNgoaiOptionsChiCanhBao(t *testing.T) {
	field := FieldSchema{
		ID: "color", Name: "Màu", Type: FieldTypeSelect,
		Options: []string{"đỏ", "xanh"},
	}

	value, warnings, err := CoerceFieldValue(field, "vàng")
	if err != nil {
		t.Fatalf("giá trị ngoài options không được trả lỗi: %v", err)
	}
	if value != "vàng" {
		t.Errorf("giá trị phải được giữ nguyên, nhận %v", value)
	}
	if len(warnings) != 1 {
		t.Errorf("muốn 1 cảnh báo, nhận %v", warnings)
	}
}

func TestCoerceFieldValue_SelectTrongOptions(t *testing.T) {
	field := FieldSchema{
		ID: "color", Name: "Màu", Type: FieldTypeSelect,
		Options: []string{"đỏ", "xanh"},
	}

	value, warnings, err := CoerceFieldValue(field, "đỏ")
	if err != nil || value != "đỏ" || len(warnings) != 0 {
		t.Errorf("value=%v warnings=%v err=%v, muốn đỏ không cảnh báo", value, warnings, err)
	}
}

func TestCoerceFieldValue_MultiselectCanhBaoTungGiaTri(t *testing.T) {
	field := FieldSchema{
		ID: "tags", Name: "Nhãn", Type: FieldTypeMultiselect,
		Options: []string{"a", "b"},
	}

	value, warnings, err := CoerceFieldValue(field, []interface{}{"a", "x", "y"})
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	values, ok := value.([]string)
	if !ok || len(values) != 3 {
		t.Fatalf("value = %v, muốn 3 phần tử", value)
	}
	if len(warnings) != 2 {
		t.Errorf("muốn 2 cảnh báo cho x và y, nhận %v", warnings)
	}
}

func TestCoerceFieldValue_DateLuuUTC(t *testing.T) {
	field := FieldSchema{ID: "due", Name: "Hạn", Type: FieldTypeDate}

	value, _, err := CoerceFieldValue(field, "2024-01-15T10:30:00+07:00")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if value != "2024-01-15T03:30:00Z" {
		t.Errorf("date phải lưu UTC, nhận %v", value)
	}
}

func TestCoerceFieldValue_DateSaiDinhDang(t *testing.T) {
	field := FieldSchema{ID: "due", Name: "Hạn", Type: FieldTypeDate}

	if _, _, err := CoerceFieldValue(field, "15/01/2024"); err == nil {
		t.Error("date sai định dạng phải trả về lỗi")
	}
}

func TestCoerceFieldValue_Checkbox(t *testing.T) {
	field := FieldSchema{ID: "done", Name: "Xong", Type: FieldTypeCheckbox}

	value, _, err := CoerceFieldValue(field, "true")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if b, ok := value.(bool); !ok || !b {
		t.Errorf("value = %v, muốn true", value)
	}

	if _, _, err := CoerceFieldValue(field, 123); err == nil {
		t.Error("số không phải bool phải trả về lỗi")
	}
}

func TestCoerceFieldValue_NilGiuNguyen(t *testing.T) {
	field := FieldSchema{ID: "note", Name: "Ghi chú", Type: FieldTypeText}

	value, warnings, err := CoerceFieldValue(field, nil)
	if err != nil || value != nil || warnings != nil {
		t.Errorf("nil phải đi qua nguyên vẹn, nhận value=%v warnings=%v err=%v", value, warnings, err)
	}
}
