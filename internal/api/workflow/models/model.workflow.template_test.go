package workflowmodels

import (
	"testing"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
)

func TestNormalizeStepOrder_DayLienTuc(t *testing.T) {
	steps := []StepDefinition{
		{ID: "c", Order: 7},
		{ID: "a", Order: 2},
		{ID: "b", Order: 5},
	}
	NormalizeStepOrder(steps)

	wantIDs := []string{"a", "b", "c"}
	for i, step := range steps {
		if step.Order != i {
			t.Errorf("step %s có order %d, muốn %d", step.ID, step.Order, i)
		}
		if step.ID != wantIDs[i] {
			t.Errorf("vị trí %d là step %s, muốn %s (phải giữ thứ tự tương đối)", i, step.ID, wantIDs[i])
		}
	}
}

func TestNormalizeStepOrder_GiuThuTuKhiTrungOrder(t *testing.T) {
	// Hai step trùng order: sort ổn định phải giữ thứ tự xuất hiện
	steps := []StepDefinition{
		{ID: "x", Order: 1},
		{ID: "y", Order: 1},
		{ID: "z", Order: 0},
	}
	NormalizeStepOrder(steps)

	if steps[0].ID != "z" || steps[1].ID != "x" || steps[2].ID != "y" {
		t.Errorf("thứ tự sau chuẩn hóa: %s %s %s, muốn z x y", steps[0].ID, steps[1].ID, steps[2].ID)
	}
	for i := range steps {
		if steps[i].Order != i {
			t.Errorf("order tại vị trí %d là %d, muốn %d", i, steps[i].Order, i)
		}
	}
}

func TestRemoveField_FieldHeThongKhongXoaDuoc(t *testing.T) {
	step := StepDefinition{
		ID: "s1",
		Fields: []FieldSchema{
			{ID: "assignee", Name: "Người phụ trách", Type: FieldTypeUser, IsSystem: true},
			{ID: "note", Name: "Ghi chú", Type: FieldTypeText},
		},
	}

	err := step.RemoveField("assignee")
	if err == nil {
		t.Fatal("xóa field hệ thống phải trả về lỗi")
	}
	cErr, ok := err.(*common.Error)
	if !ok {
		t.Fatalf("lỗi không phải *common.Error: %T", err)
	}
	if cErr.StatusCode != common.StatusForbidden {
		t.Errorf("status code là %d, muốn %d", cErr.StatusCode, common.StatusForbidden)
	}
	if len(step.Fields) != 2 {
		t.Errorf("field hệ thống bị xóa khỏi step, còn %d field", len(step.Fields))
	}
}

func TestRemoveField_FieldThuongXoaDuoc(t *testing.T) {
	step := StepDefinition{
		ID: "s1",
		Fields: []FieldSchema{
			{ID: "assignee", Type: FieldTypeUser, IsSystem: true},
			{ID: "note", Type: FieldTypeText},
		},
	}

	if err := step.RemoveField("note"); err != nil {
		t.Fatalf("xóa field thường bị lỗi: %v", err)
	}
	if len(step.Fields) != 1 || step.Fields[0].ID != "assignee" {
		t.Errorf("sau khi xóa còn lại: %+v", step.Fields)
	}
}

func TestRemoveField_KhongTonTai(t *testing.T) {
	step := StepDefinition{ID: "s1", Fields: []FieldSchema{{ID: "note", Type: FieldTypeText}}}

	err := step.RemoveField("khong-co")
	if err == nil {
		t.Fatal("xóa field không tồn tại phải trả về lỗi")
	}
	cErr, ok := err.(*common.Error)
	if !ok || cErr.StatusCode != common.StatusNotFound {
		t.Errorf("muốn lỗi 404, nhận: %v", err)
	}
}
