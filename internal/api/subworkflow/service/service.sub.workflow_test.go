package subworkflowsvc

import (
	"errors"
	"testing"

	workflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
)

func sampleTemplate() *workflowmodels.WorkflowTemplate {
	return &workflowmodels.WorkflowTemplate{
		Steps: []workflowmodels.StepDefinition{
			{ID: "s1", Order: 0, EstimatedDuration: workflowmodels.EstimatedDuration{Value: 2, Unit: workflowmodels.DurationUnitDays}},
			{ID: "s2", Order: 1, EstimatedDuration: workflowmodels.EstimatedDuration{Value: 1, Unit: workflowmodels.DurationUnitWeeks}},
			{ID: "s3", Order: 2, EstimatedDuration: workflowmodels.EstimatedDuration{Value: 5, Unit: workflowmodels.DurationUnitHours}},
		},
	}
}

func TestSnapshotEstimates_CopyTuTemplateCha(t *testing.T) {
	estimates, err := snapshotEstimates(sampleTemplate(), []string{"s1", "s3"})
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}

	if len(estimates) != 2 {
		t.Fatalf("snapshot có %d step, muốn 2", len(estimates))
	}
	if d := estimates["s1"]; d.Value != 2 || d.Unit != workflowmodels.DurationUnitDays {
		t.Errorf("snapshot s1 = %+v, muốn 2 days", d)
	}
	if d := estimates["s3"]; d.Value != 5 || d.Unit != workflowmodels.DurationUnitHours {
		t.Errorf("snapshot s3 = %+v, muốn 5 hours", d)
	}
	if _, have := estimates["s2"]; have {
		t.Error("s2 không thuộc visibleSteps, không được nằm trong snapshot")
	}
}

func TestSnapshotEstimates_StepLaLaLoi(t *testing.T) {
	if _, err := snapshotEstimates(sampleTemplate(), []string{"s1", "khong-co"}); err == nil {
		t.Fatal("step không thuộc template phải trả về lỗi")
	}
}

func TestBindingConflict_TriggerDaGanViewKhac(t *testing.T) {
	err := bindingConflict(true, false, "65a0c1d2e3f4a5b6c7d8e9f0", "")

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("muốn *common.Error, nhận %T", err)
	}
	if appErr.StatusCode != common.StatusConflict {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusConflict)
	}
	if appErr.Details["triggerConditionId"] != "65a0c1d2e3f4a5b6c7d8e9f0" {
		t.Errorf("Details thiếu triggerConditionId: %v", appErr.Details)
	}
}

func TestBindingConflict_TenDaTonTai(t *testing.T) {
	err := bindingConflict(false, true, "", "Quy trình rút gọn")

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("muốn *common.Error, nhận %T", err)
	}
	if appErr.StatusCode != common.StatusConflict {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusConflict)
	}
	if appErr.Details["name"] != "Quy trình rút gọn" {
		t.Errorf("Details thiếu name: %v", appErr.Details)
	}
}

func TestBindingConflict_KhongCoXungDot(t *testing.T) {
	if err := bindingConflict(false, false, "", ""); err != nil {
		t.Errorf("không có ràng buộc nào bị vi phạm, nhận lỗi: %v", err)
	}
}

func TestSnapshotEstimates_KhongBiAnhHuongKhiTemplateDoi(t *testing.T) {
	template := sampleTemplate()
	estimates, err := snapshotEstimates(template, []string{"s1"})
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}

	// Sửa template sau khi snapshot: bản snapshot phải giữ giá trị cũ
	template.Steps[0].EstimatedDuration = workflowmodels.EstimatedDuration{Value: 99, Unit: workflowmodels.DurationUnitMonths}

	if d := estimates["s1"]; d.Value != 2 || d.Unit != workflowmodels.DurationUnitDays {
		t.Errorf("snapshot s1 = %+v, phải giữ 2 days sau khi template đổi", d)
	}
}
