package requestsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	subworkflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
)

func sampleView() *subworkflowmodels.SubWorkflow {
	return &subworkflowmodels.SubWorkflow{
		ID:           primitive.NewObjectID(),
		VisibleSteps: []string{"s1", "s2"},
	}
}

func TestResolveWorkflowInstance_TaoSnapshotTuView(t *testing.T) {
	view := sampleView()

	instance, err := resolveWorkflowInstance(view, nil)
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if instance == nil {
		t.Fatal("view hợp lệ phải tạo được instance")
	}
	if instance.SubWorkflowID != view.ID {
		t.Errorf("SubWorkflowID = %s, muốn %s", instance.SubWorkflowID.Hex(), view.ID.Hex())
	}
	if instance.CurrentStepID != "s1" {
		t.Errorf("CurrentStepID = %s, muốn step đầu tiên s1", instance.CurrentStepID)
	}

	// visibleSteps là snapshot, sửa view sau đó không được ảnh hưởng instance
	view.VisibleSteps[0] = "khac"
	if instance.VisibleSteps[0] != "s1" {
		t.Errorf("snapshot visibleSteps bị thay đổi theo view: %v", instance.VisibleSteps)
	}
}

func TestResolveWorkflowInstance_KhongCoViewThiKhongCoWorkflow(t *testing.T) {
	instance, err := resolveWorkflowInstance(nil, common.ErrNotFound)
	if err != nil {
		t.Fatalf("not-found phải được nuốt, nhận lỗi: %v", err)
	}
	if instance != nil {
		t.Error("trạng thái không gắn view thì request không có workflow")
	}
}

func TestResolveWorkflowInstance_LoiKetNoiPhaiChanViecTao(t *testing.T) {
	// Lỗi kết nối không được hiểu nhầm thành "trạng thái không có view",
	// nếu không request sẽ được ghi thiếu workflow mà caller không hay biết
	if _, err := resolveWorkflowInstance(nil, common.ErrDatabaseConnection); err == nil {
		t.Fatal("lỗi kết nối phải trả về cho caller, không được bỏ qua")
	}

	queryErr := common.NewError(common.ErrCodeDatabaseQuery, "lỗi truy vấn", common.StatusInternalServerError, nil)
	if _, err := resolveWorkflowInstance(nil, queryErr); err == nil {
		t.Fatal("lỗi truy vấn phải trả về cho caller, không được bỏ qua")
	}
}
