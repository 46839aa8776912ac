package requestmodels

import (
	"testing"
)

// threeSteps instance 3 step với số step đã hoàn thành cho trước
func threeSteps(done int) *WorkflowInstance {
	w := &WorkflowInstance{VisibleSteps: []string{"s1", "s2", "s3"}}
	for i := 0; i < done; i++ {
		w.CompletedSteps = append(w.CompletedSteps, CompletedStep{StepID: w.VisibleSteps[i]})
	}
	return w
}

func TestDeriveStatus_TheoTienDo(t *testing.T) {
	cases := []struct {
		name string
		done int
		want string
	}{
		{"chưa hoàn thành step nào", 0, InstanceStatusPending},
		{"hoàn thành 1/3", 1, InstanceStatusInProgress},
		{"hoàn thành 2/3", 2, InstanceStatusInProgress},
		{"hoàn thành 3/3", 3, InstanceStatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(threeSteps(tc.done)); got != tc.want {
				t.Errorf("DeriveStatus = %s, muốn %s", got, tc.want)
			}
		})
	}
}

func TestDeriveStatus_ManualStatusThangMoiSuyRa(t *testing.T) {
	// Dù đã hoàn thành hết, rejected ép tay vẫn thắng
	w := threeSteps(3)
	w.ManualStatus = InstanceStatusRejected

	if got := DeriveStatus(w); got != InstanceStatusRejected {
		t.Errorf("DeriveStatus = %s, muốn %s", got, InstanceStatusRejected)
	}
}

func TestDeriveStatus_NilLaPending(t *testing.T) {
	if got := DeriveStatus(nil); got != InstanceStatusPending {
		t.Errorf("DeriveStatus(nil) = %s, muốn %s", got, InstanceStatusPending)
	}
}

func TestResolveAssignee_ChuoiUuTien(t *testing.T) {
	base := func() *Request {
		return &Request{
			Workflow: &WorkflowInstance{
				CurrentStepID: "s2",
				VisibleSteps:  []string{"s1", "s2"},
			},
		}
	}

	t.Run("assignee trực tiếp thắng tất cả", func(t *testing.T) {
		r := base()
		r.Assignee = "an"
		r.CurrentStepAssignee = "binh"
		r.Workflow.FieldValues = map[string]interface{}{"step_s2_assignee": "chi"}
		if got := ResolveAssignee(r); got != "an" {
			t.Errorf("ResolveAssignee = %s, muốn an", got)
		}
	})

	t.Run("field assignee của step hiện tại", func(t *testing.T) {
		r := base()
		r.Workflow.FieldValues = map[string]interface{}{
			"step_s2_assignee": "chi",
			"step_s1_assignee": "dung",
		}
		if got := ResolveAssignee(r); got != "chi" {
			t.Errorf("ResolveAssignee = %s, muốn chi", got)
		}
	})

	t.Run("key assignee bất kỳ theo thứ tự sort", func(t *testing.T) {
		r := base()
		r.Workflow.FieldValues = map[string]interface{}{
			"s1_reviewAssignee": "dung",
			"zz_assignee":       "em",
		}
		if got := ResolveAssignee(r); got != "dung" {
			t.Errorf("ResolveAssignee = %s, muốn dung (key nhỏ nhất theo sort)", got)
		}
	})

	t.Run("field cũ currentStepAssignee", func(t *testing.T) {
		r := base()
		r.CurrentStepAssignee = "binh"
		if got := ResolveAssignee(r); got != "binh" {
			t.Errorf("ResolveAssignee = %s, muốn binh", got)
		}
	})

	t.Run("người hoàn thành step hiện tại", func(t *testing.T) {
		r := base()
		r.Workflow.CompletedSteps = []CompletedStep{{StepID: "s2", CompletedBy: "giang"}}
		if got := ResolveAssignee(r); got != "giang" {
			t.Errorf("ResolveAssignee = %s, muốn giang", got)
		}
	})

	t.Run("không có gì thì unassigned", func(t *testing.T) {
		r := base()
		if got := ResolveAssignee(r); got != UnassignedLabel {
			t.Errorf("ResolveAssignee = %s, muốn %s", got, UnassignedLabel)
		}
	})
}

func TestRandomAssignee_GiaoRongLaLoi(t *testing.T) {
	_, err := RandomAssignee([]string{"an", "binh"}, []string{"chi"})
	if err == nil {
		t.Fatal("giao rỗng phải trả về lỗi")
	}
}

func TestRandomAssignee_ChiChonTrongGiao(t *testing.T) {
	allowed := []string{"an", "binh", "chi"}
	directory := []string{"binh", "chi", "dung"}

	for i := 0; i < 50; i++ {
		picked, err := RandomAssignee(allowed, directory)
		if err != nil {
			t.Fatalf("lỗi không mong đợi: %v", err)
		}
		if picked != "binh" && picked != "chi" {
			t.Fatalf("chọn %s nằm ngoài giao của hai danh sách", picked)
		}
	}
}

func TestStepIndexVaIsStepCompleted(t *testing.T) {
	w := threeSteps(1)

	if idx := w.StepIndex("s2"); idx != 1 {
		t.Errorf("StepIndex(s2) = %d, muốn 1", idx)
	}
	if idx := w.StepIndex("khong-co"); idx != -1 {
		t.Errorf("StepIndex step lạ = %d, muốn -1", idx)
	}
	if !w.IsStepCompleted("s1") {
		t.Error("s1 phải là đã hoàn thành")
	}
	if w.IsStepCompleted("s2") {
		t.Error("s2 chưa hoàn thành")
	}
}
