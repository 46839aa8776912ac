package requestmodels

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
)

// DeriveStatus suy ra trạng thái của instance. Không lưu trạng thái suy ra
// vào database; mọi nơi cần trạng thái đều gọi hàm này.
//
// Thứ tự quyết định:
//  1. ManualStatus (rejected/on_hold/completed) thắng mọi suy ra
//  2. completed khi số step hoàn thành >= số step trong snapshot
//  3. pending khi chưa hoàn thành step nào
//  4. còn lại là in_progress
func DeriveStatus(w *WorkflowInstance) string {
	if w == nil {
		return InstanceStatusPending
	}

	switch w.ManualStatus {
	case InstanceStatusRejected, InstanceStatusOnHold, InstanceStatusCompleted:
		return w.ManualStatus
	}

	done := len(w.CompletedSteps)
	switch {
	case len(w.VisibleSteps) > 0 && done >= len(w.VisibleSteps):
		return InstanceStatusCompleted
	case done == 0:
		return InstanceStatusPending
	default:
		return InstanceStatusInProgress
	}
}

// ResolveAssignee tìm người phụ trách step hiện tại theo chuỗi ưu tiên cố định:
//  1. field assignee gán trực tiếp trên request
//  2. fieldValues key "step_<stepId>_assignee"
//  3. key đầu tiên trong fieldValues chứa "assignee" (duyệt theo key đã sort
//     để kết quả ổn định giữa các lần gọi)
//  4. field cũ currentStepAssignee
//  5. bản ghi hoàn thành của step hiện tại
//  6. "unassigned"
//
// Chuỗi ưu tiên này phải giữ nguyên để tương thích với dữ liệu và UI hiện có.
func ResolveAssignee(r *Request) string {
	if r.Assignee != "" {
		return r.Assignee
	}

	if w := r.Workflow; w != nil {
		if v := stringValue(w.FieldValues[fmt.Sprintf("step_%s_assignee", w.CurrentStepID)]); v != "" {
			return v
		}

		keys := make([]string, 0, len(w.FieldValues))
		for k := range w.FieldValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if strings.Contains(strings.ToLower(k), "assignee") {
				if v := stringValue(w.FieldValues[k]); v != "" {
					return v
				}
			}
		}
	}

	if r.CurrentStepAssignee != "" {
		return r.CurrentStepAssignee
	}

	if w := r.Workflow; w != nil {
		for _, done := range w.CompletedSteps {
			if done.StepID == w.CurrentStepID && done.CompletedBy != "" {
				return done.CompletedBy
			}
		}
	}

	return UnassignedLabel
}

// stringValue ép một giá trị field về chuỗi, giá trị rỗng/nil trả về ""
func stringValue(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// RandomAssignee chọn ngẫu nhiên đều một người trong giao của allowedUsers
// và danh bạ user đang hoạt động. Tập giao rỗng là lỗi: nút chọn ngẫu nhiên
// không bao giờ được hiển thị khi không có ai để chọn.
func RandomAssignee(allowedUsers, directory []string) (string, error) {
	inDirectory := make(map[string]bool, len(directory))
	for _, u := range directory {
		inDirectory[u] = true
	}

	var candidates []string
	for _, u := range allowedUsers {
		if inDirectory[u] {
			candidates = append(candidates, u)
		}
	}

	if len(candidates) == 0 {
		return "", common.NewValidationError("Không có người dùng hợp lệ nào để chọn", nil)
	}
	return candidates[rand.Intn(len(candidates))], nil
}

// StepIndex trả về vị trí của step trong snapshot, -1 nếu không thuộc snapshot
func (w *WorkflowInstance) StepIndex(stepID string) int {
	for i, id := range w.VisibleSteps {
		if id == stepID {
			return i
		}
	}
	return -1
}

// IsStepCompleted kiểm tra một step đã hoàn thành chưa
func (w *WorkflowInstance) IsStepCompleted(stepID string) bool {
	for _, done := range w.CompletedSteps {
		if done.StepID == stepID {
			return true
		}
	}
	return false
}
