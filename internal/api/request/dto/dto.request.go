// Package requestdto chứa DTO của domain request.
package requestdto

// MaterialLineInput một dòng nguyên vật liệu trong payload tạo request
type MaterialLineInput struct {
	MaterialName string  `json:"materialName" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	Unit         string  `json:"unit"`
	Note         string  `json:"note"`
}

// RequestCreateInput đầu vào tạo request
type RequestCreateInput struct {
	Title           string              `json:"title" validate:"required"`
	Description     string              `json:"description"`
	CustomerID      string              `json:"customerId"`
	DataSourceID    string              `json:"dataSourceId"`
	ProductStatusID string              `json:"productStatusId"` // Trigger condition chọn sub-workflow
	Assignee        string              `json:"assignee"`
	ReceiveDate     string              `json:"receiveDate" validate:"omitempty"` // RFC3339, mặc định now
	Materials       []MaterialLineInput `json:"materials" validate:"dive"`
}

// RequestUpdateInput đầu vào cập nhật request (partial, không đụng vào workflow)
type RequestUpdateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
}

// CompleteStepInput đầu vào hoàn thành step hiện tại
type CompleteStepInput struct {
	StepID string `json:"stepId" validate:"required"`
}

// RevertStepInput đầu vào quay lại một step
type RevertStepInput struct {
	StepID string `json:"stepId" validate:"required"`
}

// SetManualStatusInput đầu vào ép trạng thái tay
type SetManualStatusInput struct {
	Status string `json:"status" validate:"required,oneof=rejected on_hold completed reopen"`
}

// SetFieldValueInput đầu vào ghi giá trị field của một step
type SetFieldValueInput struct {
	StepID  string      `json:"stepId" validate:"required"`
	FieldID string      `json:"fieldId" validate:"required"`
	Value   interface{} `json:"value"`
}

// RandomAssigneeInput đầu vào chọn ngẫu nhiên người phụ trách
type RandomAssigneeInput struct {
	StepID       string   `json:"stepId" validate:"required"`
	AllowedUsers []string `json:"allowedUsers" validate:"required,min=1"`
}

// CustomerRequestCreateInput đầu vào tạo yêu cầu thô từ khách hàng
type CustomerRequestCreateInput struct {
	CustomerID   string `json:"customerId"`
	DataSourceID string `json:"dataSourceId"`
	Content      string `json:"content" validate:"required"`
}

// CustomerRequestUpdateInput đầu vào cập nhật yêu cầu thô
type CustomerRequestUpdateInput struct {
	Content string `json:"content"`
	Status  string `json:"status" validate:"omitempty,oneof=new processed"`
}

// MaterialImportCreateInput đầu vào tạo yêu cầu nhập nguyên vật liệu độc lập
type MaterialImportCreateInput struct {
	RequestID    string  `json:"requestId" validate:"required"`
	MaterialName string  `json:"materialName" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	Unit         string  `json:"unit"`
	Note         string  `json:"note"`
}

// MaterialImportUpdateInput đầu vào cập nhật yêu cầu nhập nguyên vật liệu
type MaterialImportUpdateInput struct {
	MaterialName string   `json:"materialName"`
	Quantity     *float64 `json:"quantity" validate:"omitempty,gt=0"`
	Unit         string   `json:"unit"`
	Note         string   `json:"note"`
	Status       string   `json:"status" validate:"omitempty,oneof=pending ordered received"`
}
