// Package basemodels chứa các kiểu kết quả dùng chung của tầng service.
package basemodels

// PaginateResult kết quả phân trang cho một truy vấn Find
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`           // Trang hiện tại (bắt đầu từ 1)
	Limit     int64 `json:"limit" bson:"limit"`         // Số item mỗi trang
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // Số item trong trang hiện tại
	Items     []T   `json:"items" bson:"items"`         // Danh sách item
	Total     int64 `json:"total" bson:"total"`         // Tổng số item khớp filter
	TotalPage int64 `json:"totalPage" bson:"totalPage"` // Tổng số trang
}

// CountResult kết quả đếm document
type CountResult struct {
	Count int64 `json:"count" bson:"count"`
}

// ExistsResult kết quả kiểm tra tồn tại
type ExistsResult struct {
	Exists bool `json:"exists" bson:"exists"`
}
