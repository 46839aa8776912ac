package catalogmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProductStatus trạng thái sản phẩm của một request.
// Mỗi trạng thái có thể được gán làm trigger condition của một sub-workflow.
type ProductStatus struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"` // Tên trạng thái
	Description string             `json:"description" bson:"description,omitempty"`
	Color       string             `json:"color" bson:"color,omitempty"` // Màu hiển thị trên bảng
	Order       int                `json:"order" bson:"order"`           // Thứ tự hiển thị
	IsSystem    bool               `json:"isSystem" bson:"isSystem"`     // Trạng thái hệ thống không cho xóa
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
