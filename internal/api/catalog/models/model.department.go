// Package catalogmodels chứa các model danh mục dùng chung của hệ thống.
package catalogmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Department phòng ban
type Department struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"` // Tên phòng ban
	Description string             `json:"description" bson:"description,omitempty"`
	ManagerID   primitive.ObjectID `json:"managerId" bson:"managerId,omitempty"` // Trưởng phòng
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
