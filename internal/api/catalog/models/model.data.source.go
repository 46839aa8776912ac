package catalogmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// DataSource nguồn tiếp nhận yêu cầu (fanpage, hotline, sàn TMĐT, ...)
type DataSource struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"`
	Description string             `json:"description" bson:"description,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
