package catalogmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Customer khách hàng gửi yêu cầu sản phẩm
type Customer struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"text"` // Tên khách hàng
	Phone     string             `json:"phone" bson:"phone,omitempty" index:"single"`
	Email     string             `json:"email" bson:"email,omitempty"`
	Address   string             `json:"address" bson:"address,omitempty"`
	Note      string             `json:"note" bson:"note,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
