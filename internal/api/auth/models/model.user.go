// Package authmodels chứa model người dùng và phiên đăng nhập.
package authmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái tài khoản người dùng
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Các role của người dùng trong hệ thống
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User người dùng của hệ thống.
// Đăng nhập so khớp username/password phân biệt hoa thường, chỉ với status = active.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username" index:"unique"`         // Tên đăng nhập
	Password     string             `json:"-" bson:"password"`                               // Mật khẩu (không trả ra ngoài)
	FullName     string             `json:"fullName" bson:"fullName" index:"text"`           // Họ tên hiển thị
	Email        string             `json:"email" bson:"email" index:"single"`               // Email nhận thông báo deadline
	Role         string             `json:"role" bson:"role" index:"single"`                 // admin | manager | employee
	DepartmentID primitive.ObjectID `json:"departmentId" bson:"departmentId,omitempty"`      // Phòng ban
	Status       string             `json:"status" bson:"status" index:"single"`             // active | inactive
	IsBlock      bool               `json:"isBlock" bson:"isBlock"`                          // Tài khoản bị khóa
	BlockNote    string             `json:"blockNote" bson:"blockNote,omitempty"`            // Lý do khóa
	Token        string             `json:"-" bson:"token,omitempty" index:"single"`         // JWT của lần đăng nhập gần nhất
	LastLoginAt  int64              `json:"lastLoginAt" bson:"lastLoginAt,omitempty"`        // Thời điểm đăng nhập gần nhất (UnixMilli)
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
