// Package authdto chứa các DTO của domain auth.
package authdto

// LoginInput đầu vào đăng nhập bằng username/password
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult kết quả đăng nhập trả về cho client
type LoginResult struct {
	Token          string `json:"token"`          // JWT, client giữ trong cookie 7 ngày
	Username       string `json:"username"`       // Khớp key lưu phía client
	UserRole       string `json:"userRole"`       // Khớp key lưu phía client
	UserDepartment string `json:"userDepartment"` // Khớp key lưu phía client
}

// UserCreateInput đầu vào tạo người dùng
type UserCreateInput struct {
	Username     string `json:"username" validate:"required,min=3"`
	Password     string `json:"password" validate:"required,min=6"`
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Role         string `json:"role" validate:"required,oneof=admin manager employee"`
	DepartmentID string `json:"departmentId"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UserUpdateInput đầu vào cập nhật người dùng (partial)
type UserUpdateInput struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email" validate:"omitempty,email"`
	Role         string `json:"role" validate:"omitempty,oneof=admin manager employee"`
	DepartmentID string `json:"departmentId"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// BlockUserInput đầu vào khóa tài khoản
type BlockUserInput struct {
	Username string `json:"username" validate:"required"`
	Note     string `json:"note" validate:"required"`
}
