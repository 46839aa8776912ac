// Package catalogdto chứa DTO của các danh mục.
package catalogdto

// DepartmentCreateInput đầu vào tạo phòng ban
type DepartmentCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ManagerID   string `json:"managerId"`
}

// DepartmentUpdateInput đầu vào cập nhật phòng ban
type DepartmentUpdateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ManagerID   string `json:"managerId"`
}

// CustomerCreateInput đầu vào tạo khách hàng
type CustomerCreateInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

// CustomerUpdateInput đầu vào cập nhật khách hàng
type CustomerUpdateInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

// DataSourceCreateInput đầu vào tạo nguồn dữ liệu
type DataSourceCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// DataSourceUpdateInput đầu vào cập nhật nguồn dữ liệu
type DataSourceUpdateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// ProductStatusCreateInput đầu vào tạo trạng thái sản phẩm
type ProductStatusCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Order       int    `json:"order"`
}

// ProductStatusUpdateInput đầu vào cập nhật trạng thái sản phẩm
type ProductStatusUpdateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Order       *int   `json:"order"`
}
