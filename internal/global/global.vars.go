// Package global giữ các biến dùng chung toàn tiến trình,
// được khởi tạo một lần khi server bật (cmd/server/init.go).
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cuongthieu-itme/product-workflow-sub001/config"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/registry"
)

// ColNames chứa tên các collection MongoDB của hệ thống
type ColNames struct {
	Users                  string
	Departments            string
	Customers              string
	DataSources            string
	ProductStatuses        string
	WorkflowTemplates      string
	WorkflowChanges        string
	SubWorkflows           string
	Requests               string
	MaterialImportRequests string
	CustomerRequests       string
}

var (
	// MongoDB_ColNames tên các collection, gán một lần trong init
	MongoDB_ColNames ColNames

	// MongoDB_Session client MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// MongoDB_ServerConfig cấu hình server đã load
	MongoDB_ServerConfig *config.Configuration

	// Validate validator dùng chung cho mọi DTO
	Validate *validator.Validate

	// RegistryCollections registry các *mongo.Collection theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)

// GetColNames trả về danh sách toàn bộ tên collection (dùng khi khởi tạo database)
func GetColNames() []string {
	return []string{
		MongoDB_ColNames.Users,
		MongoDB_ColNames.Departments,
		MongoDB_ColNames.Customers,
		MongoDB_ColNames.DataSources,
		MongoDB_ColNames.ProductStatuses,
		MongoDB_ColNames.WorkflowTemplates,
		MongoDB_ColNames.WorkflowChanges,
		MongoDB_ColNames.SubWorkflows,
		MongoDB_ColNames.Requests,
		MongoDB_ColNames.MaterialImportRequests,
		MongoDB_ColNames.CustomerRequests,
	}
}
