package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	basesvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/service"
	catalogmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/catalog/models"
	workflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
)

// InitData seed dữ liệu khởi tạo: tài khoản admin, trạng thái sản phẩm hệ thống
// và template chuẩn. Chỉ ghi khi dữ liệu chưa có, chạy lại không tạo bản ghi trùng.
func InitData() {
	ctx := context.TODO()
	seedAdminUser(ctx)
	seedSystemProductStatuses(ctx)
	seedStandardTemplate(ctx)
}

// seedAdminUser tạo tài khoản admin đầu tiên khi database chưa có user nào.
// Mật khẩu lấy từ ADMIN_INITIAL_PASSWORD; không đặt thì bỏ qua và cảnh báo.
func seedAdminUser(ctx context.Context) {
	col, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !ok {
		logrus.Fatalf("Collection %s chưa được đăng ký", global.MongoDB_ColNames.Users)
	}
	users := basesvc.NewBaseServiceMongo[authmodels.User](col)

	count, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		logrus.Fatalf("Không đếm được user: %v", err)
	}
	if count > 0 {
		return
	}

	cfg := global.MongoDB_ServerConfig
	if cfg.AdminInitialPassword == "" {
		logrus.Warn("Database chưa có user nào và ADMIN_INITIAL_PASSWORD chưa đặt, bỏ qua seed admin")
		return
	}

	_, err = users.InsertOne(ctx, authmodels.User{
		Username: cfg.AdminUsername,
		Password: cfg.AdminInitialPassword,
		FullName: "Administrator",
		Role:     authmodels.RoleAdmin,
		Status:   authmodels.UserStatusActive,
	})
	if err != nil {
		logrus.Fatalf("Không seed được tài khoản admin: %v", err)
	}
	logrus.WithField("username", cfg.AdminUsername).Info("Seeded admin user")
}

// seedSystemProductStatuses tạo các trạng thái sản phẩm hệ thống (không cho xóa)
func seedSystemProductStatuses(ctx context.Context) {
	col, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.ProductStatuses)
	if !ok {
		logrus.Fatalf("Collection %s chưa được đăng ký", global.MongoDB_ColNames.ProductStatuses)
	}
	statuses := basesvc.NewBaseServiceMongo[catalogmodels.ProductStatus](col)

	systemStatuses := []catalogmodels.ProductStatus{
		{Name: "Sản phẩm mới", Description: "Sản phẩm chưa từng sản xuất", IsSystem: true},
		{Name: "Sản xuất lại", Description: "Sản phẩm đã có, sản xuất thêm", IsSystem: true},
		{Name: "Chỉnh sửa mẫu", Description: "Sản phẩm cần chỉnh sửa theo yêu cầu", IsSystem: true},
	}

	for _, status := range systemStatuses {
		exists, err := statuses.DocumentExists(ctx, bson.M{"name": status.Name})
		if err != nil {
			logrus.Fatalf("Không kiểm tra được trạng thái sản phẩm: %v", err)
		}
		if exists {
			continue
		}
		if _, err := statuses.InsertOne(ctx, status); err != nil {
			logrus.Fatalf("Không seed được trạng thái sản phẩm %s: %v", status.Name, err)
		}
		logrus.WithField("name", status.Name).Info("Seeded system product status")
	}
}

// seedStandardTemplate tạo template chuẩn rỗng nếu hệ thống chưa có template chuẩn.
// Step và field do admin cấu hình qua API sau khi hệ thống chạy.
func seedStandardTemplate(ctx context.Context) {
	col, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.WorkflowTemplates)
	if !ok {
		logrus.Fatalf("Collection %s chưa được đăng ký", global.MongoDB_ColNames.WorkflowTemplates)
	}
	templates := basesvc.NewBaseServiceMongo[workflowmodels.WorkflowTemplate](col)

	exists, err := templates.DocumentExists(ctx, bson.M{"isStandard": true})
	if err != nil {
		logrus.Fatalf("Không kiểm tra được template chuẩn: %v", err)
	}
	if exists {
		return
	}

	_, err = templates.InsertOne(ctx, workflowmodels.WorkflowTemplate{
		Name:        "Quy trình chuẩn",
		Description: "Template workflow chuẩn của hệ thống",
		IsStandard:  true,
		Version:     1,
		Steps:       []workflowmodels.StepDefinition{},
	})
	if err != nil {
		logrus.Fatalf("Không seed được template chuẩn: %v", err)
	}
	logrus.Info("Seeded standard workflow template")
}
