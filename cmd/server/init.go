package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cuongthieu-itme/product-workflow-sub001/config"
	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	catalogmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/catalog/models"
	requestmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/models"
	subworkflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/models"
	workflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/database"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục theo đúng thứ tự phụ thuộc
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabaseMongoDB()
}

// initColNames gán tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Departments = "catalog_departments"
	global.MongoDB_ColNames.Customers = "catalog_customers"
	global.MongoDB_ColNames.DataSources = "catalog_data_sources"
	global.MongoDB_ColNames.ProductStatuses = "catalog_product_statuses"
	global.MongoDB_ColNames.WorkflowTemplates = "workflow_templates"
	global.MongoDB_ColNames.WorkflowChanges = "workflow_changes"
	global.MongoDB_ColNames.SubWorkflows = "workflow_sub_workflows"
	global.MongoDB_ColNames.Requests = "requests"
	global.MongoDB_ColNames.MaterialImportRequests = "request_material_imports"
	global.MongoDB_ColNames.CustomerRequests = "request_customer_requests"

	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator và các custom validator
func initValidator() {
	if err := global.InitValidator(); err != nil {
		logrus.Fatalf("Failed to initialize validator: %v", err)
	}
	logrus.Info("Initialized validator")
}

// initConfig đọc cấu hình server từ env
func initConfig() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}
	global.MongoDB_ServerConfig = cfg
	logrus.Info("Initialized server config")
}

// initDatabaseMongoDB kết nối MongoDB, đảm bảo collection và index
func initDatabaseMongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig.MongoDB_ConnectionURI)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	ctx := context.TODO()
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName

	if err := database.EnsureDatabaseAndCollections(ctx, global.MongoDB_Session, dbName, global.GetColNames()); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Departments), catalogmodels.Department{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Customers), catalogmodels.Customer{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.DataSources), catalogmodels.DataSource{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.ProductStatuses), catalogmodels.ProductStatus{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.WorkflowTemplates), workflowmodels.WorkflowTemplate{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.WorkflowChanges), workflowmodels.WorkflowChange{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.SubWorkflows), subworkflowmodels.SubWorkflow{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Requests), requestmodels.Request{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.MaterialImportRequests), requestmodels.MaterialImportRequest{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.CustomerRequests), requestmodels.CustomerRequest{})
	logrus.Info("Created indexes")
}
