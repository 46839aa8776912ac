// Package router đăng ký route cho toàn bộ API.
//
// Lưu ý Fiber v3: middleware đăng ký trực tiếp trong route
// (router.Get(path, middleware, handler)) KHÔNG được gọi. Phải tạo group
// và gắn middleware qua .Use() — dùng RegisterRouteWithMiddleware bên dưới.
package apirouter

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/handler"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/api/middleware"
)

// CRUDHandler interface các endpoint CRUD mà một handler domain phải có
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateOne(c fiber.Ctx) error
	UpdateMany(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	FindOneAndUpdate(c fiber.Ctx) error

	// Delete
	DeleteOne(c fiber.Ctx) error
	DeleteMany(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	FindOneAndDelete(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	Upsert(c fiber.Ctx) error
	UpsertMany(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	// Create
	InsOne  bool
	InsMany bool

	// Read
	Find     bool
	FindOne  bool
	FindById bool
	FindIds  bool
	Paginate bool

	// Update
	UpdOne  bool
	UpdMany bool
	UpdById bool
	FindUpd bool

	// Delete
	DelOne  bool
	DelMany bool
	DelById bool
	FindDel bool

	// Other
	Count    bool
	Distinct bool
	Upsert   bool
	UpsMany  bool
	Exists   bool
}

// Config dùng chung cho các collection
var (
	// ReadOnlyConfig chỉ cho phép đọc
	ReadOnlyConfig = CRUDConfig{
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		Count: true, Distinct: true, Exists: true,
	}

	// ReadWriteConfig cho phép đầy đủ CRUD
	ReadWriteConfig = CRUDConfig{
		InsOne: true, InsMany: true,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdMany: true, UpdById: true, FindUpd: true,
		DelOne: true, DelMany: true, DelById: true, FindDel: true,
		Count: true, Distinct: true,
		Upsert: true, UpsMany: true, Exists: true,
	}

	// CatalogConfig cho các collection danh mục: đầy đủ đọc, ghi đơn lẻ, không xóa hàng loạt
	CatalogConfig = CRUDConfig{
		InsOne: true,
		Find:   true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdById: true,
		DelById: true,
		Count:   true, Distinct: true, Exists: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string
	V1   string
}

// NewRoutePrefix trả về prefix mặc định (/api, /api/v1)
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() (cách đúng với Fiber v3).
// Middleware truyền trực tiếp vào router.Get/Post/... sẽ không được gọi.
// Handler được bọc SafeHandler để một request panic không làm sập server.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	wrapped := basehdl.SafeHandler(handler)
	switch method {
	case "GET":
		routeGroup.Get(path, wrapped)
	case "POST":
		routeGroup.Post(path, wrapped)
	case "PUT":
		routeGroup.Put(path, wrapped)
	case "DELETE":
		routeGroup.Delete(path, wrapped)
	}
}

// RegisterCRUDRoutes đăng ký các route CRUD cho một collection.
// writeRole là role tối thiểu cho các thao tác ghi ("" = chỉ cần đăng nhập).
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig, writeRole string) {
	authRead := middleware.AuthMiddleware("")
	authWrite := middleware.AuthMiddleware(writeRole)

	// Create
	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-one", []fiber.Handler{authWrite}, h.InsertOne)
	}
	if config.InsMany {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-many", []fiber.Handler{authWrite}, h.InsertMany)
	}

	// Read
	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find", []fiber.Handler{authRead}, h.Find)
	}
	if config.FindOne {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-one", []fiber.Handler{authRead}, h.FindOne)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", []fiber.Handler{authRead}, h.FindOneById)
	}
	if config.FindIds {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/find-by-ids", []fiber.Handler{authRead}, h.FindManyByIds)
	}
	if config.Paginate {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", []fiber.Handler{authRead}, h.FindWithPagination)
	}

	// Update
	if config.UpdOne {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-one", []fiber.Handler{authWrite}, h.UpdateOne)
	}
	if config.UpdMany {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-many", []fiber.Handler{authWrite}, h.UpdateMany)
	}
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", []fiber.Handler{authWrite}, h.UpdateById)
	}
	if config.FindUpd {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/find-one-and-update", []fiber.Handler{authWrite}, h.FindOneAndUpdate)
	}

	// Delete
	if config.DelOne {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-one", []fiber.Handler{authWrite}, h.DeleteOne)
	}
	if config.DelMany {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-many", []fiber.Handler{authWrite}, h.DeleteMany)
	}
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", []fiber.Handler{authWrite}, h.DeleteById)
	}
	if config.FindDel {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/find-one-and-delete", []fiber.Handler{authWrite}, h.FindOneAndDelete)
	}

	// Other
	if config.Count {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", []fiber.Handler{authRead}, h.CountDocuments)
	}
	if config.Distinct {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/distinct", []fiber.Handler{authRead}, h.Distinct)
	}
	if config.Upsert {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/upsert-one", []fiber.Handler{authWrite}, h.Upsert)
	}
	if config.UpsMany {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/upsert-many", []fiber.Handler{authWrite}, h.UpsertMany)
	}
	if config.Exists {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/exists", []fiber.Handler{authRead}, h.DocumentExists)
	}
}

// RegisterFunc hàm đăng ký route của một domain (domain/router export)
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập toàn bộ route. Caller truyền Register của từng domain
// để tránh import cycle giữa router và các domain.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
