package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	authrouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/router"
	catalogrouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/catalog/router"
	notificationrouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/notification/router"
	requestrouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/router"
	apirouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/router"
	subworkflowrouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/subworkflow/router"
	workflowrouter "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/router"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/logger"
)

// InitFiberApp khởi tạo Fiber app với middleware và toàn bộ route
func InitFiberApp() (*fiber.App, error) {
	cfg := global.MongoDB_ServerConfig

	app := fiber.New(fiber.Config{
		AppName:       cfg.AppName,
		ServerHeader:  cfg.AppName,
		StrictRouting: true, // /foo và /foo/ là khác nhau
		CaseSensitive: true, // /Foo và /foo là khác nhau
		UnescapePath:  true,

		BodyLimit:       10 * 1024 * 1024,
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: fiberErrorHandler,
	})

	// Request ID để trace log theo từng request
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// CORS đặt trước các middleware khác để xử lý preflight
	var allowOrigins []string
	if cfg.CORSAllowOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		for _, origin := range strings.Split(cfg.CORSAllowOrigins, ",") {
			allowOrigins = append(allowOrigins, strings.TrimSpace(origin))
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
	}))

	// Rate limit, bỏ qua health check và preflight
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: time.Duration(cfg.RateLimitWindowSecs) * time.Second,
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health" || c.Method() == fiber.MethodOptions
		},
	}))

	// Recover để panic trong handler không làm chết tiến trình
	app.Use(recover.New())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "app": cfg.AppName})
	})

	if err := apirouter.SetupRoutes(app,
		authrouter.Register,
		catalogrouter.Register,
		workflowrouter.Register,
		subworkflowrouter.Register,
		requestrouter.Register,
		notificationrouter.Register,
	); err != nil {
		return nil, err
	}

	return app, nil
}

// fiberErrorHandler chuẩn hóa lỗi Fiber về format response chung của API
func fiberErrorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Lỗi hệ thống nội bộ"
	errorCode := common.ErrCodeSystem.Code

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
		switch code {
		case fiber.StatusBadRequest:
			errorCode = common.ErrCodeValidationInput.Code
		case fiber.StatusUnauthorized:
			errorCode = common.ErrCodeAuthToken.Code
		case fiber.StatusForbidden:
			errorCode = common.ErrCodeAuthRole.Code
		case fiber.StatusNotFound:
			errorCode = common.ErrCodeDatabaseNotFound.Code
		case fiber.StatusConflict:
			errorCode = common.ErrCodeDatabaseDuplicate.Code
		}
	}

	logger.GetErrorLogger().WithFields(map[string]interface{}{
		"code":      code,
		"errorCode": errorCode,
		"path":      c.Path(),
	}).Error(message)

	return c.Status(code).JSON(fiber.Map{
		"code":    errorCode,
		"message": message,
		"status":  "error",
	})
}
