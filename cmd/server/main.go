package main

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/gofiber/fiber/v3"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/database"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/logger"
)

// initLogger khởi tạo logger cho toàn bộ ứng dụng
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Không khởi tạo được logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger đã sẵn sàng")
}

// mainThread khởi tạo và chạy Fiber server
func mainThread() {
	app, err := InitFiberApp()
	if err != nil {
		logger.GetAppLogger().Fatalf("Không khởi tạo được Fiber app: %v", err)
	}

	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatalf("Không load được TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", cfg.Address)
		if err != nil {
			log.Fatalf("Không tạo được listener: %v", err)
		}
		tlsListener := tls.NewListener(ln, &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		})

		log.WithField("address", cfg.Address).Info("Khởi động server HTTPS")
		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Lỗi Fiber Listener với TLS: %v", err)
		}
		return
	}

	log.WithField("address", cfg.Address).Info("Khởi động server HTTP")
	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Lỗi Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()
	InitGlobal()
	InitRegistry()
	InitData()

	defer func() {
		if global.MongoDB_Session != nil {
			_ = database.CloseInstance(global.MongoDB_Session)
		}
	}()

	mainThread()
}
