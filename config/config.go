// Package config đọc cấu hình ứng dụng từ file env theo GO_ENV.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa toàn bộ cấu hình của ứng dụng, đọc từ biến môi trường
type Configuration struct {
	// Server
	AppName string `env:"APP_NAME" envDefault:"product-workflow-api"`
	Address string `env:"ADDRESS" envDefault:":8080"`

	// TLS (tùy chọn)
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"product_workflow"`

	// JWT
	JwtSecret      string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JwtExpiryHours int    `env:"JWT_EXPIRY_HOURS" envDefault:"168"` // 7 ngày, khớp với cookie phía client

	// CORS
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`

	// Rate limit
	RateLimitMax        int `env:"RATE_LIMIT_MAX" envDefault:"300"`
	RateLimitWindowSecs int `env:"RATE_LIMIT_WINDOW_SECS" envDefault:"60"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // text | json
	LogOutput string `env:"LOG_OUTPUT" envDefault:"both"` // stdout | file | both
	LogPath   string `env:"LOG_PATH" envDefault:"logs"`

	// Tài khoản admin khởi tạo (chỉ seed khi database chưa có user nào;
	// để trống ADMIN_INITIAL_PASSWORD thì bỏ qua seed)
	AdminUsername        string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminInitialPassword string `env:"ADMIN_INITIAL_PASSWORD"`

	// SMTP (gửi mail nhắc deadline)
	SMTPHost     string `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"noreply@example.com"`
}

// getEnvPath tìm file env theo GO_ENV bằng cách đi lên từ thư mục hiện tại.
// Cho phép chạy binary từ bất kỳ thư mục con nào của project.
func getEnvPath() (string, error) {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("không lấy được working directory: %w", err)
	}

	for i := 0; i < 6; i++ {
		envPath := filepath.Join(dir, "config", "env", goEnv+".env")
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("không tìm thấy file env cho GO_ENV=%s", goEnv)
}

// NewConfig đọc file env (nếu có) và parse cấu hình từ biến môi trường
func NewConfig() (*Configuration, error) {
	if envPath, err := getEnvPath(); err == nil {
		// File env là tùy chọn: khi deploy bằng biến môi trường thật thì không cần
		_ = godotenv.Load(envPath)
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("không parse được cấu hình: %w", err)
	}
	return cfg, nil
}
