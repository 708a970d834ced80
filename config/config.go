package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Tất cả các endpoint cộng tác (webhook n8n, MongoDB, thư mục lưu ảnh) đều
// là optional: thiếu biến nào thì component tương ứng tự degrade, không crash.
type Configuration struct {
	Address string `env:"ADDRESS" envDefault:":8080"` // Địa chỉ server

	// Webhook n8n: nhận nội dung đã duyệt và đồng thời đóng vai trò
	// generation collaborator cho luồng generate (forward nguyên văn request).
	N8NWebhookURL string `env:"N8N_WEBHOOK_URL"`

	// MongoDB: kho lưu lịch sử generate (content_generations). Để trống thì
	// history trả dữ liệu mẫu và publish bỏ qua bước lưu.
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"agente_conteudo"`

	// Object storage local cho ảnh upload (serve tại /uploads)
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// Delay giữa các item khi bulk-publish (throttle phía downstream)
	BulkSendDelayMS int `env:"BULK_SEND_DELAY_MS" envDefault:"500"`

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
}

// BulkSendDelay trả về delay giữa các item dưới dạng time.Duration
func (c *Configuration) BulkSendDelay() time.Duration {
	return time.Duration(c.BulkSendDelayMS) * time.Millisecond
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ working directory
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env (nếu có) và environment variables.
// Không tìm thấy file env không phải là lỗi: toàn bộ config đều có thể đến từ
// environment trực tiếp (container, CI).
func NewConfig() *Configuration {
	if envPath := getEnvPath(); envPath != "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
