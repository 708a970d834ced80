package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	appLogger *logrus.Logger
	loggerMu  sync.Mutex

	// config chứa cấu hình logging
	config *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()
	config = cfg

	// Tạo thư mục logs nếu chưa tồn tại
	if cfg.Output != "stdout" {
		if err := os.MkdirAll(cfg.LogPath, 0755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
	}

	appLogger = newLogger(cfg)
	return nil
}

// newLogger tạo một logrus.Logger theo cấu hình (level, format, output + rotation)
func newLogger(cfg *LogConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	switch cfg.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "file":
		log.SetOutput(rotatingWriter(cfg))
	default: // both
		log.SetOutput(io.MultiWriter(os.Stdout, rotatingWriter(cfg)))
	}

	return log
}

// rotatingWriter trả về writer có rotation bằng lumberjack
func rotatingWriter(cfg *LogConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogPath, cfg.AppFile),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}

// GetAppLogger trả về app logger. Nếu chưa Init thì tự khởi tạo với config mặc định
// để các package có thể log an toàn trong mọi thứ tự khởi động.
func GetAppLogger() *logrus.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if appLogger == nil {
		if config == nil {
			config = DefaultConfig()
		}
		appLogger = newLogger(config)
	}
	return appLogger
}

// WithRequest trả về entry đã gắn thông tin request (request id, method, path)
// để trace log theo từng request
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"requestId": requestid.FromContext(c),
		"method":    c.Method(),
		"path":      c.Path(),
	})
}
