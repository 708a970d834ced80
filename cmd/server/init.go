package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jorguzz-fer/agente-conteudo/config"
	"github.com/jorguzz-fer/agente-conteudo/internal/database"
	"github.com/jorguzz-fer/agente-conteudo/internal/global"
	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database (optional)
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.ContentGenerations = "content_generations"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatal("Failed to load server configuration")
	}
	logrus.Info("Loaded server configuration")
}

// Hàm khởi tạo kết nối database. MongoDB là optional: không có connection
// URI thì bỏ qua, history sẽ trả mock data và publish bỏ qua bước lưu.
func initDatabase_MongoDB() {
	log := logger.GetAppLogger()

	cfg := global.ServerConfig
	if cfg.MongoDB_ConnectionURI == "" {
		log.Warn("⚠️ MONGODB_CONNECTION_URI chưa cấu hình, chạy không có database")
		return
	}

	client, err := database.GetInstance(cfg)
	if err != nil {
		log.Errorf("❌ Không kết nối được MongoDB, chạy không có database: %v", err)
		return
	}
	global.MongoDB_Session = client
	log.Info("✅ Đã kết nối MongoDB")

	// Đăng ký collection và đảm bảo index
	collection := client.Database(cfg.MongoDB_DBName).Collection(global.ColNames.ContentGenerations)
	if _, err := global.RegistryCollections.Register(global.ColNames.ContentGenerations, collection); err != nil {
		log.Errorf("❌ Đăng ký collection thất bại: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, collection); err != nil {
		log.Warnf("⚠️ Tạo index cho %s thất bại: %v", global.ColNames.ContentGenerations, err)
	}
}
