package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jorguzz-fer/agente-conteudo/config"
	"github.com/jorguzz-fer/agente-conteudo/internal/registry"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	ContentGenerations string // Tên collection cho lịch sử generate nội dung
}

// Các biến toàn cục
var Validate *validator.Validate       // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client      // Phiên kết nối tới MongoDB (nil nếu store không được cấu hình)
var ServerConfig *config.Configuration // Cấu hình của server
var ColNames CollectionName            // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
