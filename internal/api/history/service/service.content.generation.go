// Package historysvc cung cấp service lưu và truy vấn lịch sử sinh nội dung.
package historysvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/jorguzz-fer/agente-conteudo/internal/api/base/service"
	historymodels "github.com/jorguzz-fer/agente-conteudo/internal/api/history/models"
)

// defaultHistoryLimit là số bản ghi tối đa trả về cho màn hình lịch sử
const defaultHistoryLimit = 50

// ContentGenerationService quản lý bản ghi lịch sử sinh nội dung
type ContentGenerationService struct {
	*basesvc.BaseServiceMongoImpl[historymodels.ContentGeneration]
}

// NewContentGenerationService tạo service trên collection đã đăng ký
func NewContentGenerationService(collection *mongo.Collection) *ContentGenerationService {
	return &ContentGenerationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[historymodels.ContentGeneration](collection),
	}
}

// CreateGeneration lưu một lượt sinh nội dung vào lịch sử
func (s *ContentGenerationService) CreateGeneration(ctx context.Context, input, output map[string]interface{}) (historymodels.ContentGeneration, error) {
	record := historymodels.ContentGeneration{
		InputData:  input,
		OutputData: output,
		CreatedAt:  time.Now().UnixMilli(),
	}
	return s.InsertOne(ctx, record)
}

// recentFindOptions build options cho read path của lịch sử: createdAt
// giảm dần, cắt ở defaultHistoryLimit bản ghi
func recentFindOptions() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(defaultHistoryLimit)
}

// FindRecent trả về các bản ghi mới nhất, sắp theo createdAt giảm dần
func (s *ContentGenerationService) FindRecent(ctx context.Context) ([]historymodels.ContentGeneration, error) {
	return s.Find(ctx, bson.D{}, recentFindOptions())
}
