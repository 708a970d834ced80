// Package contentsvc chứa nghiệp vụ publish nội dung đã duyệt.
package contentsvc

import (
	"context"

	"github.com/gofiber/fiber/v3"

	contentdto "github.com/jorguzz-fer/agente-conteudo/internal/api/content/dto"
	historymodels "github.com/jorguzz-fer/agente-conteudo/internal/api/history/models"
	"github.com/jorguzz-fer/agente-conteudo/internal/common"
	"github.com/jorguzz-fer/agente-conteudo/internal/delivery"
	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
)

// HistoryRecorder lưu một cặp input/output vào lịch sử sinh nội dung
type HistoryRecorder interface {
	CreateGeneration(ctx context.Context, input, output map[string]interface{}) (historymodels.ContentGeneration, error)
}

// PublishService forward nội dung đã duyệt tới webhook và lưu lịch sử.
// history nil nghĩa là database chưa cấu hình, khi đó bỏ qua bước lưu.
type PublishService struct {
	sender  *delivery.Sender
	history HistoryRecorder
}

// NewPublishService tạo service publish
func NewPublishService(sender *delivery.Sender, history HistoryRecorder) *PublishService {
	return &PublishService{sender: sender, history: history}
}

// Publish gửi nội dung tới webhook. Webhook chưa cấu hình thì degrade
// thành response có gắn nhãn rõ ràng chứ không trả lỗi 500.
//
// Lưu lịch sử độc lập với kết quả webhook: bản ghi được lưu cả khi
// webhook fail hay vắng mặt, và lưu thất bại chỉ log, không fail request.
func (s *PublishService) Publish(ctx context.Context, input contentdto.ContentPublishInput) (fiber.Map, error) {
	log := logger.GetAppLogger()

	s.persist(ctx, input)

	if !s.sender.Configured() {
		log.Warn("⚠️ Webhook chưa cấu hình, publish degrade")
		return fiber.Map{
			"success": false,
			"message": "webhook not configured",
		}, nil
	}

	if err := s.sender.Send(ctx, input); err != nil {
		log.Errorf("❌ Publish tới webhook thất bại: %v", err)
		return nil, common.NewError(
			common.ErrCodeUpstreamWebhook,
			"Falha ao publicar no webhook.",
			common.StatusBadGateway,
			err.Error(),
		)
	}

	return fiber.Map{"success": true}, nil
}

// persist lưu cặp input/output vào lịch sử, lỗi chỉ log
func (s *PublishService) persist(ctx context.Context, input contentdto.ContentPublishInput) {
	if s.history == nil {
		return
	}

	inputData := map[string]interface{}{
		"theme":    input.Theme,
		"audience": input.Audience,
		"tone":     input.Tone,
		"target":   input.Target,
	}
	outputData := map[string]interface{}{
		"titles":      input.Titles,
		"image_ideas": input.ImageIdeas,
		"lede":        input.Lede,
		"bullets":     input.Bullets,
		"highlights":  input.Highlights,
		"tags":        input.Tags,
		"full_text":   input.FullText,
		"image_url":   input.ImageURL,
	}

	if _, err := s.history.CreateGeneration(ctx, inputData, outputData); err != nil {
		logger.GetAppLogger().Errorf("❌ Lưu lịch sử publish thất bại: %v", err)
	}
}
