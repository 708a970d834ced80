// Package contenthdl - Handler sinh và publish nội dung đơn lẻ.
package contenthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/jorguzz-fer/agente-conteudo/internal/api/base/handler"
	contentdto "github.com/jorguzz-fer/agente-conteudo/internal/api/content/dto"
	contentsvc "github.com/jorguzz-fer/agente-conteudo/internal/api/content/service"
	"github.com/jorguzz-fer/agente-conteudo/internal/common"
	"github.com/jorguzz-fer/agente-conteudo/internal/generation"
	"github.com/jorguzz-fer/agente-conteudo/internal/global"
	"github.com/jorguzz-fer/agente-conteudo/internal/logger"
)

// ContentHandler xử lý API sinh và publish nội dung.
type ContentHandler struct {
	generator      generation.Generator
	publishService *contentsvc.PublishService
}

// NewContentHandler tạo ContentHandler mới.
func NewContentHandler(generator generation.Generator, publishService *contentsvc.PublishService) *ContentHandler {
	return &ContentHandler{
		generator:      generator,
		publishService: publishService,
	}
}

// HandleGenerate xử lý POST /content/generate — sinh một gói nội dung từ theme.
func (h *ContentHandler) HandleGenerate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input contentdto.ContentGenerateInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err.Error(),
			))
			return nil
		}

		if err := global.ValidateStruct(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		logger.WithRequest(c).Infof("📦 Sinh nội dung cho theme: %s", input.Theme)

		content, err := h.generator.Generate(c.Context(), generation.Request{
			Theme:    input.Theme,
			Context:  input.Context,
			Audience: input.Audience,
			Tone:     input.Tone,
			CTAText:  input.CTAText,
			CTALink:  input.CTALink,
		})
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, content, nil)
		return nil
	})
}

// HandlePublish xử lý POST /content/publish — gửi nội dung đã duyệt tới webhook.
func (h *ContentHandler) HandlePublish(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input contentdto.ContentPublishInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err.Error(),
			))
			return nil
		}

		if err := global.ValidateStruct(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.publishService.Publish(c.Context(), input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}
