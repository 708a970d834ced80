package generation

import (
	"context"
	"fmt"
	"time"
)

// defaultMockDelay mô phỏng độ trễ của agent thật để UI test được trạng thái loading
const defaultMockDelay = 2 * time.Second

// MockGenerator sinh nội dung deterministic từ theme, dùng khi chưa có
// agent thật. Cùng một request luôn cho cùng một kết quả.
type MockGenerator struct {
	Delay time.Duration
}

// NewMockGenerator tạo MockGenerator với delay mặc định
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{Delay: defaultMockDelay}
}

// Generate sinh gói nội dung mẫu tiếng Bồ từ theme. Các field thiếu
// trong request được điền giá trị mặc định.
func (g *MockGenerator) Generate(ctx context.Context, req Request) (*Content, error) {
	if g.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.Delay):
		}
	}

	audience := req.Audience
	if audience == "" {
		audience = "Geral"
	}
	tone := req.Tone
	if tone == "" {
		tone = "profissional_direto"
	}
	ctaText := req.CTAText
	if ctaText == "" {
		ctaText = "Saiba mais"
	}

	content := &Content{
		Theme:    req.Theme,
		Audience: audience,
		Tone:     tone,
		CTA: CTA{
			Text: ctaText,
			Link: req.CTALink,
		},
		Titles: []string{
			fmt.Sprintf("Tudo sobre %s", req.Theme),
			fmt.Sprintf("3 Dicas essenciais sobre %s", req.Theme),
			fmt.Sprintf("O que você precisa saber sobre %s", req.Theme),
		},
		ImageIdeas: []string{
			fmt.Sprintf("Foto profissional mostrando %s em contexto prático", req.Theme),
			fmt.Sprintf("Infográfico resumindo os benefícios de %s", req.Theme),
		},
		Lede: fmt.Sprintf("Descubra como %s pode transformar seus resultados. Uma análise direta e essencial para quem busca eficiência.", req.Theme),
		Bullets: []string{
			fmt.Sprintf("🔸 Ponto principal sobre %s que todos devem saber.", req.Theme),
			fmt.Sprintf("🔸 Benefício direto da aplicação correta de %s.", req.Theme),
			fmt.Sprintf("🔸 Erro comum que deve ser evitado ao lidar com %s.", req.Theme),
			"🔸 Dica de ouro para maximizar resultados.",
		},
		Highlights: []string{
			fmt.Sprintf("*Importante*: %s é a tendência do momento.", req.Theme),
			"*Dica*: Comece hoje mesmo.",
		},
		Tags: []string{"inovação", "eficiência", "gestão"},
	}
	content.FullText = ComposeFullText(content)

	return content, nil
}
