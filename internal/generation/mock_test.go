package generation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFastMock() *MockGenerator {
	return &MockGenerator{Delay: 0}
}

func TestMockGenerate_Defaults(t *testing.T) {
	content, err := newFastMock().Generate(context.Background(), Request{Theme: "Gestão Financeira"})

	assert.NoError(t, err)
	assert.Equal(t, "Gestão Financeira", content.Theme)
	assert.Equal(t, "Geral", content.Audience)
	assert.Equal(t, "profissional_direto", content.Tone)
	assert.Equal(t, "Saiba mais", content.CTA.Text)
	assert.Empty(t, content.CTA.Link)

	assert.Len(t, content.Titles, 3)
	assert.Len(t, content.ImageIdeas, 2)
	assert.Len(t, content.Bullets, 4)
	assert.Len(t, content.Highlights, 2)
	assert.Equal(t, []string{"inovação", "eficiência", "gestão"}, content.Tags)
}

func TestMockGenerate_RespectsSuppliedFields(t *testing.T) {
	req := Request{
		Theme:    "Liderança",
		Audience: "Gerentes",
		Tone:     "didatico",
		CTAText:  "Inscreva-se",
		CTALink:  "https://example.com/form",
	}
	content, err := newFastMock().Generate(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "Gerentes", content.Audience)
	assert.Equal(t, "didatico", content.Tone)
	assert.Equal(t, "Inscreva-se", content.CTA.Text)
	assert.Equal(t, "https://example.com/form", content.CTA.Link)
	assert.Contains(t, content.FullText, "https://example.com/form")
}

func TestMockGenerate_FullTextIsComposed(t *testing.T) {
	content, err := newFastMock().Generate(context.Background(), Request{Theme: "Vendas"})

	assert.NoError(t, err)
	assert.Equal(t, ComposeFullText(content), content.FullText)
	assert.True(t, strings.HasPrefix(content.FullText, "TEMA: Vendas"))
	assert.Contains(t, content.FullText, "TÍTULOS:\n1) ")
	assert.Contains(t, content.FullText, "IMAGEM/ARTE:\nA) ")
	assert.Contains(t, content.FullText, "LIDE:")
	assert.Contains(t, content.FullText, "CORPO:")
	assert.Contains(t, content.FullText, "CTA:")
}

func TestMockGenerate_NoLinkNoURLInCTA(t *testing.T) {
	// Không có cta_link thì phần CTA không được chứa URL nào
	content, err := newFastMock().Generate(context.Background(), Request{Theme: "Marketing", CTAText: "Fale conosco"})

	assert.NoError(t, err)
	ctaSection := content.FullText[strings.Index(content.FullText, "CTA:"):]
	assert.NotContains(t, ctaSection, "http")
	assert.Contains(t, ctaSection, "Fale conosco")
}

func TestMockGenerate_Deterministic(t *testing.T) {
	req := Request{Theme: "RH", Audience: "Recrutadores"}
	first, err1 := newFastMock().Generate(context.Background(), req)
	second, err2 := newFastMock().Generate(context.Background(), req)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestMockGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewMockGenerator()
	_, err := g.Generate(ctx, Request{Theme: "X"})

	assert.ErrorIs(t, err, context.Canceled)
}
