package generation

import (
	"fmt"
	"strings"
)

// ComposeFullText lắp các phần của Content thành một văn bản duy nhất
// theo layout cố định để xem trước và copy nhanh. Link CTA chỉ xuất hiện
// khi thực sự có link, không bao giờ tự bịa URL.
func ComposeFullText(c *Content) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("TEMA: %s\n\n", c.Theme))

	b.WriteString("TÍTULOS:\n")
	for i, title := range c.Titles {
		b.WriteString(fmt.Sprintf("%d) %s\n", i+1, title))
	}
	b.WriteString("\n")

	b.WriteString("IMAGEM/ARTE:\n")
	letters := "ABCDEFGH"
	for i, idea := range c.ImageIdeas {
		label := fmt.Sprintf("%d", i+1)
		if i < len(letters) {
			label = string(letters[i])
		}
		b.WriteString(fmt.Sprintf("%s) %s\n", label, idea))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("LIDE:\n%s\n\n", c.Lede))

	b.WriteString("CORPO:\n")
	for _, bullet := range c.Bullets {
		b.WriteString(bullet + "\n")
	}
	b.WriteString("\n")

	b.WriteString("CTA:\n")
	b.WriteString(c.CTA.Text)
	if c.CTA.Link != "" {
		b.WriteString("\n" + c.CTA.Link)
	}

	return b.String()
}
