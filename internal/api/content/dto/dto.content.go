// Package contentdto định nghĩa các struct input cho domain Content.
package contentdto

// ContentGenerateInput là body của POST /content/generate
type ContentGenerateInput struct {
	Theme    string `json:"theme" validate:"required,no_xss"`
	Context  string `json:"context,omitempty"`
	Audience string `json:"audience,omitempty"`
	Tone     string `json:"tone,omitempty"`
	CTAText  string `json:"cta_text,omitempty"`
	CTALink  string `json:"cta_link,omitempty"`
}

// ContentPublishInput là body của POST /content/publish: gói nội dung đã
// được người dùng duyệt, kèm ảnh đã chọn (nếu có) và target đăng.
type ContentPublishInput struct {
	Theme      string   `json:"theme" validate:"required"`
	Audience   string   `json:"audience,omitempty"`
	Tone       string   `json:"tone,omitempty"`
	Titles     []string `json:"titles,omitempty"`
	ImageIdeas []string `json:"image_ideas,omitempty"`
	Lede       string   `json:"lede,omitempty"`
	Bullets    []string `json:"bullets,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	FullText   string   `json:"full_text" validate:"required"`
	ImageURL   string   `json:"image_url,omitempty"`
	Target     string   `json:"target,omitempty"`
}
