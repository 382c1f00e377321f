package services

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
)

// ContentRenderService turns an overview authored in markdown into HTML for
// the preview endpoint. Overviews that already look like HTML pass through
// untouched, since the rich-text editor saves HTML directly.
type ContentRenderService struct {
	md goldmark.Markdown
}

func NewContentRenderService() *ContentRenderService {
	return &ContentRenderService{md: goldmark.New()}
}

func looksLikeHTML(s string) bool {
	trimmed := strings.TrimSpace(s)
	return strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">")
}

func (s *ContentRenderService) RenderOverview(overview string) (string, error) {
	if looksLikeHTML(overview) {
		return overview, nil
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(overview), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
