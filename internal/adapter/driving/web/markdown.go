package web

import (
	"bytes"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// codeLanguage matches the class goldmark puts on fenced code blocks.
var codeLanguage = regexp.MustCompile(`^language-[\w+#-]+$`)

// readmeRenderer turns README markdown into HTML that is safe to embed in a
// project page. Raw HTML in the README passes through goldmark and is then
// filtered by the policy.
type readmeRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newReadmeRenderer() *readmeRenderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(codeLanguage).OnElements("code")

	return &readmeRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy: policy,
	}
}

func (r *readmeRenderer) render(src string) string {
	if src == "" {
		return ""
	}

	var out bytes.Buffer
	if err := r.md.Convert([]byte(src), &out); err != nil {
		// Unconvertible input is shown as sanitized source.
		return r.policy.Sanitize(src)
	}
	return r.policy.Sanitize(out.String())
}

var readmeHTML = newReadmeRenderer()

// RenderMarkdown renders a GitHub-flavoured README to sanitized HTML with
// heading anchors. An empty README renders as "".
func RenderMarkdown(src string) string {
	return readmeHTML.render(src)
}
