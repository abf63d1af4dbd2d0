package templates_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jatinnirwann/portfolio/internal/adapter/driving/web/templates"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestComponent_EscapesTextAndAttributes(t *testing.T) {
	c := templates.Component(func(_ context.Context, w *templates.Writer) {
		w.Raw(`<p`)
		w.Attr("title", `say "hi"`)
		w.Raw(`>`)
		w.Text("<b>&</b>")
		w.Raw(`</p>`)
	})

	assert.Equal(t, `<p title="say &#34;hi&#34;">&lt;b&gt;&amp;&lt;/b&gt;</p>`, render(t, c))
}

func TestComponent_NestedComponentsKeepOrder(t *testing.T) {
	inner := templates.Component(func(_ context.Context, w *templates.Writer) {
		w.Raw("<i>inner</i>")
	})
	outer := templates.Component(func(ctx context.Context, w *templates.Writer) {
		w.Raw("<div>")
		w.Render(ctx, inner)
		w.Raw("</div>")
	})

	assert.Equal(t, "<div><i>inner</i></div>", render(t, outer))
}

func TestComponent_ChildErrorStopsOutput(t *testing.T) {
	boom := errors.New("boom")
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })
	outer := templates.Component(func(ctx context.Context, w *templates.Writer) {
		w.Raw("<div>")
		w.Render(ctx, failing)
		w.Raw("</div>")
	})

	var buf bytes.Buffer
	err := outer.Render(context.Background(), &buf)

	require.ErrorIs(t, err, boom)
	assert.NotContains(t, buf.String(), "</div>")
}

func TestComponent_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := templates.Component(func(_ context.Context, w *templates.Writer) { w.Raw("x") })

	var buf bytes.Buffer
	err := c.Render(ctx, &buf)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestLayout(t *testing.T) {
	body := templates.Component(func(_ context.Context, w *templates.Writer) { w.Raw("<p>body</p>") })

	out := render(t, templates.Layout("A <B>", body))

	assert.Contains(t, out, "<title>A &lt;B&gt;</title>")
	assert.Contains(t, out, `<main class="page"><p>body</p></main>`)
	assert.Contains(t, out, `href="/static/project.css"`)
}
