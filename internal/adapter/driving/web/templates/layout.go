// Package templates holds the shared page chrome for server-rendered pages.
package templates

import (
	"context"

	"github.com/a-h/templ"
)

// Layout wraps body in the HTML document shell with the given title.
func Layout(title string, body templ.Component) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		w.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		w.Text(title)
		w.Raw(`</title><link rel="stylesheet" href="/static/project.css"></head><body><main class="page">`)
		w.Render(ctx, body)
		w.Raw(`</main></body></html>`)
	})
}
