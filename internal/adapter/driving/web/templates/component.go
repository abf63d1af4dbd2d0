package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	templruntime "github.com/a-h/templ/runtime"
)

// Writer writes markup into a templ runtime buffer. The first error stops
// all further output and is returned by the enclosing component.
type Writer struct {
	buf *templruntime.Buffer
	err error
}

// Raw writes trusted markup as-is.
func (w *Writer) Raw(s string) {
	if w.err == nil {
		_, w.err = w.buf.WriteString(s)
	}
}

// Text writes s HTML-escaped.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (w *Writer) Attr(name, value string) {
	w.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// Render writes a child component into the same buffer.
func (w *Writer) Render(ctx context.Context, c templ.Component) {
	if w.err == nil {
		w.err = c.Render(ctx, w.buf)
	}
}

// Component adapts body into a templ.Component. Nested components share the
// outermost buffer, which is flushed and released when rendering ends.
func Component(body func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, dst io.Writer) (err error) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		buf, isBuffer := templruntime.GetBuffer(dst)
		if !isBuffer {
			defer func() {
				if releaseErr := templruntime.ReleaseBuffer(buf); err == nil {
					err = releaseErr
				}
			}()
		}
		ctx = templ.InitializeContext(ctx)

		w := &Writer{buf: buf}
		body(ctx, w)
		return w.err
	})
}
