// Package pages holds the page-level components.
package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/jatinnirwann/portfolio/internal/adapter/driving/web/templates"
	vm "github.com/jatinnirwann/portfolio/internal/adapter/driving/web/viewmodel"
)

// Project renders a single repository with its README.
func Project(p vm.ProjectViewModel) templ.Component {
	return templates.Component(func(ctx context.Context, w *templates.Writer) {
		w.Raw(`<a class="back" href="/">&larr; All projects</a>`)
		w.Render(ctx, projectHeader(p))
		w.Render(ctx, readme(p.ReadmeHTML))
	})
}

func projectHeader(p vm.ProjectViewModel) templ.Component {
	return templates.Component(func(ctx context.Context, w *templates.Writer) {
		w.Raw(`<header class="project-header"><h1>`)
		w.Text(p.Name)
		w.Raw(`</h1><p>`)
		w.Text(p.Description)
		w.Raw(`</p>`)
		w.Render(ctx, projectMeta(p))
		w.Render(ctx, topicList(p.Topics))
		w.Raw(`</header>`)
	})
}

func projectMeta(p vm.ProjectViewModel) templ.Component {
	return templates.Component(func(_ context.Context, w *templates.Writer) {
		w.Raw(`<div class="meta"><span`)
		w.Attr("class", templ.Classes("badge", p.StatusClass).String())
		w.Raw(`>`)
		w.Text(p.StatusLabel)
		w.Raw(`</span><span>`)
		w.Text(p.Language)
		w.Raw(`</span><span>&#9733; `)
		w.Text(strconv.Itoa(p.Stars))
		w.Raw(`</span><span>Forks `)
		w.Text(strconv.Itoa(p.Forks))
		w.Raw(`</span>`)
		if p.UpdatedAt != "" {
			w.Raw(`<span>Updated `)
			w.Text(p.UpdatedAt)
			w.Raw(`</span>`)
		}
		if p.URL != "" {
			w.Raw(`<a`)
			w.Attr("href", string(templ.URL(p.URL)))
			w.Raw(` rel="noopener" target="_blank">View on GitHub</a>`)
		}
		w.Raw(`</div>`)
	})
}

func topicList(topics []string) templ.Component {
	return templates.Component(func(_ context.Context, w *templates.Writer) {
		if len(topics) == 0 {
			return
		}
		w.Raw(`<ul class="topics">`)
		for _, topic := range topics {
			w.Raw(`<li>`)
			w.Text(topic)
			w.Raw(`</li>`)
		}
		w.Raw(`</ul>`)
	})
}

// readme writes html unescaped; the markdown renderer has already sanitized it.
func readme(html string) templ.Component {
	return templates.Component(func(ctx context.Context, w *templates.Writer) {
		w.Raw(`<article class="readme">`)
		if html == "" {
			w.Raw(`<p class="empty">No README yet.</p>`)
		} else {
			w.Render(ctx, templ.Raw(html))
		}
		w.Raw(`</article>`)
	})
}
