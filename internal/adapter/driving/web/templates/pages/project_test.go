package pages_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jatinnirwann/portfolio/internal/adapter/driving/web/templates/pages"
	vm "github.com/jatinnirwann/portfolio/internal/adapter/driving/web/viewmodel"
)

func renderProject(t *testing.T, p vm.ProjectViewModel) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, pages.Project(p).Render(context.Background(), &buf))
	return buf.String()
}

func TestProject_FullPage(t *testing.T) {
	out := renderProject(t, vm.ProjectViewModel{
		Name:        "portfolio",
		Description: "My <site>",
		URL:         "https://github.com/octocat/portfolio",
		Language:    "Go",
		Stars:       7,
		Forks:       2,
		UpdatedAt:   "Jun 1, 2024",
		Topics:      []string{"web", "go"},
		StatusClass: "under-dev",
		StatusLabel: "Under Dev",
		ReadmeHTML:  "<p><strong>hi</strong></p>",
	})

	assert.Contains(t, out, "<h1>portfolio</h1>")
	assert.Contains(t, out, "My &lt;site&gt;")
	assert.Contains(t, out, `<span class="badge under-dev">Under Dev</span>`)
	assert.Contains(t, out, "<span>&#9733; 7</span>")
	assert.Contains(t, out, "<span>Forks 2</span>")
	assert.Contains(t, out, "<span>Updated Jun 1, 2024</span>")
	assert.Contains(t, out, `<a href="https://github.com/octocat/portfolio" rel="noopener" target="_blank">`)
	assert.Contains(t, out, `<ul class="topics"><li>web</li><li>go</li></ul>`)
	assert.Contains(t, out, `<article class="readme"><p><strong>hi</strong></p></article>`)
}

func TestProject_OptionalPartsOmitted(t *testing.T) {
	out := renderProject(t, vm.ProjectViewModel{Name: "bare", StatusClass: "completed", StatusLabel: "Completed"})

	assert.NotContains(t, out, "Updated")
	assert.NotContains(t, out, "View on GitHub")
	assert.NotContains(t, out, `class="topics"`)
	assert.Contains(t, out, "No README yet.")
}

func TestProject_UnsafeURLIsNeutralized(t *testing.T) {
	out := renderProject(t, vm.ProjectViewModel{Name: "x", URL: "javascript:alert(1)"})

	assert.NotContains(t, out, "javascript:")
}
