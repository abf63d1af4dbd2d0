// Package web implements the HTML driving adapter: the compiled front-end
// and server-rendered project pages built from templ components.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jatinnirwann/portfolio/internal/adapter/driving/web/templates"
	"github.com/jatinnirwann/portfolio/internal/adapter/driving/web/templates/pages"
	"github.com/jatinnirwann/portfolio/internal/application"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
)

// readmeTimeout bounds the README fetch behind a project page.
const readmeTimeout = 5 * time.Second

// Handler is the web driving adapter that serves HTML.
type Handler struct {
	repoSvc   *application.RepoService
	ghClient  driven.GitHubClient
	staticDir string
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. staticDir is
// the directory holding the compiled front-end (index.html and its assets).
func NewHandler(
	repoSvc *application.RepoService,
	ghClient driven.GitHubClient,
	staticDir string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		repoSvc:   repoSvc,
		ghClient:  ghClient,
		staticDir: staticDir,
		logger:    logger,
	}
}

// Index serves the front-end entry point.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		h.logger.Warn("front-end index not found", "path", index, "error", err)
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, index)
}

// Project renders the page for one listed repository with its README.
func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	repo, err := h.repoSvc.Find(r.Context(), name)
	if errors.Is(err, application.ErrRepoNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("failed to look up project", "name", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readmeTimeout)
	defer cancel()

	readme, err := h.ghClient.FetchReadme(ctx, h.repoSvc.Owner(), repo.Name)
	if err != nil {
		h.logger.Warn("readme unavailable for project page", "repo", repo.Name, "error", err)
		readme = ""
	}

	page := pages.Project(toProjectViewModel(h.repoSvc.Owner(), repo, RenderMarkdown(readme)))
	layout := templates.Layout(repo.Name, page)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render project page", "repo", repo.Name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
