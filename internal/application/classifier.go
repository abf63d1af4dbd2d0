package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
	"github.com/jatinnirwann/portfolio/internal/metrics"
)

// readmeTimeout bounds each README fetch.
const readmeTimeout = 5 * time.Second

// UnderDevKeywords are matched, in order, against the lower-cased README. The
// first hit marks the repository as under development. Order and content are
// part of the classification contract; changing them reclassifies repos.
var UnderDevKeywords = []string{
	"under development",
	"work in progress",
	"wip",
	"coming soon",
	"in development",
	"todo",
	"not complete",
	"incomplete",
	"under construction",
	"beta",
	"experimental",
	"draft",
}

// StatusClassifier infers a repository's completion status from its README.
type StatusClassifier struct {
	ghClient driven.GitHubClient
}

// NewStatusClassifier creates a StatusClassifier reading READMEs through ghClient.
func NewStatusClassifier(ghClient driven.GitHubClient) *StatusClassifier {
	return &StatusClassifier{ghClient: ghClient}
}

// Classify fetches the README of owner/repo and classifies it. A failed fetch
// counts as an empty README, so it never returns an error.
func (c *StatusClassifier) Classify(ctx context.Context, owner, repo string) model.RepoStatus {
	ctx, cancel := context.WithTimeout(ctx, readmeTimeout)
	defer cancel()

	text, err := c.ghClient.FetchReadme(ctx, owner, repo)
	if err != nil {
		slog.Warn("readme unavailable, treating as empty", "repo", repo, "error", err)
		text = ""
	}

	status := ClassifyReadme(text)
	metrics.RepoClassifications.WithLabelValues(string(status)).Inc()
	return status
}

// ClassifyReadme returns StatusUnderDev for a blank README or one containing
// any of UnderDevKeywords (case-insensitive), and StatusCompleted otherwise.
func ClassifyReadme(text string) model.RepoStatus {
	content := strings.ToLower(text)
	if strings.TrimSpace(content) == "" {
		return model.StatusUnderDev
	}

	for _, keyword := range UnderDevKeywords {
		if strings.Contains(content, keyword) {
			return model.StatusUnderDev
		}
	}
	return model.StatusCompleted
}
