package driven

import (
	"context"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
)

// GitHubClient defines the driven port for reading public repository data.
type GitHubClient interface {
	// ListUserRepos returns the public repositories owned by username in a
	// single listing call. A non-success response is an error.
	ListUserRepos(ctx context.Context, username string) ([]model.UpstreamRepo, error)

	// FetchReadme returns the decoded README text of owner/repo, exactly as
	// written (no case folding).
	FetchReadme(ctx context.Context, owner, repo string) (string, error)
}
