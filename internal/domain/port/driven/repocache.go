package driven

import (
	"context"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
)

// RepoCache defines the driven port for the persisted repository listing.
// There is no coordination between writers; the last Save wins.
type RepoCache interface {
	// Load returns the cached repositories. ok is false when there is no
	// usable data (missing file, malformed content, unknown shape).
	Load(ctx context.Context) (repos []model.Repository, ok bool)

	// Save replaces the cache with repos stamped with the current time.
	Save(ctx context.Context, repos []model.Repository) error

	// IsStale reports whether the cache must be refreshed before use.
	IsStale(ctx context.Context) bool
}
