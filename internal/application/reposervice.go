package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
	"github.com/jatinnirwann/portfolio/internal/metrics"
)

var (
	// ErrNoRepos indicates that neither the GitHub API nor the cache produced
	// any repositories.
	ErrNoRepos = errors.New("failed to fetch repositories")

	// ErrRepoNotFound indicates the requested repository is not in the listing.
	ErrRepoNotFound = errors.New("repository not found")
)

// RepoListing is a repository listing together with where it came from.
type RepoListing struct {
	Repos  []model.Repository
	Source model.RepoSource
}

// RepoService serves the portfolio's repository listing, choosing between the
// cache, a fresh aggregation and stale cached data.
type RepoService struct {
	cache      driven.RepoCache
	exclusions driven.ExclusionSource
	aggregator *Aggregator
	username   string
}

// NewRepoService creates a RepoService with all required dependencies.
func NewRepoService(
	cache driven.RepoCache,
	exclusions driven.ExclusionSource,
	aggregator *Aggregator,
	username string,
) *RepoService {
	return &RepoService{
		cache:      cache,
		exclusions: exclusions,
		aggregator: aggregator,
		username:   username,
	}
}

// List returns the cached listing when it is fresh, otherwise aggregates and
// saves a new one. If aggregation yields nothing, stale cached data is
// served instead. Cached data is always filtered by the current exclusion
// list. ErrNoRepos is returned when there is nothing to serve.
func (s *RepoService) List(ctx context.Context) (RepoListing, error) {
	cached, ok := s.cache.Load(ctx)
	hasCached := ok && len(cached) > 0
	stale := s.cache.IsStale(ctx)

	if hasCached && !stale {
		slog.Debug("serving repositories from fresh cache")
		return s.served(RepoListing{
			Repos:  model.FilterExcluded(cached, s.exclusions.Load(ctx)),
			Source: model.SourceCache,
		}), nil
	}

	if stale {
		slog.Info("repo cache is stale, refreshing from github")
	} else {
		slog.Info("no cached repositories, fetching from github")
	}

	repos, err := s.aggregator.Aggregate(ctx, s.username)
	if err != nil {
		slog.Error("repository aggregation failed", "error", err)
	}

	if len(repos) > 0 {
		if err := s.cache.Save(ctx, repos); err != nil {
			slog.Error("saving repo cache", "error", err)
		}
		return s.served(RepoListing{Repos: repos, Source: model.SourceGitHubAPI}), nil
	}

	if hasCached {
		slog.Warn("github fetch failed, falling back to stale cache", "count", len(cached))
		return s.served(RepoListing{
			Repos:  model.FilterExcluded(cached, s.exclusions.Load(ctx)),
			Source: model.SourceCacheStale,
		}), nil
	}

	return RepoListing{}, ErrNoRepos
}

// Refresh aggregates unconditionally and overwrites the cache. A failed or
// empty aggregation leaves the cache untouched and returns ErrNoRepos.
func (s *RepoService) Refresh(ctx context.Context) ([]model.Repository, error) {
	repos, err := s.aggregator.Aggregate(ctx, s.username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoRepos, err)
	}
	if len(repos) == 0 {
		return nil, ErrNoRepos
	}

	if err := s.cache.Save(ctx, repos); err != nil {
		return nil, fmt.Errorf("refreshing repositories: %w", err)
	}

	slog.Info("repositories refreshed", "count", len(repos))
	return repos, nil
}

// Find returns the listed repository with the given name, ignoring case.
func (s *RepoService) Find(ctx context.Context, name string) (model.Repository, error) {
	listing, err := s.List(ctx)
	if err != nil {
		return model.Repository{}, err
	}

	for _, r := range listing.Repos {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return model.Repository{}, ErrRepoNotFound
}

// Owner returns the GitHub username whose repositories are listed.
func (s *RepoService) Owner() string {
	return s.username
}

func (s *RepoService) served(l RepoListing) RepoListing {
	metrics.RepoListingsServed.WithLabelValues(string(l.Source)).Inc()
	return l
}
