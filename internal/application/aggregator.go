package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
	"github.com/jatinnirwann/portfolio/internal/metrics"
)

const (
	// listTimeout bounds the repository listing call.
	listTimeout = 10 * time.Second

	// MaxRepos is the number of repositories shown on the portfolio.
	MaxRepos = 12
)

// Aggregator builds the portfolio's repository listing from the GitHub API.
type Aggregator struct {
	ghClient   driven.GitHubClient
	exclusions driven.ExclusionSource
	classifier *StatusClassifier
}

// NewAggregator creates an Aggregator with all required dependencies.
func NewAggregator(
	ghClient driven.GitHubClient,
	exclusions driven.ExclusionSource,
	classifier *StatusClassifier,
) *Aggregator {
	return &Aggregator{
		ghClient:   ghClient,
		exclusions: exclusions,
		classifier: classifier,
	}
}

// Aggregate lists username's repositories, drops forks and excluded names,
// classifies each remaining repository sequentially, then returns the top
// MaxRepos by stars and recency. On error no partial result is returned.
func (a *Aggregator) Aggregate(ctx context.Context, username string) ([]model.Repository, error) {
	start := time.Now()
	defer func() { metrics.AggregationDuration.Observe(time.Since(start).Seconds()) }()

	listCtx, cancel := context.WithTimeout(ctx, listTimeout)
	upstream, err := a.ghClient.ListUserRepos(listCtx, username)
	cancel()
	if err != nil {
		metrics.AggregationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("aggregating repositories for %s: %w", username, err)
	}

	excluded := a.exclusions.Load(ctx)

	repos := make([]model.Repository, 0, len(upstream))
	for _, u := range upstream {
		if u.Fork || excluded.Contains(u.Name) {
			continue
		}
		if err := ctx.Err(); err != nil {
			metrics.AggregationsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("aggregating repositories for %s: %w", username, err)
		}

		status := a.classifier.Classify(ctx, username, u.Name)
		slog.Info("repository classified", "repo", u.Name, "status", status)
		repos = append(repos, model.NewRepository(u, status))
	}

	model.SortRepositories(repos)
	if len(repos) > MaxRepos {
		repos = repos[:MaxRepos]
	}

	slog.Info("repositories aggregated", "username", username, "listed", len(upstream), "kept", len(repos))
	metrics.AggregationsTotal.WithLabelValues("success").Inc()
	return repos, nil
}
