// Package github implements the GitHubClient port using the go-github library.
package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubClient = (*Client)(nil)

// Client implements the driven.GitHubClient port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client, PAT auth when token is set)
//
// An empty token makes unauthenticated requests, which is enough for public
// repositories.
func NewClient(token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	client.UserAgent = "Portfolio-App"

	return &Client{gh: client}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// ListUserRepos returns the first page of username's public repositories at
// GitHub's default page size. It makes exactly one request; any non-2xx
// response is returned as an error.
func (c *Client) ListUserRepos(ctx context.Context, username string) ([]model.UpstreamRepo, error) {
	repos, resp, err := c.gh.Repositories.ListByUser(ctx, username, nil)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", username, err)
	}

	logRateLimit(resp, "users/"+username+"/repos", len(repos))

	out := make([]model.UpstreamRepo, 0, len(repos))
	for _, r := range repos {
		out = append(out, mapRepository(r))
	}
	return out, nil
}

// FetchReadme returns the decoded README of owner/repo. Bytes that are not
// valid UTF-8 are replaced with U+FFFD.
func (c *Client) FetchReadme(ctx context.Context, owner, repo string) (string, error) {
	content, resp, err := c.gh.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		return "", fmt.Errorf("fetching README for %s/%s: %w", owner, repo, err)
	}

	logRateLimit(resp, "repos/"+owner+"/"+repo+"/readme", 1)

	text, err := decodeContent(content)
	if err != nil {
		return "", fmt.Errorf("decoding README for %s/%s: %w", owner, repo, err)
	}
	return text, nil
}

// decodeContent decodes a contents API payload. GitHub wraps base64 output at
// 60 columns, so whitespace is stripped before decoding.
func decodeContent(rc *gh.RepositoryContent) (string, error) {
	body := ""
	if rc != nil && rc.Content != nil {
		body = *rc.Content
	}

	var data []byte
	switch rc.GetEncoding() {
	case "base64":
		decoded, err := base64.StdEncoding.DecodeString(stripWhitespace(body))
		if err != nil {
			return "", err
		}
		data = decoded
	default:
		data = []byte(body)
	}

	if !utf8.Valid(data) {
		return strings.ToValidUTF8(string(data), "\uFFFD"), nil
	}
	return string(data), nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)
}

// mapRepository converts a go-github Repository to an upstream listing entry.
// It uses GetXxx() helper methods exclusively to avoid nil pointer panics.
func mapRepository(r *gh.Repository) model.UpstreamRepo {
	updatedAt := ""
	if ts := r.GetUpdatedAt(); !ts.IsZero() {
		updatedAt = ts.UTC().Format(time.RFC3339)
	}

	return model.UpstreamRepo{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		URL:         r.GetHTMLURL(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		UpdatedAt:   updatedAt,
		Topics:      r.Topics,
		Fork:        r.GetFork(),
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 10 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
