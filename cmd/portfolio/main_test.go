package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jatinnirwann/portfolio/internal/application"
	"github.com/jatinnirwann/portfolio/internal/config"
	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
)

type stubGitHubClient struct {
	repos []model.UpstreamRepo
	err   error
	token string
}

func (s *stubGitHubClient) ListUserRepos(_ context.Context, _ string) ([]model.UpstreamRepo, error) {
	return s.repos, s.err
}

func (s *stubGitHubClient) FetchReadme(_ context.Context, _, _ string) (string, error) {
	return "# Done\nStable.", nil
}

// isolateEnv points every file the CLI touches into a temp dir.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PORTFOLIO_CACHE_FILE", filepath.Join(dir, "repo.txt"))
	t.Setenv("PORTFOLIO_EXCLUSION_FILE", filepath.Join(dir, "ignored_repos.txt"))
	t.Setenv("PORTFOLIO_MESSAGE_LOG", filepath.Join(dir, "messages.json"))
	t.Setenv("PORTFOLIO_GITHUB_TOKEN", "")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_EMAIL", "")
	t.Setenv("SMTP_PASSWORD", "")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "error")
	return dir
}

func execute(t *testing.T, gh *stubGitHubClient, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand("1.2.3", func(token string) driven.GitHubClient {
		gh.token = token
		return gh
	})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, &stubGitHubClient{}, "version")

	require.NoError(t, err)
	assert.Equal(t, "portfolio 1.2.3\n", out)
}

func TestRefreshCommand(t *testing.T) {
	dir := isolateEnv(t)
	t.Setenv("PORTFOLIO_GITHUB_TOKEN", "ghp_test")
	gh := &stubGitHubClient{repos: []model.UpstreamRepo{{Name: "a", Stars: 1}, {Name: "b", Stars: 2}}}

	out, err := execute(t, gh, "refresh")

	require.NoError(t, err)
	assert.Contains(t, out, "Refreshed 2 repositories")
	assert.Equal(t, "ghp_test", gh.token)

	data, err := os.ReadFile(filepath.Join(dir, "repo.txt"))
	require.NoError(t, err)
	var doc model.CacheDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Repos, 2)
	assert.Equal(t, "b", doc.Repos[0].Name)
	assert.Equal(t, model.StatusCompleted, doc.Repos[0].Status)
}

func TestRefreshCommand_Failure(t *testing.T) {
	dir := isolateEnv(t)

	_, err := execute(t, &stubGitHubClient{err: errors.New("connection refused")}, "refresh")

	require.ErrorIs(t, err, application.ErrNoRepos)
	_, statErr := os.Stat(filepath.Join(dir, "repo.txt"))
	assert.True(t, os.IsNotExist(statErr), "cache must not be created on failure")
}

func TestRefreshCommand_InvalidConfig(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := execute(t, &stubGitHubClient{}, "refresh")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_PORT")
}

func TestNewApp_LogOnlyContactWithoutCredentials(t *testing.T) {
	dir := isolateEnv(t)
	cfg, err := config.Load()
	require.NoError(t, err)

	a := newApp(cfg, &stubGitHubClient{})
	mode, err := a.contactSvc.Submit(context.Background(), model.ContactMessage{
		Name: "Ada", Email: "ada@example.com", Message: "hi",
	})

	require.NoError(t, err)
	assert.Equal(t, model.DeliveryLogged, mode)
	data, err := os.ReadFile(filepath.Join(dir, "messages.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"Ada"`)
}
