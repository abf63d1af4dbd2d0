package application_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockGitHubClient struct {
	listRepos   func(ctx context.Context, username string) ([]model.UpstreamRepo, error)
	fetchReadme func(ctx context.Context, owner, repo string) (string, error)

	mu          sync.Mutex
	readmeCalls []string
}

func (m *mockGitHubClient) ListUserRepos(ctx context.Context, username string) ([]model.UpstreamRepo, error) {
	if m.listRepos == nil {
		return nil, errors.New("listRepos not configured")
	}
	return m.listRepos(ctx, username)
}

func (m *mockGitHubClient) FetchReadme(ctx context.Context, owner, repo string) (string, error) {
	m.mu.Lock()
	m.readmeCalls = append(m.readmeCalls, owner+"/"+repo)
	m.mu.Unlock()
	if m.fetchReadme == nil {
		return "", errors.New("fetchReadme not configured")
	}
	return m.fetchReadme(ctx, owner, repo)
}

// readmes returns a fetchReadme func serving fixed README text per repo name.
// Repos without an entry fail like a 404.
func readmes(byRepo map[string]string) func(context.Context, string, string) (string, error) {
	return func(_ context.Context, _, repo string) (string, error) {
		text, ok := byRepo[repo]
		if !ok {
			return "", errors.New("404 Not Found")
		}
		return text, nil
	}
}

type mockRepoCache struct {
	repos   []model.Repository
	ok      bool
	stale   bool
	saveErr error

	saved     [][]model.Repository
	saveCalls int
}

func (m *mockRepoCache) Load(_ context.Context) ([]model.Repository, bool) {
	return m.repos, m.ok
}

func (m *mockRepoCache) Save(_ context.Context, repos []model.Repository) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, repos)
	return nil
}

func (m *mockRepoCache) IsStale(_ context.Context) bool {
	return m.stale
}

type mockExclusions struct {
	names []string
	calls int
}

func (m *mockExclusions) Load(_ context.Context) model.ExclusionSet {
	m.calls++
	return model.NewExclusionSet(m.names...)
}

type logEntry struct {
	Msg model.ContactMessage
	At  time.Time
}

type mockMessageLog struct {
	entries []logEntry
	err     error
}

func (m *mockMessageLog) Append(_ context.Context, msg model.ContactMessage, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, logEntry{Msg: msg, At: at})
	return nil
}

type mailerCall struct {
	Primary   model.Email
	AutoReply model.Email
}

type mockMailer struct {
	report driven.DeliveryReport
	err    error
	calls  []mailerCall
}

func (m *mockMailer) Send(_ context.Context, primary, autoReply model.Email) (driven.DeliveryReport, error) {
	m.calls = append(m.calls, mailerCall{Primary: primary, AutoReply: autoReply})
	return m.report, m.err
}
