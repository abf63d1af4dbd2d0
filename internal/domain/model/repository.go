package model

import (
	"cmp"
	"slices"
	"strings"
)

// Defaults applied when the upstream listing omits a field.
const (
	DefaultDescription = "No description available"
	DefaultLanguage    = "Unknown"
)

// Repository is a public repository as displayed on the portfolio. The JSON
// field names are the ones stored in the cache file and served to the
// front-end.
type Repository struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	URL         string     `json:"html_url"`
	Language    string     `json:"language"`
	Stars       int        `json:"stargazers_count"`
	Forks       int        `json:"forks_count"`
	UpdatedAt   string     `json:"updated_at"`
	Topics      []string   `json:"topics"`
	Status      RepoStatus `json:"status"`
}

// UpstreamRepo is one entry of the GitHub user repository listing, before
// filtering and classification. Description and Language are empty when the
// API returned null.
type UpstreamRepo struct {
	Name        string
	Description string
	URL         string
	Language    string
	Stars       int
	Forks       int
	UpdatedAt   string
	Topics      []string
	Fork        bool
}

// NewRepository builds a Repository from an upstream entry, applying the
// display defaults for absent fields.
func NewRepository(u UpstreamRepo, status RepoStatus) Repository {
	description := u.Description
	if description == "" {
		description = DefaultDescription
	}
	language := u.Language
	if language == "" {
		language = DefaultLanguage
	}
	topics := u.Topics
	if topics == nil {
		topics = []string{}
	}

	return Repository{
		Name:        u.Name,
		Description: description,
		URL:         u.URL,
		Language:    language,
		Stars:       u.Stars,
		Forks:       u.Forks,
		UpdatedAt:   u.UpdatedAt,
		Topics:      topics,
		Status:      status,
	}
}

// SortRepositories orders repos by star count, then by last update, both
// descending. UpdatedAt values are ISO-8601 strings and compare correctly as
// text.
func SortRepositories(repos []Repository) {
	slices.SortStableFunc(repos, func(a, b Repository) int {
		if c := cmp.Compare(b.Stars, a.Stars); c != 0 {
			return c
		}
		return strings.Compare(b.UpdatedAt, a.UpdatedAt)
	})
}

// FilterExcluded returns the repos whose names are not in excluded. The
// input slice is not modified.
func FilterExcluded(repos []Repository, excluded ExclusionSet) []Repository {
	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if excluded.Contains(r.Name) {
			continue
		}
		out = append(out, r)
	}
	return out
}
