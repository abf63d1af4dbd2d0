package web

import (
	"time"

	vm "github.com/jatinnirwann/portfolio/internal/adapter/driving/web/viewmodel"
	"github.com/jatinnirwann/portfolio/internal/domain/model"
)

// toProjectViewModel converts a listed repository and its rendered README
// into the project page view model.
func toProjectViewModel(owner string, repo model.Repository, readmeHTML string) vm.ProjectViewModel {
	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	p := vm.ProjectViewModel{
		Owner:       owner,
		Name:        repo.Name,
		Description: repo.Description,
		URL:         repo.URL,
		Language:    repo.Language,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		UpdatedAt:   formatUpdated(repo.UpdatedAt),
		Topics:      topics,
		ReadmeHTML:  readmeHTML,
	}

	switch repo.Status {
	case model.StatusCompleted:
		p.StatusClass, p.StatusLabel = "completed", "Completed"
	default:
		p.StatusClass, p.StatusLabel = "under-dev", "Under development"
	}

	return p
}

// formatUpdated renders an upstream ISO-8601 timestamp as a date. Values that
// do not parse are shown as-is.
func formatUpdated(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("Jan 2, 2006")
}
