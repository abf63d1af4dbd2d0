// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// ProjectViewModel holds presentation-ready data for a single project page.
type ProjectViewModel struct {
	Owner       string
	Name        string
	Description string
	URL         string
	Language    string
	Stars       int
	Forks       int
	UpdatedAt   string
	Topics      []string

	// StatusClass is a CSS-safe form of the status; StatusLabel is shown.
	StatusClass string
	StatusLabel string

	// ReadmeHTML is sanitized HTML, safe to write unescaped.
	ReadmeHTML string
}
