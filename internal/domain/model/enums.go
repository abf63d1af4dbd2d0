package model

// RepoStatus is the completion status inferred from a repository's README.
type RepoStatus string

const (
	StatusUnderDev  RepoStatus = "under dev"
	StatusCompleted RepoStatus = "completed"
)

// RepoSource reports where a repository listing was served from.
type RepoSource string

const (
	SourceCache      RepoSource = "cache"
	SourceGitHubAPI  RepoSource = "github_api"
	SourceCacheStale RepoSource = "cache_stale"
)

// DeliveryMode reports how a contact message was relayed.
type DeliveryMode string

const (
	DeliveryEmailed DeliveryMode = "emailed"
	DeliveryLogged  DeliveryMode = "logged"
)
