package model

// CacheDocument is the on-disk shape of the repository cache. Timestamp is
// the ISO-8601 time at which Repos was populated.
type CacheDocument struct {
	Timestamp string       `json:"timestamp"`
	Repos     []Repository `json:"repos"`
}
