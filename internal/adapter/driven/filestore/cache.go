// Package filestore implements the file-backed driven ports: the repository
// cache, the exclusion list and the contact message log.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/natefinch/atomic"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
)

// StaleAfter is the maximum cache age before a refresh is required.
const StaleAfter = 2 * time.Hour

// Compile-time interface satisfaction check.
var _ driven.RepoCache = (*RepoCache)(nil)

// timestampLayouts are tried in order when parsing the cache timestamp.
// Zone-less layouts cover caches written by older deployments that stored
// local wall-clock time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// RepoCache implements driven.RepoCache over a single JSON file.
type RepoCache struct {
	path string
	now  func() time.Time
}

// NewRepoCache creates a RepoCache backed by the file at path.
func NewRepoCache(path string) *RepoCache {
	return &RepoCache{path: path, now: time.Now}
}

// cacheDocument mirrors model.CacheDocument with pointer fields so that a
// missing key can be told apart from an empty value.
type cacheDocument struct {
	Timestamp *string             `json:"timestamp"`
	Repos     *[]model.Repository `json:"repos"`
}

// Load reads the cache file. The current shape is an object with a "repos"
// key; a bare array is the legacy shape and is returned as-is (the next Save
// rewrites it in the current shape). Anything else yields ok=false.
func (c *RepoCache) Load(_ context.Context) ([]model.Repository, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("reading repo cache", "path", c.path, "error", err)
		}
		return nil, false
	}

	var doc cacheDocument
	if err := json.Unmarshal(data, &doc); err == nil && doc.Repos != nil {
		return *doc.Repos, true
	}

	var legacy []model.Repository
	if err := json.Unmarshal(data, &legacy); err == nil {
		slog.Info("legacy repo cache format detected, will rewrite on next save", "path", c.path)
		return legacy, true
	}

	slog.Warn("invalid repo cache format", "path", c.path)
	return nil, false
}

// Save overwrites the cache file with repos and the current timestamp. The
// file is replaced atomically, so readers never see a partial document.
func (c *RepoCache) Save(_ context.Context, repos []model.Repository) error {
	if repos == nil {
		repos = []model.Repository{}
	}
	doc := model.CacheDocument{
		Timestamp: c.now().Format(time.RFC3339Nano),
		Repos:     repos,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding repo cache: %w", err)
	}

	if err := atomic.WriteFile(c.path, &buf); err != nil {
		return fmt.Errorf("writing repo cache %s: %w", c.path, err)
	}

	slog.Info("repo cache saved", "path", c.path, "count", len(repos))
	return nil
}

// IsStale reports whether the cache is missing, lacks a parseable timestamp,
// or is older than StaleAfter. Every failure counts as stale.
func (c *RepoCache) IsStale(_ context.Context) bool {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return true
	}

	var doc cacheDocument
	if err := json.Unmarshal(data, &doc); err != nil || doc.Timestamp == nil {
		slog.Info("repo cache missing timestamp, considering stale", "path", c.path)
		return true
	}

	ts, err := parseTimestamp(*doc.Timestamp)
	if err != nil {
		slog.Warn("repo cache timestamp unparseable, considering stale", "timestamp", *doc.Timestamp, "error", err)
		return true
	}

	age := c.now().Sub(ts)
	stale := age > StaleAfter
	slog.Debug("repo cache age", "age", age.Round(time.Second), "stale", stale)
	return stale
}

func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
