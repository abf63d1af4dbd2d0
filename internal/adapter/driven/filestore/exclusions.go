package filestore

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
)

var _ driven.ExclusionSource = (*ExclusionList)(nil)

// ExclusionList implements driven.ExclusionSource over a newline-delimited
// text file. Blank lines and lines starting with '#' are ignored.
type ExclusionList struct {
	path string
}

// NewExclusionList creates an ExclusionList reading the file at path.
func NewExclusionList(path string) *ExclusionList {
	return &ExclusionList{path: path}
}

// Load reads the file on every call so edits apply without a restart. A
// missing or unreadable file yields an empty set.
func (e *ExclusionList) Load(_ context.Context) model.ExclusionSet {
	set := model.ExclusionSet{}

	f, err := os.Open(e.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("opening exclusion list", "path", e.path, "error", err)
		}
		return set
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		slog.Error("reading exclusion list", "path", e.path, "error", err)
		return model.ExclusionSet{}
	}

	slog.Info("exclusion list loaded", "path", e.path, "count", len(set))
	return set
}
