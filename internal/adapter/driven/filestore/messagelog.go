package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
)

var _ driven.MessageLog = (*MessageLog)(nil)

// MessageLog implements driven.MessageLog as an append-only file with one
// JSON object per line. Safe for a single writer only.
type MessageLog struct {
	path string
}

// NewMessageLog creates a MessageLog appending to the file at path.
func NewMessageLog(path string) *MessageLog {
	return &MessageLog{path: path}
}

type messageEntry struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// Append writes msg as a single JSON line stamped with at.
func (l *MessageLog) Append(_ context.Context, msg model.ContactMessage, at time.Time) error {
	line, err := json.Marshal(messageEntry{
		Timestamp: at.Format(time.RFC3339Nano),
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
	})
	if err != nil {
		return fmt.Errorf("encoding message entry: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening message log %s: %w", l.path, err)
	}

	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("appending to message log %s: %w", l.path, err)
	}
	return f.Close()
}
