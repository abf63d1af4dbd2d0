package driven

import (
	"context"
	"time"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
)

// MessageLog records contact messages when mail delivery is not configured.
type MessageLog interface {
	Append(ctx context.Context, msg model.ContactMessage, at time.Time) error
}
