package driven

import (
	"context"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
)

// DeliveryReport describes the best-effort part of a mail delivery.
type DeliveryReport struct {
	// AutoReplyErr is set when the primary mail was delivered but the
	// auto-reply to the visitor was not.
	AutoReplyErr error
}

// Mailer defines the driven port for outgoing mail.
// Send delivers primary and then autoReply over the same session. Only a
// failure of primary is returned as an error.
type Mailer interface {
	Send(ctx context.Context, primary, autoReply model.Email) (DeliveryReport, error)
}
