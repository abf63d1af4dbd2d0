// Package smtp implements the Mailer port over an authenticated SMTP relay
// using go-mail.
package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Mailer = (*Mailer)(nil)

// dialTimeout bounds connection setup and each SMTP command.
const dialTimeout = 15 * time.Second

// Mailer implements driven.Mailer. It opens one STARTTLS session per Send,
// authenticates with PLAIN auth when a password is set and sends from the
// account address.
type Mailer struct {
	host      string
	port      int
	username  string
	password  string
	tlsPolicy mail.TLSPolicy
}

// NewMailer creates a Mailer for the given relay and account.
func NewMailer(host string, port int, username, password string) *Mailer {
	return &Mailer{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		tlsPolicy: mail.TLSMandatory,
	}
}

// Send delivers primary and then autoReply over one session. A failure to
// build, dial, authenticate or send primary is returned as an error; an
// autoReply failure is only reported in the DeliveryReport. The visitor's
// address only affects autoReply.
func (m *Mailer) Send(ctx context.Context, primary, autoReply model.Email) (driven.DeliveryReport, error) {
	var report driven.DeliveryReport

	primaryMsg, err := m.buildMessage(primary)
	if err != nil {
		return report, fmt.Errorf("building message to %s: %w", primary.To, err)
	}

	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTLSPolicy(m.tlsPolicy),
		mail.WithTimeout(dialTimeout),
	}
	if m.password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	}

	client, err := mail.NewClient(m.host, opts...)
	if err != nil {
		return report, fmt.Errorf("configuring smtp client for %s:%d: %w", m.host, m.port, err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return report, fmt.Errorf("connecting to smtp relay %s:%d: %w", m.host, m.port, err)
	}
	defer func() { _ = client.Close() }()

	if err := client.Send(primaryMsg); err != nil {
		return report, fmt.Errorf("sending message to %s: %w", primary.To, err)
	}

	replyMsg, err := m.buildMessage(autoReply)
	if err != nil {
		report.AutoReplyErr = fmt.Errorf("building auto-reply to %s: %w", autoReply.To, err)
		return report, nil
	}
	if err := client.Send(replyMsg); err != nil {
		report.AutoReplyErr = fmt.Errorf("sending auto-reply to %s: %w", autoReply.To, err)
	}

	return report, nil
}

func (m *Mailer) buildMessage(e model.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.username); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.username, err)
	}
	if err := msg.To(e.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", e.To, err)
	}
	if e.ReplyTo != "" {
		// Reply-To carries visitor input, which is never format-checked.
		// An address that does not parse is still passed through verbatim.
		if err := msg.ReplyTo(e.ReplyTo); err != nil {
			slog.Warn("reply-to is not a valid address, setting it verbatim", "reply_to", e.ReplyTo, "error", err)
			msg.SetGenHeader(mail.HeaderReplyTo, e.ReplyTo)
		}
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(mail.TypeTextPlain, e.Body)
	return msg, nil
}
