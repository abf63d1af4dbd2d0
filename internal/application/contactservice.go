package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
	"github.com/jatinnirwann/portfolio/internal/metrics"
)

// ErrDelivery indicates the contact message could be neither mailed nor logged.
var ErrDelivery = errors.New("failed to transmit signal")

// ContactService relays contact-form submissions to the site owner. With a
// Mailer it sends mail plus an auto-reply; without one it appends to the
// message log.
type ContactService struct {
	mailer    driven.Mailer
	log       driven.MessageLog
	recipient string
	ownerName string
	now       func() time.Time
}

// NewContactService creates a ContactService. mailer may be nil, which puts
// the service in log-only mode.
func NewContactService(mailer driven.Mailer, log driven.MessageLog, recipient, ownerName string) *ContactService {
	return &ContactService{
		mailer:    mailer,
		log:       log,
		recipient: recipient,
		ownerName: ownerName,
		now:       time.Now,
	}
}

// Submit validates msg and relays it. It returns model.ErrMissingFields
// without side effects when a field is empty, and an error wrapping
// ErrDelivery when the message could not be mailed or logged. A failed
// auto-reply is logged and does not affect the result.
func (s *ContactService) Submit(ctx context.Context, msg model.ContactMessage) (model.DeliveryMode, error) {
	if err := msg.Validate(); err != nil {
		metrics.ContactSubmissions.WithLabelValues("none", "invalid").Inc()
		return "", err
	}

	if s.mailer == nil {
		return s.logMessage(ctx, msg)
	}
	return s.mailMessage(ctx, msg)
}

func (s *ContactService) logMessage(ctx context.Context, msg model.ContactMessage) (model.DeliveryMode, error) {
	slog.Warn("smtp credentials not set, logging contact message to file instead")

	if err := s.log.Append(ctx, msg, s.now()); err != nil {
		metrics.ContactSubmissions.WithLabelValues(string(model.DeliveryLogged), "error").Inc()
		return "", fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	metrics.ContactSubmissions.WithLabelValues(string(model.DeliveryLogged), "success").Inc()
	return model.DeliveryLogged, nil
}

func (s *ContactService) mailMessage(ctx context.Context, msg model.ContactMessage) (model.DeliveryMode, error) {
	// Bodies are text/plain and carry the visitor's text as typed; only
	// header values are flattened.
	email := oneLine(msg.Email)

	primary := model.Email{
		To:      s.recipient,
		ReplyTo: email,
		Subject: fmt.Sprintf("New Signal from %s (Portfolio)", oneLine(msg.Name)),
		Body: fmt.Sprintf("New Contact Form Submission:\n\nName: %s\nEmail: %s\n\nMessage:\n%s\n",
			msg.Name, msg.Email, msg.Message),
	}
	autoReply := model.Email{
		To:      email,
		Subject: fmt.Sprintf("Signal Received: Thanks for connecting, %s!", oneLine(msg.Name)),
		Body: fmt.Sprintf("Hi %s,\n\n"+
			"Thank you for reaching out! I've securely received your message from my portfolio.\n\n"+
			"This is an automated confirmation to let you know I'll be reviewing it shortly.\n"+
			"If your inquiry requires a response, I'll get back to you as soon as possible.\n\n"+
			"Best regards,\n%s\n%s\n",
			msg.Name, s.ownerName, s.recipient),
	}

	report, err := s.mailer.Send(ctx, primary, autoReply)
	if err != nil {
		slog.Error("sending contact email", "error", err)
		metrics.ContactSubmissions.WithLabelValues(string(model.DeliveryEmailed), "error").Inc()
		return "", fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	if report.AutoReplyErr != nil {
		slog.Warn("failed to send auto-reply", "to", email, "error", report.AutoReplyErr)
	} else {
		slog.Info("auto-reply sent", "to", email)
	}

	metrics.ContactSubmissions.WithLabelValues(string(model.DeliveryEmailed), "success").Inc()
	return model.DeliveryEmailed, nil
}

// oneLine collapses whitespace, including line breaks, so that visitor input
// is safe in a header.
func oneLine(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
