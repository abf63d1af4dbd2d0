package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jatinnirwann/portfolio/internal/application"
	"github.com/jatinnirwann/portfolio/internal/domain/model"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
)

var validMessage = model.ContactMessage{
	Name:    "Ada",
	Email:   "ada@example.com",
	Message: "Hello there",
}

func TestContactService_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		msg  model.ContactMessage
	}{
		{"no name", model.ContactMessage{Email: "a@b.c", Message: "hi"}},
		{"no email", model.ContactMessage{Name: "A", Message: "hi"}},
		{"no message", model.ContactMessage{Name: "A", Email: "a@b.c"}},
		{"empty", model.ContactMessage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &mockMessageLog{}
			mailer := &mockMailer{}

			_, errLogged := application.NewContactService(nil, log, "me@example.com", "Me").Submit(context.Background(), tt.msg)
			_, errMailed := application.NewContactService(mailer, log, "me@example.com", "Me").Submit(context.Background(), tt.msg)

			require.ErrorIs(t, errLogged, model.ErrMissingFields)
			require.ErrorIs(t, errMailed, model.ErrMissingFields)
			assert.Empty(t, log.entries)
			assert.Empty(t, mailer.calls)
		})
	}
}

func TestContactService_LoggedMode(t *testing.T) {
	log := &mockMessageLog{}
	svc := application.NewContactService(nil, log, "me@example.com", "Me")

	mode, err := svc.Submit(context.Background(), validMessage)

	require.NoError(t, err)
	assert.Equal(t, model.DeliveryLogged, mode)
	require.Len(t, log.entries, 1)
	assert.Equal(t, validMessage, log.entries[0].Msg)
	assert.False(t, log.entries[0].At.IsZero())
}

func TestContactService_LoggedMode_AppendFailure(t *testing.T) {
	appendErr := errors.New("permission denied")
	svc := application.NewContactService(nil, &mockMessageLog{err: appendErr}, "me@example.com", "Me")

	_, err := svc.Submit(context.Background(), validMessage)

	require.ErrorIs(t, err, application.ErrDelivery)
	require.ErrorIs(t, err, appendErr)
}

func TestContactService_EmailedMode(t *testing.T) {
	log := &mockMessageLog{}
	mailer := &mockMailer{}
	svc := application.NewContactService(mailer, log, "me@example.com", "Jatin")

	mode, err := svc.Submit(context.Background(), validMessage)

	require.NoError(t, err)
	assert.Equal(t, model.DeliveryEmailed, mode)
	assert.Empty(t, log.entries, "mailed messages are not logged")
	require.Len(t, mailer.calls, 1)

	primary := mailer.calls[0].Primary
	assert.Equal(t, "me@example.com", primary.To)
	assert.Equal(t, "ada@example.com", primary.ReplyTo)
	assert.Equal(t, "New Signal from Ada (Portfolio)", primary.Subject)
	assert.Contains(t, primary.Body, "Name: Ada\nEmail: ada@example.com")
	assert.Contains(t, primary.Body, "Message:\nHello there")

	reply := mailer.calls[0].AutoReply
	assert.Equal(t, "ada@example.com", reply.To)
	assert.Empty(t, reply.ReplyTo)
	assert.Equal(t, "Signal Received: Thanks for connecting, Ada!", reply.Subject)
	assert.Contains(t, reply.Body, "Hi Ada,")
	assert.Contains(t, reply.Body, "Best regards,\nJatin\nme@example.com")
}

func TestContactService_EmailedMode_BodyKeepsVisitorText(t *testing.T) {
	mailer := &mockMailer{}
	svc := application.NewContactService(mailer, &mockMessageLog{}, "me@example.com", "Me")
	text := "Use <div> wrappers and <script>x()</script> tags.\nTom & Jerry <b>bold</b>"

	_, err := svc.Submit(context.Background(), model.ContactMessage{
		Name:    "Eve <Dev>",
		Email:   "eve@example.com",
		Message: text,
	})

	require.NoError(t, err)
	require.Len(t, mailer.calls, 1)
	primary := mailer.calls[0].Primary
	assert.Contains(t, primary.Body, "Name: Eve <Dev>\n")
	assert.Contains(t, primary.Body, "Message:\n"+text+"\n")
	assert.Contains(t, mailer.calls[0].AutoReply.Body, "Hi Eve <Dev>,")
}

func TestContactService_EmailedMode_FlattensHeaderBreaks(t *testing.T) {
	mailer := &mockMailer{}
	svc := application.NewContactService(mailer, &mockMessageLog{}, "me@example.com", "Me")

	_, err := svc.Submit(context.Background(), model.ContactMessage{
		Name:    "Eve\r\nBcc: victim@example.com",
		Email:   "eve@example.com\r\n",
		Message: "hi",
	})

	require.NoError(t, err)
	require.Len(t, mailer.calls, 1)
	call := mailer.calls[0]
	assert.Equal(t, "New Signal from Eve Bcc: victim@example.com (Portfolio)", call.Primary.Subject)
	assert.Equal(t, "eve@example.com", call.Primary.ReplyTo)
	assert.Equal(t, "eve@example.com", call.AutoReply.To)
}

func TestContactService_AutoReplyFailureStillSucceeds(t *testing.T) {
	mailer := &mockMailer{report: driven.DeliveryReport{AutoReplyErr: errors.New("mailbox unavailable")}}
	svc := application.NewContactService(mailer, &mockMessageLog{}, "me@example.com", "Me")

	mode, err := svc.Submit(context.Background(), validMessage)

	require.NoError(t, err)
	assert.Equal(t, model.DeliveryEmailed, mode)
}

func TestContactService_PrimaryFailure(t *testing.T) {
	sendErr := errors.New("535 authentication failed")
	log := &mockMessageLog{}
	svc := application.NewContactService(&mockMailer{err: sendErr}, log, "me@example.com", "Me")

	mode, err := svc.Submit(context.Background(), validMessage)

	require.ErrorIs(t, err, application.ErrDelivery)
	require.ErrorIs(t, err, sendErr)
	assert.Empty(t, mode)
	assert.Empty(t, log.entries, "a failed mail is not silently logged")
}
