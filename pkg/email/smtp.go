package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"

	"github.com/notifykit/notifykit/pkg/notify"
)

// SMTPSender delivers notifications as HTML email over plain SMTP.
// Recipients are fixed at construction and never mutated afterwards.
type SMTPSender struct {
	cfg        SMTPConfig
	recipients []string

	// sendMail is swapped out in tests; defaults to smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ notify.Sender = (*SMTPSender)(nil)

// NewSMTPSender creates an email sender for the given recipients.
// Configuration problems (missing host, bad addresses, no recipients) are
// surfaced here rather than at send time.
func NewSMTPSender(cfg SMTPConfig, recipients ...string) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("%w: Port must be positive", ErrInvalidConfig)
	}
	if cfg.From == "" || !emailRegex.MatchString(cfg.From) {
		return nil, fmt.Errorf("%w: From must be a valid email address", ErrInvalidConfig)
	}
	if err := validRecipients(recipients); err != nil {
		return nil, err
	}
	return &SMTPSender{
		cfg:        cfg,
		recipients: recipients,
		sendMail:   smtp.SendMail,
	}, nil
}

// Send delivers one email to all configured recipients. An empty subject or
// an empty message is allowed; the mail is sent with whatever is present.
func (s *SMTPSender) Send(ctx context.Context, subject, message string) (notify.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return notify.Outcome{}, err
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	msg := []byte("From: " + s.cfg.From + "\r\n" +
		"To: " + strings.Join(s.recipients, ", ") + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		message)

	if err := s.sendMail(addr, auth, s.cfg.From, s.recipients, msg); err != nil {
		return notify.Outcome{}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return notify.NewOutcome(
		"smtp-"+uuid.New().String(),
		fmt.Sprintf("email sent to %d recipient(s)", len(s.recipients)),
	), nil
}
