package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mrz1836/postmark"

	"github.com/notifykit/notifykit/pkg/notify"
)

// postmarkAPI is the subset of the Postmark client this sender uses,
// narrowed so unit tests can fake the provider.
type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
	SendTemplatedEmail(ctx context.Context, email postmark.TemplatedEmail) (postmark.EmailResponse, error)
}

// PostmarkSender delivers notifications through Postmark's transactional
// API, either as plain HTML email or through a server-side template when
// PostmarkConfig.TemplateAlias is set.
type PostmarkSender struct {
	client     postmarkAPI
	cfg        PostmarkConfig
	recipients []string
}

var _ notify.Sender = (*PostmarkSender)(nil)

// NewPostmarkSender creates a Postmark-backed email sender.
// Both tokens are required so a misconfigured production deployment fails at
// startup instead of silently dropping mail.
func NewPostmarkSender(cfg PostmarkConfig, recipients ...string) (*PostmarkSender, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", ErrInvalidConfig)
	}
	if cfg.AccountToken == "" {
		return nil, fmt.Errorf("%w: AccountToken is required", ErrInvalidConfig)
	}
	return newPostmarkSender(postmark.NewClient(cfg.ServerToken, cfg.AccountToken), cfg, recipients)
}

// NewPostmarkSenderWithClient creates a sender around an existing client,
// mainly for tests and custom transports.
func NewPostmarkSenderWithClient(client postmarkAPI, cfg PostmarkConfig, recipients ...string) (*PostmarkSender, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client is required", ErrInvalidConfig)
	}
	return newPostmarkSender(client, cfg, recipients)
}

func newPostmarkSender(client postmarkAPI, cfg PostmarkConfig, recipients []string) (*PostmarkSender, error) {
	if cfg.SenderEmail == "" || !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if err := validRecipients(recipients); err != nil {
		return nil, err
	}
	return &PostmarkSender{client: client, cfg: cfg, recipients: recipients}, nil
}

func (s *PostmarkSender) Send(ctx context.Context, subject, message string) (notify.Outcome, error) {
	to := strings.Join(s.recipients, ",")

	var (
		resp postmark.EmailResponse
		err  error
	)
	if s.cfg.TemplateAlias != "" {
		resp, err = s.client.SendTemplatedEmail(ctx, postmark.TemplatedEmail{
			TemplateAlias: s.cfg.TemplateAlias,
			TemplateModel: map[string]any{
				"subject": subject,
				"message": message,
			},
			From: s.cfg.SenderEmail,
			To:   to,
		})
	} else {
		resp, err = s.client.SendEmail(ctx, postmark.Email{
			From:     s.cfg.SenderEmail,
			To:       to,
			Subject:  subject,
			HTMLBody: message,
		})
	}
	if err != nil {
		return notify.Outcome{}, errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return notify.Outcome{}, errors.Join(
			ErrSendFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}

	providerID := resp.MessageID
	if providerID == "" {
		providerID = uuid.New().String()
	}
	return notify.NewOutcome(
		"postmark-"+providerID,
		fmt.Sprintf("email sent to %d recipient(s)", len(s.recipients)),
	), nil
}
