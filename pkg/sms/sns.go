package sms

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/google/uuid"

	"github.com/notifykit/notifykit/pkg/notify"
)

// Config holds the optional SMS settings.
type Config struct {
	// SenderID is the alphanumeric sender shown on the receiving handset,
	// where the destination country supports it.
	SenderID string `env:"SMS_SENDER_ID"`
}

// SNSClient is the subset of the AWS SNS API this sender uses, narrowed so
// unit tests can fake the provider.
type SNSClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSender delivers notifications as SMS through AWS SNS, publishing
// directly to phone numbers fixed at construction.
//
// SMS has no subject line, so a non-empty subject is folded into the body as
// "subject: message".
type SNSSender struct {
	client       SNSClient
	cfg          Config
	phoneNumbers []string
}

var _ notify.Sender = (*SNSSender)(nil)

// NewSNSSender creates an SMS sender publishing to the given phone numbers.
func NewSNSSender(client SNSClient, cfg Config, phoneNumbers ...string) (*SNSSender, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client is required", ErrInvalidConfig)
	}
	if len(phoneNumbers) == 0 {
		return nil, ErrNoRecipients
	}
	for _, p := range phoneNumbers {
		if p == "" {
			return nil, fmt.Errorf("%w: empty phone number", ErrInvalidConfig)
		}
	}
	return &SNSSender{client: client, cfg: cfg, phoneNumbers: phoneNumbers}, nil
}

// NewSNSSenderFromEnv builds the SNS client from the default AWS credential
// chain (environment, shared config, instance role).
func NewSNSSenderFromEnv(ctx context.Context, cfg Config, phoneNumbers ...string) (*SNSSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return NewSNSSender(sns.NewFromConfig(awsCfg), cfg, phoneNumbers...)
}

func (s *SNSSender) Send(ctx context.Context, subject, message string) (notify.Outcome, error) {
	body := message
	if subject != "" {
		body = subject + ": " + message
	}

	var attrs map[string]types.MessageAttributeValue
	if s.cfg.SenderID != "" {
		attrs = map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(s.cfg.SenderID),
			},
		}
	}

	var firstID string
	for _, phone := range s.phoneNumbers {
		out, err := s.client.Publish(ctx, &sns.PublishInput{
			PhoneNumber:       aws.String(phone),
			Message:           aws.String(body),
			MessageAttributes: attrs,
		})
		if err != nil {
			return notify.Outcome{}, fmt.Errorf("%w: publish to %s: %v", ErrSendFailed, phone, err)
		}
		if firstID == "" && out.MessageId != nil {
			firstID = *out.MessageId
		}
	}

	if firstID == "" {
		firstID = uuid.New().String()
	}
	return notify.NewOutcome(
		"sns-"+firstID,
		fmt.Sprintf("sms sent to %d number(s)", len(s.phoneNumbers)),
	), nil
}
