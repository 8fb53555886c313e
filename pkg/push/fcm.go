package push

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"

	"github.com/notifykit/notifykit/pkg/notify"
)

// MessagingClient is the subset of the Firebase Messaging API this sender
// uses. *messaging.Client satisfies it; tests supply a fake.
type MessagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMSender delivers notifications through Firebase Cloud Messaging to
// exactly one target: a device registration token, a topic, or a condition
// expression.
type FCMSender struct {
	client    MessagingClient
	token     string
	topic     string
	condition string
	data      map[string]string
}

var _ notify.Sender = (*FCMSender)(nil)

// Option configures an FCMSender target.
type Option func(*FCMSender)

// WithToken targets a single device registration token.
func WithToken(token string) Option {
	return func(s *FCMSender) { s.token = token }
}

// WithTopic targets all devices subscribed to a topic.
func WithTopic(topic string) Option {
	return func(s *FCMSender) { s.topic = topic }
}

// WithCondition targets devices matching a topic condition expression,
// e.g. "'ops' in topics && 'oncall' in topics".
func WithCondition(condition string) Option {
	return func(s *FCMSender) { s.condition = condition }
}

// WithData attaches custom key/value payload data to every push.
func WithData(data map[string]string) Option {
	return func(s *FCMSender) { s.data = data }
}

// NewFCMSender creates a push sender. Exactly one of WithToken, WithTopic,
// or WithCondition must be supplied.
func NewFCMSender(client MessagingClient, opts ...Option) (*FCMSender, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client is required", ErrInvalidConfig)
	}
	s := &FCMSender{client: client}
	for _, opt := range opts {
		opt(s)
	}

	targets := 0
	for _, t := range []string{s.token, s.topic, s.condition} {
		if t != "" {
			targets++
		}
	}
	if targets != 1 {
		return nil, fmt.Errorf("%w: exactly one of token, topic, or condition is required", ErrInvalidConfig)
	}
	return s, nil
}

func (s *FCMSender) Send(ctx context.Context, subject, message string) (notify.Outcome, error) {
	msg := &messaging.Message{
		Token:     s.token,
		Topic:     s.topic,
		Condition: s.condition,
		Data:      s.data,
		Notification: &messaging.Notification{
			Title: subject,
			Body:  message,
		},
	}

	id, err := s.client.Send(ctx, msg)
	if err != nil {
		return notify.Outcome{}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if id == "" {
		id = uuid.New().String()
	}

	return notify.NewOutcome("fcm-"+id, "push sent to "+s.targetDescription()), nil
}

func (s *FCMSender) targetDescription() string {
	switch {
	case s.token != "":
		return "device token"
	case s.topic != "":
		return "topic " + s.topic
	default:
		return "condition " + s.condition
	}
}
