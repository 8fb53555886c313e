package chat

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/notifykit/notifykit/pkg/notify"
)

// WebhookSender delivers notifications as a JSON POST to a chat service
// incoming-webhook URL (Slack, Mattermost, or anything accepting
// {"subject": ..., "message": ...}).
//
// When constructed with WithSecret the request carries an HMAC-SHA256
// signature bound to a timestamp, following the common Stripe-style scheme,
// so receivers can authenticate and reject replays.
type WebhookSender struct {
	url    string
	secret string
	client *http.Client
}

var _ notify.Sender = (*WebhookSender)(nil)

// WebhookOption configures a WebhookSender.
type WebhookOption func(*WebhookSender)

// WithSecret enables request signing with the given shared secret.
func WithSecret(secret string) WebhookOption {
	return func(s *WebhookSender) { s.secret = secret }
}

// WithHTTPClient overrides the HTTP client, for proxies or tests.
func WithHTTPClient(client *http.Client) WebhookOption {
	return func(s *WebhookSender) {
		if client != nil {
			s.client = client
		}
	}
}

// NewWebhookSender creates a webhook chat sender for the given URL.
func NewWebhookSender(webhookURL string, opts ...WebhookOption) (*WebhookSender, error) {
	u, err := url.Parse(webhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: webhook URL must be a valid http(s) URL", ErrInvalidConfig)
	}

	s := &WebhookSender{
		url: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type webhookPayload struct {
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
	SentAt  string `json:"sent_at"`
}

func (s *WebhookSender) Send(ctx context.Context, subject, message string) (notify.Outcome, error) {
	payload, err := json.Marshal(webhookPayload{
		Subject: subject,
		Message: message,
		SentAt:  time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return notify.Outcome{}, fmt.Errorf("%w: marshal payload: %v", ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return notify.Outcome{}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	deliveryID := uuid.New().String()
	req.Header.Set("X-Webhook-ID", deliveryID)
	if s.secret != "" {
		ts := time.Now().Unix()
		req.Header.Set("X-Webhook-Timestamp", strconv.FormatInt(ts, 10))
		req.Header.Set("X-Webhook-Signature", sign(s.secret, ts, payload))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return notify.Outcome{}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return notify.Outcome{}, fmt.Errorf("%w: unexpected status %d", ErrSendFailed, resp.StatusCode)
	}

	return notify.NewOutcome("hook-"+deliveryID, "chat webhook delivered"), nil
}

// sign binds the signature to the timestamp to prevent replay:
// HMAC-SHA256(secret, timestamp + "." + payload).
func sign(secret string, timestamp int64, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(h, "%d.%s", timestamp, payload)
	return hex.EncodeToString(h.Sum(nil))
}
