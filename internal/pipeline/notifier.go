package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kurochkinivan/image_processor/internal/domain"
)

// WebhookNotifier posts the completion callback to the request's callback
// URL. The payload carries exactly two string fields: request_id and status.
type WebhookNotifier struct {
	log      *slog.Logger
	client   *http.Client
	attempts int
}

func NewWebhookNotifier(log *slog.Logger, timeout time.Duration, attempts int) *WebhookNotifier {
	if attempts < 1 {
		attempts = 1
	}

	return &WebhookNotifier{
		log:      log,
		client:   &http.Client{Timeout: timeout},
		attempts: attempts,
	}
}

type webhookPayload struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

// Notify is best-effort: delivery failures are logged and swallowed, they
// never alter the request's already-terminal state.
func (n *WebhookNotifier) Notify(ctx context.Context, callbackURL, requestID string, status domain.Status) {
	if callbackURL == "" {
		return
	}

	log := n.log.With(
		slog.String("request_id", requestID),
		slog.String("callback_url", callbackURL),
	)

	payload, err := json.Marshal(webhookPayload{
		RequestID: requestID,
		Status:    string(status),
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to marshal webhook payload", slog.String("err", err.Error()))
		return
	}

	for attempt := 1; attempt <= n.attempts; attempt++ {
		err := n.post(ctx, callbackURL, payload)
		if err == nil {
			log.InfoContext(ctx, "webhook delivered", slog.Int("attempt", attempt))
			return
		}

		log.WarnContext(ctx, "failed to deliver webhook",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", n.attempts),
			slog.String("err", err.Error()),
		)
	}
}

func (n *WebhookNotifier) post(ctx context.Context, callbackURL string, payload []byte) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callbackURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer func() { err = errors.Join(err, resp.Body.Close()) }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	return nil
}
