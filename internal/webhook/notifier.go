package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Notification carries one question/answer pair to the receiver.
type Notification struct {
	Question string `json:"user_question"`
	Answer   string `json:"ai_response"`
	Email    string `json:"user_email"`
}

// Notifier delivers notifications to an external receiver.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// HTTPNotifier posts notifications as JSON to a webhook URL. Exactly one
// attempt is made per notification.
type HTTPNotifier struct {
	url        string
	httpClient *http.Client
}

// New constructs an HTTPNotifier.
func New(url string, timeout time.Duration) (*HTTPNotifier, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("WEBHOOK_URL is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPNotifier{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Notify posts the notification. A non-2xx status is reported as an error;
// the response body is not relied upon.
func (w *HTTPNotifier) Notify(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}
	return nil
}

// Nop is a Notifier that does nothing, used when no webhook is configured.
type Nop struct{}

// Notify discards the notification.
func (Nop) Notify(ctx context.Context, n Notification) error {
	_ = ctx
	_ = n
	return nil
}

var _ Notifier = (*HTTPNotifier)(nil)
var _ Notifier = Nop{}
