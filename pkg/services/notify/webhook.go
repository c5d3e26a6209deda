package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/de-tools/vmwatch/pkg/models/api"
	"github.com/de-tools/vmwatch/pkg/models/domain"
)

// Notifier posts messages to a chat channel. One result is returned per
// message, in input order, so callers can account for partial failures.
type Notifier interface {
	Notify(ctx context.Context, channel string, texts []string) []domain.DeliveryResult
}

// Factory builds a Notifier bound to a webhook URL. The URL is secret
// material resolved at run time, so it cannot be captured at wiring time.
type Factory func(webhookURL string) Notifier

type webhookNotifier struct {
	webhookURL string
	client     *http.Client
}

func NewWebhookNotifier(webhookURL string, timeout time.Duration) Notifier {
	return &webhookNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
	}
}

func WebhookFactory(timeout time.Duration) Factory {
	return func(webhookURL string) Notifier {
		return NewWebhookNotifier(webhookURL, timeout)
	}
}

// Notify posts every message in order. A failed post does not stop the
// remaining ones.
func (n *webhookNotifier) Notify(ctx context.Context, channel string, texts []string) []domain.DeliveryResult {
	results := make([]domain.DeliveryResult, 0, len(texts))
	for _, text := range texts {
		results = append(results, domain.DeliveryResult{
			Text: text,
			Err:  n.send(ctx, channel, text),
		})
	}

	return results
}

func (n *webhookNotifier) send(ctx context.Context, channel, text string) error {
	payload, err := json.Marshal(api.WebhookMessage{Channel: channel, Text: text})
	if err != nil {
		return &DeliveryError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return &DeliveryError{Err: redactURL(err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return &DeliveryError{Err: redactURL(err)}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DeliveryError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	return nil
}

// redactURL strips the *url.Error wrapper the http client adds. The wrapper
// embeds the full request URL, and webhook URLs carry a secret path.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
