package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"oficina_os/internal/usecase/interfaces"
)

// WebhookDispatcher posts pickup notifications to the messaging webhook
// configured via NOTIFY_WEBHOOK_URL. With no URL configured it logs the
// message and reports success, which keeps local setups working without a
// messaging provider.
type WebhookDispatcher struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

var _ interfaces.INotificationDispatcher = (*WebhookDispatcher)(nil)

func NewWebhookDispatcher(log *logrus.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		url:    os.Getenv("NOTIFY_WEBHOOK_URL"),
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

type webhookPayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (d *WebhookDispatcher) Send(ctx context.Context, phone, message string) error {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return err
	}

	if d.url == "" {
		d.log.WithFields(logrus.Fields{
			"module": "notification",
			"phone":  normalized,
		}).Info(message)
		return nil
	}

	body, err := json.Marshal(webhookPayload{Phone: normalized, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}
	return nil
}
