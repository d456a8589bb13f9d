package push

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"salon-reservas/internal/pkg/config"
)

const (
	pushoverEndpoint = "https://api.pushover.net/1/messages.json"
	defaultTitle     = "Alerta de Salón de Eventos"
)

// PushoverNotifier sends push alerts to the venue administrator's
// phone. Unconfigured keys disable it silently.
type PushoverNotifier struct {
	token   string
	userKey string
	client  *http.Client
}

func NewPushoverNotifier(cfg config.PushConfig) *PushoverNotifier {
	return &PushoverNotifier{
		token:   cfg.PushoverToken,
		userKey: cfg.PushoverUserKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *PushoverNotifier) Enabled() bool {
	return n.token != "" && n.userKey != ""
}

func (n *PushoverNotifier) Send(ctx context.Context, title, message string) error {
	if !n.Enabled() {
		return nil
	}
	if title == "" {
		title = defaultTitle
	}

	form := url.Values{}
	form.Set("token", n.token)
	form.Set("user", n.userKey)
	form.Set("title", title)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pushoverEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build pushover request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("pushover error: status %d", resp.StatusCode)
	}
	return nil
}
