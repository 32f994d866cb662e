package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"backoffice/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/backoffice-changes"
	localPushTimeout  = 10 * time.Second
)

// PushMessage is the body Google Pub/Sub sends to push subscriptions.
type PushMessage struct {
	Message      PushPayload `json:"message"`
	Subscription string      `json:"subscription"`
}

type PushPayload struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher POSTs events to a development endpoint in the push format, so a
// subscriber can be exercised without a Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) PublishChangeEvent(ctx context.Context, event *service.ChangeEvent) error {
	body, err := p.encode(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}
	p.logger.LogAttrs(ctx, slog.LevelDebug, "Change event pushed", eventLogAttrs(event)...)

	return nil
}

func (p *localHTTPPublisher) encode(event *service.ChangeEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	body, err := json.Marshal(PushMessage{
		Subscription: localSubscription,
		Message: PushPayload{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: p.now().UTC().Format(time.RFC3339),
		},
	})

	return body, errors.WithStack(err)
}

func (p *localHTTPPublisher) Close() error { return nil }
