package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"backoffice/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails when the topic does not exist, so a misconfigured
// deployment stops at startup instead of on the first delete.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}
	logger.Info("Publishing change events to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{client: client, publisher: client.Publisher(topicID), logger: logger}, nil
}

// PublishChangeEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishChangeEvent(ctx context.Context, event *service.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: eventAttributes(event)}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s event for %s", event.Action, event.Table)
	}
	p.logger.LogAttrs(ctx, slog.LevelDebug, "Change event published", eventLogAttrs(event, slog.String("server_id", serverID))...)

	return nil
}

// Close flushes pending messages before releasing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
