// Package pubsub publishes ChangeEvents to a Pub/Sub topic, a local push endpoint, or nowhere.
package pubsub

import (
	"context"
	"log/slog"

	"backoffice/config"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Message attributes shared by every publisher.
const (
	attrTable     = "table"
	attrAction    = "action"
	attrRequestID = "request_id"
)

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type publisherBuilder func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error)

//nolint:gochecknoglobals
var builders = map[string]publisherBuilder{
	constants.PubSubProviderLocal:  buildLocal,
	constants.PubSubProviderGoogle: buildGoogle,
}

// NewEventPublisher picks the publisher named by pubsub.provider. Without a provider
// events are dropped, which keeps admin operations independent of the broker.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, change events are dropped")

		return &noopPublisher{logger: params.Logger}, nil
	}

	build, ok := builders[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
	publisher, err := build(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing change event publisher", slog.String("provider", cfg.Provider))

		return publisher.Close()
	}))

	return publisher, nil
}

func buildLocal(_ context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	endpoint := cfg.PubSub.LocalEndpoint
	if endpoint == "" {
		return nil, errors.New("local endpoint is required for local provider")
	}
	if cfg.Env.Env != constants.EnvDevelop {
		logger.Warn("Local Pub/Sub provider is meant for development only", slog.String("env", cfg.Env.Env))
	}
	logger.Info("Pushing change events to local endpoint", slog.String("endpoint", endpoint))

	return NewLocalHTTPPublisher(endpoint, logger), nil
}

func buildGoogle(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	switch {
	case cfg.PubSub.ProjectID == "":
		return nil, errors.New("project ID is required for google provider")
	case cfg.PubSub.TopicID == "":
		return nil, errors.New("topic ID is required for google provider")
	}

	return NewGooglePubSubPublisher(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, logger)
}

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishChangeEvent(ctx context.Context, event *service.ChangeEvent) error {
	p.logger.LogAttrs(ctx, slog.LevelDebug, "Change event dropped", eventLogAttrs(event)...)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

func eventAttributes(event *service.ChangeEvent) map[string]string {
	attributes := map[string]string{
		attrTable:  event.Table,
		attrAction: string(event.Action),
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return attributes
}

func eventLogAttrs(event *service.ChangeEvent, extra ...slog.Attr) []slog.Attr {
	return append([]slog.Attr{
		slog.String(attrTable, event.Table),
		slog.String(attrAction, string(event.Action)),
		slog.Int("ids", len(event.IDs)),
	}, extra...)
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
