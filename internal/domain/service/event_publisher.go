package service

import (
	"context"
	"time"
)

// ChangeAction is the kind of mutation a ChangeEvent reports.
type ChangeAction string

const (
	ChangeActionCreated ChangeAction = "created"
	ChangeActionUpdated ChangeAction = "updated"
	ChangeActionDeleted ChangeAction = "deleted"
)

// ChangeEvent announces that rows of a table changed, so storefront caches can be refreshed.
type ChangeEvent struct {
	RequestID  string       `json:"request_id,omitempty"` // For distributed tracing
	Operator   string       `json:"operator,omitempty"`   // Admin subject that made the change
	Table      string       `json:"table"`
	Action     ChangeAction `json:"action"`
	IDs        []string     `json:"ids"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishChangeEvent publishes a change event after a committed mutation
	PublishChangeEvent(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
