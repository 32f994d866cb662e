package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
)

// Table names carried by change events and delete reports.
const (
	tableCategories    = "categories"
	tableSubcategories = "subcategories"
	tableProducts      = "products"
	tableCustomers     = "customers"
	tableAddresses     = "addresses"
	tableFavorites     = "favorites"
	tableCartItems     = "cart_items"
	tableOrders        = "orders"
	tableOrderItems    = "order_items"
	tableNewsletter    = "newsletter_subscriptions"
	tableDiscountCodes = "discount_codes"
	tableTaxRates      = "tax_rates"
	tableShopSettings  = "shop_settings"
)

// changeNotifier publishes ChangeEvents after committed mutations.
// A failed publish is logged and swallowed: the mutation already happened.
type changeNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newChangeNotifier(publisher service.EventPublisher, logger *slog.Logger) *changeNotifier {
	return &changeNotifier{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (n *changeNotifier) notify(ctx context.Context, table string, action service.ChangeAction, ids ...string) {
	if n == nil || n.publisher == nil {
		return
	}

	event := &service.ChangeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Operator:   deliverycontext.GetOperatorFromContext(ctx),
		Table:      table,
		Action:     action,
		IDs:        ids,
		OccurredAt: n.now().UTC(),
	}
	if err := n.publisher.PublishChangeEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish change event",
			slog.String("table", table),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
}

func uuidStrings(ids ...uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
