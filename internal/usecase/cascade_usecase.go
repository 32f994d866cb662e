// Package usecase defines the application's use case interfaces and their input/output types.
package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// CascadingDeleter removes a root record and every row that depends on it, deepest
// dependents first, inside a single transaction.
type CascadingDeleter interface {
	// Delete removes one category, subcategory or customer with its dependents.
	Delete(ctx context.Context, kind entity.RootKind, id uuid.UUID) (*entity.DeleteReport, error)

	// DeleteCustomers removes several customers. In all_or_nothing mode the whole selection
	// shares one transaction; in best_effort mode each customer has its own and failures are reported.
	DeleteCustomers(ctx context.Context, ids []uuid.UUID, mode entity.BulkDeleteMode) (*entity.BulkDeleteResult, error)
}
