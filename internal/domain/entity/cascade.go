package entity

import "github.com/google/uuid"

// RootKind names the entity a cascading delete starts from.
type RootKind string

const (
	RootKindCategory    RootKind = "category"
	RootKindSubcategory RootKind = "subcategory"
	RootKindCustomer    RootKind = "customer"
)

// String returns the string representation of the RootKind.
func (k RootKind) String() string {
	return string(k)
}

// IsValid checks if the RootKind is a valid value.
func (k RootKind) IsValid() bool {
	switch k {
	case RootKindCategory, RootKindSubcategory, RootKindCustomer:
		return true
	default:
		return false
	}
}

// DeleteStep is one executed statement of a cascade.
type DeleteStep struct {
	Table string
	Rows  int64
}

// DeleteReport lists the steps of a committed cascade in execution order.
type DeleteReport struct {
	Kind  RootKind
	ID    uuid.UUID
	Steps []DeleteStep
}

// Add appends a step to the report.
func (r *DeleteReport) Add(table string, rows int64) {
	r.Steps = append(r.Steps, DeleteStep{Table: table, Rows: rows})
}

// Rows returns the number of rows removed from table, 0 if the step never ran.
func (r *DeleteReport) Rows(table string) int64 {
	var total int64
	for _, step := range r.Steps {
		if step.Table == table {
			total += step.Rows
		}
	}

	return total
}

// BulkDeleteMode selects how a multi-customer delete reacts to a failing item.
type BulkDeleteMode string

const (
	// BulkDeleteAllOrNothing deletes the whole selection in one transaction.
	BulkDeleteAllOrNothing BulkDeleteMode = "all_or_nothing"
	// BulkDeleteBestEffort deletes each customer in its own transaction and reports failures.
	BulkDeleteBestEffort BulkDeleteMode = "best_effort"
)

// IsValid checks if the BulkDeleteMode is a valid value.
func (m BulkDeleteMode) IsValid() bool {
	switch m {
	case BulkDeleteAllOrNothing, BulkDeleteBestEffort:
		return true
	default:
		return false
	}
}

// BulkDeleteFailure is a customer that could not be deleted.
type BulkDeleteFailure struct {
	ID     uuid.UUID
	Reason string
}

// BulkDeleteResult reports which customers were deleted.
type BulkDeleteResult struct {
	Mode      BulkDeleteMode
	Succeeded []uuid.UUID
	Failed    []BulkDeleteFailure
}
