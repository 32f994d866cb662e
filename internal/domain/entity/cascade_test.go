package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeleteReport(t *testing.T) {
	report := &DeleteReport{Kind: RootKindCategory}
	report.Add("products", 5)
	report.Add("subcategories", 2)
	report.Add("categories", 1)

	assert.Len(t, report.Steps, 3)
	assert.Equal(t, "products", report.Steps[0].Table)
	assert.EqualValues(t, 5, report.Rows("products"))
	assert.EqualValues(t, 1, report.Rows("categories"))
	assert.Zero(t, report.Rows("orders"))
}

func TestEnumsValidity(t *testing.T) {
	assert.True(t, RootKindSubcategory.IsValid())
	assert.False(t, RootKind("product").IsValid())

	assert.True(t, BulkDeleteBestEffort.IsValid())
	assert.False(t, BulkDeleteMode("sometimes").IsValid())

	status, ok := ParseOrderStatus("shipped")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusShipped, status)

	_, ok = ParseOrderStatus("lost")
	assert.False(t, ok)
}
