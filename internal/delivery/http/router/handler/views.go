package handler

import (
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

// CategoryView is the JSON form of a category.
type CategoryView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SubcategoryView is the JSON form of a subcategory.
type SubcategoryView struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CategoryTreeView is a category with its subcategories.
type CategoryTreeView struct {
	CategoryView
	Subcategories []*SubcategoryView `json:"subcategories"`
}

// ProductView is the JSON form of a product.
type ProductView struct {
	ID            uuid.UUID  `json:"id"`
	CategoryID    *uuid.UUID `json:"category_id"`
	SubcategoryID *uuid.UUID `json:"subcategory_id"`
	Name          string     `json:"name"`
	Price         float64    `json:"price"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}

// CustomerView is a customer with its derived statistics.
type CustomerView struct {
	ID                     uuid.UUID  `json:"id"`
	Email                  string     `json:"email"`
	FullName               string     `json:"full_name"`
	Notes                  string     `json:"notes"`
	CreatedAt              time.Time  `json:"created_at"`
	OrderCount             int        `json:"order_count"`
	TotalSpent             float64    `json:"total_spent"`
	LastPurchase           *time.Time `json:"last_purchase"`
	CustomerType           string     `json:"customer_type"`
	IsNewsletterSubscribed bool       `json:"is_newsletter_subscribed"`
}

// OrderItemView is one line of an order.
type OrderItemView struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// OrderView is the JSON form of an order.
type OrderView struct {
	ID          uuid.UUID        `json:"id"`
	CustomerID  uuid.UUID        `json:"customer_id"`
	TotalAmount float64          `json:"total_amount"`
	Status      string           `json:"status"`
	Items       []*OrderItemView `json:"items"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// DiscountCodeView is a discount code with its evaluated status.
type DiscountCodeView struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	UsageCount    int        `json:"usage_count"`
	UsageLimit    *int       `json:"usage_limit"`
	ValidFrom     *time.Time `json:"valid_from"`
	ValidUntil    *time.Time `json:"valid_until"`
	IsActive      bool       `json:"is_active"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// DeleteReportView lists the rows removed by a cascading delete.
type DeleteReportView struct {
	Kind  string           `json:"kind"`
	ID    uuid.UUID        `json:"id"`
	Steps []DeleteStepView `json:"steps"`
}

// DeleteStepView is one executed delete statement.
type DeleteStepView struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
}

// BulkDeleteView reports a bulk customer delete.
type BulkDeleteView struct {
	Mode      string             `json:"mode"`
	Succeeded []uuid.UUID        `json:"succeeded"`
	Failed    []BulkFailureView `json:"failed"`
}

// BulkFailureView is a customer that could not be deleted.
type BulkFailureView struct {
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

// TaxRateView is the JSON form of a tax rate.
type TaxRateView struct {
	CountryCode string    `json:"country_code"`
	Rate        float64   `json:"rate"`
	Label       string    `json:"label"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SettingsView is the JSON form of the shop settings.
type SettingsView struct {
	OSSEnabled            bool      `json:"oss_enabled"`
	DefaultShippingCost   float64   `json:"default_shipping_cost"`
	FreeShippingThreshold float64   `json:"free_shipping_threshold"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func toCategoryView(c *entity.Category) *CategoryView {
	return &CategoryView{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toSubcategoryView(s *entity.Subcategory) *SubcategoryView {
	return &SubcategoryView{
		ID:         s.ID,
		CategoryID: s.CategoryID,
		Name:       s.Name,
		Slug:       s.Slug,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func toSubcategoryViews(subs []*entity.Subcategory) []*SubcategoryView {
	views := make([]*SubcategoryView, 0, len(subs))
	for _, s := range subs {
		views = append(views, toSubcategoryView(s))
	}

	return views
}

func toProductView(p *entity.Product) *ProductView {
	return &ProductView{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		Name:          p.Name,
		Price:         p.Price,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
}

func toCustomerView(s *entity.CustomerSummary) *CustomerView {
	return &CustomerView{
		ID:                     s.ID,
		Email:                  s.Email,
		FullName:               s.FullName,
		Notes:                  s.Notes,
		CreatedAt:              s.CreatedAt,
		OrderCount:             s.OrderCount,
		TotalSpent:             s.TotalSpent,
		LastPurchase:           s.LastPurchase,
		CustomerType:           s.CustomerType.String(),
		IsNewsletterSubscribed: s.IsNewsletterSubscribed,
	}
}

func toOrderView(o *entity.Order) *OrderView {
	items := make([]*OrderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, &OrderItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &OrderView{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status.String(),
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toDiscountCodeView(v *usecase.DiscountCodeView) *DiscountCodeView {
	return &DiscountCodeView{
		ID:            v.ID,
		Code:          v.Code,
		DiscountType:  v.DiscountType.String(),
		DiscountValue: v.DiscountValue,
		UsageCount:    v.UsageCount,
		UsageLimit:    v.UsageLimit,
		ValidFrom:     v.ValidFrom,
		ValidUntil:    v.ValidUntil,
		IsActive:      v.IsActive,
		Status:        string(v.Status),
		CreatedAt:     v.CreatedAt,
	}
}

func toDeleteReportView(r *entity.DeleteReport) *DeleteReportView {
	steps := make([]DeleteStepView, 0, len(r.Steps))
	for _, step := range r.Steps {
		steps = append(steps, DeleteStepView{Table: step.Table, Rows: step.Rows})
	}

	return &DeleteReportView{Kind: r.Kind.String(), ID: r.ID, Steps: steps}
}

func toBulkDeleteView(r *entity.BulkDeleteResult) *BulkDeleteView {
	failed := make([]BulkFailureView, 0, len(r.Failed))
	for _, f := range r.Failed {
		failed = append(failed, BulkFailureView{ID: f.ID, Reason: f.Reason})
	}
	succeeded := r.Succeeded
	if succeeded == nil {
		succeeded = []uuid.UUID{}
	}

	return &BulkDeleteView{Mode: string(r.Mode), Succeeded: succeeded, Failed: failed}
}

func toTaxRateView(r *entity.TaxRate) *TaxRateView {
	return &TaxRateView{
		CountryCode: r.CountryCode,
		Rate:        r.Rate,
		Label:       r.Label,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toSettingsView(s *entity.ShopSettings) *SettingsView {
	return &SettingsView{
		OSSEnabled:            s.OSSEnabled,
		DefaultShippingCost:   s.DefaultShippingCost,
		FreeShippingThreshold: s.FreeShippingThreshold,
		UpdatedAt:             s.UpdatedAt,
	}
}
