package postgres

import (
	"database/sql/driver"

	"backoffice/internal/domain/entity"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// ensureID assigns a fresh UUID to an entity that has none yet.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// uuidValues adapts IDs to the variadic In of generated uuid fields.
func uuidValues(ids []uuid.UUID) []driver.Valuer {
	values := make([]driver.Valuer, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	return values
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:           m.ID,
		Name:         m.Name,
		Slug:         m.Slug,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromCategoryDomain(c *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toSubcategoryDomain(m *model.SubcategoryModel) *entity.Subcategory {
	return &entity.Subcategory{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Slug:       m.Slug,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromSubcategoryDomain(s *entity.Subcategory) *model.SubcategoryModel {
	return &model.SubcategoryModel{
		ID:         s.ID,
		CategoryID: s.CategoryID,
		Name:       s.Name,
		Slug:       s.Slug,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:            m.ID,
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		Name:          m.Name,
		Price:         m.Price,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		Name:          p.Name,
		Price:         p.Price,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromCustomerDomain(c *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:        c.ID,
		Email:     c.Email,
		FullName:  c.FullName,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toAddressDomain(m *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:         m.ID,
		UserID:     m.UserID,
		Label:      m.Label,
		Street:     m.Street,
		City:       m.City,
		PostalCode: m.PostalCode,
		Country:    m.Country,
		CreatedAt:  m.CreatedAt,
	}
}

func fromAddressDomain(a *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:         a.ID,
		UserID:     a.UserID,
		Label:      a.Label,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		CreatedAt:  a.CreatedAt,
	}
}

// toOrderDomain maps an order row. items may hold lines of other orders; only the matching ones are kept.
func toOrderDomain(m *model.OrderModel, items []*model.OrderItemModel) *entity.Order {
	order := &entity.Order{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		TotalAmount: m.TotalAmount,
		Status:      entity.OrderStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, item := range items {
		if item.OrderID != m.ID {
			continue
		}
		order.Items = append(order.Items, &entity.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return order
}

func fromOrderDomain(o *entity.Order) (*model.OrderModel, []*model.OrderItemModel) {
	m := &model.OrderModel{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status.String(),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	items := make([]*model.OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		ensureID(&item.ID)
		item.OrderID = o.ID
		items = append(items, &model.OrderItemModel{
			ID:        item.ID,
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return m, items
}

func toDiscountCodeDomain(m *model.DiscountCodeModel) *entity.DiscountCode {
	return &entity.DiscountCode{
		ID:            m.ID,
		Code:          m.Code,
		DiscountType:  entity.DiscountType(m.DiscountType),
		DiscountValue: m.DiscountValue,
		UsageCount:    m.UsageCount,
		UsageLimit:    m.UsageLimit,
		ValidFrom:     m.ValidFrom,
		ValidUntil:    m.ValidUntil,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromDiscountCodeDomain(d *entity.DiscountCode) *model.DiscountCodeModel {
	return &model.DiscountCodeModel{
		ID:            d.ID,
		Code:          d.Code,
		DiscountType:  d.DiscountType.String(),
		DiscountValue: d.DiscountValue,
		UsageCount:    d.UsageCount,
		UsageLimit:    d.UsageLimit,
		ValidFrom:     d.ValidFrom,
		ValidUntil:    d.ValidUntil,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
