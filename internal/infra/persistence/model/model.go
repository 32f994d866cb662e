// Package model holds the GORM table mappings. Domain entities never carry gorm tags.
package model

// All lists every model, in dependency order, for migrations.
func All() []any {
	return []any{
		&CategoryModel{},
		&SubcategoryModel{},
		&ProductModel{},
		&CustomerModel{},
		&AddressModel{},
		&FavoriteModel{},
		&CartItemModel{},
		&NewsletterSubscriptionModel{},
		&OrderModel{},
		&OrderItemModel{},
		&DiscountCodeModel{},
		&TaxRateModel{},
		&ShopSettingsModel{},
	}
}
