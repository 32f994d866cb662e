package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"
	"backoffice/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	q *query.Query
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		q: query.Use(db),
	}
}

// CreateAddress persists a new address for a customer.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	ensureID(&address.ID)
	addressM := fromAddressDomain(address)

	if err := repo.q.AddressModel.WithContext(ctx).Create(addressM); err != nil {
		return translateWriteError(err, nil, "failed to create address")
	}
	address.CreatedAt = addressM.CreatedAt

	return nil
}

// FindAddressesByUser retrieves the addresses of a customer.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addressModels, err := repo.q.AddressModel.WithContext(ctx).
		Where(repo.q.AddressModel.UserID.Eq(userID)).
		Order(repo.q.AddressModel.CreatedAt.Asc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, m := range addressModels {
		addresses = append(addresses, toAddressDomain(m))
	}

	return addresses, nil
}

// DeleteAddressesByUser removes every address of a customer.
func (repo *addressRepository) DeleteAddressesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := repo.q.AddressModel.WithContext(ctx).
		Where(repo.q.AddressModel.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete addresses by user")
	}

	return result.RowsAffected, nil
}

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	q *query.Query
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		q: query.Use(db),
	}
}

// CreateFavorite persists a favorite.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	ensureID(&favorite.ID)
	favoriteM := &model.FavoriteModel{
		ID:        favorite.ID,
		UserID:    favorite.UserID,
		ProductID: favorite.ProductID,
		CreatedAt: favorite.CreatedAt,
	}

	if err := repo.q.FavoriteModel.WithContext(ctx).Create(favoriteM); err != nil {
		return translateWriteError(err, nil, "failed to create favorite")
	}
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// DeleteFavoritesByUser removes every favorite of a customer.
func (repo *favoriteRepository) DeleteFavoritesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := repo.q.FavoriteModel.WithContext(ctx).
		Where(repo.q.FavoriteModel.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete favorites by user")
	}

	return result.RowsAffected, nil
}

// cartItemRepository implements the domain.CartItemRepository interface.
type cartItemRepository struct {
	q *query.Query
}

// NewCartItemRepository is the constructor for cartItemRepository.
func NewCartItemRepository(db *gorm.DB) repository.CartItemRepository {
	return &cartItemRepository{
		q: query.Use(db),
	}
}

// CreateCartItem persists a cart line.
func (repo *cartItemRepository) CreateCartItem(ctx context.Context, item *entity.CartItem) error {
	ensureID(&item.ID)
	itemM := &model.CartItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}

	if err := repo.q.CartItemModel.WithContext(ctx).Create(itemM); err != nil {
		return translateWriteError(err, nil, "failed to create cart item")
	}
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// DeleteCartItemsByUser empties the cart of a customer.
func (repo *cartItemRepository) DeleteCartItemsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := repo.q.CartItemModel.WithContext(ctx).
		Where(repo.q.CartItemModel.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete cart items by user")
	}

	return result.RowsAffected, nil
}
