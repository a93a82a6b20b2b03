package repository

import (
	"context"

	"github.com/ekeukwu/market/internal/domain/model"
)

// ShopRepository describes persistence operations for shop listings.
type ShopRepository interface {
	Create(ctx context.Context, shop *model.Shop) (*model.Shop, error)
	GetByID(ctx context.Context, id int64) (*model.Shop, error)
	List(ctx context.Context) ([]model.Shop, error)
	Update(ctx context.Context, id int64, patch model.ShopPatch) (*model.Shop, error)
	Delete(ctx context.Context, id int64) error
}
