package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/ekeukwu/market/internal/adapter/objectstore"
	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/domain/repository"
)

// ImageUpload is a single image file attached to a shop create request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ShopUseCase manages shop listings and their uploaded images.
type ShopUseCase struct {
	shops    repository.ShopRepository
	uploader objectstore.Uploader
}

// NewShopUseCase constructs ShopUseCase.
func NewShopUseCase(shops repository.ShopRepository, uploader objectstore.Uploader) *ShopUseCase {
	return &ShopUseCase{shops: shops, uploader: uploader}
}

// List returns every shop, unfiltered.
func (u *ShopUseCase) List(ctx context.Context) ([]model.Shop, error) {
	return u.shops.List(ctx)
}

// Create uploads each image to the object store and persists the listing
// with the resulting URLs. A failed upload aborts the create; earlier
// uploads are not rolled back.
func (u *ShopUseCase) Create(ctx context.Context, shop *model.Shop, images []ImageUpload) (*model.Shop, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := u.uploader.Upload(ctx, img.Filename, img.ContentType, img.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domainErrors.ErrUploadFailed, img.Filename, err)
		}
		urls = append(urls, url)
	}

	shop.Images = urls
	return u.shops.Create(ctx, shop)
}

// GetByID fetches a shop by identifier.
func (u *ShopUseCase) GetByID(ctx context.Context, id int64) (*model.Shop, error) {
	return u.shops.GetByID(ctx, id)
}

// Update applies the present fields only.
func (u *ShopUseCase) Update(ctx context.Context, id int64, patch model.ShopPatch) (*model.Shop, error) {
	return u.shops.Update(ctx, id, patch)
}

// Delete removes a shop; missing ids surface as ErrNotFound.
func (u *ShopUseCase) Delete(ctx context.Context, id int64) error {
	return u.shops.Delete(ctx, id)
}
