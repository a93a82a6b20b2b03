package dto

import (
	"time"

	"github.com/ekeukwu/market/internal/domain/model"
)

// ShopResponse is the public view of a shop listing.
type ShopResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	Price        string    `json:"price"`
	Images       []string  `json:"images"`
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToShopResponse converts a domain shop, never rendering images as null.
func ToShopResponse(s model.Shop) ShopResponse {
	images := s.Images
	if images == nil {
		images = []string{}
	}
	return ShopResponse{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		Address:      s.Address,
		Price:        s.Price,
		Images:       images,
		Availability: s.Availability,
		CreatedAt:    s.CreatedAt,
	}
}

// ShopPatchRequest lists the shop fields present in a partial update.
type ShopPatchRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Address      *string   `json:"address"`
	Price        *string   `json:"price"`
	Images       *[]string `json:"images"`
	Availability *bool     `json:"availability"`
}

// ToPatch converts the request into the domain patch structure.
func (r ShopPatchRequest) ToPatch() model.ShopPatch {
	return model.ShopPatch{
		Title:        r.Title,
		Description:  r.Description,
		Address:      r.Address,
		Price:        r.Price,
		Images:       r.Images,
		Availability: r.Availability,
	}
}
