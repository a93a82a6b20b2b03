package model

import "time"

// Shop describes a rental listing with its uploaded image URLs.
type Shop struct {
	ID           int64
	Title        string
	Description  string
	Address      string
	Price        string
	Images       []string
	Availability bool
	CreatedAt    time.Time
}

// ShopPatch lists the fields present in a partial update. Nil means the
// field was omitted by the caller.
type ShopPatch struct {
	Title        *string
	Description  *string
	Address      *string
	Price        *string
	Images       *[]string
	Availability *bool
}

// Empty reports whether the patch carries no changes.
func (p ShopPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Address == nil &&
		p.Price == nil && p.Images == nil && p.Availability == nil
}
