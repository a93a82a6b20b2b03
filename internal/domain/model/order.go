package model

import "time"

// Order describes a purchase or rental order placed by a user.
type Order struct {
	ID            int64
	UserID        int64
	ProductIDs    []string
	PaymentMethod PaymentMethod
	Status        string
	CreatedAt     time.Time
}

// OrderPatch lists the fields present in a partial update.
type OrderPatch struct {
	ProductIDs    *[]string
	PaymentMethod *PaymentMethod
	Status        *string
}

// Empty reports whether the patch carries no changes.
func (p OrderPatch) Empty() bool {
	return p.ProductIDs == nil && p.PaymentMethod == nil && p.Status == nil
}
