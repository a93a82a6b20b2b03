package model

import "time"

// PaymentMethod distinguishes the installment cadence policy for an order.
type PaymentMethod string

const (
	PaymentMethodStaggered PaymentMethod = "staggered"
	PaymentMethodRentToOwn PaymentMethod = "rent-to-own"
	PaymentMethodOutright  PaymentMethod = "outright"
)

// Valid reports whether the method is one of the known cadence tags.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodStaggered, PaymentMethodRentToOwn, PaymentMethodOutright:
		return true
	}
	return false
}

// Payment records money received against an order. DueDate is set only for
// installment methods that expect a follow-up.
type Payment struct {
	ID            int64
	OrderID       int64
	UserID        int64
	Amount        float64
	PaymentMethod PaymentMethod
	DueDate       *time.Time
	CreatedAt     time.Time
}

// PaymentHistoryEntry mirrors a payment into the append-only history log.
// Its identifier comes from a separate sequence and never matches the live
// payment's id.
type PaymentHistoryEntry struct {
	ID            int64
	OrderID       int64
	UserID        int64
	Amount        float64
	PaymentMethod PaymentMethod
	DueDate       *time.Time
	CreatedAt     time.Time
}
