package handlers

import (
	"context"
	"time"

	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	CurrentUser(ctx context.Context, userID int64) (*model.User, error)
}

// UserFacade encapsulates user CRUD exposed via HTTP.
type UserFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, name, email, password string) (*model.User, error)
	User(ctx context.Context, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, name, email, password *string) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ShopFacade encapsulates shop CRUD and image uploads.
type ShopFacade interface {
	Shops(ctx context.Context) ([]model.Shop, error)
	CreateShop(ctx context.Context, shop *model.Shop, images []usecase.ImageUpload) (*model.Shop, error)
	Shop(ctx context.Context, id int64) (*model.Shop, error)
	UpdateShop(ctx context.Context, id int64, patch model.ShopPatch) (*model.Shop, error)
	DeleteShop(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context) ([]model.Order, error)
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	OrderPayments(ctx context.Context, orderID int64) ([]model.Payment, error)
}

// PaymentFacade provides payment recording and lookups.
type PaymentFacade interface {
	RecordPayment(ctx context.Context, orderID, userID int64, amount float64, method model.PaymentMethod, dueDate *time.Time) (*model.Payment, error)
	StaggeredPayment(ctx context.Context, orderID, userID int64, amount float64) (*model.Payment, error)
	RentToOwnPayment(ctx context.Context, orderID, userID int64, amount float64) (*model.Payment, error)
	OutrightPayment(ctx context.Context, orderID, userID int64, amount float64, dueDate *time.Time) (*model.Payment, error)
	PaymentsByOrder(ctx context.Context, orderID int64) ([]model.Payment, error)
	Renewals(ctx context.Context) ([]model.Payment, error)
	PaymentHistory(ctx context.Context, orderID int64) ([]model.PaymentHistoryEntry, error)
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	UserFacade
	ShopFacade
	OrderFacade
	PaymentFacade
}
