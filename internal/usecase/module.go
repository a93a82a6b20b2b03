package usecase

import (
	"go.uber.org/fx"

	"github.com/ekeukwu/market/internal/adapter/objectstore"
	"github.com/ekeukwu/market/internal/config"
	"github.com/ekeukwu/market/internal/domain/repository"
	pkgAuth "github.com/ekeukwu/market/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewUserUseCase,
	newShopUseCase,
	NewOrderUseCase,
	newPaymentUseCase,
)

type authParams struct {
	fx.In

	Users    repository.UserRepository
	Hasher   pkgAuth.PasswordHasher
	Strategy pkgAuth.Strategy
	Config   *config.Config
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Hasher, p.Strategy, p.Config.LoginTokenTTL)
}

type shopParams struct {
	fx.In

	Shops    repository.ShopRepository
	Uploader objectstore.Uploader
}

func newShopUseCase(p shopParams) *ShopUseCase {
	return NewShopUseCase(p.Shops, p.Uploader)
}

type paymentParams struct {
	fx.In

	Payments  repository.PaymentRepository
	Users     repository.UserRepository
	Reminders ReminderScheduler
	Config    *config.Config
}

func newPaymentUseCase(p paymentParams) *PaymentUseCase {
	return NewPaymentUseCase(p.Payments, p.Users, p.Reminders, p.Config.InstallmentInterval)
}
