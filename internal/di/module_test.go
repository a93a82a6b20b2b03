package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/ekeukwu/market/internal/adapter/mailer"
	"github.com/ekeukwu/market/internal/adapter/objectstore"
	"github.com/ekeukwu/market/internal/app"
	"github.com/ekeukwu/market/internal/config"
	"github.com/ekeukwu/market/internal/domain/repository"
	"github.com/ekeukwu/market/internal/storage/postgres"
	"github.com/ekeukwu/market/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:          ":0",
		DatabaseURI:         "postgres://stub",
		JWTSecret:           "secret",
		TokenTTL:            time.Minute,
		LoginTokenTTL:       time.Minute,
		InstallmentInterval: time.Minute,
		ReminderQueueSize:   1,
		ReminderWorkers:     1,
		ShutdownTimeout:     time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	shopRepo := test.NewShopRepositoryStub()
	orderRepo := test.NewOrderRepositoryStub()
	paymentRepo := test.NewPaymentRepositoryStub()

	var facade *app.MarketFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ShopRepository(shopRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.PaymentRepository(paymentRepo)),
			fx.Replace(objectstore.Uploader(&test.UploaderStub{})),
			fx.Replace(mailer.Sender(&test.SenderStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected market facade instance")
	}
}
