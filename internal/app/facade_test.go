package app

import (
	"context"
	"testing"
	"time"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	testhelpers "github.com/ekeukwu/market/internal/test"
	"github.com/ekeukwu/market/internal/usecase"
)

func newFacade() (*MarketFacade, *testhelpers.UserRepositoryStub, *testhelpers.ShopRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.PaymentRepositoryStub, *testhelpers.SchedulerStub) {
	users := testhelpers.NewUserRepositoryStub()
	shops := testhelpers.NewShopRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub()
	payments := testhelpers.NewPaymentRepositoryStub()
	scheduler := testhelpers.NewSchedulerStub()

	hasher := testhelpers.HasherStub{}
	strategy := testhelpers.StrategyStub{}

	authUC := usecase.NewAuthUseCase(users, hasher, strategy, time.Minute)
	userUC := usecase.NewUserUseCase(users, hasher)
	shopUC := usecase.NewShopUseCase(shops, &testhelpers.UploaderStub{})
	orderUC := usecase.NewOrderUseCase(orders, payments)
	paymentUC := usecase.NewPaymentUseCase(payments, users, scheduler, 5*time.Minute)

	facade := NewMarketFacade(authUC, userUC, shopUC, orderUC, paymentUC)
	return facade, users, shops, orders, payments, scheduler
}

func TestMarketFacadeAuth(t *testing.T) {
	facade, _, _, _, _, _ := newFacade()

	ctx := context.Background()
	user, token, err := facade.Register(ctx, "Ada", "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token on registration")
	}

	if _, _, err := facade.Authenticate(ctx, "ada@example.com", "wrong"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := facade.Authenticate(ctx, "ada@example.com", "pw"); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	current, err := facade.CurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("current user lookup failed: %v", err)
	}
	if current.Email != "ada@example.com" {
		t.Fatalf("unexpected current user %+v", current)
	}
}

func TestMarketFacadeShops(t *testing.T) {
	facade, _, shops, _, _, _ := newFacade()

	ctx := context.Background()
	created, err := facade.CreateShop(ctx, &model.Shop{Title: "Yaba Furniture"}, nil)
	if err != nil {
		t.Fatalf("create shop failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected shop id")
	}

	list, err := facade.Shops(ctx)
	if err != nil {
		t.Fatalf("list shops failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 shop, got %d", len(list))
	}

	if err := facade.DeleteShop(ctx, created.ID); err != nil {
		t.Fatalf("delete shop failed: %v", err)
	}
	if len(shops.Shops) != 0 {
		t.Fatal("shop must be removed from the store")
	}
}

func TestMarketFacadeOrdersAndPayments(t *testing.T) {
	facade, users, _, _, payments, scheduler := newFacade()

	ctx := context.Background()
	user, err := users.Create(ctx, "Bola", "bola@example.com", "hash")
	if err != nil {
		t.Fatalf("seeding user failed: %v", err)
	}

	order, err := facade.CreateOrder(ctx, &model.Order{UserID: user.ID, PaymentMethod: model.PaymentMethodStaggered})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	payment, err := facade.StaggeredPayment(ctx, order.ID, user.ID, 45)
	if err != nil {
		t.Fatalf("staggered payment failed: %v", err)
	}
	if payment.DueDate == nil {
		t.Fatal("staggered payment must carry a due date")
	}
	if len(scheduler.Reminders) != 1 {
		t.Fatalf("expected a scheduled reminder, got %d", len(scheduler.Reminders))
	}
	if len(payments.History) != 1 {
		t.Fatalf("expected a history entry, got %d", len(payments.History))
	}

	listed, err := facade.OrderPayments(ctx, order.ID)
	if err != nil {
		t.Fatalf("order payments failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(listed))
	}

	history, err := facade.PaymentHistory(ctx, order.ID)
	if err != nil {
		t.Fatalf("payment history failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
}
