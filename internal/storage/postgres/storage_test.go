package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool(pgxmockv3.QueryMatcherOption(pgxmockv3.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS shops",
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS payments",
		"CREATE TABLE IF NOT EXISTS payment_history",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_payments_order").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_payments_due").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_payment_history_order").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
}

func errNoRows() error { return pgx.ErrNoRows }

func TestNewParseError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := New(context.Background(), ":://bad", logger); err == nil {
		t.Fatal("expected error")
	}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("init schema failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaError(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("boom"))

	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Alice", "alice@example.com", "hash").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	user, err := storage.Users().Create(context.Background(), "Alice", "alice@example.com", "hash")
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.ID != 1 || user.Email != "alice@example.com" || user.PasswordHash != "hash" {
		t.Fatalf("unexpected user %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(errNoRows())

	if _, err := storage.Users().GetByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(1)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := storage.Users().Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(2)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := storage.Users().Delete(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShopRepositoryCreateDefaultsImages(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO shops").
		WithArgs("Drill", "desc", "addr", "50", []string{}, true).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	shop, err := storage.Shops().Create(context.Background(), &model.Shop{
		Title:        "Drill",
		Description:  "desc",
		Address:      "addr",
		Price:        "50",
		Availability: true,
	})
	if err != nil {
		t.Fatalf("create shop failed: %v", err)
	}
	if shop.ID != 3 {
		t.Fatalf("expected id 3, got %d", shop.ID)
	}
	if shop.Images == nil || len(shop.Images) != 0 {
		t.Fatalf("expected empty non-nil images, got %#v", shop.Images)
	}
}

func TestShopRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	rows := pgxmockv3.NewRows([]string{"id", "title", "description", "address", "price", "images", "availability", "created_at"}).
		AddRow(int64(1), "Drill", "d", "a", "50", []string{"http://img/1"}, true, now).
		AddRow(int64(2), "Saw", "d", "a", "30", []string{}, false, now)
	mock.ExpectQuery("SELECT id, title, description, address, price, images, availability, created_at").
		WillReturnRows(rows)

	shops, err := storage.Shops().List(context.Background())
	if err != nil {
		t.Fatalf("list shops failed: %v", err)
	}
	if len(shops) != 2 {
		t.Fatalf("expected 2 shops, got %d", len(shops))
	}
	if len(shops[0].Images) != 1 || shops[0].Images[0] != "http://img/1" {
		t.Fatalf("unexpected images %#v", shops[0].Images)
	}
}

func TestOrderRepositoryRoundTrip(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(7), []string{"12"}, "staggered", "pending").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))

	order, err := storage.Orders().Create(context.Background(), &model.Order{
		UserID:        7,
		ProductIDs:    []string{"12"},
		PaymentMethod: model.PaymentMethodStaggered,
		Status:        "pending",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ID != 5 {
		t.Fatalf("expected id 5, got %d", order.ID)
	}

	mock.ExpectQuery("SELECT id, user_id, product_ids, payment_method, status, created_at").
		WithArgs(int64(5)).
		WillReturnError(errNoRows())
	if _, err := storage.Orders().GetByID(context.Background(), 5); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPaymentRepositoryCreateAndHistory(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	due := now.Add(5 * time.Minute)

	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(int64(5), int64(7), 50.0, "staggered", &due).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(9), now))

	payment, err := storage.Payments().Create(context.Background(), &model.Payment{
		OrderID:       5,
		UserID:        7,
		Amount:        50,
		PaymentMethod: model.PaymentMethodStaggered,
		DueDate:       &due,
	})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if payment.ID != 9 {
		t.Fatalf("expected id 9, got %d", payment.ID)
	}

	mock.ExpectQuery("INSERT INTO payment_history").
		WithArgs(int64(5), int64(7), 50.0, "staggered", &due, now).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(2)))

	entry, err := storage.Payments().AppendHistory(context.Background(), payment)
	if err != nil {
		t.Fatalf("append history failed: %v", err)
	}
	if entry.ID == payment.ID {
		t.Fatal("history entry must draw its id from a separate sequence")
	}
	if entry.OrderID != payment.OrderID || entry.Amount != payment.Amount {
		t.Fatalf("history entry does not mirror payment: %+v", entry)
	}
}

func TestPaymentRepositoryListDueBefore(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	due := now.Add(-time.Minute)

	rows := pgxmockv3.NewRows([]string{"id", "order_id", "user_id", "amount", "payment_method", "due_date", "created_at"}).
		AddRow(int64(1), int64(5), int64(7), 50.0, model.PaymentMethodStaggered, &due, now)
	mock.ExpectQuery("SELECT id, order_id, user_id, amount, payment_method, due_date, created_at").
		WithArgs(pgxmockv3.AnyArg()).
		WillReturnRows(rows)

	payments, err := storage.Payments().ListDueBefore(context.Background(), now)
	if err != nil {
		t.Fatalf("list due failed: %v", err)
	}
	if len(payments) != 1 || payments[0].DueDate == nil {
		t.Fatalf("unexpected payments %#v", payments)
	}
}
