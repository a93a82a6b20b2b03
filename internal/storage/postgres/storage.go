package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/domain/repository"
)

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pool
	logger *slog.Logger
}

// pool is the subset of pgxpool.Pool the repositories use; tests substitute
// a mock implementation.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type userRepository struct {
	storage *Storage
}

type shopRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pgPool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pgPool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pgPool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Shops() repository.ShopRepository {
	return &shopRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS shops (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            price TEXT NOT NULL DEFAULT '',
            images TEXT[] NOT NULL DEFAULT '{}',
            availability BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL,
            product_ids TEXT[] NOT NULL DEFAULT '{}',
            payment_method TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL,
            user_id BIGINT NOT NULL,
            amount DOUBLE PRECISION NOT NULL,
            payment_method TEXT NOT NULL,
            due_date TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payment_history (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL,
            user_id BIGINT NOT NULL,
            amount DOUBLE PRECISION NOT NULL,
            payment_method TEXT NOT NULL,
            due_date TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_due ON payments(due_date) WHERE due_date IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_payment_history_order ON payment_history(order_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM users WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM users ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, name, email, passwordHash *string) (*model.User, error) {
	const query = `UPDATE users SET
                       name = COALESCE($2, name),
                       email = COALESCE($3, email),
                       password_hash = COALESCE($4, password_hash)
                   WHERE id=$1
                   RETURNING id, name, email, password_hash, created_at`
	user, err := r.scanOne(r.storage.pool.QueryRow(ctx, query, id, name, email, passwordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ShopRepository implementation ---

func (r *shopRepository) Create(ctx context.Context, shop *model.Shop) (*model.Shop, error) {
	const query = `INSERT INTO shops (title, description, address, price, images, availability)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	images := shop.Images
	if images == nil {
		images = []string{}
	}
	created := *shop
	created.Images = images
	err := r.storage.pool.QueryRow(ctx, query, shop.Title, shop.Description, shop.Address, shop.Price, images, shop.Availability).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *shopRepository) GetByID(ctx context.Context, id int64) (*model.Shop, error) {
	const query = `SELECT id, title, description, address, price, images, availability, created_at
                   FROM shops WHERE id=$1`
	var sh model.Shop
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&sh.ID, &sh.Title, &sh.Description, &sh.Address, &sh.Price, &sh.Images, &sh.Availability, &sh.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &sh, nil
}

func (r *shopRepository) List(ctx context.Context) ([]model.Shop, error) {
	const query = `SELECT id, title, description, address, price, images, availability, created_at
                   FROM shops ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Shop
	for rows.Next() {
		var sh model.Shop
		if err := rows.Scan(&sh.ID, &sh.Title, &sh.Description, &sh.Address, &sh.Price, &sh.Images, &sh.Availability, &sh.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *shopRepository) Update(ctx context.Context, id int64, patch model.ShopPatch) (*model.Shop, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	const query = `UPDATE shops SET
                       title = COALESCE($2, title),
                       description = COALESCE($3, description),
                       address = COALESCE($4, address),
                       price = COALESCE($5, price),
                       images = COALESCE($6, images),
                       availability = COALESCE($7, availability)
                   WHERE id=$1
                   RETURNING id, title, description, address, price, images, availability, created_at`
	var sh model.Shop
	err := r.storage.pool.QueryRow(ctx, query, id, patch.Title, patch.Description, patch.Address, patch.Price, patch.Images, patch.Availability).
		Scan(&sh.ID, &sh.Title, &sh.Description, &sh.Address, &sh.Price, &sh.Images, &sh.Availability, &sh.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &sh, nil
}

func (r *shopRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM shops WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (user_id, product_ids, payment_method, status)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at`
	productIDs := order.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}
	created := *order
	created.ProductIDs = productIDs
	err := r.storage.pool.QueryRow(ctx, query, order.UserID, productIDs, string(order.PaymentMethod), order.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, user_id, product_ids, payment_method, status, created_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.UserID, &o.ProductIDs, &o.PaymentMethod, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, user_id, product_ids, payment_method, status, created_at
                   FROM orders ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductIDs, &o.PaymentMethod, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	var method *string
	if patch.PaymentMethod != nil {
		m := string(*patch.PaymentMethod)
		method = &m
	}

	const query = `UPDATE orders SET
                       product_ids = COALESCE($2, product_ids),
                       payment_method = COALESCE($3, payment_method),
                       status = COALESCE($4, status)
                   WHERE id=$1
                   RETURNING id, user_id, product_ids, payment_method, status, created_at`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id, patch.ProductIDs, method, patch.Status).
		Scan(&o.ID, &o.UserID, &o.ProductIDs, &o.PaymentMethod, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM orders WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- PaymentRepository implementation ---

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	const query = `INSERT INTO payments (order_id, user_id, amount, payment_method, due_date)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	created := *payment
	err := r.storage.pool.QueryRow(ctx, query, payment.OrderID, payment.UserID, payment.Amount, string(payment.PaymentMethod), payment.DueDate).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AppendHistory mirrors the payment into the history log. The entry draws
// its id from a separate sequence and is never updated or deleted.
func (r *paymentRepository) AppendHistory(ctx context.Context, payment *model.Payment) (*model.PaymentHistoryEntry, error) {
	const query = `INSERT INTO payment_history (order_id, user_id, amount, payment_method, due_date, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id`
	entry := model.PaymentHistoryEntry{
		OrderID:       payment.OrderID,
		UserID:        payment.UserID,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		DueDate:       payment.DueDate,
		CreatedAt:     payment.CreatedAt,
	}
	err := r.storage.pool.QueryRow(ctx, query, payment.OrderID, payment.UserID, payment.Amount, string(payment.PaymentMethod), payment.DueDate, payment.CreatedAt).
		Scan(&entry.ID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	const query = `SELECT id, order_id, user_id, amount, payment_method, due_date, created_at
                   FROM payments WHERE order_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepository) ListDueBefore(ctx context.Context, deadline time.Time) ([]model.Payment, error) {
	const query = `SELECT id, order_id, user_id, amount, payment_method, due_date, created_at
                   FROM payments WHERE due_date IS NOT NULL AND due_date <= $1 ORDER BY due_date`
	rows, err := r.storage.pool.Query(ctx, query, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepository) HistoryByOrder(ctx context.Context, orderID int64) ([]model.PaymentHistoryEntry, error) {
	const query = `SELECT id, order_id, user_id, amount, payment_method, due_date, created_at
                   FROM payment_history WHERE order_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PaymentHistoryEntry
	for rows.Next() {
		var e model.PaymentHistoryEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.UserID, &e.Amount, &e.PaymentMethod, &e.DueDate, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanPayments(rows pgx.Rows) ([]model.Payment, error) {
	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.UserID, &p.Amount, &p.PaymentMethod, &p.DueDate, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
