package test

import (
	"context"
	"time"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored user.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, *u)
	}
	return users, nil
}

// Update applies non-nil fields to the stored user.
func (s *UserRepositoryStub) Update(ctx context.Context, id int64, name, email, passwordHash *string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if name != nil {
		user.Name = *name
	}
	if email != nil {
		delete(s.Users, user.Email)
		user.Email = *email
		s.Users[user.Email] = user
	}
	if passwordHash != nil {
		user.PasswordHash = *passwordHash
	}
	return user, nil
}

// Delete removes the user or reports not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.Users, user.Email)
	return nil
}

// ShopRepositoryStub stores shops in-memory for tests.
type ShopRepositoryStub struct {
	Shops map[int64]*model.Shop
	Next  int64
	Err   error
}

// NewShopRepositoryStub constructs stub repository with initialized map.
func NewShopRepositoryStub() *ShopRepositoryStub {
	return &ShopRepositoryStub{Shops: make(map[int64]*model.Shop), Next: 1}
}

// Create stores the shop and assigns the next identifier.
func (s *ShopRepositoryStub) Create(ctx context.Context, shop *model.Shop) (*model.Shop, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Shops == nil {
		s.Shops = make(map[int64]*model.Shop)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *shop
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	if stored.Images == nil {
		stored.Images = []string{}
	}
	s.Next++
	s.Shops[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches shop by identifier or returns not found.
func (s *ShopRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Shop, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if shop, ok := s.Shops[id]; ok {
		return shop, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored shop.
func (s *ShopRepositoryStub) List(ctx context.Context) ([]model.Shop, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	shops := make([]model.Shop, 0, len(s.Shops))
	for _, sh := range s.Shops {
		shops = append(shops, *sh)
	}
	return shops, nil
}

// Update applies non-nil patch fields to the stored shop.
func (s *ShopRepositoryStub) Update(ctx context.Context, id int64, patch model.ShopPatch) (*model.Shop, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	shop, ok := s.Shops[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Title != nil {
		shop.Title = *patch.Title
	}
	if patch.Description != nil {
		shop.Description = *patch.Description
	}
	if patch.Address != nil {
		shop.Address = *patch.Address
	}
	if patch.Price != nil {
		shop.Price = *patch.Price
	}
	if patch.Images != nil {
		shop.Images = *patch.Images
	}
	if patch.Availability != nil {
		shop.Availability = *patch.Availability
	}
	return shop, nil
}

// Delete removes the shop or reports not found.
func (s *ShopRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Shops[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Shops, id)
	return nil
}

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	Orders map[int64]*model.Order
	Next   int64
	Err    error
}

// NewOrderRepositoryStub constructs stub repository with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Create stores the order and assigns the next identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *order
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Orders[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches order by identifier or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored order.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	orders := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

// Update applies non-nil patch fields to the stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.ProductIDs != nil {
		order.ProductIDs = *patch.ProductIDs
	}
	if patch.PaymentMethod != nil {
		order.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	return order, nil
}

// Delete removes the order or reports not found.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return nil
}

// PaymentRepositoryStub stores payments and their history in-memory.
type PaymentRepositoryStub struct {
	Payments    []model.Payment
	History     []model.PaymentHistoryEntry
	NextID      int64
	NextHistory int64
	Err         error
	HistoryErr  error
}

// NewPaymentRepositoryStub constructs the stub with independent sequences.
func NewPaymentRepositoryStub() *PaymentRepositoryStub {
	return &PaymentRepositoryStub{NextID: 1, NextHistory: 100}
}

// Create stores the payment and assigns the next identifier.
func (s *PaymentRepositoryStub) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	stored := *payment
	stored.ID = s.NextID
	stored.CreatedAt = time.Now()
	s.NextID++
	s.Payments = append(s.Payments, stored)
	return &stored, nil
}

// AppendHistory mirrors the payment under a separate identifier sequence.
func (s *PaymentRepositoryStub) AppendHistory(ctx context.Context, payment *model.Payment) (*model.PaymentHistoryEntry, error) {
	if s.HistoryErr != nil {
		return nil, s.HistoryErr
	}
	if s.NextHistory == 0 {
		s.NextHistory = 100
	}
	entry := model.PaymentHistoryEntry{
		ID:            s.NextHistory,
		OrderID:       payment.OrderID,
		UserID:        payment.UserID,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		DueDate:       payment.DueDate,
		CreatedAt:     payment.CreatedAt,
	}
	s.NextHistory++
	s.History = append(s.History, entry)
	return &entry, nil
}

// ListByOrder returns stored payments for the order.
func (s *PaymentRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var payments []model.Payment
	for _, p := range s.Payments {
		if p.OrderID == orderID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

// ListDueBefore returns payments whose due date precedes the deadline.
func (s *PaymentRepositoryStub) ListDueBefore(ctx context.Context, deadline time.Time) ([]model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var payments []model.Payment
	for _, p := range s.Payments {
		if p.DueDate != nil && p.DueDate.Before(deadline) {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

// HistoryByOrder returns history entries for the order.
func (s *PaymentRepositoryStub) HistoryByOrder(ctx context.Context, orderID int64) ([]model.PaymentHistoryEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var entries []model.PaymentHistoryEntry
	for _, e := range s.History {
		if e.OrderID == orderID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
var _ repository.ShopRepository = (*ShopRepositoryStub)(nil)
var _ repository.OrderRepository = (*OrderRepositoryStub)(nil)
var _ repository.PaymentRepository = (*PaymentRepositoryStub)(nil)
