package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/domain/repository"
	pkgAuth "github.com/ekeukwu/market/internal/pkg/auth"
)

// UserUseCase covers administrative user CRUD.
type UserUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher}
}

// List returns every registered user.
func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// Create registers a user with a hashed password.
func (u *UserUseCase) Create(ctx context.Context, name, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return u.users.Create(ctx, strings.TrimSpace(name), email, hash)
}

// GetByID fetches a user by identifier.
func (u *UserUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// Update applies the present fields only. A supplied password is hashed
// before it reaches the store.
func (u *UserUseCase) Update(ctx context.Context, id int64, name, email, password *string) (*model.User, error) {
	var passwordHash *string
	if password != nil {
		hash, err := u.hasher.Hash(*password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hash
	}
	if email != nil {
		normalized := strings.TrimSpace(strings.ToLower(*email))
		email = &normalized
	}
	return u.users.Update(ctx, id, name, email, passwordHash)
}

// Delete removes a user; missing ids surface as ErrNotFound.
func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}
