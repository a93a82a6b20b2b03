package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	pkgAuth "github.com/ekeukwu/market/internal/pkg/auth"
	testhelpers "github.com/ekeukwu/market/internal/test"
	"github.com/ekeukwu/market/internal/usecase"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64, _ time.Duration) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), time.Minute)

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "Alice", "Alice@Example.com", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository under normalized email: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), time.Minute)

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Bob", "bob@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "Bob", "bob@example.com", "secret"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterEmptyCredentials(t *testing.T) {
	uc := usecase.NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub(), time.Minute)

	if _, _, err := uc.Register(context.Background(), "x", "", "pw"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "x", "a@b.c", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), time.Minute)

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Carol", "carol@example.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	_, token, err := uc.Authenticate(ctx, "Carol@Example.com", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseAuthenticateUnknownUser(t *testing.T) {
	uc := usecase.NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub(), time.Minute)

	if _, _, err := uc.Authenticate(context.Background(), "ghost@example.com", "pw"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("missing account must look like bad credentials, got %v", err)
	}
}

func TestAuthUseCaseLoginTTLPassedToStrategy(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	var issuedTTL time.Duration
	strategy := testhelpers.StrategyStub{
		IssueFn: func(userID int64, ttl time.Duration) (string, error) {
			issuedTTL = ttl
			return "token", nil
		},
	}
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, strategy, 30*time.Minute)

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Dan", "dan@example.com", "pw"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if issuedTTL != 0 {
		t.Fatalf("registration must use the strategy default ttl, got %v", issuedTTL)
	}
	if _, _, err := uc.Authenticate(ctx, "dan@example.com", "pw"); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if issuedTTL != 30*time.Minute {
		t.Fatalf("login must use the configured ttl, got %v", issuedTTL)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := usecase.NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub(), time.Minute)

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if _, err := uc.ParseToken("bad-token"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error for empty token, got %v", err)
	}
}
