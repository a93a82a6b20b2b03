package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	testhelpers "github.com/ekeukwu/market/internal/test"
	"github.com/ekeukwu/market/internal/usecase"
)

func TestShopUseCaseCreateUploadsImages(t *testing.T) {
	repo := testhelpers.NewShopRepositoryStub()
	uploader := &testhelpers.UploaderStub{}
	uc := usecase.NewShopUseCase(repo, uploader)

	images := []usecase.ImageUpload{
		{Filename: "front.jpg", ContentType: "image/jpeg", Body: strings.NewReader("jpg")},
		{Filename: "back.png", ContentType: "image/png", Body: strings.NewReader("png")},
	}

	shop, err := uc.Create(context.Background(), &model.Shop{Title: "Lagos Rentals", Availability: true}, images)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if len(shop.Images) != 2 {
		t.Fatalf("expected 2 image URLs, got %d", len(shop.Images))
	}
	if shop.Images[0] != "https://cdn.example.com/front.jpg" {
		t.Fatalf("unexpected image URL %q", shop.Images[0])
	}
	if len(uploader.Uploaded) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(uploader.Uploaded))
	}
}

func TestShopUseCaseCreateNoImages(t *testing.T) {
	repo := testhelpers.NewShopRepositoryStub()
	uc := usecase.NewShopUseCase(repo, &testhelpers.UploaderStub{})

	shop, err := uc.Create(context.Background(), &model.Shop{Title: "Bare"}, nil)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if shop.Images == nil || len(shop.Images) != 0 {
		t.Fatalf("expected empty image list, got %v", shop.Images)
	}
}

func TestShopUseCaseCreateUploadFailureAborts(t *testing.T) {
	repo := testhelpers.NewShopRepositoryStub()
	failing := &testhelpers.UploaderStub{
		UploadFn: func(context.Context, string, string, io.Reader) (string, error) {
			return "", errors.New("bucket unavailable")
		},
	}
	uc := usecase.NewShopUseCase(repo, failing)

	_, err := uc.Create(context.Background(), &model.Shop{Title: "Broken"}, []usecase.ImageUpload{
		{Filename: "x.jpg", Body: strings.NewReader("x")},
	})
	if !errors.Is(err, domainErrors.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if len(repo.Shops) != 0 {
		t.Fatalf("shop must not be persisted after a failed upload")
	}
}

func TestShopUseCaseUpdateAndDelete(t *testing.T) {
	repo := testhelpers.NewShopRepositoryStub()
	uc := usecase.NewShopUseCase(repo, &testhelpers.UploaderStub{})

	ctx := context.Background()
	shop, err := uc.Create(ctx, &model.Shop{Title: "Old", Availability: true}, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	title := "New"
	available := false
	updated, err := uc.Update(ctx, shop.ID, model.ShopPatch{Title: &title, Availability: &available})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Title != "New" || updated.Availability {
		t.Fatalf("patch not applied: %+v", updated)
	}

	if err := uc.Delete(ctx, shop.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := uc.GetByID(ctx, shop.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
