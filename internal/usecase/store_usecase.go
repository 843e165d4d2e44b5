package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type StoreUsecase struct {
	storeRepo repo.StoreRepository
}

// DI
func NewStoreUsecase(storeRepo repo.StoreRepository) *StoreUsecase {
	return &StoreUsecase{storeRepo: storeRepo}
}

type CreateStoreInput struct {
	Name     string
	Category string
	Address  string
	City     string
	ImageURL string
}

func (u *StoreUsecase) CreateStore(ctx context.Context, userID int64, in CreateStoreInput) (model.Store, error) {
	if userID <= 0 {
		return model.Store{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "address required")
	}

	created, err := u.storeRepo.Create(ctx, model.Store{
		UserID:   userID,
		Name:     strings.TrimSpace(in.Name),
		Category: in.Category,
		Address:  strings.TrimSpace(in.Address),
		City:     in.City,
		ImageURL: in.ImageURL,
	})
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *StoreUsecase) ListStores(ctx context.Context, userID int64) ([]model.Store, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	stores, err := u.storeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return stores, nil
}
