package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_CreateProduct_NameRequired(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	_, err := uc.CreateProduct(context.Background(), 1, usecase.CreateProductInput{
		Name:  "   ",
		Stock: 5,
	})
	assertStatus(t, err, 400)
	pRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 初期在庫のマイナスは拒否（台帳を通らない負在庫を作らない）
func TestProductUsecase_CreateProduct_NegativeStock(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	_, err := uc.CreateProduct(context.Background(), 1, usecase.CreateProductInput{
		Name:  "pen",
		Stock: -1,
	})
	assertStatus(t, err, 400)
}

func TestProductUsecase_CreateProduct_Success(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.UserID == 1 && p.Name == "pen" && p.Stock == 5
	})).Return(model.Product{ID: 3, UserID: 1, Name: "pen", Stock: 5}, nil)

	out, err := uc.CreateProduct(context.Background(), 1, usecase.CreateProductInput{
		Name:  "  pen  ",
		Stock: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, model.AvailabilityInStock, out.Availability)
	pRepo.AssertExpectations(t)
}

func TestProductUsecase_ListProducts_DerivesAvailability(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("ListByUser", mock.Anything, int64(1)).Return([]model.Product{
		{ID: 1, UserID: 1, Name: "pen", Stock: 3},
		{ID: 2, UserID: 1, Name: "ink", Stock: 0},
		{ID: 3, UserID: 1, Name: "pad", Stock: -2},
	}, nil)

	out, err := uc.ListProducts(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(out))
	assert.Equal(t, model.AvailabilityInStock, out[0].Availability)
	assert.Equal(t, model.AvailabilityOutOfStock, out[1].Availability)
	assert.Equal(t, model.AvailabilityOutOfStock, out[2].Availability)
}

func TestProductUsecase_UpdateProduct_OwnerMismatch(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, UserID: 99}, nil)

	_, err := uc.UpdateProduct(context.Background(), 1, 3, usecase.UpdateProductInput{Name: "pen"})
	assertStatus(t, err, 404)
	pRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductUsecase_UpdateProduct_Success(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, UserID: 1, Name: "pen", Stock: 5}, nil)
	pRepo.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == 3 && p.Name == "pen v2" && p.Stock == 9
	})).Return(nil)

	out, err := uc.UpdateProduct(context.Background(), 1, 3, usecase.UpdateProductInput{
		Name:  "pen v2",
		Stock: 9,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(9), out.Stock)
	pRepo.AssertExpectations(t)
}

func TestProductUsecase_DeleteProduct_NotFound(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Product{}, repo.ErrNotFound)

	err := uc.DeleteProduct(context.Background(), 1, 3)
	assertStatus(t, err, 404)
	pRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductUsecase_DeleteProduct_Success(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, UserID: 1}, nil)
	pRepo.On("Delete", mock.Anything, int64(3)).Return(nil)

	err := uc.DeleteProduct(context.Background(), 1, 3)
	assert.NoError(t, err)
	pRepo.AssertExpectations(t)
}
