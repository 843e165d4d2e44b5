package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// availabilityはstockから導出して返す（保存しない）
type ProductOutput struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer"`
	Description  string    `json:"description"`
	Stock        int64     `json:"stock"`
	Availability string    `json:"availability"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, userID int64) ([]ProductOutput, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	products, err := u.productRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ProductOutput, 0, len(products))
	for _, p := range products {
		outs = append(outs, toProductOutput(p))
	}
	return outs, nil
}

type CreateProductInput struct {
	Name         string
	Manufacturer string
	Description  string
	Stock        int64
	ImageURL     string
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, userID int64, in CreateProductInput) (ProductOutput, error) {
	if userID <= 0 {
		return ProductOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Stock < 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		UserID:       userID,
		Name:         strings.TrimSpace(in.Name),
		Manufacturer: in.Manufacturer,
		Description:  in.Description,
		Stock:        in.Stock,
		ImageURL:     in.ImageURL,
	})
	if err != nil {
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toProductOutput(created), nil
}

type UpdateProductInput struct {
	Name         string
	Manufacturer string
	Description  string
	Stock        int64
	ImageURL     string
}

// メタデータ更新パス。stockの直接変更は台帳を経由しない（reconciliationで検出できる）
func (u *ProductUsecase) UpdateProduct(ctx context.Context, userID int64, productID int64, in UpdateProductInput) (ProductOutput, error) {
	if userID <= 0 {
		return ProductOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//他人の商品は「存在しない扱い」にする
	if p.UserID != userID {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Manufacturer = in.Manufacturer
	p.Description = in.Description
	p.Stock = in.Stock
	p.ImageURL = in.ImageURL

	if err := u.productRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return ProductOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toProductOutput(p), nil
}

// 物理削除。過去の仕入・売上イベントはそのまま残る
func (u *ProductUsecase) DeleteProduct(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}

	if err := u.productRepo.Delete(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toProductOutput(p model.Product) ProductOutput {
	return ProductOutput{
		ID:           p.ID,
		Name:         p.Name,
		Manufacturer: p.Manufacturer,
		Description:  p.Description,
		Stock:        p.Stock,
		Availability: p.Availability(),
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
	}
}
