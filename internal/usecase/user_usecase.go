package usecase

import (
	"context"
	"net/http"
	"strings"

	repo "app/internal/repository"
)

// プロフィールの取得・更新（CRUDのみ、台帳とは無関係）
type UserUsecase struct {
	users repo.UserRepository
}

func NewUserUsecase(users repo.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

func (u *UserUsecase) GetProfile(ctx context.Context, userID int64) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound || user == nil {
		return UserDTO{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toUserDTO(user), nil
}

type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	ImageURL    string
}

func (u *UserUsecase) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "first_name and last_name required")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "email required")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound || user == nil {
		return UserDTO{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user.FirstName = strings.TrimSpace(in.FirstName)
	user.LastName = strings.TrimSpace(in.LastName)
	user.Email = email
	user.PhoneNumber = in.PhoneNumber
	user.ImageURL = in.ImageURL

	if err := u.users.Update(ctx, user); err != nil {
		if err == repo.ErrDuplicate {
			return UserDTO{}, NewHTTPError(http.StatusBadRequest, "email already in use")
		}
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserDTO(user), nil
}
