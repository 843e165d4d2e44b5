package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const accessTokenTTL = 15 * time.Minute

// refreshtokenの有効期限
const refreshTokenTTL = 30 * 24 * time.Hour

const bcryptCost = 12

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, firstName, lastName, email, password string) error
	ValidateLogin(ctx context.Context, email, password string) error
}

type UserDTO struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	ImageURL    string `json:"image_url"`
}

type AccessTokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	ImageURL    string
}

type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
}

type LoginResult struct {
	User              UserDTO
	Token             AccessTokenDTO
	RefreshTokenPlain string
	RefreshExpiresAt  time.Time
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	rtRepo    repo.RefreshTokenRepository
	validator AuthValidator
}

func NewAuthUsecase(
	cfg config.Config,
	users repo.UserRepository,
	rtRepo repo.RefreshTokenRepository,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		rtRepo:    rtRepo,
		validator: validator,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserDTO, error) {
	if err := u.validator.ValidateRegister(ctx, in.FirstName, in.LastName, in.Email, in.Password); err != nil {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		PhoneNumber:  in.PhoneNumber,
		ImageURL:     in.ImageURL,
	}

	if err := u.users.Create(ctx, user); err != nil {
		//email重複は400（参照実装に合わせる）
		if err == repo.ErrDuplicate {
			return UserDTO{}, NewHTTPError(http.StatusBadRequest, "email already in use")
		}
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserDTO(user), nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return LoginResult{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return LoginResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := time.Now()

	access, err := u.issueAccessToken(user.ID, now)
	if err != nil {
		return LoginResult{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	//refresh tokenは平文をcookieで返し、ハッシュだけ保存する
	plain := uuid.NewString()
	expiresAt := now.Add(refreshTokenTTL)
	rt := &model.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: hashToken(plain),
		UserAgent: in.UserAgent,
		ExpiresAt: expiresAt,
	}
	if err := u.rtRepo.Create(ctx, rt); err != nil {
		return LoginResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return LoginResult{
		User: toUserDTO(user),
		Token: AccessTokenDTO{
			AccessToken: access,
			ExpiresIn:   int(accessTokenTTL.Seconds()),
		},
		RefreshTokenPlain: plain,
		RefreshExpiresAt:  expiresAt,
	}, nil
}

// refresh tokenをローテーションして新しいaccess tokenを発行する
func (u *AuthUsecase) Refresh(ctx context.Context, refreshPlain string) (LoginResult, error) {
	if strings.TrimSpace(refreshPlain) == "" {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	rt, err := u.rtRepo.FindByTokenHash(ctx, hashToken(refreshPlain))
	if err == repo.ErrNotFound {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return LoginResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := time.Now()

	//使用済みトークンの再提示は盗難の疑い。そのユーザーのセッションを全て無効にする
	if rt.UsedAt != nil {
		_ = u.rtRepo.RevokeAllByUserID(ctx, rt.UserID)
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if rt.RevokedAt != nil || now.After(rt.ExpiresAt) {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, rt.UserID)
	if err != nil || user == nil {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//使用済みにして新しいトークンに差し替える
	if err := u.rtRepo.MarkUsed(ctx, rt.ID); err != nil {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	access, err := u.issueAccessToken(user.ID, now)
	if err != nil {
		return LoginResult{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	plain := uuid.NewString()
	expiresAt := now.Add(refreshTokenTTL)
	next := &model.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: hashToken(plain),
		UserAgent: rt.UserAgent,
		ExpiresAt: expiresAt,
	}
	if err := u.rtRepo.Create(ctx, next); err != nil {
		return LoginResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return LoginResult{
		User: toUserDTO(user),
		Token: AccessTokenDTO{
			AccessToken: access,
			ExpiresIn:   int(accessTokenTTL.Seconds()),
		},
		RefreshTokenPlain: plain,
		RefreshExpiresAt:  expiresAt,
	}, nil
}

func (u *AuthUsecase) Logout(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.rtRepo.DeleteAllByUserID(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AuthUsecase) issueAccessToken(userID int64, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(accessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}

func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		ImageURL:    u.ImageURL,
	}
}
