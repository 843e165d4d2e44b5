package validator_test

import (
	"context"
	"testing"

	"app/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestAuthValidator_ValidateRegister(t *testing.T) {
	v := validator.NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.ValidateRegister(ctx, "Taro", "Yamada", "taro@example.com", "password123"))

	assert.Error(t, v.ValidateRegister(ctx, "", "Yamada", "taro@example.com", "password123"))
	assert.Error(t, v.ValidateRegister(ctx, "Taro", "  ", "taro@example.com", "password123"))
	assert.Error(t, v.ValidateRegister(ctx, "Taro", "Yamada", "not-an-email", "password123"))
	assert.Error(t, v.ValidateRegister(ctx, "Taro", "Yamada", "taro@example.com", "short"))
}

func TestAuthValidator_ValidateLogin(t *testing.T) {
	v := validator.NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.ValidateLogin(ctx, "taro@example.com", "password123"))
	assert.Error(t, v.ValidateLogin(ctx, "", "password123"))
	assert.Error(t, v.ValidateLogin(ctx, "taro@example.com", ""))
}
