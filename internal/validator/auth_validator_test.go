package validator_test

import (
	"app/internal/validator"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthValidator_ValidateSignup(t *testing.T) {
	v := validator.NewAuthValidator()
	ctx := context.Background()

	//OK
	assert.NoError(t, v.ValidateSignup(ctx, "Alice", "alice@test.com", "password1"))

	//email必須
	assert.Error(t, v.ValidateSignup(ctx, "Alice", "", "password1"))
	//email形式
	assert.Error(t, v.ValidateSignup(ctx, "Alice", "not-an-email", "password1"))
	//パスワード8文字未満
	assert.Error(t, v.ValidateSignup(ctx, "Alice", "alice@test.com", "short"))
}

func TestAuthValidator_ValidateLogin(t *testing.T) {
	v := validator.NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.ValidateLogin(ctx, "alice@test.com", "password1"))
	assert.Error(t, v.ValidateLogin(ctx, "alice@test.com", ""))
	assert.Error(t, v.ValidateLogin(ctx, "bad-email", "password1"))
}
