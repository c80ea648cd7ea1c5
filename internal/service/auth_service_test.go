package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certpoints/internal/model"
	"certpoints/internal/repository/memory"
)

func TestAuthService_RegisterLoginValidate(t *testing.T) {
	users := &memory.UserRepo{}
	svc := NewAuthService(users, "test-secret", time.Hour)
	ctx := context.Background()

	resp, err := svc.Register(ctx, model.RegisterRequest{
		Name: "Asha Nair", Email: "asha@example.com", Password: "hunter22", Class: "S7",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, resp.User.Role)
	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, []byte("hunter22"), resp.User.PasswordHash)

	login, err := svc.Login(ctx, "asha@example.com", "hunter22")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "Asha Nair", claims.Name)
	assert.Equal(t, "S7", claims.Class)
	assert.Equal(t, model.RoleStudent, claims.Role)
}

func TestAuthService_Errors(t *testing.T) {
	users := &memory.UserRepo{}
	svc := NewAuthService(users, "test-secret", time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, model.RegisterRequest{Name: "T", Email: "t@example.com", Password: "pw", Role: model.RoleTeacher})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  model.RegisterRequest
		want error
	}{
		{"taken", model.RegisterRequest{Name: "X", Email: "t@example.com", Password: "pw", Role: model.RoleTeacher}, ErrEmailTaken},
		{"student without class", model.RegisterRequest{Name: "X", Email: "x@example.com", Password: "pw"}, ErrInvalidAccount},
		{"bad role", model.RegisterRequest{Name: "X", Email: "x@example.com", Password: "pw", Role: "admin"}, ErrInvalidAccount},
		{"no password", model.RegisterRequest{Name: "X", Email: "x@example.com", Role: model.RoleTeacher}, ErrInvalidAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.Equal(t, tt.want, err)
		})
	}

	_, err = svc.Login(ctx, "t@example.com", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
	_, err = svc.Login(ctx, "nobody@example.com", "pw")
	assert.Equal(t, ErrInvalidCredentials, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Equal(t, ErrInvalidToken, err)

	other := NewAuthService(users, "other-secret", time.Hour)
	resp, err := other.Login(ctx, "t@example.com", "pw")
	require.NoError(t, err)
	_, err = svc.ValidateToken(resp.Token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	svc := NewAuthService(&memory.UserRepo{}, "test-secret", -time.Minute)
	token, err := svc.GenerateToken(&model.User{ID: "u1", Name: "Asha", Role: model.RoleStudent})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}
