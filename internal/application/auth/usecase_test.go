package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freshstock-api/internal/application/auth"
	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/memory"
	"github.com/jhoicas/freshstock-api/pkg/jwt"
)

func fixedNow() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

func newAuth() (*auth.AuthUseCase, document.Repositories) {
	repos := document.NewRepositories(memory.NewStore(fixedNow), fixedNow)
	cfg := auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "freshstock"}
	return auth.NewAuthUseCase(repos.Users, repos.Activities, cfg), repos
}

func TestLogin_OK(t *testing.T) {
	uc, repos := newAuth()
	ctx := context.Background()

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "karan", Password: "karan123"})
	require.NoError(t, err)
	assert.Equal(t, "Inventory Manager", out.User.Name)
	assert.Equal(t, entity.RoleManager, out.User.Role)

	claims, err := jwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "2", claims.UserID)
	assert.Equal(t, "Inventory Manager", claims.Name)
	assert.Equal(t, entity.RoleManager, claims.Role)

	acts, err := repos.Activities.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.ActivityUserLogin, acts[0].Activity)
	assert.Equal(t, "Inventory Manager logged into the system", acts[0].Details)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, repos := newAuth()
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "Admin", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "la comparación de usuario es exacta")

	acts, err := repos.Activities.List(ctx)
	require.NoError(t, err)
	assert.Len(t, acts, 1, "un login fallido no registra actividad")
}

func TestPasswordMatches(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, auth.PasswordMatches(hash, "s3cret"))
	assert.False(t, auth.PasswordMatches(hash, "other"))
	assert.True(t, auth.PasswordMatches("admin123", "admin123"))
	assert.False(t, auth.PasswordMatches("admin123", "admin1234"))

	assert.True(t, auth.IsHashed(hash))
	assert.False(t, auth.IsHashed("admin123"))
}
