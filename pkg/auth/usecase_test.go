package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/resumeai/pkg/kvstore"
)

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, u User) (string, error) {
	return "token-for-" + u.Email, nil
}

func newTestService() (AuthUseCase, *KVUserRepository) {
	repo := NewKVUserRepository(kvstore.NewMemory())
	return NewAuthService(repo, staticTokens{}), repo
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	res, err := svc.Register(ctx, "  Jane@Example.COM ", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", res.User.Email, "email is normalized")
	assert.Equal(t, "token-for-jane@example.com", res.Token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("s3cret")))
	assert.True(t, res.User.IsAdmin, "first registered account owns the installation")
}

func TestRegisterSecondUserIsNotAdmin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Register(ctx, "first@example.com", "pw")
	require.NoError(t, err)

	res, err := svc.Register(ctx, "second@example.com", "pw")
	require.NoError(t, err)
	assert.False(t, res.User.IsAdmin)
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Register(ctx, "jane@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "JANE@example.com", "other")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterRejectsEmptyCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Register(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(ctx, "jane@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Register(ctx, "jane@example.com", "s3cret")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "Jane@Example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", res.User.Email)
	assert.NotEmpty(t, res.Token)

	_, err = svc.Login(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ghost@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestKVUserRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewKVUserRepository(kvstore.NewMemory())

	has, err := repo.HasAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	svc := NewAuthService(repo, staticTokens{})
	res, err := svc.Register(ctx, "admin@example.com", "pw")
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, got.ID)
	assert.NotEmpty(t, got.PasswordHash, "hash survives persistence despite being JSON-hidden")

	has, err = repo.HasAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}
