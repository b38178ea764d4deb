package service

import (
	"context"
	"testing"
	"time"

	"github.com/Madelineqt/clontagram-servidor/internal/config"
	"github.com/Madelineqt/clontagram-servidor/internal/crypto"
	"github.com/Madelineqt/clontagram-servidor/internal/logger"
	"github.com/Madelineqt/clontagram-servidor/internal/mock"
	"github.com/Madelineqt/clontagram-servidor/internal/store"
	"github.com/Madelineqt/clontagram-servidor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "clontagram",
		TokenDuration: time.Hour,
	}

	svc := NewAuthService(mockUsers, cfg, logger.Nop()).(*authService)

	return svc, mockUsers
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{Login: "maria", Name: "María", Password: "secretísimo"}

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Empty(t, u.Password, "plain-text password must be discarded before persistence")
			require.NotEmpty(t, u.PasswordHash)

			ok, err := crypto.VerifyPassword("secretísimo", u.PasswordHash)
			require.NoError(t, err)
			assert.True(t, ok, "stored hash should verify against the original password")

			u.UserID = 1
			return u, nil
		},
	)

	registered, err := svc.RegisterUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users := []models.User{
		{Name: "María", Password: "x"},
		{Login: "maria", Password: "x"},
		{Login: "maria", Name: "María"},
	}

	for _, user := range users {
		_, err := svc.RegisterUser(ctx, user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.User{Login: "maria", Name: "María", Password: "x"})
	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	passwordHash, err := crypto.HashPassword("secretísimo")
	require.NoError(t, err)

	stored := models.User{UserID: 7, Login: "maria", Name: "María", PasswordHash: passwordHash}

	mockUsers.EXPECT().FindUserByLogin(ctx, gomock.Any()).Return(stored, nil)

	authenticated, err := svc.Login(ctx, models.User{Login: "maria", Password: "secretísimo"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), authenticated.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	passwordHash, err := crypto.HashPassword("la-correcta")
	require.NoError(t, err)

	stored := models.User{UserID: 7, Login: "maria", PasswordHash: passwordHash}

	mockUsers.EXPECT().FindUserByLogin(ctx, gomock.Any()).Return(stored, nil)

	_, err = svc.Login(ctx, models.User{Login: "maria", Password: "la-incorrecta"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByLogin(ctx, gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Login: "nadie", Password: "x"})
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.User{Login: "maria"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Login: "maria"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	other := *svc
	other.tokenIssuer = "otro-emisor"

	token, err := other.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
