package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"billkit/internal/config"
	"billkit/internal/domain"
	"billkit/internal/service"
	"billkit/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "billkit-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(hash)
}

func TestAuthService_Register_FirstRun(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("Count", mock.Anything).Return(0, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "owner@test.com" && u.PasswordHash != "password123"
	})).Return(nil)

	pair, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "owner@test.com",
		Password: "password123",
		FullName: "Owner",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_SecondAttemptRejected(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("Count", mock.Anything).Return(1, nil)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "second@test.com",
		Password: "password123",
		FullName: "Second",
	})

	assert.ErrorIs(t, err, domain.ErrOwnerExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "owner@test.com",
		PasswordHash: hashPassword("password123"),
	}
	userRepo.On("GetByEmail", mock.Anything, "owner@test.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@test.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "owner@test.com", claims.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "owner@test.com",
		PasswordHash: hashPassword("correct-password"),
	}
	userRepo.On("GetByEmail", mock.Anything, "owner@test.com").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@test.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "nobody@test.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@test.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "owner@test.com",
		PasswordHash: hashPassword("password123"),
	}
	userRepo.On("GetByEmail", mock.Anything, "owner@test.com").Return(user, nil)
	userRepo.On("Get", mock.Anything).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "owner@test.com",
		PasswordHash: hashPassword("password123"),
	}
	userRepo.On("GetByEmail", mock.Anything, "owner@test.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// An access token must not pass as a refresh token.
	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthService_NeedsSetup(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("Count", mock.Anything).Return(0, nil).Once()
	needs, err := svc.NeedsSetup(context.Background())
	require.NoError(t, err)
	assert.True(t, needs)

	userRepo.On("Count", mock.Anything).Return(1, nil).Once()
	needs, err = svc.NeedsSetup(context.Background())
	require.NoError(t, err)
	assert.False(t, needs)
}
