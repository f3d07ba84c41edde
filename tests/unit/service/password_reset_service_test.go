package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billkit/internal/domain"
	"billkit/internal/service"
	"billkit/mocks"
)

func TestPasswordResetService_ForgotPassword_SendsEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewPasswordResetService(userRepo, sender, testJWTConfig(), zerolog.Nop())

	user := &domain.User{ID: uuid.New(), Email: "owner@test.com", FullName: "Owner"}
	userRepo.On("GetByEmail", mock.Anything, "owner@test.com").Return(user, nil)
	userRepo.On("SetPasswordResetToken", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil)
	sender.On("SendPasswordResetEmail", mock.Anything, "owner@test.com", "Owner", mock.AnythingOfType("string")).Return(nil)

	err := svc.ForgotPassword(context.Background(), service.ForgotPasswordInput{Email: "owner@test.com"})
	require.NoError(t, err)

	userRepo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestPasswordResetService_ForgotPassword_UnknownEmailStillSucceeds(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewPasswordResetService(userRepo, sender, testJWTConfig(), zerolog.Nop())

	userRepo.On("GetByEmail", mock.Anything, "nobody@test.com").Return(nil, domain.ErrNotFound)

	err := svc.ForgotPassword(context.Background(), service.ForgotPasswordInput{Email: "nobody@test.com"})
	assert.NoError(t, err)
	sender.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPasswordResetService_ResetPassword_RoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewPasswordResetService(userRepo, sender, testJWTConfig(), zerolog.Nop())

	user := &domain.User{ID: uuid.New(), Email: "owner@test.com", FullName: "Owner"}
	var issuedToken, issuedJTI string
	userRepo.On("GetByEmail", mock.Anything, "owner@test.com").Return(user, nil)
	userRepo.On("SetPasswordResetToken", mock.Anything, user.ID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { issuedJTI = args.String(2) }).Return(nil)
	sender.On("SendPasswordResetEmail", mock.Anything, "owner@test.com", "Owner", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { issuedToken = args.String(3) }).Return(nil)

	require.NoError(t, svc.ForgotPassword(context.Background(), service.ForgotPasswordInput{Email: "owner@test.com"}))
	require.NotEmpty(t, issuedToken)

	// The stored jti gates single use; the service must hand it to the repo.
	userRepo.On("ResetPassword", mock.Anything, user.ID, mock.AnythingOfType("string"), issuedJTI).Return(nil)

	err := svc.ResetPassword(context.Background(), service.ResetPasswordInput{
		Token:       issuedToken,
		NewPassword: "newpassword456",
	})
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestPasswordResetService_ResetPassword_GarbageToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewPasswordResetService(userRepo, sender, testJWTConfig(), zerolog.Nop())

	err := svc.ResetPassword(context.Background(), service.ResetPasswordInput{
		Token:       "garbage",
		NewPassword: "newpassword456",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordResetTokenInvalid)
}

func TestPasswordResetService_ResetPassword_AccessTokenRejected(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)
	resetSvc := service.NewPasswordResetService(userRepo, sender, testJWTConfig(), zerolog.Nop())
	authSvc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{ID: uuid.New(), Email: "owner@test.com", PasswordHash: hashPassword("password123")}
	userRepo.On("GetByEmail", mock.Anything, "owner@test.com").Return(user, nil)

	pair, err := authSvc.Login(context.Background(), service.LoginInput{Email: "owner@test.com", Password: "password123"})
	require.NoError(t, err)

	err = resetSvc.ResetPassword(context.Background(), service.ResetPasswordInput{
		Token:       pair.AccessToken,
		NewPassword: "newpassword456",
	})
	assert.True(t, errors.Is(err, domain.ErrPasswordResetTokenInvalid))
	userRepo.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
