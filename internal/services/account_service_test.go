package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	dbm "sankofa/internal/models/db_models"
	"sankofa/internal/models/request_models"
	"sankofa/pkg/utils"
)

// TestLogin_RoundTrip registers a hash and logs in against it.
func TestLogin_RoundTrip(t *testing.T) {
	accountRepo := new(MockAccountRepository)

	hash, err := utils.HashPassword("s3cret-pw")
	assert.NoError(t, err)

	accountRepo.On("FindByEmail", mock.Anything, "ama@example.com").
		Return(&dbm.Account{Name: "Ama", Email: "ama@example.com", PasswordHash: hash}, nil)

	svc := NewAccountService(accountRepo)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ama@example.com",
		Password: "s3cret-pw",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

// TestLogin_WrongPassword verifies bad credentials never leak which
// part was wrong.
func TestLogin_WrongPassword(t *testing.T) {
	accountRepo := new(MockAccountRepository)

	hash, _ := utils.HashPassword("correct-pw")
	accountRepo.On("FindByEmail", mock.Anything, "ama@example.com").
		Return(&dbm.Account{Email: "ama@example.com", PasswordHash: hash}, nil)

	svc := NewAccountService(accountRepo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ama@example.com",
		Password: "wrong-pw",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

// TestLogin_UnknownEmail verifies unknown accounts fail the same way.
func TestLogin_UnknownEmail(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	accountRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	svc := NewAccountService(accountRepo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

// TestCreateAccount_EmailTaken covers the pre-insert existence check.
func TestCreateAccount_EmailTaken(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	accountRepo.On("FindByEmail", mock.Anything, "ama@example.com").
		Return(&dbm.Account{Email: "ama@example.com"}, nil)

	svc := NewAccountService(accountRepo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ama",
		Email:       "ama@example.com",
		Password:    "pw",
	})

	assert.ErrorIs(t, err, utils.ErrEmailTaken)
	accountRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

// TestCreateAccount_RaceOnUniqueEmail covers the duplicate-key fallback
// when two registrations pass the existence check together.
func TestCreateAccount_RaceOnUniqueEmail(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	accountRepo.On("FindByEmail", mock.Anything, "ama@example.com").Return(nil, nil)
	accountRepo.On("Insert", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	svc := NewAccountService(accountRepo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ama",
		Email:       "ama@example.com",
		Password:    "pw",
	})

	assert.ErrorIs(t, err, utils.ErrEmailTaken)
}

// TestCreateAccount_HashesPassword verifies the stored hash verifies
// against the raw password and is not the password itself.
func TestCreateAccount_HashesPassword(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	accountRepo.On("FindByEmail", mock.Anything, "kofi@example.com").Return(nil, nil)

	var stored *dbm.Account
	accountRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*dbm.Account)
	})

	svc := NewAccountService(accountRepo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Kofi",
		Email:       "kofi@example.com",
		Password:    "open-sesame",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "open-sesame", stored.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(stored.PasswordHash, "open-sesame"))
}
