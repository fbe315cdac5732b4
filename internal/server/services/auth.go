// Package services contains the server-side business logic: account
// registration and login, and per-user record submission and retrieval.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"markbook/internal/common"
	"markbook/internal/server/models"
	"markbook/internal/server/repositories/accounts"
)

// Name doubles as the record-store namespace, so it must be safe to use as
// a directory name.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)

// RegisterRequest carries the sign-up form fields.
type RegisterRequest struct {
	Name        string
	Phone       string
	DateOfBirth string
	Email       string
	Password    string
}

// AuthService handles registration and login on top of the account store.
// It keeps no persistent state of its own.
type AuthService struct {
	accounts accounts.Repository

	// dummyHash is compared against when the email is unknown, so login
	// takes the same path for "no such email" and "wrong password".
	dummyHash []byte
}

func NewAuthService(repo accounts.Repository) *AuthService {
	dummy, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	return &AuthService{accounts: repo, dummyHash: dummy}
}

func validateRegisterRequest(req *RegisterRequest) error {
	if !nameRe.MatchString(req.Name) {
		return fmt.Errorf("%w: invalid name", common.ErrInvalidAccount)
	}
	if !emailRe.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email", common.ErrInvalidAccount)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: empty password", common.ErrInvalidAccount)
	}
	if _, err := time.Parse(models.DOBLayout, req.DateOfBirth); err != nil {
		return fmt.Errorf("%w: invalid date of birth", common.ErrInvalidAccount)
	}
	return nil
}

// Register creates a new account. Both email and name must be unused; on a
// conflict it fails with ErrAccountExists and leaves the store untouched.
// The pre-checks below give a precise error; Save re-checks both inside the
// store's critical section, so a concurrent duplicate still fails.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*models.Account, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.accounts.Exists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrAccountExists
	}

	taken, err := s.accounts.NameTaken(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: name %q", common.ErrAccountExists, req.Name)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies the credentials and returns the stored account. Unknown
// email and wrong password both yield ErrInvalidCredentials; neither path
// reveals which half of the pair was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Burn a comparison anyway to keep behavior uniform.
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}
	return account, nil
}
