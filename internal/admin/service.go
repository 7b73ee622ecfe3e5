package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orbya/portfolio-backend/pkg/auth"
	"github.com/orbya/portfolio-backend/pkg/config"
	"github.com/orbya/portfolio-backend/pkg/db/models"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
	"github.com/orbya/portfolio-backend/pkg/security"
)

type credentialRepository interface {
	Get(ctx context.Context) (*models.AdminCredential, error)
	EnsureExists(ctx context.Context, seed *models.AdminCredential) error
	UpdateHash(ctx context.Context, hash string, version int64) error
}

// SessionDTO is returned on a successful login.
type SessionDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthenticateInput carries the shared admin password.
type AuthenticateInput struct {
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput carries the current and replacement passwords.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// Service manages the single shared admin credential and mints session
// tokens against it.
type Service interface {
	EnsureCredential(ctx context.Context) error
	Authenticate(ctx context.Context, input AuthenticateInput) (*SessionDTO, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	CurrentVersion(ctx context.Context) (int64, error)
}

type service struct {
	repo        credentialRepository
	jwtCfg      config.JWTConfig
	adminCfg    config.AdminConfig
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// NewService builds an admin service with the provided repository and config.
func NewService(repo credentialRepository, jwtCfg config.JWTConfig, adminCfg config.AdminConfig, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("credential repository required")
	}
	if jwtCfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	return &service{
		repo:        repo,
		jwtCfg:      jwtCfg,
		adminCfg:    adminCfg,
		passwordCfg: passwordCfg,
		now:         time.Now,
	}, nil
}

// EnsureCredential seeds the credential row from the configured bootstrap
// password. Safe to call on every startup: an existing row is left alone, so
// a changed password survives restarts.
func (s *service) EnsureCredential(ctx context.Context) error {
	hash, err := security.HashPassword(s.adminCfg.Password, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash bootstrap password")
	}
	if err := s.repo.EnsureExists(ctx, &models.AdminCredential{PasswordHash: hash, Version: 1}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed admin credential")
	}
	return nil
}

func (s *service) Authenticate(ctx context.Context, input AuthenticateInput) (*SessionDTO, error) {
	cred, err := s.loadCredential(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := security.VerifyPassword(input.Password, cred.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid password")
	}

	now := s.now()
	token, err := auth.MintAdminToken(s.jwtCfg, now, cred.Version)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint session token")
	}
	return &SessionDTO{Token: token, ExpiresAt: now.Add(s.jwtCfg.TokenTTL())}, nil
}

// ChangePassword verifies the current password, then stores the new hash
// under a bumped version. Tokens minted before the bump stop validating.
func (s *service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if len(input.NewPassword) < s.adminCfg.MinPasswordLength {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("new password must be at least %d characters", s.adminCfg.MinPasswordLength))
	}

	cred, err := s.loadCredential(ctx)
	if err != nil {
		return err
	}

	ok, err := security.VerifyPassword(input.CurrentPassword, cred.PasswordHash)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "current password is incorrect")
	}

	hash, err := security.HashPassword(input.NewPassword, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash new password")
	}
	if err := s.repo.UpdateHash(ctx, hash, cred.Version+1); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store new password")
	}
	return nil
}

// CurrentVersion returns the live credential version for token validation.
func (s *service) CurrentVersion(ctx context.Context) (int64, error) {
	cred, err := s.loadCredential(ctx)
	if err != nil {
		return 0, err
	}
	return cred.Version, nil
}

func (s *service) loadCredential(ctx context.Context) (*models.AdminCredential, error) {
	cred, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin credential not provisioned")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load admin credential")
	}
	return cred, nil
}
