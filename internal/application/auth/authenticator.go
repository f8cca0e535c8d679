package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/repository"
)

// Credentials submitted at login.
type Credentials struct {
	Email    string
	Password string
}

// Authenticator is the credential-verification boundary. The demo showroom
// accepts anything; swapping in CredentialsAuthenticator gives real checks
// without touching the rest of the application.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*entity.User, error)
}

// ── Demo mode ─────────────────────────────────────────────────────────────────

// DemoAuthenticator always succeeds and synthesizes an identity from the
// email: the local part upper-cased becomes the display name, and every demo
// login gets the admin role for full dashboard access.
type DemoAuthenticator struct{}

var _ Authenticator = (*DemoAuthenticator)(nil)

// NewDemoAuthenticator constructs the demo authenticator.
func NewDemoAuthenticator() *DemoAuthenticator {
	return &DemoAuthenticator{}
}

// Authenticate never fails. "demo@co.com" yields {Name: "DEMO", Role: admin}.
func (a *DemoAuthenticator) Authenticate(_ context.Context, creds Credentials) (*entity.User, error) {
	email := strings.TrimSpace(creds.Email)
	return &entity.User{
		ID:        uuid.New().String(),
		Name:      DeriveDisplayName(email),
		Email:     email,
		Role:      entity.RoleAdmin,
		CreatedAt: time.Now(),
	}, nil
}

// DeriveDisplayName upper-cases the email local part. Falls back to
// "Demo User" when there is nothing before the '@'.
func DeriveDisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "Demo User"
	}
	return strings.ToUpper(local)
}

// ── Credentials mode ──────────────────────────────────────────────────────────

// CredentialsAuthenticator verifies bcrypt password hashes against the user
// store. Returns ErrUnauthorized on any mismatch so callers cannot distinguish
// an unknown email from a wrong password.
type CredentialsAuthenticator struct {
	userRepo repository.UserRepository
}

var _ Authenticator = (*CredentialsAuthenticator)(nil)

// NewCredentialsAuthenticator constructs the store-backed authenticator.
func NewCredentialsAuthenticator(userRepo repository.UserRepository) *CredentialsAuthenticator {
	return &CredentialsAuthenticator{userRepo: userRepo}
}

// Authenticate looks the user up by email and compares the bcrypt hash.
func (a *CredentialsAuthenticator) Authenticate(_ context.Context, creds Credentials) (*entity.User, error) {
	user, err := a.userRepo.FindByEmail(strings.TrimSpace(creds.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
