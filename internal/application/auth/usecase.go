package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/repository"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionState is any per-user server-side state that must be discarded on
// logout (advisory transcript, active panel). The JWT itself is stateless.
type SessionState interface {
	Reset(userID string)
}

// UseCase authentication flows: login, signup, logout.
type UseCase struct {
	authenticator Authenticator
	userRepo      repository.UserRepository
	jwtCfg        JWTConfig
	demoMode      bool
	sessions      []SessionState
}

// NewUseCase constructs the auth use case. sessions lists the per-user state
// holders to clear on logout.
func NewUseCase(authenticator Authenticator, userRepo repository.UserRepository, jwtCfg JWTConfig, demoMode bool, sessions ...SessionState) *UseCase {
	return &UseCase{
		authenticator: authenticator,
		userRepo:      userRepo,
		jwtCfg:        jwtCfg,
		demoMode:      demoMode,
		sessions:      sessions,
	}
}

// Login verifies credentials via the configured authenticator and issues a JWT.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.authenticator.Authenticate(ctx, Credentials{Email: in.Email, Password: in.Password})
	if err != nil {
		return nil, err
	}
	return uc.issueSession(user)
}

// Signup registers a user and signs them in. In demo mode the identity is
// synthesized and always accepted; in credentials mode the email must be new
// and the password is stored as a bcrypt hash.
func (uc *UseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.SessionResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	role := entity.Role(in.Role)
	if in.Role == "" {
		role = entity.RoleCustomer
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = DeriveDisplayName(email)
	}

	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if uc.demoMode {
		// Demo signup never fails; best-effort registration in the store.
		_ = uc.userRepo.Create(user)
		return uc.issueSession(user)
	}

	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.issueSession(user)
}

// Logout discards the per-user server-side session state.
func (uc *UseCase) Logout(userID string) {
	for _, s := range uc.sessions {
		s.Reset(userID)
	}
}

func (uc *UseCase) issueSession(user *entity.User) (*dto.SessionResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
