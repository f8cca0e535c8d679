package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/auth"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/infrastructure/memory"
	pkgjwt "github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func jwtCfg() auth.JWTConfig {
	return auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "showroom-os-test"}
}

// resetRecorder records Reset calls to verify logout fan-out.
type resetRecorder struct {
	userIDs []string
}

func (r *resetRecorder) Reset(userID string) { r.userIDs = append(r.userIDs, userID) }

// ──────────────────────────────────────────────────────────────────────────────
// Demo mode
// ──────────────────────────────────────────────────────────────────────────────

func demoUseCase(sessions ...auth.SessionState) *auth.UseCase {
	repo := memory.NewUserRepository(nil)
	return auth.NewUseCase(auth.NewDemoAuthenticator(), repo, jwtCfg(), true, sessions...)
}

func TestDemoLogin_DerivesNameFromEmailLocalPart(t *testing.T) {
	uc := demoUseCase()

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "demo@co.com", Password: "anything"})
	require.NoError(t, err)

	assert.Equal(t, "DEMO", out.User.Name, "name is the upper-cased email local part")
	assert.Equal(t, "demo@co.com", out.User.Email)
	assert.Equal(t, "admin", out.User.Role, "demo logins get full dashboard access")
	assert.NotEmpty(t, out.Token)
}

func TestDemoLogin_TokenCarriesTheIdentity(t *testing.T) {
	uc := demoUseCase()
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "sarah@showroom.io", Password: "x"})
	require.NoError(t, err)

	userID, email, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "sarah@showroom.io", email)
	assert.Equal(t, "admin", role)
}

func TestDemoLogin_EmptyEmailIsRejected(t *testing.T) {
	uc := demoUseCase()
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "   ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeriveDisplayName(t *testing.T) {
	assert.Equal(t, "DEMO", auth.DeriveDisplayName("demo@co.com"))
	assert.Equal(t, "JANE.SMITH", auth.DeriveDisplayName("jane.smith@dealer.com"))
	assert.Equal(t, "Demo User", auth.DeriveDisplayName("@co.com"), "empty local part falls back")
}

func TestDemoSignup_StoresChosenRole(t *testing.T) {
	uc := demoUseCase()
	out, err := uc.Signup(context.Background(), dto.SignupRequest{
		Name:     "Mike Ross",
		Email:    "mike@dealer.com",
		Password: "irrelevant",
		Role:     "sales_executive",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mike Ross", out.User.Name)
	assert.Equal(t, "sales_executive", out.User.Role)
}

func TestSignup_DefaultsToCustomerRole(t *testing.T) {
	uc := demoUseCase()
	out, err := uc.Signup(context.Background(), dto.SignupRequest{Email: "walkin@mail.com", Password: "whatever1"})
	require.NoError(t, err)
	assert.Equal(t, "customer", out.User.Role)
}

func TestSignup_UnknownRoleIsRejected(t *testing.T) {
	uc := demoUseCase()
	_, err := uc.Signup(context.Background(), dto.SignupRequest{Email: "a@b.com", Password: "whatever1", Role: "owner"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogout_ResetsAllSessionState(t *testing.T) {
	advisorState := &resetRecorder{}
	navState := &resetRecorder{}
	uc := demoUseCase(advisorState, navState)

	uc.Logout("user-42")

	assert.Equal(t, []string{"user-42"}, advisorState.userIDs)
	assert.Equal(t, []string{"user-42"}, navState.userIDs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Credentials mode
// ──────────────────────────────────────────────────────────────────────────────

func credentialsUseCase(t *testing.T) (*auth.UseCase, *memory.UserRepository) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse-9"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := memory.NewUserRepository([]entity.User{{
		ID:           "u-1",
		Name:         "Sarah Jenkins",
		Email:        "sarah@showroom.io",
		PasswordHash: string(hash),
		Role:         entity.RoleSalesManager,
	}})
	return auth.NewUseCase(auth.NewCredentialsAuthenticator(repo), repo, jwtCfg(), false), repo
}

func TestCredentialsLogin_CorrectPassword(t *testing.T) {
	uc, _ := credentialsUseCase(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "sarah@showroom.io", Password: "correct-horse-9"})
	require.NoError(t, err)
	assert.Equal(t, "Sarah Jenkins", out.User.Name)
	assert.Equal(t, "sales_manager", out.User.Role)
}

func TestCredentialsLogin_WrongPassword(t *testing.T) {
	uc, _ := credentialsUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "sarah@showroom.io", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCredentialsLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	uc, _ := credentialsUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nobody@showroom.io", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "unknown emails must not be distinguishable")
}

func TestCredentialsSignup_DuplicateEmail(t *testing.T) {
	uc, _ := credentialsUseCase(t)
	_, err := uc.Signup(context.Background(), dto.SignupRequest{Email: "sarah@showroom.io", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCredentialsSignup_ShortPassword(t *testing.T) {
	uc, _ := credentialsUseCase(t)
	_, err := uc.Signup(context.Background(), dto.SignupRequest{Email: "new@showroom.io", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCredentialsSignup_ThenLoginRoundTrip(t *testing.T) {
	uc, _ := credentialsUseCase(t)
	_, err := uc.Signup(context.Background(), dto.SignupRequest{
		Name:     "Mike Ross",
		Email:    "mike@showroom.io",
		Password: "mikes-password",
		Role:     "sales_executive",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "mike@showroom.io", Password: "mikes-password"})
	require.NoError(t, err)
	assert.Equal(t, "Mike Ross", out.User.Name)
}
