package memory

import (
	"strings"
	"sync"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/repository"
)

// UserRepository in-memory user store, keyed by id with an email index.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository builds the store from the seed snapshot.
func NewUserRepository(seed []entity.User) *UserRepository {
	r := &UserRepository{
		byID:    make(map[string]*entity.User, len(seed)),
		byEmail: make(map[string]*entity.User, len(seed)),
	}
	for i := range seed {
		u := seed[i]
		r.byID[u.ID] = &u
		r.byEmail[normalizeEmail(u.Email)] = &u
	}
	return r
}

// Create stores a user. Duplicate ids are rejected; the newest user wins the
// email index (demo signups can reuse an email).
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[user.ID]; exists {
		return domain.ErrInvalidInput
	}
	u := *user
	r.byID[u.ID] = &u
	r.byEmail[normalizeEmail(u.Email)] = &u
	return nil
}

// GetByID returns a copy of the user or ErrUserNotFound.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// FindByEmail returns (nil, nil) when no user has the email.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
