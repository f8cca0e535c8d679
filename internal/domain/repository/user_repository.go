package repository

import "github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"

// UserRepository is the persistence port for User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByEmail returns (nil, nil) when no user has that email.
	FindByEmail(email string) (*entity.User, error)
}
