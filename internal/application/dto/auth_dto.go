package dto

import "time"

// LoginRequest credentials for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest body for POST /api/auth/signup.
// Role is optional; defaults to customer.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse public view of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse token plus identity, returned by login and signup.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
