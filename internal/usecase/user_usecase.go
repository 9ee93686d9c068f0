// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bhwconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Barangay string `json:"barangay"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserOutput is the public projection of a user. It never carries the
// password hash.
type UserOutput struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	Barangay  string      `json:"barangay"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// RegisterOutput returns the newly created user's email, mirroring the
// registration response surface.
type RegisterOutput struct {
	Email string `json:"email"`
}

// LoginOutput returns the session token and user projection after a
// successful login.
type LoginOutput struct {
	Token string      `json:"token"`
	User  *UserOutput `json:"user"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new staff account. Fails when required fields are
	// blank, the role is outside {admin, bhw}, or the email is taken
	// (case-insensitively).
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetUser returns the public projection for one user.
	GetUser(ctx context.Context, id uuid.UUID) (*UserOutput, error)

	// ListUsers returns the public projections of all users.
	ListUsers(ctx context.Context) ([]*UserOutput, error)
}

// NewUserOutput maps a domain user to its public projection.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Barangay:  user.Barangay,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
