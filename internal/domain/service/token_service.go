package service

import (
	"time"

	"bhwconnect/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token: the user's
// identity and their role. Tokens are self-contained; no server-side session
// state exists.
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token for the given user and role, expiring a
	// fixed duration after issuance.
	Issue(userID uuid.UUID, role entity.Role) (string, error)

	// Verify checks a token string's signature and expiry and recovers its
	// claims. Tampered payloads and tokens signed with a different key are
	// rejected.
	Verify(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
