package types

import "github.com/google/uuid"

// TokenClaims is the identity carried by a validated session token.
type TokenClaims struct {
	UserID uuid.UUID
}
