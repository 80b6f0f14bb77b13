package ports

import "context"

// TokenClaims is the decoded claim set of a validated access token.
type TokenClaims struct {
	// Subject is the email of the account the token was issued for.
	Subject string
}

// AuthService covers credential hashing and access-token lifecycle.
type AuthService interface {
	HashPassword(password string) (string, error)
	CheckPassword(plain, hash string) bool
	IssueToken(subject string) (string, error)
	// ValidateToken verifies signature and expiry. It returns
	// domain.ErrTokenExpired or domain.ErrTokenInvalid on failure.
	ValidateToken(token string) (*TokenClaims, error)
	// Authenticate checks email/password and returns a signed token.
	Authenticate(ctx context.Context, email, password string) (string, error)
}
