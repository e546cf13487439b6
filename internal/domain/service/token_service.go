package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenClaims defines the custom claims carried by the bearer tokens.
// The subject of the registered claims is the decimal user id.
type TokenClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim as a numeric user id. A token whose
// subject does not parse never authenticates a request.
func (c *TokenClaims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "token subject is not a valid user id")
	}

	return id, nil
}

// TokenService defines the interface for issuing and validating bearer
// tokens. Tokens are stateless, self-contained credentials; nothing is
// persisted server-side.
type TokenService interface {
	// Issue creates a signed token for the user along with its expiry instant.
	Issue(userID int64, email, username string) (token string, expiresAt time.Time, err error)

	// Validate checks the signature, expiry and claims of a token string.
	// Any failure means the request is unauthenticated; there is no
	// partially-trusted outcome.
	Validate(tokenString string) (*TokenClaims, error)
}
