// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"todo/config"
	"todo/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte        // Symmetric key for signing and verifying tokens.
	issuer   string        // Value of the "iss" claim.
	audience string        // Value of the "aud" claim.
	expiry   time.Duration // Token time-to-live, 7 days unless configured otherwise.
}

// NewJWTService is the constructor for jwtService. A missing signing key is
// a configuration error and fails here, at startup, never per request.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.Secret),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		expiry:   cfg.JWT.Expiry,
	}, nil
}

// Issue creates a signed HS256 token carrying the user id as subject plus
// email and username claims.
func (s *jwtService) Issue(userID int64, email, username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := &service.TokenClaims{
		Email:    email,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Validate parses and verifies a token string. A request is authenticated
// only when the signature, expiry, issuer, audience and numeric subject all
// check out; every other outcome is fully unauthenticated.
func (s *jwtService) Validate(tokenString string) (*service.TokenClaims, error) {
	claims := &service.TokenClaims{}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(s.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, parserOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if _, err := claims.UserID(); err != nil {
		return nil, err
	}

	return claims, nil
}
