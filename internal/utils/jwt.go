package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenParams holds the settings shared by token signing and verification.
type TokenParams struct {
	// SignKey is the HMAC secret.
	SignKey string
	// Algorithm is the JWT "alg" name: HS256, HS384 or HS512.
	Algorithm string
	// Issuer is the optional "iss" claim. When empty it is neither set nor
	// checked.
	Issuer string
}

// GenerateJWTToken creates a signed HMAC JWT for username.
//
// The token includes the following standard claims:
//   - Subject   (sub): the username
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - Issuer    (iss): only when params.Issuer is set
//
// Returns an error if the username, sign key or duration are empty, or if the
// algorithm is not an HMAC algorithm.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, "alice", 30*time.Minute)
func GenerateJWTToken(params TokenParams, username string, tokenDuration time.Duration) (models.Token, error) {
	if username == "" || tokenDuration <= 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := hmacSigningMethod(params.Algorithm)
	if err != nil {
		return models.Token{}, err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		Username:         username,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification with params.SignKey, accepting only params.Algorithm
//   - Expiration (exp) claim presence and check
//   - Issuer (iss) claim check when params.Issuer is set
//
// An expired token yields an error wrapping [jwt.ErrTokenExpired]. The
// subject is returned as-is (possibly empty); deciding whether it is
// acceptable is up to the caller.
func ValidateAndParseJWTToken(tokenString string, params TokenParams) (models.Token, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{params.Algorithm}),
		jwt.WithExpirationRequired(),
	}
	if params.Issuer != "" {
		options = append(options, jwt.WithIssuer(params.Issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	}, options...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		Username:         claims.Subject,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func hmacSigningMethod(algorithm string) (jwt.SigningMethod, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return method, nil
}
