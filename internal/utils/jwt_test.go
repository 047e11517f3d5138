package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testParams = TokenParams{SignKey: "secret-key", Algorithm: "HS256"}

func TestGenerateJWTToken_Success(t *testing.T) {
	params := testParams
	params.Issuer = "test-issuer"

	token, err := GenerateJWTToken(params, "alice", time.Hour)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Fatal("expected non-nil jwt.Token object")
	}
	if token.Username != "alice" {
		t.Errorf("expected username 'alice', got %s", token.Username)
	}
	if token.Subject != "alice" {
		t.Errorf("expected subject 'alice', got %s", token.Subject)
	}
	if token.Issuer != "test-issuer" {
		t.Errorf("expected issuer 'test-issuer', got %s", token.Issuer)
	}
	if token.ExpiresAt == nil || token.IssuedAt == nil {
		t.Fatal("expected exp and iat to be set")
	}
	if got := token.ExpiresAt.Sub(token.IssuedAt.Time); got != time.Hour {
		t.Errorf("expected lifetime 1h, got %v", got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		params   TokenParams
		username string
		duration time.Duration
	}{
		{"empty username", testParams, "", time.Hour},
		{"zero duration", testParams, "alice", 0},
		{"empty key", TokenParams{Algorithm: "HS256"}, "alice", time.Hour},
		{"non-hmac algorithm", TokenParams{SignKey: "k", Algorithm: "RS256"}, "alice", time.Hour},
		{"unknown algorithm", TokenParams{SignKey: "k", Algorithm: "none"}, "alice", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.params, tt.username, tt.duration)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			params := TokenParams{SignKey: "secret-key", Algorithm: alg}
			genToken, err := GenerateJWTToken(params, "bob", 5*time.Minute)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			parsed, err := ValidateAndParseJWTToken(genToken.SignedString, params)

			if err != nil {
				t.Fatalf("expected token to be valid, got error: %v", err)
			}
			if parsed.Username != "bob" {
				t.Errorf("expected username 'bob', got %s", parsed.Username)
			}
		})
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken(testParams, "bob", time.Minute)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, TokenParams{SignKey: "wrong", Algorithm: "HS256"})

	if err == nil {
		t.Error("expected error for invalid signing key, got nil")
	}
}

func TestValidateAndParseJWTToken_AlgorithmMismatch(t *testing.T) {
	genToken, _ := GenerateJWTToken(TokenParams{SignKey: "secret-key", Algorithm: "HS512"}, "bob", time.Minute)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, testParams)

	if err == nil {
		t.Error("expected error for algorithm mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "bob",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testParams.SignKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, testParams)

	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingExpiration(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "bob"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testParams.SignKey))

	_, err := ValidateAndParseJWTToken(signed, testParams)

	if err == nil {
		t.Error("expected error for token without exp, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken(TokenParams{SignKey: "secret-key", Algorithm: "HS256", Issuer: "a"}, "bob", time.Minute)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, TokenParams{SignKey: "secret-key", Algorithm: "HS256", Issuer: "b"})

	if err == nil {
		t.Error("expected error for wrong issuer, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptySubjectIsReturned(t *testing.T) {
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testParams.SignKey))

	parsed, err := ValidateAndParseJWTToken(signed, testParams)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Username != "" {
		t.Errorf("expected empty username, got %s", parsed.Username)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testParams)

	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"empty", "", "", true},
		{"no token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"extra parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected err=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
