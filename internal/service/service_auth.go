package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-employee-keeper/internal/config"
	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/store"
	"github.com/MKhiriev/go-employee-keeper/internal/utils"
	"github.com/MKhiriev/go-employee-keeper/internal/validators"
	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks signup and login input.
	validator validators.Validator

	// tokenParams holds the signing key, algorithm and optional issuer.
	tokenParams utils.TokenParams

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		tokenParams: utils.TokenParams{
			SignKey:   cfg.TokenSignKey,
			Algorithm: cfg.TokenAlgorithm,
			Issuer:    cfg.TokenIssuer,
		},
		tokenDuration: cfg.TokenDuration(),
		logger:        logger,
	}
}

// RegisterUser creates a new user account and returns its public view.
//
// The username is looked up first so that a taken name is reported without
// hashing the password; the unique index still guards concurrent signups.
//
// Returns:
//   - ErrInvalidDataProvided if username, email or password is invalid.
//   - store.ErrUsernameAlreadyExists if the username is taken.
//   - A wrapped storage error otherwise.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Warn().Err(err).Str("username", user.Username).Msg("invalid signup data provided")
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	switch {
	case err == nil:
		return models.PublicUser{}, store.ErrUsernameAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.PublicUser{}, fmt.Errorf("user search by username failed: %w", err)
	}

	user.PasswordHash, err = utils.HashPassword(user.Password)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.PublicUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user by username and password.
//
// An unknown username and a wrong password both yield
// ErrInvalidCredentials, so callers cannot tell which one failed.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", user.Username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(user.Password, foundUser.PasswordHash) {
		log.Info().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT whose subject is the user's username.
// The token expires after the configured lifetime.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenParams, user.Username, a.tokenDuration)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An elapsed "exp" yields ErrTokenIsExpired; every other failure (bad
// signature, wrong algorithm or issuer, malformed) yields
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenParams)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveCurrentUser maps a bearer token to the stored user it names.
//
// Returns ErrInvalidTokenPayload when the token has no subject and
// store.ErrNoUserWasFound when the subject no longer exists.
func (a *authService) ResolveCurrentUser(ctx context.Context, tokenString string) (models.PublicUser, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.PublicUser{}, err
	}
	if token.Username == "" {
		return models.PublicUser{}, ErrInvalidTokenPayload
	}

	user, err := a.userRepository.FindUserByUsername(ctx, token.Username)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("resolving current user: %w", err)
	}

	return user.Public(), nil
}
