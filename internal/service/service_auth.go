package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mlukin/go-expense-tracker/internal/config"
	"github.com/mlukin/go-expense-tracker/internal/logger"
	"github.com/mlukin/go-expense-tracker/internal/store"
	"github.com/mlukin/go-expense-tracker/internal/utils"
	"github.com/mlukin/go-expense-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, profile updates
// and the JWT token lifecycle, using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that name, email and password are all non-empty, hashes the
// password with bcrypt and delegates persistence to the UserRepository.
// Duplicate emails are detected by the database unique constraint, so two
// concurrent registrations with the same email cannot both succeed.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(request.Name) == "" || strings.TrimSpace(request.Email) == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         strings.TrimSpace(request.Name),
		Email:        strings.TrimSpace(request.Email),
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and compares the supplied password
// against the stored bcrypt hash. An unknown email and a wrong password
// both produce ErrInvalidCredentials.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials on any authentication failure.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(request.Email) == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, strings.TrimSpace(request.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", request.Email).Msg("login attempt with unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(request.Password, foundUser.PasswordHash) {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// UpdateProfile applies the non-empty fields of the request to the caller's
// own account. Email is immutable; a non-empty password is re-hashed before
// persistence. An all-empty request returns the current record untouched.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	name := strings.TrimSpace(request.Name)
	if name == "" && request.Password == "" {
		return foundUser, nil
	}

	if name != "" {
		foundUser.Name = name
	}
	if request.Password != "" {
		passwordHash, hashErr := utils.HashPassword(request.Password)
		if hashErr != nil {
			log.Err(hashErr).Int64("user_id", userID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", hashErr)
		}
		foundUser.PasswordHash = passwordHash
	}

	savedUser, err := a.userRepository.SaveUser(ctx, foundUser)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user profile update failed")
		return models.User{}, fmt.Errorf("user profile update failed: %w", err)
	}

	return savedUser, nil
}

// FindUser fetches the account behind a validated token. The authentication
// middleware uses it to confirm the account still exists before letting a
// request through.
func (a *authService) FindUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Expiry is surfaced as ErrTokenExpired; every other
// validation failure (wrong issuer, tampered signature, malformed string) is
// normalised to ErrTokenInvalid so callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}
