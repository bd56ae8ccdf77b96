package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/mlukin/go-expense-tracker/internal/logger"
	"github.com/mlukin/go-expense-tracker/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and profile updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the new account. Duplicate-email detection relies on
// the unique constraint on users.email rather than a prior existence check,
// which closes the race between two concurrent registrations.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash)

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// FindUserByEmail retrieves the account whose email matches exactly.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves the account by primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// SaveUser persists the changed name and password hash of an existing
// account and returns the stored row. Email is immutable and is never
// written back.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound] (the account disappeared
//     between the caller's lookup and this write).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var savedUser models.User
	row := r.db.QueryRowContext(ctx, saveUser, user.Name, user.PasswordHash, user.UserID)

	// scan updated user from db
	if err := row.Scan(&savedUser.UserID, &savedUser.Name, &savedUser.Email, &savedUser.PasswordHash, &savedUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.SaveUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return savedUser, nil
}
