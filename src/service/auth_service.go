package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack-server/src/apperr"
	"fintrack-server/src/auth"
	"fintrack-server/src/db"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/google/uuid"
)

const tokenType = "bearer"

type AuthStore interface {
	db.UserStore
	CreateCategories(ctx context.Context, cats []models.Category) error
}

// PasswordHasher is satisfied by *auth.Hasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
	Mismatch(plain string)
}

type AuthService struct {
	store  AuthStore
	hasher PasswordHasher
	tokens *auth.TokenManager
	now    func() time.Time
}

func NewAuthService(store AuthStore, hasher PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{store: store, hasher: hasher, tokens: tokens, now: time.Now}
}

// Register creates the account with its default categories and signs the
// user in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	name, err := requireText("name", req.Name)
	if err != nil {
		return nil, err
	}
	email := util.NormalizeEmail(req.Email)
	if !util.ValidateEmail(email) {
		return nil, invalid("invalid email format")
	}
	if !util.ValidatePassword(req.Password) {
		return nil, invalid("password must be at least 6 characters")
	}

	_, err = s.store.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	if err := s.store.CreateCategories(ctx, DefaultCategories(user.ID)); err != nil {
		return nil, fmt.Errorf("create default categories: %w", err)
	}
	return s.signIn(user)
}

// Login never says which of email or password was wrong.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, util.NormalizeEmail(req.Email))
	if errors.Is(err, apperr.ErrNotFound) {
		s.hasher.Mismatch(req.Password)
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthenticated)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthenticated)
	}
	return s.signIn(user)
}

func (s *AuthService) signIn(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{AccessToken: token, TokenType: tokenType, User: *user}, nil
}
