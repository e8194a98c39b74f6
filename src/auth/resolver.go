package auth

import (
	"context"
	"errors"
	"fmt"

	"fintrack-server/src/apperr"
	"fintrack-server/src/models"
)

type UserFinder interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Resolver maps a bearer token to the user it was issued for.
type Resolver struct {
	tokens *TokenManager
	users  UserFinder
}

func NewResolver(tokens *TokenManager, users UserFinder) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

func (r *Resolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	userID, err := r.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUnauthenticated, err)
	}
	user, err := r.users.GetUserByID(ctx, userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("%w: user no longer exists", apperr.ErrUnauthenticated)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve user %s: %w", userID, err)
	}
	return user, nil
}
