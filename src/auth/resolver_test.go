package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack-server/src/apperr"
	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	users map[string]*models.User
	err   error
}

func (s stubUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return u, nil
}

func TestResolve(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	users := stubUsers{users: map[string]*models.User{"u1": {ID: "u1", Email: "ana@example.com"}}}
	r := NewResolver(tokens, users)

	token, err := tokens.Issue("u1")
	require.NoError(t, err)

	user, err := r.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestResolveUnknownUser(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	r := NewResolver(tokens, stubUsers{})

	token, err := tokens.Issue("ghost")
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestResolveInvalidToken(t *testing.T) {
	r := NewResolver(NewTokenManager("secret", time.Hour), stubUsers{})

	_, err := r.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestResolveStoreFailure(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	boom := errors.New("connection refused")
	r := NewResolver(tokens, stubUsers{err: boom})

	token, err := tokens.Issue("u1")
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperr.ErrUnauthenticated)
}
