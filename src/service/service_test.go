package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fintrack-server/src/auth"
	"fintrack-server/src/db"
	"fintrack-server/src/db/sqlite"
	"fintrack-server/src/ledger"
	"fintrack-server/src/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestStore(t *testing.T) db.Store {
	t.Helper()
	inner, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err, "failed to create test database")
	store, err := db.NewCachedStore(inner, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newAuthService(store db.Store) *AuthService {
	return NewAuthService(store, auth.NewHasher(bcrypt.MinCost), auth.NewTokenManager("secret", time.Hour))
}

func registerUser(t *testing.T, store db.Store, email string) *models.User {
	t.Helper()
	resp, err := newAuthService(store).Register(context.Background(), models.RegisterRequest{
		Name: "Test User", Email: email, Password: "test123456",
	})
	require.NoError(t, err)
	return &resp.User
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func categoryID(t *testing.T, store db.Store, userID, name string, kind models.Kind) string {
	t.Helper()
	cats, err := store.ListCategories(context.Background(), userID)
	require.NoError(t, err)
	for _, c := range cats {
		if c.Name == name && c.Kind == kind {
			return c.ID
		}
	}
	t.Fatalf("category %s/%s not found", name, kind)
	return ""
}

func totalsOf(income, expenses string) ledger.Totals {
	return ledger.Totals{Income: dec(income), Expenses: dec(expenses), Balance: dec(income).Sub(dec(expenses))}
}
