package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("secret", 24*time.Hour)

	token, err := m.Issue("user-1")
	require.NoError(t, err)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestVerifyExpiry(t *testing.T) {
	issuedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	m := NewTokenManager("secret", 24*time.Hour)
	m.now = fixedClock(issuedAt)

	token, err := m.Issue("user-1")
	require.NoError(t, err)

	m.now = fixedClock(issuedAt.Add(23 * time.Hour))
	_, err = m.Verify(token)
	assert.NoError(t, err)

	m.now = fixedClock(issuedAt.Add(25 * time.Hour))
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsAlteredToken(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, err := m.Issue("user-1")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	alter := func(s string, i int) string {
		c := byte('a')
		if s[i] == 'a' {
			c = 'b'
		}
		return s[:i] + string(c) + s[i+1:]
	}

	cases := map[string]string{
		"header":    alter(parts[0], len(parts[0])/2) + "." + parts[1] + "." + parts[2],
		"payload":   parts[0] + "." + alter(parts[1], len(parts[1])/2) + "." + parts[2],
		"signature": parts[0] + "." + parts[1] + "." + alter(parts[2], 0),
		"truncated": token[:len(token)-5],
	}
	for name, tampered := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(tampered)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifyRejectsOtherSecret(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).Issue("user-1")
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyRequiresSubjectAndExpiry(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	sign := func(claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		return s
	}

	noSubject := sign(jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
	_, err := m.Verify(noSubject)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noExpiry := sign(jwt.RegisteredClaims{Subject: "user-1"})
	_, err = m.Verify(noExpiry)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherAlgorithm(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
