package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewTokenManager("test-secret", 24*time.Hour).WithClock(fixedClock(now))
	userID := uuid.New()

	token, expiresAt, err := m.Issue(userID, "alice")
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), expiresAt)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, now.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())

	subject, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestTokenManager_Expired(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewTokenManager("test-secret", time.Hour).WithClock(fixedClock(issuedAt))

	token, _, err := m.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	later := m.WithClock(fixedClock(issuedAt.Add(time.Hour + time.Second)))
	_, err = later.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func tamper(token string) string {
	i := len(token) - 10
	c := byte('A')
	if token[i] == 'A' {
		c = 'B'
	}
	return token[:i] + string(c) + token[i+1:]
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	now := time.Now()
	m := NewTokenManager("test-secret", time.Hour).WithClock(fixedClock(now))
	token, _, err := m.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = m.Verify(tamper(token))
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Tampered and expired: still rejected, never reported as merely expired.
	expired := m.WithClock(fixedClock(now.Add(2 * time.Hour)))
	_, err = expired.Verify(tamper(token))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()

	t.Run("WrongSecret", func(t *testing.T) {
		token, _, err := NewTokenManager("other-secret", time.Hour).Issue(userID, "alice")
		require.NoError(t, err)
		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NoExpiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Username:         "alice",
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("OtherAlgorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
			Username: "alice",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NoneAlgorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("BadSubject", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "not-a-uuid",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.False(t, strings.Contains(err.Error(), "expired"))
	})
}
