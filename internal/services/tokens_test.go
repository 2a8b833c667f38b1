package services

import (
	"testing"
	"time"

	"careerconnect/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", "careerconnect", 0)
	user := &models.User{ID: uuid.New(), Role: models.RoleRecruiter}

	token, err := m.Issue(user)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "recruiter", claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenManager_TokensAreUnique(t *testing.T) {
	m := NewTokenManager("secret", "careerconnect", time.Hour)
	user := &models.User{ID: uuid.New(), Role: models.RoleStudent}

	a, err := m.Issue(user)
	require.NoError(t, err)
	b, err := m.Issue(user)
	require.NoError(t, err)

	ca, _ := m.Parse(a)
	cb, _ := m.Parse(b)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestTokenManager_Rejects(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: models.RoleStudent}
	m := NewTokenManager("secret", "careerconnect", time.Hour)

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewTokenManager("other-secret", "careerconnect", time.Hour)
		token, err := other.Issue(user)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		other := NewTokenManager("secret", "someone-else", time.Hour)
		token, err := other.Issue(user)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Expired", func(t *testing.T) {
		past := NewTokenManager("secret", "careerconnect", time.Hour)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.Issue(user)
		require.NoError(t, err)

		_, err = m.Parse(token)
		require.ErrorIs(t, err, ErrUnauthenticated)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("Unsigned algorithm", func(t *testing.T) {
		claims := TokenClaims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{
			ID:        "x",
			Subject:   user.ID.String(),
			Issuer:    "careerconnect",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
