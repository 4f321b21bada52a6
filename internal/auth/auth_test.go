package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	return &model.User{ID: 42, Name: "Jane", Email: "jane@example.org", Role: model.RoleStaff}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "ngo-test", time.Hour)

	raw, err := tm.Generate(testUser())
	require.NoError(t, err)

	id, err := tm.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.ID)
	assert.Equal(t, "Jane", id.Name)
	assert.Equal(t, "jane@example.org", id.Email)
	assert.Equal(t, model.RoleStaff, id.Role)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", "ngo-test", time.Hour)
	raw, err := tm.Generate(testUser())
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other", "ngo-test", time.Hour)
		_, err := other.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokenManager("secret", "someone-else", time.Hour)
		_, err := other.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokenManager("secret", "ngo-test", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Issuer:    "ngo-test",
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = tm.Parse(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, CheckPassword(hash, "correct horse"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrPasswordMismatch)
}
