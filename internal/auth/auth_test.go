package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/fitgroups-api/internal/models"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, VerifyPassword("secret1", hash))
	assert.Error(t, VerifyPassword("secret2", hash))
}

func TestHashUsesFixedCost(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	// bcrypt encodes the cost as $2a$10$...
	assert.Equal(t, "$2a$10$", hash[:7])
}

func TestNewTokenManagerRejectsEmptySecret(t *testing.T) {
	_, err := NewTokenManager("", "issuer", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueAndParse(t *testing.T) {
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tm, err := NewTokenManager("test-secret", "fitgroups-api", time.Hour)
	require.NoError(t, err)
	tm = tm.WithClock(func() time.Time { return fixed })

	u := models.User{ID: 42, Email: "ana@x.com", Role: models.RoleTrainer}
	token, exp, err := tm.Issue(u)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour), exp)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "entrenador", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestParseRejections(t *testing.T) {
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	base, err := NewTokenManager("test-secret", "fitgroups-api", time.Hour)
	require.NoError(t, err)
	issuer := base.WithClock(func() time.Time { return fixed })
	token, _, err := issuer.Issue(models.User{ID: 1, Email: "a@x.com", Role: models.RoleUser})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := base.WithClock(func() time.Time { return fixed.Add(61 * time.Minute) })
		_, err := later.Parse(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("still valid just before expiry", func(t *testing.T) {
		later := base.WithClock(func() time.Time { return fixed.Add(59 * time.Minute) })
		_, err := later.Parse(token)
		assert.NoError(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenManager("other-secret", "fitgroups-api", time.Hour)
		require.NoError(t, err)
		_, err = other.WithClock(func() time.Time { return fixed }).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = issuer.Parse(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
