package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanstreet/complaint-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, expiresAt, err := tm.Issue("citizen@example.com", domain.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "citizen@example.com", claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestTokenReissueDiffers(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	first, _, err := tm.Issue("citizen@example.com", domain.RoleUser)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	second, _, err := tm.Issue("citizen@example.com", domain.RoleUser)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenExpired(t *testing.T) {
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}

	token, _, err := tm.Issue("citizen@example.com", domain.RoleUser)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.Issue("citizen@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := tm.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", raw)
	}
}
