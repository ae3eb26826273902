package auth

import (
	"testing"

	"showoffs-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyToken(t *testing.T) {
	user := &models.AdminUser{
		ID:    uuid.New(),
		Email: "admin@showoffsmedia.com",
	}

	token, err := IssueToken("test-secret", user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity := VerifyToken("test-secret", token)
	require.NotNil(t, identity)
	assert.Equal(t, user.ID.String(), identity.ID)
	assert.Equal(t, user.Email, identity.Email)
	assert.False(t, identity.IsDemo())
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	user := &models.AdminUser{ID: uuid.New(), Email: "admin@showoffsmedia.com"}
	token, err := IssueToken("test-secret", user)
	require.NoError(t, err)

	assert.Nil(t, VerifyToken("other-secret", token))
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	assert.Nil(t, VerifyToken("test-secret", "not-a-token"))
	assert.Nil(t, VerifyToken("test-secret", ""))
}

func TestVerifyTokenAcceptsDemoTokens(t *testing.T) {
	for _, token := range []string{DemoToken, DemoAdminToken} {
		identity := VerifyToken("test-secret", token)
		require.NotNil(t, identity, "token %s", token)
		assert.Equal(t, "demo", identity.ID)
		assert.Equal(t, "demo@local", identity.Email)
		assert.True(t, identity.IsDemo())
	}
}

func TestVerifyTokenAcceptsDemoWithoutSecret(t *testing.T) {
	identity := VerifyToken("", DemoAdminToken)
	require.NotNil(t, identity)
	assert.True(t, identity.IsDemo())
}
