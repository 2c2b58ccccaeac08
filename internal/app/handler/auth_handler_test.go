package handler

import (
	"testing"
	"time"

	"carparts/internal/app/config"
	"carparts/internal/app/ds"
	"carparts/internal/app/role"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthHandler() *AuthHandler {
	return &AuthHandler{
		Config: &config.Config{
			JWT: config.JWTConfig{
				Secret:        "test-secret",
				ExpiresIn:     time.Hour,
				SigningMethod: jwt.SigningMethodHS256,
			},
		},
	}
}

func TestIssueToken(t *testing.T) {
	h := testAuthHandler()
	user := &ds.User{
		ID:       42,
		Username: "pavel",
		Role:     role.Admin,
	}

	tokenString, err := h.issueToken(user)
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*ds.JWTClaims)
	require.True(t, ok)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "pavel", claims.Username)
	assert.Equal(t, role.Admin, claims.Role)

	// токен обязан иметь срок жизни
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
	assert.LessOrEqual(t, claims.ExpiresAt, time.Now().Add(time.Hour+time.Minute).Unix())
}

func TestIssueTokenRejectedWithWrongSecret(t *testing.T) {
	h := testAuthHandler()
	tokenString, err := h.issueToken(&ds.User{ID: 1, Username: "u", Role: role.User})
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	// стоимость хеширования не ниже 10
	cost, err := bcrypt.Cost(hash)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 10)

	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("s3cret-pass")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("wrong-pass")))
}
