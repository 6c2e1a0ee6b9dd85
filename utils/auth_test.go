package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
	PasswordCost = bcrypt.MinCost
}

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func (s stubRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	return s.revoked[id], s.err
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateAndParseToken(t *testing.T) {
	token, claims, err := GenerateToken(testSecret, time.Hour, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, claims.ID)

	parsed, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.Subject)
	assert.Equal(t, claims.ID, parsed.ID)

	_, err = ParseToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateJWTSecret(t *testing.T) {
	a, err := GenerateJWTSecret()
	require.NoError(t, err)
	b, err := GenerateJWTSecret()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	token, _, err := GenerateToken(a, time.Hour, "user-1")
	require.NoError(t, err)
	_, err = ParseToken(a, token)
	assert.NoError(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	_, _, err := GenerateToken("", time.Hour, "user-1")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, _, err := GenerateToken(testSecret, -time.Minute, "user-1")
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func newAuthRouter(revoked RevocationChecker) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret, revoked), func(c *gin.Context) {
		id, _ := c.Get("userId")
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	token, claims, err := GenerateToken(testSecret, time.Hour, "user-1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		setup   func(*http.Request)
		revoked RevocationChecker
		want    int
	}{
		{"missing token", func(*http.Request) {}, nil, http.StatusUnauthorized},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, nil, http.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookie, Value: token}) }, nil, http.StatusOK},
		{"garbage", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, nil, http.StatusUnauthorized},
		{
			"revoked",
			func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			stubRevocations{revoked: map[string]bool{claims.ID: true}},
			http.StatusUnauthorized,
		},
		{
			"revocation store down",
			func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			stubRevocations{err: errors.New("redis down")},
			http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			newAuthRouter(tt.revoked).ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
