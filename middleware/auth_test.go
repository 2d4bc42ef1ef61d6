package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinebook/models"
	"cinebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) { return f.users[id], nil }

func (f *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(*models.User) error               { return nil }
func (f *fakeUserRepo) UpdateTokenHash(string, string) error    { return nil }

func newAuthRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// No redis in tests; the middleware falls back to the repo lookup.
	r.GET("/protected", JWTAuthMiddleware(repo, nil), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newAuthRouter(&fakeUserRepo{users: map[string]*models.User{}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	r := newAuthRouter(&fakeUserRepo{users: map[string]*models.User{}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "demo@cinebook.local", time.Hour)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", TokenHash: utils.HashToken(token)},
	}}
	r := newAuthRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddlewareRevokedToken(t *testing.T) {
	// A valid signature is not enough; the stored hash must match, so a
	// token issued before the latest login is rejected.
	token, err := utils.GenerateToken("user-1", "demo@cinebook.local", time.Hour)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", TokenHash: utils.HashToken("a-different-token")},
	}}
	r := newAuthRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
