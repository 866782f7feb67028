package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"SinOutGo/config"
	"SinOutGo/models"
	"SinOutGo/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()
	utils.SetJWTKey("test-secret")
}

func newAuthTestRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uid":  c.GetString("uid"),
			"role": c.GetString("role"),
		})
	})
	r.GET("/admin", AuthMiddleware(), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	rec := doRequest(newAuthTestRouter(), "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	rec := doRequest(newAuthTestRouter(), "/protected", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareValidTokenWithAndWithoutBearerPrefix(t *testing.T) {
	token, err := utils.GenerateToken(&models.User{
		ID:    "user-1",
		Email: "maria@example.com",
		Role:  models.RoleCuidador,
	})
	require.NoError(t, err)

	r := newAuthTestRouter()

	rec := doRequest(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
	assert.Contains(t, rec.Body.String(), models.RoleCuidador)

	rec = doRequest(r, "/protected", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbidsNonAdmins(t *testing.T) {
	cuidadorToken, err := utils.GenerateToken(&models.User{ID: "u1", Role: models.RoleCuidador})
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(&models.User{ID: "a1", Role: models.RoleAdmin})
	require.NoError(t, err)

	r := newAuthTestRouter()

	rec := doRequest(r, "/admin", "Bearer "+cuidadorToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}
