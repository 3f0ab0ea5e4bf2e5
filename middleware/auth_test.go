package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"havenhotel/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probeRouter(tokens *utils.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", SessionAuth(tokens), func(c *gin.Context) {
		email, _ := AuthedEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestSessionAuthMissingCookie(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	r := probeRouter(tokens)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized Access")
}

func TestSessionAuthInvalidToken(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	r := probeRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthForeignSecret(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	foreign := utils.NewTokenManager("other-secret", time.Hour)
	r := probeRouter(tokens)

	signed, _, err := foreign.Issue("a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signed})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthValidToken(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	r := probeRouter(tokens)

	signed, _, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signed})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"a@x.com"}`, w.Body.String())
}
