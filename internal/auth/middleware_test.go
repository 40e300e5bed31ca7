package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, Token(c))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"bearer token", "Bearer abc.def", http.StatusOK, "abc.def"},
		{"lower case scheme", "bearer abc", http.StatusOK, "abc"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"no token", "Bearer", http.StatusUnauthorized, ""},
		{"extra parts", "Bearer a b", http.StatusUnauthorized, ""},
	}
	r := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}
