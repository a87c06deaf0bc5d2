package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agendai/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Initialize(r, config.Configuration{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Initialize(r, config.Configuration{})

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/user/me"},
		{http.MethodGet, "/tasks"},
		{http.MethodPost, "/agent/schedule"},
		{http.MethodGet, "/admin/users/1"},
	}

	for _, p := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, p.path)
	}
}
