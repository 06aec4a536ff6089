package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewServer_RegistersHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	s := NewServer(engine, 9090)

	assert.Equal(t, ":9090", s.server.Addr)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
