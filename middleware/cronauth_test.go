package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/farllon89/agendamento-lk-unhas/config"
)

func cronRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/notifications/run", CronAuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func runRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/notifications/run", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCronAuth_OpenWithoutSecret(t *testing.T) {
	router := cronRouter(&config.Config{})
	assert.Equal(t, http.StatusOK, runRequest(router, "").Code)
}

func TestCronAuth_RequiresMatchingToken(t *testing.T) {
	router := cronRouter(&config.Config{CronSecret: "s3cret"})

	assert.Equal(t, http.StatusUnauthorized, runRequest(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, runRequest(router, "Bearer wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, runRequest(router, "Basic s3cret").Code)
	assert.Equal(t, http.StatusOK, runRequest(router, "Bearer s3cret").Code)
}
