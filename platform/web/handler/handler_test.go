package handler

import (
	"encoding/json"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrapper(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/body", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusOK, Body: map[string]string{"hello": "world"}}
	}))
	engine.GET("/empty", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusOK}
	}))
	engine.GET("/error", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusNotFound, Body: Error{Message: "missing"}}
	}))

	t.Run("body", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/body", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/empty", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("error gets its status", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/error", nil))
		require.Equal(t, http.StatusNotFound, w.Code)

		var e Error
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
		assert.Equal(t, Error{Status: http.StatusNotFound, Message: "missing"}, e)
	})
}
