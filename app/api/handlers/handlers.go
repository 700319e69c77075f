package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-app/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-app/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	api := r.Group("/api/notes")
	api.GET("", handler.Wrapper(notes.List))
	api.POST("", handler.Wrapper(notes.Create))
	api.GET("/:id", handler.Wrapper(notes.Get))
	api.PUT("/:id", handler.Wrapper(notes.Update))
	api.DELETE("/:id", handler.Wrapper(notes.Delete))
}
