// Package handler adapts result returning functions to gin handlers.
package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every api handler returns, Body is rendered as json unless it is nil
type Result struct {
	Status int
	Body   any
}

// Error is the body of every non 2xx response
type Error struct {
	Status  int               `json:"status" example:"404"`
	Message string            `json:"message" example:"note 1 not found"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Func is a handler that returns its response instead of writing it
type Func func(ctx *gin.Context) Result

// Wrapper writes the Result of fn into the response
func Wrapper(fn Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := fn(ctx)
		if e, ok := r.Body.(Error); ok && e.Status == 0 {
			e.Status = r.Status
			r.Body = e
		}
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
