package healthcheck

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
)

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Checks database and cache connections
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} handler.Error
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
	defer dbCancel()
	if err := sys.R.Database.PingContext(dbCtx); err != nil {
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   handler.Error{Message: "database: " + err.Error()},
		}
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.PingTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Ping(tcCtx).Err(); err != nil {
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   handler.Error{Message: "cache: " + err.Error()},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok"},
	}
}
