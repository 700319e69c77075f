package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"net/http"
	"strconv"
)

func parseID(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

var invalidID = handler.Result{
	Status: http.StatusBadRequest,
	Body:   handler.Error{Message: "invalid id"},
}

func invalidBody(err error) handler.Result {
	return handler.Result{
		Status: http.StatusBadRequest,
		Body:   handler.Error{Message: "invalid body: " + err.Error()},
	}
}

// failure maps business errors into responses
func failure(err error) handler.Result {
	var verr *note.ValidationError
	switch {
	case errors.As(err, &verr):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid note", Fields: verr.Fields},
		}
	case errors.Is(err, note.ErrTitleTaken):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
}
