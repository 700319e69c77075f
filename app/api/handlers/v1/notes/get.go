package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /api/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	id, ok := parseID(ctx)
	if !ok {
		return invalidID
	}

	get, err := note.Find(ctx, id)
	if err != nil {
		return failure(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   get,
	}
}

// List godoc
// @Summary List notes
// @Description Every note ordered by id
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Failure 500 {object} handler.Error
// @Router /api/notes [get]
func List(ctx *gin.Context) handler.Result {
	all, err := note.List(ctx)
	if err != nil {
		return failure(err)
	}
	sys.R.Log.Infow("list notes", "count", len(all))

	return handler.Result{
		Status: http.StatusOK,
		Body:   all,
	}
}
