package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
)

// Update godoc
// @Summary Update a note
// @Description Replace title and content of a note, the id of the path wins over the one of the body
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param note body note.UpdateNote true "Note"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /api/notes/{id} [put]
func Update(ctx *gin.Context) handler.Result {
	id, ok := parseID(ctx)
	if !ok {
		return invalidID
	}

	var upd note.UpdateNote
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		return invalidBody(err)
	}

	updated, err := note.Update(ctx, id, upd)
	if err != nil {
		sys.R.Log.Infow("update note", "id", id, "ERROR", err)
		return failure(err)
	}
	sys.R.Log.Infow("update note", "id", id)

	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}
