package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Tags Note
// @Param id path string true "Note id"
// @Success 200
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /api/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	id, ok := parseID(ctx)
	if !ok {
		return invalidID
	}

	if err := note.Delete(ctx, id); err != nil {
		sys.R.Log.Infow("delete note", "id", id, "ERROR", err)
		return failure(err)
	}
	sys.R.Log.Infow("delete note", "id", id)

	return handler.Result{Status: http.StatusOK}
}
