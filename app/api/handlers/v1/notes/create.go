package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/platform/web/handler"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Create a note, title must be unique ignoring case
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "New note"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Router /api/notes [post]
func Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return invalidBody(err)
	}

	created, err := note.Create(ctx, newN)
	if err != nil {
		sys.R.Log.Infow("create note", "title", newN.Title, "ERROR", err)
		return failure(err)
	}
	sys.R.Log.Infow("create note", "id", created.Id)

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
