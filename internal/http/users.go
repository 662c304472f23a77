package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/store"
)

type UsersController struct {
	store store.UserStore
}

func NewUsersController(store store.UserStore) *UsersController {
	return &UsersController{store: store}
}

// GetCurrentUser handles GET /api/user. The password never leaves the server.
func (uc *UsersController) GetCurrentUser(c *gin.Context) {
	user, err := uc.store.GetUser(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "get user")
		return
	}
	if user == nil {
		respondNotFound(c, "user")
		return
	}
	c.JSON(http.StatusOK, user)
}
