package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/validation"
)

type FavoritesController struct {
	store     FavoritesStore
	validator *validation.Validator
}

func NewFavoritesController(store FavoritesStore, v *validation.Validator) *FavoritesController {
	return &FavoritesController{store: store, validator: v}
}

type BookRefRequest struct {
	BookID uint `json:"bookId" validate:"required"`
}

// ListFavorites handles GET /api/favorites
func (fc *FavoritesController) ListFavorites(c *gin.Context) {
	books, err := fc.store.GetFavorites(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list favorites")
		return
	}
	c.JSON(http.StatusOK, books)
}

// AddFavorite handles POST /api/favorites. Adding a favorite twice returns
// the existing row.
func (fc *FavoritesController) AddFavorite(c *gin.Context) {
	var req BookRefRequest
	if !bindJSON(c, fc.validator, &req) {
		return
	}
	ctx := c.Request.Context()

	book, err := fc.store.GetBook(ctx, req.BookID)
	if err != nil {
		respondInternalError(c, err, "add favorite")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	favorite, err := fc.store.AddFavorite(ctx, GetUserID(c), req.BookID)
	if err != nil {
		respondInternalError(c, err, "add favorite")
		return
	}
	respondCreated(c, favorite)
}

// RemoveFavorite handles DELETE /api/favorites/:bookId
func (fc *FavoritesController) RemoveFavorite(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	removed, err := fc.store.RemoveFavorite(c.Request.Context(), GetUserID(c), bookID)
	if err != nil {
		respondInternalError(c, err, "remove favorite")
		return
	}
	if !removed {
		respondNotFound(c, "favorite")
		return
	}
	respondSuccess(c, "favorite removed")
}

// CheckFavorite handles GET /api/favorites/check/:bookId
func (fc *FavoritesController) CheckFavorite(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	isFavorite, err := fc.store.IsFavorite(c.Request.Context(), GetUserID(c), bookID)
	if err != nil {
		respondInternalError(c, err, "check favorite")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}
