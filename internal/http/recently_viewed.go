package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/validation"
)

type RecentlyViewedController struct {
	store     RecentlyViewedStore
	validator *validation.Validator
}

func NewRecentlyViewedController(store RecentlyViewedStore, v *validation.Validator) *RecentlyViewedController {
	return &RecentlyViewedController{store: store, validator: v}
}

// ListRecentlyViewed handles GET /api/recently-viewed?limit
func (rc *RecentlyViewedController) ListRecentlyViewed(c *gin.Context) {
	limit, ok := parseQueryInt(c, "limit")
	if !ok {
		return
	}

	books, err := rc.store.GetRecentlyViewed(c.Request.Context(), GetUserID(c), limit)
	if err != nil {
		respondInternalError(c, err, "list recently viewed")
		return
	}
	c.JSON(http.StatusOK, books)
}

// AddRecentlyViewed handles POST /api/recently-viewed
func (rc *RecentlyViewedController) AddRecentlyViewed(c *gin.Context) {
	var req BookRefRequest
	if !bindJSON(c, rc.validator, &req) {
		return
	}
	ctx := c.Request.Context()

	book, err := rc.store.GetBook(ctx, req.BookID)
	if err != nil {
		respondInternalError(c, err, "add recently viewed")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	view, err := rc.store.AddRecentlyViewed(ctx, GetUserID(c), req.BookID)
	if err != nil {
		respondInternalError(c, err, "add recently viewed")
		return
	}
	c.JSON(http.StatusOK, view)
}

// ClearRecentlyViewed handles POST /api/recently-viewed/clear
func (rc *RecentlyViewedController) ClearRecentlyViewed(c *gin.Context) {
	cleared, err := rc.store.ClearRecentlyViewed(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "clear recently viewed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": cleared})
}
