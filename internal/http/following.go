package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/validation"
)

// FollowingController manages the user's followed authors, series and
// categories. Following twice returns the existing row; unfollowing
// something not followed is a 404.
type FollowingController struct {
	store     FollowingStore
	validator *validation.Validator
}

func NewFollowingController(store FollowingStore, v *validation.Validator) *FollowingController {
	return &FollowingController{store: store, validator: v}
}

type FollowAuthorRequest struct {
	AuthorID uint `json:"authorId" validate:"required"`
}

type FollowSeriesRequest struct {
	SeriesID uint `json:"seriesId" validate:"required"`
}

type FollowCategoryRequest struct {
	Category string `json:"category" validate:"required,category"`
}

// --- Authors ---

// ListAuthors handles GET /api/following/authors
func (fc *FollowingController) ListAuthors(c *gin.Context) {
	authors, err := fc.store.GetFollowingAuthors(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list followed authors")
		return
	}
	c.JSON(http.StatusOK, authors)
}

// FollowAuthor handles POST /api/following/authors
func (fc *FollowingController) FollowAuthor(c *gin.Context) {
	var req FollowAuthorRequest
	if !bindJSON(c, fc.validator, &req) {
		return
	}
	ctx := c.Request.Context()

	author, err := fc.store.GetAuthor(ctx, req.AuthorID)
	if err != nil {
		respondInternalError(c, err, "follow author")
		return
	}
	if author == nil {
		respondNotFound(c, "author")
		return
	}

	row, err := fc.store.FollowAuthor(ctx, GetUserID(c), req.AuthorID)
	if err != nil {
		respondInternalError(c, err, "follow author")
		return
	}
	respondCreated(c, row)
}

// UnfollowAuthor handles DELETE /api/following/authors/:authorId
func (fc *FollowingController) UnfollowAuthor(c *gin.Context) {
	authorID, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	removed, err := fc.store.UnfollowAuthor(c.Request.Context(), GetUserID(c), authorID)
	if err != nil {
		respondInternalError(c, err, "unfollow author")
		return
	}
	if !removed {
		respondNotFound(c, "followed author")
		return
	}
	respondSuccess(c, "author unfollowed")
}

// CheckAuthor handles GET /api/following/authors/check/:authorId
func (fc *FollowingController) CheckAuthor(c *gin.Context) {
	authorID, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	following, err := fc.store.IsFollowingAuthor(c.Request.Context(), GetUserID(c), authorID)
	if err != nil {
		respondInternalError(c, err, "check followed author")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFollowing": following})
}

// --- Series ---

// ListSeries handles GET /api/following/series
func (fc *FollowingController) ListSeries(c *gin.Context) {
	series, err := fc.store.GetFollowingSeries(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list followed series")
		return
	}
	c.JSON(http.StatusOK, series)
}

// FollowSeries handles POST /api/following/series
func (fc *FollowingController) FollowSeries(c *gin.Context) {
	var req FollowSeriesRequest
	if !bindJSON(c, fc.validator, &req) {
		return
	}
	ctx := c.Request.Context()

	series, err := fc.store.GetSeries(ctx, req.SeriesID)
	if err != nil {
		respondInternalError(c, err, "follow series")
		return
	}
	if series == nil {
		respondNotFound(c, "series")
		return
	}

	row, err := fc.store.FollowSeries(ctx, GetUserID(c), req.SeriesID)
	if err != nil {
		respondInternalError(c, err, "follow series")
		return
	}
	respondCreated(c, row)
}

// UnfollowSeries handles DELETE /api/following/series/:seriesId
func (fc *FollowingController) UnfollowSeries(c *gin.Context) {
	seriesID, ok := parseIDParam(c, "seriesId")
	if !ok {
		return
	}

	removed, err := fc.store.UnfollowSeries(c.Request.Context(), GetUserID(c), seriesID)
	if err != nil {
		respondInternalError(c, err, "unfollow series")
		return
	}
	if !removed {
		respondNotFound(c, "followed series")
		return
	}
	respondSuccess(c, "series unfollowed")
}

// CheckSeries handles GET /api/following/series/check/:seriesId
func (fc *FollowingController) CheckSeries(c *gin.Context) {
	seriesID, ok := parseIDParam(c, "seriesId")
	if !ok {
		return
	}

	following, err := fc.store.IsFollowingSeries(c.Request.Context(), GetUserID(c), seriesID)
	if err != nil {
		respondInternalError(c, err, "check followed series")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFollowing": following})
}

// --- Categories ---

// ListCategories handles GET /api/following/categories
func (fc *FollowingController) ListCategories(c *gin.Context) {
	categories, err := fc.store.GetFollowingCategories(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list followed categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// FollowCategory handles POST /api/following/categories
func (fc *FollowingController) FollowCategory(c *gin.Context) {
	var req FollowCategoryRequest
	if !bindJSON(c, fc.validator, &req) {
		return
	}

	row, err := fc.store.FollowCategory(c.Request.Context(), GetUserID(c), req.Category)
	if err != nil {
		respondInternalError(c, err, "follow category")
		return
	}
	respondCreated(c, row)
}

// UnfollowCategory handles DELETE /api/following/categories/:category
func (fc *FollowingController) UnfollowCategory(c *gin.Context) {
	removed, err := fc.store.UnfollowCategory(c.Request.Context(), GetUserID(c), c.Param("category"))
	if err != nil {
		respondInternalError(c, err, "unfollow category")
		return
	}
	if !removed {
		respondNotFound(c, "followed category")
		return
	}
	respondSuccess(c, "category unfollowed")
}

// CheckCategory handles GET /api/following/categories/check/:category
func (fc *FollowingController) CheckCategory(c *gin.Context) {
	following, err := fc.store.IsFollowingCategory(c.Request.Context(), GetUserID(c), c.Param("category"))
	if err != nil {
		respondInternalError(c, err, "check followed category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFollowing": following})
}
