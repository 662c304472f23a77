package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
	"github.com/jenaralee/StoryStash/internal/validation"
)

// CatalogController serves authors and series.
type CatalogController struct {
	store     CatalogStore
	validator *validation.Validator
}

func NewCatalogController(store CatalogStore, v *validation.Validator) *CatalogController {
	return &CatalogController{store: store, validator: v}
}

type CreateAuthorRequest struct {
	Name     string `json:"name" validate:"required,max=256"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

type CreateSeriesRequest struct {
	Name        string `json:"name" validate:"required,max=256"`
	Description string `json:"description"`
	Author      string `json:"author" validate:"max=256"`
}

// ListAuthors handles GET /api/authors
func (cc *CatalogController) ListAuthors(c *gin.Context) {
	authors, err := cc.store.ListAuthors(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, authors)
}

// GetAuthor handles GET /api/authors/:id
func (cc *CatalogController) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := cc.store.GetAuthor(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get author")
		return
	}
	if author == nil {
		respondNotFound(c, "author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// CreateAuthor handles POST /api/authors
func (cc *CatalogController) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if !bindJSON(c, cc.validator, &req) {
		return
	}

	author, err := cc.store.CreateAuthor(c.Request.Context(), &entities.Author{
		Name:     req.Name,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	})
	if errors.Is(err, store.ErrConflict) {
		respondConflict(c, "author already exists")
		return
	}
	if err != nil {
		respondInternalError(c, err, "create author")
		return
	}
	respondCreated(c, author)
}

// ListSeries handles GET /api/series
func (cc *CatalogController) ListSeries(c *gin.Context) {
	series, err := cc.store.ListSeries(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list series")
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetSeries handles GET /api/series/:id
func (cc *CatalogController) GetSeries(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	series, err := cc.store.GetSeries(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get series")
		return
	}
	if series == nil {
		respondNotFound(c, "series")
		return
	}
	c.JSON(http.StatusOK, series)
}

// CreateSeries handles POST /api/series
func (cc *CatalogController) CreateSeries(c *gin.Context) {
	var req CreateSeriesRequest
	if !bindJSON(c, cc.validator, &req) {
		return
	}

	series, err := cc.store.CreateSeries(c.Request.Context(), &entities.BookSeries{
		Name:        req.Name,
		Description: req.Description,
		Author:      req.Author,
	})
	if errors.Is(err, store.ErrConflict) {
		respondConflict(c, "series already exists")
		return
	}
	if err != nil {
		respondInternalError(c, err, "create series")
		return
	}
	respondCreated(c, series)
}
