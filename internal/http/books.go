package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
	"github.com/jenaralee/StoryStash/internal/validation"
)

// BookSearcher answers /api/books/search. *services.DiscoveryService
// supplements local results from the external source.
type BookSearcher interface {
	Search(ctx context.Context, query string) ([]entities.Book, error)
}

type BooksController struct {
	store     store.BookStore
	searcher  BookSearcher
	validator *validation.Validator
}

func NewBooksController(store store.BookStore, searcher BookSearcher, v *validation.Validator) *BooksController {
	return &BooksController{store: store, searcher: searcher, validator: v}
}

type CreateBookRequest struct {
	GoogleID      string   `json:"googleId" validate:"max=64"`
	Title         string   `json:"title" validate:"required,max=512"`
	Author        string   `json:"author" validate:"max=256"`
	Description   string   `json:"description"`
	Thumbnail     string   `json:"thumbnail" validate:"omitempty,url"`
	Categories    []string `json:"categories" validate:"dive,category"`
	AgeRange      string   `json:"ageRange" validate:"omitempty,agerange"`
	PublishedDate string   `json:"publishedDate" validate:"max=32"`
	Rating        *int     `json:"rating" validate:"omitempty,gte=0,lte=50"`
	IsNew         bool     `json:"isNew"`
}

type UpdateBookRequest struct {
	Title         *string   `json:"title" validate:"omitempty,min=1,max=512"`
	Author        *string   `json:"author" validate:"omitempty,max=256"`
	Description   *string   `json:"description"`
	Thumbnail     *string   `json:"thumbnail" validate:"omitempty,url"`
	Categories    *[]string `json:"categories" validate:"omitempty,dive,category"`
	AgeRange      *string   `json:"ageRange" validate:"omitempty,agerange"`
	PublishedDate *string   `json:"publishedDate" validate:"omitempty,max=32"`
	Rating        *int      `json:"rating" validate:"omitempty,gte=0,lte=50"`
	IsNew         *bool     `json:"isNew"`
}

// GetBooks handles GET /api/books?category&ageRange&isNew&limit&offset
func (bc *BooksController) GetBooks(c *gin.Context) {
	isNew, ok := parseQueryBool(c, "isNew")
	if !ok {
		return
	}
	limit, ok := parseQueryInt(c, "limit")
	if !ok {
		return
	}
	offset, ok := parseQueryInt(c, "offset")
	if !ok {
		return
	}

	books, err := bc.store.GetBooks(c.Request.Context(), store.BookFilter{
		Category: c.Query("category"),
		AgeRange: c.Query("ageRange"),
		IsNew:    isNew,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondInternalError(c, err, "get books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// SearchBooks handles GET /api/books/search?query
func (bc *BooksController) SearchBooks(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		respondBadRequest(c, "query is required")
		return
	}

	books, err := bc.searcher.Search(c.Request.Context(), query)
	if err != nil {
		respondInternalError(c, err, "search books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetBook handles GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBook(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook handles POST /api/books. A book whose googleId is already
// stored is returned as-is with 200.
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !bindJSON(c, bc.validator, &req) {
		return
	}
	ctx := c.Request.Context()

	if req.GoogleID != "" {
		existing, err := bc.store.GetBookByGoogleID(ctx, req.GoogleID)
		if err != nil {
			respondInternalError(c, err, "create book")
			return
		}
		if existing != nil {
			c.JSON(http.StatusOK, existing)
			return
		}
	}

	book, err := bc.store.CreateBook(ctx, &entities.Book{
		GoogleID:      req.GoogleID,
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Thumbnail:     req.Thumbnail,
		Categories:    req.Categories,
		AgeRange:      req.AgeRange,
		PublishedDate: req.PublishedDate,
		Rating:        req.Rating,
		IsNew:         req.IsNew,
	})
	if errors.Is(err, store.ErrConflict) {
		respondConflict(c, "a book with this googleId already exists")
		return
	}
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	respondCreated(c, book)
}

// UpdateBook handles PATCH /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateBookRequest
	if !bindJSON(c, bc.validator, &req) {
		return
	}

	book, err := bc.store.UpdateBook(c.Request.Context(), id, entities.BookUpdate{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Thumbnail:     req.Thumbnail,
		Categories:    req.Categories,
		AgeRange:      req.AgeRange,
		PublishedDate: req.PublishedDate,
		Rating:        req.Rating,
		IsNew:         req.IsNew,
	})
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// localSearcher searches the store only.
type localSearcher struct {
	store store.BookStore
}

func (l localSearcher) Search(ctx context.Context, query string) ([]entities.Book, error) {
	return l.store.SearchBooks(ctx, query)
}
