package http

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/demo"
	"github.com/jenaralee/StoryStash/internal/identity"
	"github.com/jenaralee/StoryStash/internal/store"
	"github.com/jenaralee/StoryStash/internal/validation"
)

// RouterConfig carries every dependency the router wires into controllers.
// Optional collaborators may be nil; their routes are then not registered.
type RouterConfig struct {
	Store       store.Store
	StoreDriver string
	Version     string

	Resolver  identity.Resolver
	Validator *validation.Validator

	// Searcher answers /api/books/search. Defaults to the store's local search.
	Searcher BookSearcher

	Matcher          MatcherRunner
	MatcherScheduler MatcherStatusProvider
	TaskClient       TaskQueue

	// ReadOnly blocks catalog writes (DEMO_READ_ONLY).
	ReadOnly bool

	// Quiet disables the request logger (tests).
	Quiet bool
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	if !cfg.Quiet {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	v := cfg.Validator
	if v == nil {
		v = validation.New()
	}
	searcher := cfg.Searcher
	if searcher == nil {
		searcher = localSearcher{cfg.Store}
	}

	// Health endpoints sit outside the identity middleware.
	health := NewHealthController(cfg.Store, cfg.StoreDriver, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	guard := demo.NewMiddleware(cfg.ReadOnly)
	if guard.IsEnabled() {
		log.Printf("Demo read-only mode enabled - catalog writes will be blocked")
	}

	api := router.Group("/api")
	api.Use(guard.Handler())
	api.Use(identity.Middleware(cfg.Resolver))

	users := NewUsersController(cfg.Store)
	api.GET("/user", users.GetCurrentUser)

	books := NewBooksController(cfg.Store, searcher, v)
	api.GET("/books", books.GetBooks)
	api.POST("/books", books.CreateBook)
	api.GET("/books/search", books.SearchBooks)
	api.GET("/books/:id", books.GetBook)
	api.PATCH("/books/:id", books.UpdateBook)

	preferences := NewPreferencesController(cfg.Store, v)
	api.GET("/preferences", preferences.GetPreferences)
	api.PUT("/preferences", preferences.UpdatePreferences)

	api.GET("/categories", GetCategories)
	api.GET("/age-ranges", GetAgeRanges)

	favorites := NewFavoritesController(cfg.Store, v)
	api.GET("/favorites", favorites.ListFavorites)
	api.POST("/favorites", favorites.AddFavorite)
	api.DELETE("/favorites/:bookId", favorites.RemoveFavorite)
	api.GET("/favorites/check/:bookId", favorites.CheckFavorite)

	notifications := NewNotificationsController(cfg.Store, v)
	api.GET("/notifications", notifications.ListNotifications)
	api.POST("/notifications", notifications.CreateNotification)
	api.GET("/notifications/unread-count", notifications.UnreadCount)
	api.POST("/notifications/mark-read/:id", notifications.MarkRead)
	api.POST("/notifications/mark-all-read", notifications.MarkAllRead)

	recent := NewRecentlyViewedController(cfg.Store, v)
	api.GET("/recently-viewed", recent.ListRecentlyViewed)
	api.POST("/recently-viewed", recent.AddRecentlyViewed)
	api.POST("/recently-viewed/clear", recent.ClearRecentlyViewed)

	catalog := NewCatalogController(cfg.Store, v)
	api.GET("/authors", catalog.ListAuthors)
	api.POST("/authors", catalog.CreateAuthor)
	api.GET("/authors/:id", catalog.GetAuthor)
	api.GET("/series", catalog.ListSeries)
	api.POST("/series", catalog.CreateSeries)
	api.GET("/series/:id", catalog.GetSeries)

	following := NewFollowingController(cfg.Store, v)
	api.GET("/following/authors", following.ListAuthors)
	api.POST("/following/authors", following.FollowAuthor)
	api.DELETE("/following/authors/:authorId", following.UnfollowAuthor)
	api.GET("/following/authors/check/:authorId", following.CheckAuthor)
	api.GET("/following/series", following.ListSeries)
	api.POST("/following/series", following.FollowSeries)
	api.DELETE("/following/series/:seriesId", following.UnfollowSeries)
	api.GET("/following/series/check/:seriesId", following.CheckSeries)
	api.GET("/following/categories", following.ListCategories)
	api.POST("/following/categories", following.FollowCategory)
	api.DELETE("/following/categories/:category", following.UnfollowCategory)
	api.GET("/following/categories/check/:category", following.CheckCategory)

	if cfg.Matcher != nil {
		matcherController := NewMatcherController(cfg.Matcher, cfg.MatcherScheduler)
		api.POST("/matcher/run", matcherController.Run)
		api.GET("/matcher/status", matcherController.Status)
	}

	// Task management endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		api.GET("/tasks/types", tasksController.ListTaskTypes)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
		api.POST("/tasks/:type/run", tasksController.RunTask)
	}

	return router
}
