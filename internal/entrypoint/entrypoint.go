package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/config"
	http_controllers "github.com/jenaralee/StoryStash/internal/http"
	"github.com/jenaralee/StoryStash/internal/scheduler"
	"github.com/jenaralee/StoryStash/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the listener so in-flight runs can finish
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting StoryStash v%s", version)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	app, err := Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	// Background work is cancelled as a whole on shutdown
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	var matcherScheduler *scheduler.MatcherScheduler
	if cfg.Matcher.Enabled {
		matcherScheduler = scheduler.NewMatcherScheduler(app.Matcher, cfg.Matcher.Schedule, cfg.Matcher.StartupDelay)
		if err := matcherScheduler.Start(bgCtx); err != nil {
			log.Fatalf("Failed to start matcher scheduler: %v", err)
		}
	} else {
		log.Printf("Matcher scheduler disabled (MATCHER_ENABLED=false)")
	}

	var taskClient *tasks.Client
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewRunMatcherQueue(app.Matcher),
			tasks.NewIngestBooksQueue(app.Discovery),
		)
		taskClient.Start(bgCtx)
	}

	routerCfg := http_controllers.RouterConfig{
		Store:       app.Store,
		StoreDriver: string(cfg.Store.Driver),
		Version:     version,
		Resolver:    app.Resolver,
		Validator:   app.Validator,
		Searcher:    app.Discovery,
		Matcher:     app.Matcher,
		ReadOnly:    cfg.Demo.ReadOnly,
	}
	// Typed nils would register routes backed by nothing
	if matcherScheduler != nil {
		routerCfg.MatcherScheduler = matcherScheduler
	}
	if taskClient != nil {
		routerCfg.TaskClient = taskClient
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if matcherScheduler != nil {
			matcherScheduler.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
		}
		bgCancel()
	}

	Serve(router, cfg, onShutdown)
}
