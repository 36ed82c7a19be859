package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/treygoff24/site/api"
	"github.com/treygoff24/site/content"
	"github.com/treygoff24/site/covers"
	"github.com/treygoff24/site/feedgen"
	rh "github.com/treygoff24/site/route-handlers"
	"github.com/treygoff24/site/storage"
)

const (
	defaultPort         = "8080"
	defaultSiteOrigin   = "https://treygoff.com"
	defaultContentDir   = "_content"
	defaultCoverMapPath = "_output/covers.json"
	defaultCoverImage   = "/static/default-cover.svg"
	shutdownTimeout     = 15 * time.Second

	envProduction = "production"
)

type config struct {
	port         string
	siteOrigin   string
	environment  string
	contentDir   string
	coverMapPath string
}

func (c config) production() bool {
	return c.environment == envProduction
}

func main() {
	cfg := loadConfig()

	processor := content.NewProcessor()
	store, err := content.Load(cfg.contentDir, processor)
	if err != nil {
		log.Fatalf("Content load failed: %v", err)
	}

	coverStore := storage.NewLocalCoverMapStore(cfg.coverMapPath)
	coverMap, err := coverStore.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("WARNING: cover map %s not found; appearances will use artwork/default fallbacks until one is generated.", cfg.coverMapPath)
		} else {
			log.Fatalf("Cover map load failed: %v", err)
		}
	}
	coverCache := covers.NewCache(coverMap)

	resolver := covers.NewResolver(covers.DefaultSources(nil)...)
	refresher := covers.NewRefresher(resolver, store, coverStore, coverCache)

	site := feedgen.SiteInfo{
		Origin:      cfg.siteOrigin,
		Title:       "Trey Goff",
		Description: "Essays and notes on progress, governance, and building new things.",
		AuthorName:  "Trey Goff",
		AuthorEmail: "hello@treygoff.com",
		Language:    "en-us",
		Copyright:   "© Trey Goff",
		FaviconURL:  cfg.siteOrigin + "/favicon.ico",
	}

	essayHandler := rh.NewEssayHandler(store, cfg.production())
	noteHandler := rh.NewNoteHandler(store)
	libraryHandler := rh.NewLibraryHandler(store)
	appearanceHandler := rh.NewAppearanceHandler(store, coverCache, defaultCoverImage)
	feedHandler := rh.NewFeedHandler(site, store)
	sitemapHandler := rh.NewSitemapHandler(site, store, cfg.production())
	worldHandler := rh.NewWorldHandler(site.Title)

	router := api.SetupRoutes(
		essayHandler,
		noteHandler,
		libraryHandler,
		appearanceHandler,
		feedHandler,
		sitemapHandler,
		worldHandler,
	)

	mainRouter := chi.NewRouter()
	mainRouter.Mount("/", router)
	mainRouter.Post("/covers/refresh", refresher.HandleRefresh)

	startServer(cfg.port, mainRouter)
}

func loadConfig() config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	siteOrigin := os.Getenv("SITE_ORIGIN")
	if siteOrigin == "" {
		siteOrigin = defaultSiteOrigin
		log.Printf("WARNING: SITE_ORIGIN not set, using default %s", defaultSiteOrigin)
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	contentDir := os.Getenv("CONTENT_DIR")
	if contentDir == "" {
		contentDir = defaultContentDir
	}

	coverMapPath := os.Getenv("COVER_MAP_PATH")
	if coverMapPath == "" {
		coverMapPath = defaultCoverMapPath
	}

	return config{
		port:         port,
		siteOrigin:   siteOrigin,
		environment:  environment,
		contentDir:   contentDir,
		coverMapPath: coverMapPath,
	}
}

func startServer(port string, router http.Handler) {
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownSignal // Block until signal received
	log.Println("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server gracefully stopped")
}
