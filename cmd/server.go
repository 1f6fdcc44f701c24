package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"mylibrary/internal/config"
	"mylibrary/internal/core"
	"mylibrary/internal/db"
	"mylibrary/internal/http/handler"
	"mylibrary/internal/http/handler/middleware"
	"mylibrary/internal/http/payload"
	"mylibrary/internal/http/server"
	"mylibrary/internal/openlibrary"
	"mylibrary/internal/repository"
	"mylibrary/pkg/log"
	"mylibrary/pkg/token"
)

func Start() error {
	logger := log.NewZapLogger("mylibrary", zapcore.InfoLevel)

	// a missing .env file is fine, variables may come from the environment
	_ = godotenv.Load()

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewLibraryRepository(dbConn)

	if err := repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate database", "error", err)
		return err
	}

	// open library client
	lookup := openlibrary.NewClient(logger, config.LookupURL, config.LookupTimeout)

	// library service
	library := core.NewLibrary(
		logger,
		repo,
		token.NewIssuer(),
		lookup)

	// handler
	bookHandler := handler.NewBookHandler(
		logger,
		payload.DecodeValidator{},
		library)

	// middleware
	authMW := middleware.NewAuthMiddleware(logger, library)
	logMW := middleware.NewLoggingMiddleware(logger)

	// register routes
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(logMW.Logging)
	router.Mount("/api", bookHandler.Routes(authMW.Auth))

	srv := server.NewHTTP(logger, router, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
