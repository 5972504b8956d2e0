// Package wire provides dependency injection for casebook.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"

	cliadapter "github.com/example/casebook/internal/adapters/cli"
	"github.com/example/casebook/internal/adapters/sqlite"
	"github.com/example/casebook/internal/app"
	"github.com/example/casebook/internal/config"
	"github.com/example/casebook/internal/db"
	"github.com/example/casebook/internal/logging"
	"github.com/example/casebook/internal/ports/primary"
	"github.com/example/casebook/internal/server"
)

// LogConsole receives log output next to the log file.
// It must be set before the first service is requested.
var LogConsole io.Writer = io.Discard

var (
	cfg               *config.Config
	submissionService primary.SubmissionService
	categoryService   primary.CategoryService
	effectRunner      app.EffectRunner
	closeLog          func() error
	once              sync.Once
)

// Config returns the resolved configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// SubmissionService returns the singleton SubmissionService instance.
func SubmissionService() primary.SubmissionService {
	once.Do(initServices)
	return submissionService
}

// CategoryService returns the singleton CategoryService instance.
func CategoryService() primary.CategoryService {
	once.Do(initServices)
	return categoryService
}

// EffectRunner returns the singleton EffectRunner instance.
func EffectRunner() app.EffectRunner {
	once.Do(initServices)
	return effectRunner
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("failed to get home directory: %v", err)
	}

	cfg, err = config.Load(home)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	_, closeLog = logging.Init(LogConsole, cfg.LogFile)

	database, err := db.GetDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports)
	submissionRepo := sqlite.NewSubmissionRepository(database)
	categoryRepo := sqlite.NewCategoryRepository(database)

	// Services (primary ports implementation)
	submissionService = app.NewSubmissionService(submissionRepo)
	categoryService = app.NewCategoryService(categoryRepo)

	effectRunner = app.NewEffectRunner(submissionService, categoryService, log.Default())
}

// Close releases the database and the log file.
func Close() error {
	if err := db.Close(); err != nil {
		return err
	}
	if closeLog != nil {
		return closeLog()
	}
	return nil
}

// Session returns a new session controller that has finished its initial load.
// A failed load is returned as an error.
func Session(ctx context.Context) (*app.Controller, error) {
	once.Do(initServices)
	ctrl := app.NewController(effectRunner)
	if err := ctrl.Start(ctx).Notice.Err(); err != nil {
		return nil, fmt.Errorf("failed to load use cases: %w", err)
	}
	return ctrl, nil
}

// SubmissionAdapter returns a new SubmissionAdapter over s writing to stdout.
func SubmissionAdapter(s cliadapter.Session) *cliadapter.SubmissionAdapter {
	return SubmissionAdapterWithOutput(s, os.Stdout)
}

// SubmissionAdapterWithOutput returns a new SubmissionAdapter writing to the given output.
func SubmissionAdapterWithOutput(s cliadapter.Session, out io.Writer) *cliadapter.SubmissionAdapter {
	return cliadapter.NewSubmissionAdapter(s, out)
}

// CategoryAdapter returns a new CategoryAdapter over s writing to stdout.
func CategoryAdapter(s cliadapter.Session) *cliadapter.CategoryAdapter {
	return CategoryAdapterWithOutput(s, os.Stdout)
}

// CategoryAdapterWithOutput returns a new CategoryAdapter writing to the given output.
func CategoryAdapterWithOutput(s cliadapter.Session, out io.Writer) *cliadapter.CategoryAdapter {
	return cliadapter.NewCategoryAdapter(s, out)
}

// HTTPHandler returns the REST API router.
func HTTPHandler() http.Handler {
	once.Do(initServices)
	return server.New(submissionService, categoryService).Router()
}
