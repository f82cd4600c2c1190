package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bryanwahyu/phishproof/internal/application"
	appanalysis "github.com/bryanwahyu/phishproof/internal/application/analysis"
	"github.com/bryanwahyu/phishproof/internal/config"
	domain "github.com/bryanwahyu/phishproof/internal/domain/analysis"
	openaiClient "github.com/bryanwahyu/phishproof/internal/infra/ai/openai"
	"github.com/bryanwahyu/phishproof/internal/infra/classifier/keyword"
	mysqlp "github.com/bryanwahyu/phishproof/internal/infra/db/mysql"
	pgp "github.com/bryanwahyu/phishproof/internal/infra/db/postgres"
	"github.com/bryanwahyu/phishproof/internal/infra/httpserver"
	"github.com/bryanwahyu/phishproof/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()
	checkers := map[string]middleware.HealthChecker{}

	// init classifier
	var classifier domain.Service
	switch cfg.Classifier.Backend {
	case "openai":
		classifier = openaiClient.NewClientWithBaseURL(cfg.Classifier.OpenAIKey, cfg.Classifier.Model, cfg.Classifier.BaseURL)
	default:
		classifier = keyword.New(time.Duration(cfg.Classifier.DelayMS) * time.Millisecond)
	}
	log.Printf("classifier backend=%s", cfg.Classifier.Backend)

	// init history repo (optional)
	var repo domain.Repository
	db, err := connectDB(ctx, cfg)
	if err != nil {
		log.Fatalf("%s connect error: %v", cfg.Database.Driver, err)
	}
	if db != nil {
		defer db.Close()
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
		switch cfg.Database.Driver {
		case "mysql":
			repo = mysqlp.NewAnalysisRepository(db)
		case "postgres":
			repo = pgp.NewAnalysisRepository(db)
		}
		log.Printf("history enabled driver=%s", cfg.Database.Driver)
	}

	// init service
	svc := &appanalysis.Service{
		Classifier: classifier,
		Repo:       repo,
		Clock:      application.SystemClock{},
		Backend:    cfg.Classifier.Backend,
	}

	// init router
	handler := httpserver.NewRouter(svc, httpserver.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimit:      cfg.Server.RateLimit,
		APIKeys:        cfg.Server.APIKeys,
		HealthCheckers: checkers,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// connectDB opens the configured history database and creates its table.
// It returns nil when no driver is configured.
func connectDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Database.Driver {
	case "mysql":
		if db, err = mysqlp.Connect(ctx, cfg.MySQLDSN()); err == nil {
			err = mysqlp.EnsureSchema(ctx, db)
		}
	case "postgres":
		if db, err = pgp.Connect(ctx, cfg.PostgresDSN()); err == nil {
			err = pgp.EnsureSchema(ctx, db)
		}
	default:
		return nil, nil
	}
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}
	return db, nil
}
