package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/campus/internal/attachment"
	"github.com/MrJamesThe3rd/campus/internal/config"
	"github.com/MrJamesThe3rd/campus/internal/database"
	"github.com/MrJamesThe3rd/campus/internal/export"
	"github.com/MrJamesThe3rd/campus/internal/fee"
	feeStore "github.com/MrJamesThe3rd/campus/internal/fee/store"
	campusHttp "github.com/MrJamesThe3rd/campus/internal/http"
	"github.com/MrJamesThe3rd/campus/internal/http/auth"
	exportHandler "github.com/MrJamesThe3rd/campus/internal/http/export"
	feeHandler "github.com/MrJamesThe3rd/campus/internal/http/fee"
	"github.com/MrJamesThe3rd/campus/internal/http/importcsv"
	studentHandler "github.com/MrJamesThe3rd/campus/internal/http/student"
	"github.com/MrJamesThe3rd/campus/internal/importer"
	"github.com/MrJamesThe3rd/campus/internal/logger"
	"github.com/MrJamesThe3rd/campus/internal/student"
	studentStore "github.com/MrJamesThe3rd/campus/internal/student/store"
	"github.com/MrJamesThe3rd/campus/internal/tenant"
	tenantStore "github.com/MrJamesThe3rd/campus/internal/tenant/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	uploads, err := attachment.NewLocal(cfg.Upload.Dir, cfg.Upload.BaseURL, cfg.Upload.MaxBytes)
	if err != nil {
		slog.Error("failed to prepare upload storage", "error", err)
		os.Exit(1)
	}

	students := studentStore.New(db)

	var (
		tenantService  = tenant.NewService(tenantStore.New(db))
		feeService     = fee.NewService(feeStore.New(db), tenantService, uploads)
		studentService = student.NewService(students, tenantService)
		importService  = importer.NewService(feeService, students)
		exportService  = export.NewService(feeService)
	)

	var (
		feeH     = feeHandler.NewHandler(feeService)
		importH  = importcsv.NewHandler(importService)
		exportH  = exportHandler.NewHandler(exportService)
		studentH = studentHandler.NewHandler(studentService)
	)

	opts := campusHttp.Options{
		CORSOrigins: cfg.CORS.Origins,
		Uploads:     uploads.Handler(),
	}

	if cfg.Auth.Secret != "" {
		opts.Verifier = auth.NewVerifier(cfg.Auth.Secret)
	} else {
		slog.Warn("AUTH_SECRET is empty, API authentication is disabled")
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           campusHttp.New(feeH, importH, exportH, studentH, opts),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
