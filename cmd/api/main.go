package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/arand/kharcha/internal/config"
	"github.com/arand/kharcha/internal/goal"
	kharchaHttp "github.com/arand/kharcha/internal/http"
	budgetHandler "github.com/arand/kharcha/internal/http/budget"
	expenseHandler "github.com/arand/kharcha/internal/http/expense"
	exportHandler "github.com/arand/kharcha/internal/http/export"
	goalHandler "github.com/arand/kharcha/internal/http/goal"
	insightHandler "github.com/arand/kharcha/internal/http/insight"
	monthHandler "github.com/arand/kharcha/internal/http/month"
	"github.com/arand/kharcha/internal/importer"
	"github.com/arand/kharcha/internal/state"
	"github.com/arand/kharcha/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		slog.Error("failed to open storage", "error", err, "path", cfg.Storage.Path)
		os.Exit(1)
	}
	defer store.Close()

	var (
		stateService = state.NewService(store)
		goalService  = goal.NewService(store)
	)

	if err := stateService.Load(context.Background()); err != nil {
		slog.Error("failed to load state", "error", err)
		os.Exit(1)
	}

	var (
		budgetH  = budgetHandler.NewHandler(stateService)
		expenseH = expenseHandler.NewHandler(stateService, importer.NewParser())
		monthH   = monthHandler.NewHandler(stateService)
		insightH = insightHandler.NewHandler(stateService)
		goalH    = goalHandler.NewHandler(goalService, stateService)
		exportH  = exportHandler.NewHandler(stateService)
	)

	router := kharchaHttp.New(budgetH, expenseH, monthH, insightH, goalH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
