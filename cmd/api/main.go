package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ledgerkit/bankrec/internal/balance"
	"github.com/ledgerkit/bankrec/internal/bankaccount"
	accountStore "github.com/ledgerkit/bankrec/internal/bankaccount/store"
	"github.com/ledgerkit/bankrec/internal/config"
	"github.com/ledgerkit/bankrec/internal/database"
	bankrecHttp "github.com/ledgerkit/bankrec/internal/http"
	balanceHandler "github.com/ledgerkit/bankrec/internal/http/balance"
	accountHandler "github.com/ledgerkit/bankrec/internal/http/bankaccount"
	importHandler "github.com/ledgerkit/bankrec/internal/http/importofx"
	movementHandler "github.com/ledgerkit/bankrec/internal/http/movement"
	reconciliationHandler "github.com/ledgerkit/bankrec/internal/http/reconciliation"
	"github.com/ledgerkit/bankrec/internal/movement"
	movementStore "github.com/ledgerkit/bankrec/internal/movement/store"
	"github.com/ledgerkit/bankrec/internal/ofx"
	"github.com/ledgerkit/bankrec/internal/reconciliation"
	reconciliationStore "github.com/ledgerkit/bankrec/internal/reconciliation/store"
	"github.com/ledgerkit/bankrec/internal/statement"
	statementStore "github.com/ledgerkit/bankrec/internal/statement/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		accountService        = bankaccount.NewService(accountStore.New(db))
		movementService       = movement.NewService(movementStore.New(db))
		statementService      = statement.NewService(ofx.NewParser(), accountService, statementStore.New(db))
		balanceService        = balance.NewService(accountService, movementService)
		reconciliationService = reconciliation.NewService(accountService, reconciliationStore.New(db))
	)

	var (
		accountH        = accountHandler.NewHandler(accountService)
		importH         = importHandler.NewHandler(statementService)
		movementH       = movementHandler.NewHandler(movementService)
		balanceH        = balanceHandler.NewHandler(balanceService)
		reconciliationH = reconciliationHandler.NewHandler(reconciliationService)
	)

	router := bankrecHttp.New([]byte(cfg.Auth.Secret), accountH, importH, movementH, balanceH, reconciliationH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
