package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MrJamesThe3rd/khata/internal/auth"
	"github.com/MrJamesThe3rd/khata/internal/config"
	"github.com/MrJamesThe3rd/khata/internal/database"
	khataHttp "github.com/MrJamesThe3rd/khata/internal/http"
	authHandler "github.com/MrJamesThe3rd/khata/internal/http/auth"
	statementHandler "github.com/MrJamesThe3rd/khata/internal/http/statement"
	txHandler "github.com/MrJamesThe3rd/khata/internal/http/transaction"
	"github.com/MrJamesThe3rd/khata/internal/statement"
	"github.com/MrJamesThe3rd/khata/internal/transaction"
	txStore "github.com/MrJamesThe3rd/khata/internal/transaction/store"
	pgStore "github.com/MrJamesThe3rd/khata/internal/transaction/store/postgres"
	"github.com/MrJamesThe3rd/khata/internal/user"
	userStore "github.com/MrJamesThe3rd/khata/internal/user/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var store transaction.Store

	switch cfg.Store.Driver {
	case "memory":
		store = txStore.New()
	case "postgres":
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		store = pgStore.New(db)
	default:
		slog.Error("unknown store driver", "driver", cfg.Store.Driver)
		os.Exit(1)
	}

	var (
		transactionService = transaction.NewService(store)
		userService        = user.NewService(userStore.New())
		tokenService       = auth.NewService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
		parser             = statement.NewParser()
	)

	var (
		authH      = authHandler.NewHandler(userService, tokenService)
		statementH = statementHandler.NewHandler(parser, transactionService, cfg.Upload.MaxBytes)
		txH        = txHandler.NewHandler(transactionService)
	)

	router := khataHttp.New(tokenService, authH, statementH, txH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
