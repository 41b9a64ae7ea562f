// Package backend selects and constructs the bill store implementation.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"pagaae/internal/config"
	ports "pagaae/internal/sheets"
	gsheet "pagaae/internal/sheets/google"
	"pagaae/internal/sheets/memory"
	"pagaae/internal/storage"
)

// Result bundles a constructed store with its optional cleanup.
type Result struct {
	Store   ports.BillStore
	Cleanup func() error
}

// New builds the bill store named by cfg.DataBackend.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	switch cfg.DataBackend {
	case "sheets":
		creds, err := cfg.GoogleCredentials()
		if err != nil {
			return nil, fmt.Errorf("resolve google credentials: %w", err)
		}
		cli, err := gsheet.New(ctx, gsheet.Config{
			SpreadsheetID:   cfg.GoogleSheetID,
			SheetName:       cfg.GoogleSheetName,
			CredentialsJSON: creds,
		})
		if err != nil {
			return nil, fmt.Errorf("initialize google sheets backend: %w", err)
		}
		logger.Info("Initialized Google Sheets backend", "spreadsheet_id", cfg.GoogleSheetID)
		return &Result{Store: cli}, nil

	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: repo, Cleanup: repo.Close}, nil

	case "memory":
		logger.Info("Initialized memory backend")
		return &Result{Store: memory.New()}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
