package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"pagaae/internal/core"
	ports "pagaae/internal/sheets"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var billsSchema embed.FS

// SQLiteRepository is a local bill store keeping the sheet's row-addressing
// contract: each record carries an explicit row_pos starting at 2, and a
// delete shifts every following position down by one. Useful when running
// without a spreadsheet.
type SQLiteRepository struct {
	db *sql.DB
}

var _ ports.BillStore = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrateBillsSchema(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// migrateBillsSchema applies the embedded migrations on a dedicated
// connection, keeping the migration driver off the repository's pool.
func migrateBillsSchema(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("sqlite migrate driver: %w", err)
	}
	src, err := iofs.New(billsSchema, "migrations")
	if err != nil {
		return fmt.Errorf("embedded migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply bills migrations: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Bill, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT row_pos, id, name, due_date, amount, status, category, notes
		FROM bills ORDER BY row_pos`)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	bills := make([]core.Bill, 0)
	for rows.Next() {
		var b core.Bill
		if err := rows.Scan(&b.Row, &b.ID, &b.Name, &b.DueDate, &b.Amount, &b.Status, &b.Category, &b.Notes); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, b.Normalized())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bills: %w", err)
	}
	return bills, nil
}

func (r *SQLiteRepository) Append(ctx context.Context, b core.Bill) error {
	f := b.Fields()
	// First record sits at row 2, mirroring the sheet's header offset.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bills (row_pos, id, name, due_date, amount, status, category, notes)
		VALUES ((SELECT COALESCE(MAX(row_pos), 1) + 1 FROM bills), ?, ?, ?, ?, ?, ?, ?)`,
		f[0], f[1], f[2], f[3], f[4], f[5], f[6])
	if err != nil {
		return fmt.Errorf("append bill: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateRow(ctx context.Context, row int, b core.Bill) error {
	f := b.Fields()
	res, err := r.db.ExecContext(ctx, `
		UPDATE bills SET id = ?, name = ?, due_date = ?, amount = ?, status = ?, category = ?, notes = ?
		WHERE row_pos = ?`,
		f[0], f[1], f[2], f[3], f[4], f[5], f[6], row)
	if err != nil {
		return fmt.Errorf("update row %d: %w", row, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update row %d: %w", row, err)
	}
	if n == 0 {
		return fmt.Errorf("row %d out of range", row)
	}
	return nil
}

func (r *SQLiteRepository) DeleteRow(ctx context.Context, row int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete row %d: %w", row, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM bills WHERE row_pos = ?`, row)
	if err != nil {
		return fmt.Errorf("delete row %d: %w", row, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete row %d: %w", row, err)
	}
	if n == 0 {
		return fmt.Errorf("row %d out of range", row)
	}

	// Shift in two steps through negative positions so the primary key never
	// collides mid-update.
	if _, err := tx.ExecContext(ctx, `UPDATE bills SET row_pos = -(row_pos - 1) WHERE row_pos > ?`, row); err != nil {
		return fmt.Errorf("shift rows after %d: %w", row, err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE bills SET row_pos = -row_pos WHERE row_pos < 0`); err != nil {
		return fmt.Errorf("shift rows after %d: %w", row, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete row %d: %w", row, err)
	}
	return nil
}
