package storage

import (
	"context"
	"path/filepath"
	"testing"

	"pagaae/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "bills.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteReopenKeepsSchemaAndData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bills.db")

	repo, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	if err := repo.Append(ctx, core.Bill{ID: "1", Name: "Internet"}); err != nil {
		t.Fatal(err)
	}
	repo.Close()

	// A second open re-runs the migration path against an up-to-date schema.
	repo, err = NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("reopen repository: %v", err)
	}
	defer repo.Close()

	bills, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list after reopen: %v", err)
	}
	if len(bills) != 1 || bills[0].Name != "Internet" {
		t.Fatalf("unexpected bills after reopen: %+v", bills)
	}
}

func TestSQLiteRowAddressing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	bills, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(bills) != 0 {
		t.Fatalf("expected empty store, got %d", len(bills))
	}

	for _, id := range []string{"1", "2", "3"} {
		if err := repo.Append(ctx, core.Bill{ID: id, Name: "Conta " + id}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	bills, err = repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bills) != 3 {
		t.Fatalf("got %d bills, want 3", len(bills))
	}
	for i, b := range bills {
		if want := i + 2; b.Row != want {
			t.Errorf("bills[%d].Row = %d, want %d", i, b.Row, want)
		}
		if b.Status != core.StatusPending {
			t.Errorf("bills[%d].Status = %q, want pending", i, b.Status)
		}
	}
}

func TestSQLiteUpdateRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if err := repo.Append(ctx, core.Bill{ID: "1", Name: "Luz"}); err != nil {
		t.Fatal(err)
	}

	if err := repo.UpdateRow(ctx, 2, core.Bill{ID: "1", Name: "Luz", Status: "pago", Amount: "50"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	bills, _ := repo.ListAll(ctx)
	if bills[0].Status != "pago" || bills[0].Amount != "50" {
		t.Errorf("unexpected bill after update: %+v", bills[0])
	}

	if err := repo.UpdateRow(ctx, 99, core.Bill{}); err == nil {
		t.Error("update of missing row should fail")
	}
}

func TestSQLiteDeleteShiftsPositions(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	for _, id := range []string{"1", "2", "3", "4"} {
		if err := repo.Append(ctx, core.Bill{ID: id}); err != nil {
			t.Fatal(err)
		}
	}

	if err := repo.DeleteRow(ctx, 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	bills, _ := repo.ListAll(ctx)
	if len(bills) != 3 {
		t.Fatalf("got %d bills, want 3", len(bills))
	}
	wantIDs := []string{"1", "3", "4"}
	for i, b := range bills {
		if b.ID != wantIDs[i] {
			t.Errorf("bills[%d].ID = %q, want %q", i, b.ID, wantIDs[i])
		}
		if want := i + 2; b.Row != want {
			t.Errorf("bills[%d].Row = %d, want %d", i, b.Row, want)
		}
	}

	// Appends never reuse a deleted position: next row is past the last one.
	if err := repo.Append(ctx, core.Bill{ID: "5"}); err != nil {
		t.Fatal(err)
	}
	bills, _ = repo.ListAll(ctx)
	if last := bills[len(bills)-1]; last.ID != "5" || last.Row != 5 {
		t.Errorf("unexpected appended bill: %+v", last)
	}

	if err := repo.DeleteRow(ctx, 42); err == nil {
		t.Error("delete of missing row should fail")
	}
}
