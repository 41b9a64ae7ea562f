package memory

import (
	"context"
	"fmt"
	"sync"

	"pagaae/internal/core"
	ports "pagaae/internal/sheets"
)

// Store is an in-memory bill store with the same row-addressing semantics as
// the Google backend: a fixed header plus data rows, where deleting a row
// shifts every following row up by one. Used as the dev backend and by tests.
type Store struct {
	mu     sync.Mutex
	header []string
	rows   [][]string
}

var _ ports.BillStore = (*Store)(nil)

func New() *Store {
	header := make([]string, len(core.Columns))
	copy(header, core.Columns)
	return &Store{header: header}
}

// Seed replaces all data rows, mainly for tests.
func (s *Store) Seed(bills ...core.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = s.rows[:0]
	for _, b := range bills {
		s.rows = append(s.rows, b.Fields())
	}
}

func (s *Store) ListAll(_ context.Context) ([]core.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bills := make([]core.Bill, 0, len(s.rows))
	for i, row := range s.rows {
		b := core.FromCells(s.header, row, i+core.FirstDataRow)
		bills = append(bills, b.Normalized())
	}
	return bills, nil
}

func (s *Store) Append(_ context.Context, b core.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, b.Fields())
	return nil
}

func (s *Store) UpdateRow(_ context.Context, row int, b core.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err := s.index(row)
	if err != nil {
		return err
	}
	s.rows[idx] = b.Fields()
	return nil
}

func (s *Store) DeleteRow(_ context.Context, row int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err := s.index(row)
	if err != nil {
		return err
	}
	s.rows = append(s.rows[:idx], s.rows[idx+1:]...)
	return nil
}

// index translates a sheet row into a slice index, rejecting rows outside
// the current data range the way the remote store would.
func (s *Store) index(row int) (int, error) {
	idx := row - core.FirstDataRow
	if idx < 0 || idx >= len(s.rows) {
		return 0, fmt.Errorf("row %d out of range", row)
	}
	return idx, nil
}
