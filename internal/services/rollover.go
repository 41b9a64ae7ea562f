// Package services holds the business operations on top of the bill store.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"pagaae/internal/core"
	ports "pagaae/internal/sheets"
)

// Rollover advances every bill into the next month: due date plus one
// calendar month, amount cleared, status back to pending.
//
// Writes go out strictly sequentially, one UpdateRow round trip per record,
// with no transaction boundary: a failure mid-way leaves earlier records
// already advanced, and re-running advances them again. Callers own the
// snapshot they pass in and must not reuse its Row values afterwards.
type Rollover struct {
	updater ports.BillUpdater
}

func NewRollover(updater ports.BillUpdater) *Rollover {
	return &Rollover{updater: updater}
}

// CloseMonth writes the advanced state of each record back to the store.
func (r *Rollover) CloseMonth(ctx context.Context, bills []core.Bill) error {
	for _, b := range bills {
		next := Advance(b)
		if err := r.updater.UpdateRow(ctx, b.Row, next); err != nil {
			return fmt.Errorf("advance row %d: %w", b.Row, err)
		}
		slog.DebugContext(ctx, "Advanced bill",
			"row", b.Row, "name", b.Name, "due_date", next.DueDate)
	}
	return nil
}

// Advance computes the next-month state of one bill. The due date is parsed
// best-effort (ISO or DD/MM/YY); anything unparsable, including an empty
// string, yields an empty due date rather than an error. On success the date
// moves one calendar month forward, day clamped to the month's length, and is
// re-encoded as ISO. Amount resets to empty, status to pending; identity
// fields pass through.
func Advance(b core.Bill) core.Bill {
	due := ""
	if t, ok := core.ParseDueDate(b.DueDate); ok {
		due = core.FormatISO(core.AddMonthClamped(t))
	}
	return core.Bill{
		ID:       b.ID,
		Name:     b.Name,
		DueDate:  due,
		Amount:   "",
		Status:   core.StatusPending,
		Category: b.Category,
		Notes:    b.Notes,
		Row:      b.Row,
	}
}
