package sheets

import (
	"context"

	"pagaae/internal/core"
)

// Ports for the bill store backends. Each call is exactly one backing-store
// round trip (delete issues an extra metadata lookup on the Google backend);
// there is no local caching, retrying or batching behind these interfaces.
type (
	BillLister interface {
		// ListAll returns every record in sheet order, with Row assigned
		// from physical position (first record = row 2).
		ListAll(ctx context.Context) ([]core.Bill, error)
	}

	BillAppender interface {
		// Append writes one record past the last occupied row. Deleted
		// positions are never reused.
		Append(ctx context.Context, b core.Bill) error
	}

	BillUpdater interface {
		// UpdateRow overwrites the full column range of one row.
		UpdateRow(ctx context.Context, row int, b core.Bill) error
	}

	BillDeleter interface {
		// DeleteRow removes one row; every following row shifts up by one,
		// invalidating any cached Row values greater than row.
		DeleteRow(ctx context.Context, row int) error
	}

	// BillStore is the full record-store contract.
	BillStore interface {
		BillLister
		BillAppender
		BillUpdater
		BillDeleter
	}
)
