package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"pagaae/internal/core"
	ports "pagaae/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client is the row-addressed bill store on top of a Google Sheets
// spreadsheet. Row 1 of the sheet is the header; records occupy rows 2..n
// across columns A:G in core.Columns order.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string // optional; empty targets the spreadsheet's first sheet
}

// Config carries everything the client needs. Credentials are injected here
// once at startup; the client never reads ambient environment state.
type Config struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsJSON []byte
}

var _ ports.BillStore = (*Client)(nil)

// New creates a Sheets-backed bill store from service-account credentials.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if len(cfg.CredentialsJSON) == 0 {
		return nil, errors.New("missing service account credentials")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(cfg.CredentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     strings.TrimSpace(cfg.SheetName),
	}, nil
}

// columnRange is the full record range, header included.
const columnRange = "A:G"

func (c *Client) readRange() string {
	if c.sheetName == "" {
		return columnRange
	}
	return fmt.Sprintf("%s!%s", c.sheetName, columnRange)
}

func (c *Client) rowRange(row int) string {
	if c.sheetName == "" {
		return fmt.Sprintf("A%d:G%d", row, row)
	}
	return fmt.Sprintf("%s!A%d:G%d", c.sheetName, row, row)
}

// ListAll implements ports.BillLister. Backing-store errors propagate
// unmodified; a header-only sheet yields an empty slice.
func (c *Client) ListAll(ctx context.Context) ([]core.Bill, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.readRange(), err)
	}
	return rowsToBills(resp.Values), nil
}

// Append implements ports.BillAppender using the values.append API, which
// always writes past the last occupied row.
func (c *Client) Append(ctx context.Context, b core.Bill) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	vr := &gsheet.ValueRange{Values: [][]any{cellsToAny(b.Fields())}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.readRange(), vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", c.readRange(), err)
	}
	return nil
}

// UpdateRow implements ports.BillUpdater, overwriting exactly one row across
// the full column range. An out-of-range row is not validated locally; the
// API error propagates to the caller.
func (c *Client) UpdateRow(ctx context.Context, row int, b core.Bill) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	rng := c.rowRange(row)
	vr := &gsheet.ValueRange{Values: [][]any{cellsToAny(b.Fields())}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", rng, err)
	}
	return nil
}

// DeleteRow implements ports.BillDeleter. The values API has no row removal,
// so this resolves the internal sheet id from spreadsheet metadata and issues
// a deleteDimension batch update: two round trips per call.
func (c *Client) DeleteRow(ctx context.Context, row int) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	sheetID, err := c.resolveSheetID(ctx)
	if err != nil {
		return err
	}

	req := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			DeleteDimension: &gsheet.DeleteDimensionRequest{
				Range: &gsheet.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1),
					EndIndex:   int64(row),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete row %d: %w", row, err)
	}
	slog.DebugContext(ctx, "Deleted sheet row", "row", row, "sheet_id", sheetID)
	return nil
}

func (c *Client) resolveSheetID(ctx context.Context) (int64, error) {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("spreadsheet metadata: %w", err)
	}
	if len(meta.Sheets) == 0 {
		return 0, errors.New("spreadsheet has no sheets")
	}
	if c.sheetName == "" {
		return meta.Sheets[0].Properties.SheetId, nil
	}
	for _, s := range meta.Sheets {
		if s.Properties != nil && s.Properties.Title == c.sheetName {
			return s.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %q not found", c.sheetName)
}
