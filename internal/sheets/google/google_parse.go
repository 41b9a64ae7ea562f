package google

import (
	"fmt"
	"strings"

	"pagaae/internal/core"
)

// rowsToBills converts a values matrix (as returned by the Sheets API) into
// bill records. values[0] is the header row; each record gets
// Row = matrix index + 1, so the first record is row 2. Zero or one row
// yields nil.
func rowsToBills(values [][]interface{}) []core.Bill {
	if len(values) < 2 {
		return nil
	}
	header := toStrings(values[0])
	bills := make([]core.Bill, 0, len(values)-1)
	for i, row := range values[1:] {
		b := core.FromCells(header, toStrings(row), i+core.FirstDataRow)
		bills = append(bills, b.Normalized())
	}
	return bills
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func cellsToAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, v := range cells {
		out[i] = v
	}
	return out
}
