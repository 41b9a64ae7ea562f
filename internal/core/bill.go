package core

import "strings"

// StatusPending is the default payment status for a bill.
const StatusPending = "pending"

// Columns is the fixed column order of the bills sheet. Row 1 of the backing
// store holds these names as headers; every write covers the full range in
// this order.
var Columns = []string{"ID", "Nome", "Vencimento", "Valor", "Status", "Categoria", "Observacoes"}

// FirstDataRow is the sheet row of the first record (row 1 is the header).
const FirstDataRow = 2

// Bill is one tracked household bill. All fields are stored as strings,
// mirroring the spreadsheet cells: Amount is a decimal string where empty
// means unset, DueDate is either ISO (2006-01-02) or DD/MM/YY.
//
// The JSON tags are the wire keys of the REST API.
type Bill struct {
	ID       string `json:"ID"`
	Name     string `json:"Nome"`
	DueDate  string `json:"Vencimento"`
	Amount   string `json:"Valor"`
	Status   string `json:"Status"`
	Category string `json:"Categoria"`
	Notes    string `json:"Observacoes"`

	// Row is the 1-based position of this record in the backing store; the
	// header consumes row 1, so the first record is row 2. It is valid only
	// for the lifetime of one read snapshot: deleting any row shifts every
	// following record up by one, and there is no version token to detect a
	// stale value.
	Row int `json:"_row,omitempty"`
}

// NormalizeStatus lowercases a status value, defaulting to pending when empty.
// Invalid values pass through unchanged; coercion is best-effort, not
// validation.
func NormalizeStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StatusPending
	}
	return s
}

// Normalized returns a copy of the bill with its status normalized. DueDate
// is left untouched; parsing happens only at rollover time.
func (b Bill) Normalized() Bill {
	b.Status = NormalizeStatus(b.Status)
	return b
}

// Fields returns the bill's cells in Columns order, applying the write-side
// defaults: absent fields become the empty string, an absent status becomes
// pending.
func (b Bill) Fields() []string {
	return []string{
		b.ID,
		b.Name,
		b.DueDate,
		b.Amount,
		NormalizeStatus(b.Status),
		b.Category,
		b.Notes,
	}
}

// FromCells builds a bill from one sheet row. Header names map positionally
// onto cells, so column order in the sheet does not matter as long as the
// header row names match Columns. Missing trailing cells read as empty.
func FromCells(header, cells []string, row int) Bill {
	byName := make(map[string]string, len(header))
	for i, h := range header {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		byName[strings.TrimSpace(h)] = v
	}
	return Bill{
		ID:       byName["ID"],
		Name:     byName["Nome"],
		DueDate:  byName["Vencimento"],
		Amount:   byName["Valor"],
		Status:   byName["Status"],
		Category: byName["Categoria"],
		Notes:    byName["Observacoes"],
		Row:      row,
	}
}
