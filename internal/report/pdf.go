// Package report renders the monthly bill report and manages the on-disk
// archive of generated files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"pagaae/internal/core"
)

const filePrefix = "PagaAe"

// Generator writes monthly PDF reports under <baseDir>/<year>/.
type Generator struct {
	baseDir string
}

// Report locates one generated file.
type Report struct {
	FileName string
	Path     string
}

func NewGenerator(baseDir string) *Generator {
	return &Generator{baseDir: baseDir}
}

// FileName returns the deterministic report name for a month/year pair.
// Repeated renders for the same pair overwrite the same file.
func FileName(month string, year int) string {
	return fmt.Sprintf("%s_%s_%d.pdf", filePrefix, month, year)
}

// Render produces the monthly report: a centered title, a column header and
// one line per bill, with "-" standing in for empty due dates and amounts.
func (g *Generator) Render(bills []core.Bill, month string, year int) (Report, error) {
	dir := filepath.Join(g.baseDir, fmt.Sprintf("%d", year))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Report{}, fmt.Errorf("create report directory: %w", err)
	}

	name := FileName(month, year)
	path := filepath.Join(dir, name)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("Relatório Financeiro — %s/%d", month, year)), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "BU", 12)
	pdf.CellFormat(0, 8, "Nome | Vencimento | Valor | Status | Categoria", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 12)
	for _, b := range bills {
		due := b.DueDate
		if strings.TrimSpace(due) == "" {
			due = "-"
		}
		line := fmt.Sprintf("%s | %s | %s | %s | %s",
			b.Name, due, core.FormatAmountBRL(b.Amount), b.Status, b.Category)
		pdf.CellFormat(0, 7, tr(line), "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return Report{}, fmt.Errorf("write report %s: %w", path, err)
	}
	return Report{FileName: name, Path: path}, nil
}
