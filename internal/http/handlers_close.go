package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type closeMonthRequest struct {
	Month string `json:"mes"`
	Year  int    `json:"ano"`
}

// handleCloseMonth renders the monthly report, then advances every bill into
// the next month and streams the PDF back. The report is written before any
// row is touched so the document reflects the month being closed.
func (s *Server) handleCloseMonth(w http.ResponseWriter, r *http.Request) {
	var req closeMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if strings.TrimSpace(req.Month) == "" || req.Year == 0 {
		writeError(w, http.StatusBadRequest, "mes e ano são obrigatórios")
		return
	}

	bills, err := s.store.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list bills for month close", "error", err)
		writeError(w, http.StatusInternalServerError, "erro ao buscar dados")
		return
	}
	if len(bills) == 0 {
		writeError(w, http.StatusBadRequest, "nenhuma conta para fechar")
		return
	}

	rep, err := s.reports.Render(bills, req.Month, req.Year)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to render report", "error", err,
			"month", req.Month, "year", req.Year)
		writeError(w, http.StatusInternalServerError, "erro ao gerar relatório")
		return
	}

	if err := s.rollover.CloseMonth(r.Context(), bills); err != nil {
		// Earlier row writes are already committed; see the rollover's
		// contract. The report file also stays on disk.
		slog.ErrorContext(r.Context(), "Month rollover failed", "error", err,
			"month", req.Month, "year", req.Year)
		rolloverRuns.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "erro ao fechar mês")
		return
	}

	rolloverRuns.WithLabelValues("ok").Inc()
	rolloverRows.Add(float64(len(bills)))
	slog.InfoContext(r.Context(), "Month closed",
		"month", req.Month, "year", req.Year, "bills", len(bills), "report", rep.FileName)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rep.FileName+`"`)
	http.ServeFile(w, r, rep.Path)
}

func (s *Server) handleListYears(w http.ResponseWriter, r *http.Request) {
	years, err := s.reports.Years()
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list archive years", "error", err)
		writeError(w, http.StatusInternalServerError, "erro ao listar histórico")
		return
	}
	writeJSON(w, http.StatusOK, years)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	year := mux.Vars(r)["year"]
	files, err := s.reports.Reports(year)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list reports", "error", err, "year", year)
		writeError(w, http.StatusInternalServerError, "erro ao listar histórico")
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	path, ok, err := s.reports.FilePath(vars["year"], vars["file"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "arquivo inválido")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "arquivo não encontrado")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+vars["file"]+`"`)
	http.ServeFile(w, r, path)
}
