package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"pagaae/internal/core"
)

func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
	bills, err := s.store.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list bills", "error", err)
		writeError(w, http.StatusInternalServerError, "erro ao buscar dados")
		return
	}
	if bills == nil {
		bills = []core.Bill{}
	}
	writeJSON(w, http.StatusOK, bills)
}

func (s *Server) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	var b core.Bill
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	// Records get a stable generated identity when the caller supplies none;
	// the row number stays a positional address, not an identifier.
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	if err := s.store.Append(r.Context(), b); err != nil {
		slog.ErrorContext(r.Context(), "Failed to create bill", "error", err, "name", b.Name)
		writeError(w, http.StatusInternalServerError, "erro ao adicionar")
		return
	}

	billsCreated.Inc()
	slog.InfoContext(r.Context(), "Bill created", "id", b.ID, "name", b.Name)
	writeOK(w)
}

func (s *Server) handleUpdateBill(w http.ResponseWriter, r *http.Request) {
	row, ok := rowParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "linha inválida")
		return
	}
	var b core.Bill
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	if err := s.store.UpdateRow(r.Context(), row, b); err != nil {
		slog.ErrorContext(r.Context(), "Failed to update bill", "error", err, "row", row)
		writeError(w, http.StatusInternalServerError, "erro ao atualizar")
		return
	}
	writeOK(w)
}

func (s *Server) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	row, ok := rowParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "linha inválida")
		return
	}

	if err := s.store.DeleteRow(r.Context(), row); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete bill", "error", err, "row", row)
		writeError(w, http.StatusInternalServerError, "erro ao excluir")
		return
	}
	writeOK(w)
}
