package balance

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/balance"
	"github.com/ledgerkit/bankrec/internal/bankaccount"
	"github.com/ledgerkit/bankrec/internal/movement"
)

type Handler struct {
	svc *balance.Service
}

func NewHandler(svc *balance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.statement)
}

type lineResponse struct {
	Source      movement.Source    `json:"source"`
	SourceID    uuid.UUID          `json:"source_id"`
	Date        time.Time          `json:"date"`
	Amount      int64              `json:"amount"`
	Direction   movement.Direction `json:"direction"`
	Description string             `json:"description"`
	Balance     int64              `json:"balance"`
}

type statementResponse struct {
	Opening int64          `json:"opening"`
	Closing int64          `json:"closing"`
	Lines   []lineResponse `json:"lines"`
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(r.URL.Query().Get("account_id"))
	if err != nil {
		http.Error(w, "account_id query parameter is required", http.StatusBadRequest)
		return
	}

	from, err := time.Parse(time.DateOnly, r.URL.Query().Get("start_date"))
	if err != nil {
		http.Error(w, "start_date query parameter is required", http.StatusBadRequest)
		return
	}

	to, err := time.Parse(time.DateOnly, r.URL.Query().Get("end_date"))
	if err != nil {
		http.Error(w, "end_date query parameter is required", http.StatusBadRequest)
		return
	}

	projection, err := h.svc.Statement(r.Context(), accountID, from, to)
	if err != nil {
		if errors.Is(err, bankaccount.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := statementResponse{
		Opening: projection.Opening,
		Closing: projection.Closing,
		Lines:   make([]lineResponse, 0, len(projection.Lines)),
	}
	for _, line := range projection.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			Source:      line.Movement.Source,
			SourceID:    line.Movement.SourceID,
			Date:        line.Movement.Date,
			Amount:      line.Movement.Amount,
			Direction:   line.Movement.Direction,
			Description: line.Movement.Description,
			Balance:     line.Balance,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
