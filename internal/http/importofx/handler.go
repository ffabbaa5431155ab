package importofx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/auth"
	"github.com/ledgerkit/bankrec/internal/bankaccount"
	"github.com/ledgerkit/bankrec/internal/movement"
	"github.com/ledgerkit/bankrec/internal/ofx"
	"github.com/ledgerkit/bankrec/internal/statement"
)

type Handler struct {
	svc *statement.Service
}

func NewHandler(svc *statement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importOFX)
	r.Get("/entries", h.listEntries)
}

type importResponse struct {
	BatchID        uuid.UUID `json:"batch_id"`
	Accepted       int       `json:"accepted"`
	Skipped        int       `json:"skipped"`
	StatementStart time.Time `json:"statement_start"`
	StatementEnd   time.Time `json:"statement_end"`
	BankID         string    `json:"bank_id,omitempty"`
	AccountNumber  string    `json:"account_number,omitempty"`
}

type emptyImportResponse struct {
	Error    string `json:"error"`
	Accepted int    `json:"accepted"`
	Skipped  int    `json:"skipped"`
}

func (h *Handler) importOFX(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	accountID, err := uuid.Parse(r.FormValue("account_id"))
	if err != nil {
		http.Error(w, "account_id field is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.svc.Import(r.Context(), accountID, auth.ActorFromContext(r.Context()), header.Filename, file)
	if err != nil {
		var empty *statement.EmptyImportError

		switch {
		case errors.Is(err, bankaccount.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ofx.ErrMalformedDocument), errors.Is(err, ofx.ErrNoTransactions):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.As(err, &empty):
			writeJSON(w, http.StatusConflict, emptyImportResponse{
				Error:    empty.Error(),
				Accepted: 0,
				Skipped:  empty.Skipped,
			})
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{
		BatchID:        result.Batch.ID,
		Accepted:       result.Accepted,
		Skipped:        result.Skipped,
		StatementStart: result.Batch.StatementStart,
		StatementEnd:   result.Batch.StatementEnd,
		BankID:         result.Batch.BankID,
		AccountNumber:  result.Batch.AccountNumber,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type entryResponse struct {
	ID          uuid.UUID          `json:"id"`
	PostedAt    time.Time          `json:"posted_at"`
	Amount      int64              `json:"amount"`
	Direction   movement.Direction `json:"direction"`
	FitID       string             `json:"fit_id,omitempty"`
	Type        string             `json:"type,omitempty"`
	Payee       string             `json:"payee,omitempty"`
	Memo        string             `json:"memo,omitempty"`
	CheckNumber string             `json:"check_number,omitempty"`
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(r.URL.Query().Get("account_id"))
	if err != nil {
		http.Error(w, "account_id query parameter is required", http.StatusBadRequest)
		return
	}

	filter := statement.EntryFilter{AccountID: accountID}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	if s := r.URL.Query().Get("reconciled"); s != "" {
		reconciled := s == "true"
		filter.Reconciled = &reconciled
	}

	entries, err := h.svc.ListEntries(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, entryResponse{
			ID:          entry.ID,
			PostedAt:    entry.PostedAt,
			Amount:      entry.Amount,
			Direction:   entry.Direction,
			FitID:       entry.FitID,
			Type:        entry.Type,
			Payee:       entry.Payee,
			Memo:        entry.Memo,
			CheckNumber: entry.CheckNumber,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
