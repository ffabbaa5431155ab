package reconciliation

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
	"github.com/ledgerkit/bankrec/internal/reconciliation"
)

type Handler struct {
	svc *reconciliation.Service
}

func NewHandler(svc *reconciliation.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.reconcile)
	r.Post("/generate", h.generate)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.undo)
}

type systemRefDTO struct {
	Source movement.Source `json:"source"`
	ID     uuid.UUID       `json:"id"`
}

type reconcileRequest struct {
	BankAccountID uuid.UUID      `json:"bank_account_id"`
	SystemItems   []systemRefDTO `json:"system_items"`
	EntryIDs      []uuid.UUID    `json:"entry_ids"`
}

type reconciliationResponse struct {
	ID             uuid.UUID `json:"id"`
	BankAccountID  uuid.UUID `json:"bank_account_id"`
	TotalSystem    int64     `json:"total_system"`
	TotalStatement int64     `json:"total_statement"`
	Difference     int64     `json:"difference"`
	CreatedAt      time.Time `json:"created_at"`
}

func toResponse(rec *reconciliation.Reconciliation) reconciliationResponse {
	return reconciliationResponse{
		ID:             rec.ID,
		BankAccountID:  rec.BankAccountID,
		TotalSystem:    rec.TotalSystem,
		TotalStatement: rec.TotalStatement,
		Difference:     rec.Difference,
		CreatedAt:      rec.CreatedAt,
	}
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	refs := make([]movement.Ref, 0, len(req.SystemItems))
	for _, item := range req.SystemItems {
		if !item.Source.Valid() {
			http.Error(w, "unknown movement source: "+string(item.Source), http.StatusBadRequest)
			return
		}

		refs = append(refs, movement.Ref{Source: item.Source, ID: item.ID})
	}

	rec, err := h.svc.Reconcile(r.Context(), reconciliation.ReconcileParams{
		AccountID:  req.BankAccountID,
		SystemRefs: refs,
		EntryIDs:   req.EntryIDs,
		ActorID:    auth.ActorFromContext(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type generateRequest struct {
	BankAccountID          uuid.UUID   `json:"bank_account_id"`
	EntryIDs               []uuid.UUID `json:"entry_ids"`
	CreditClassificationID *uuid.UUID  `json:"credit_classification_id,omitempty"`
	DebitClassificationID  *uuid.UUID  `json:"debit_classification_id,omitempty"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := reconciliation.GenerateParams{
		AccountID: req.BankAccountID,
		EntryIDs:  req.EntryIDs,
		ActorID:   auth.ActorFromContext(r.Context()),
	}
	if req.CreditClassificationID != nil {
		params.CreditClassificationID = uuid.NullUUID{UUID: *req.CreditClassificationID, Valid: true}
	}
	if req.DebitClassificationID != nil {
		params.DebitClassificationID = uuid.NullUUID{UUID: *req.DebitClassificationID, Valid: true}
	}

	rec, err := h.svc.Generate(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(r.URL.Query().Get("account_id"))
	if err != nil {
		http.Error(w, "account_id query parameter is required", http.StatusBadRequest)
		return
	}

	recs, err := h.svc.List(r.Context(), accountID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]reconciliationResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toResponse(rec))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid reconciliation id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) undo(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid reconciliation id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Undo(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type conflictItemDTO struct {
	Source           movement.Source `json:"source,omitempty"`
	ID               uuid.UUID       `json:"id"`
	ReconciliationID uuid.UUID       `json:"reconciliation_id"`
}

type conflictResponse struct {
	Error       string            `json:"error"`
	SystemItems []conflictItemDTO `json:"system_items,omitempty"`
	EntryItems  []conflictItemDTO `json:"entry_items,omitempty"`
}

type mismatchResponse struct {
	Error          string `json:"error"`
	TotalSystem    int64  `json:"total_system"`
	TotalStatement int64  `json:"total_statement"`
	Difference     int64  `json:"difference"`
}

// writeError maps the service error taxonomy onto status codes. The
// structured conflict and mismatch errors carry their detail as JSON so
// callers can show which items blocked the match.
func writeError(w http.ResponseWriter, err error) {
	var (
		conflict *reconciliation.AlreadyReconciledError
		mismatch *reconciliation.SumMismatchError
		unknown  *reconciliation.UnknownItemsError
		missing  *reconciliation.MissingClassificationError
	)

	switch {
	case errors.As(err, &conflict):
		resp := conflictResponse{Error: conflict.Error()}
		for _, c := range conflict.System {
			resp.SystemItems = append(resp.SystemItems, conflictItemDTO{
				Source:           c.Ref.Source,
				ID:               c.Ref.ID,
				ReconciliationID: c.ReconciliationID,
			})
		}
		for _, c := range conflict.Entries {
			resp.EntryItems = append(resp.EntryItems, conflictItemDTO{
				ID:               c.EntryID,
				ReconciliationID: c.ReconciliationID,
			})
		}

		writeJSON(w, http.StatusConflict, resp)
	case errors.As(err, &mismatch):
		writeJSON(w, http.StatusUnprocessableEntity, mismatchResponse{
			Error:          mismatch.Error(),
			TotalSystem:    mismatch.TotalSystem,
			TotalStatement: mismatch.TotalStatement,
			Difference:     mismatch.TotalSystem - mismatch.TotalStatement,
		})
	case errors.As(err, &unknown):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &missing):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, reconciliation.ErrEmptySelection):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, reconciliation.ErrNotFound), errors.Is(err, bankaccount.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
