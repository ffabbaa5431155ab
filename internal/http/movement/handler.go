package movement

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/auth"
	"github.com/ledgerkit/bankrec/internal/movement"
)

type Handler struct {
	svc *movement.Service
}

func NewHandler(svc *movement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/manual", h.createManual)
}

type movementResponse struct {
	Source      movement.Source    `json:"source"`
	SourceID    uuid.UUID          `json:"source_id"`
	Date        time.Time          `json:"date"`
	Amount      int64              `json:"amount"`
	Direction   movement.Direction `json:"direction"`
	Description string             `json:"description"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
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

	movements, err := h.svc.List(r.Context(), accountID, from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]movementResponse, 0, len(movements))
	for _, mv := range movements {
		resp = append(resp, movementResponse{
			Source:      mv.Source,
			SourceID:    mv.SourceID,
			Date:        mv.Date,
			Amount:      mv.Amount,
			Direction:   mv.Direction,
			Description: mv.Description,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createManualRequest struct {
	BankAccountID     uuid.UUID          `json:"bank_account_id"`
	AccountPlanItemID *uuid.UUID         `json:"account_plan_item_id,omitempty"`
	Date              time.Time          `json:"date"`
	Description       string             `json:"description"`
	Amount            int64              `json:"amount"`
	Direction         movement.Direction `json:"direction"`
}

type manualMovementResponse struct {
	ID          uuid.UUID          `json:"id"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
	Amount      int64              `json:"amount"`
	Direction   movement.Direction `json:"direction"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (h *Handler) createManual(w http.ResponseWriter, r *http.Request) {
	var req createManualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var classificationID uuid.NullUUID
	if req.AccountPlanItemID != nil {
		classificationID = uuid.NullUUID{UUID: *req.AccountPlanItemID, Valid: true}
	}

	mv, err := h.svc.CreateManual(r.Context(), movement.CreateManualParams{
		BankAccountID:     req.BankAccountID,
		AccountPlanItemID: classificationID,
		Date:              req.Date,
		Description:       req.Description,
		Amount:            req.Amount,
		Direction:         req.Direction,
		CreatedBy:         auth.ActorFromContext(r.Context()),
	})
	if err != nil {
		if errors.Is(err, movement.ErrInvalidAmount) || errors.Is(err, movement.ErrInvalidDirection) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(manualMovementResponse{
		ID:          mv.ID,
		Date:        mv.Date,
		Description: mv.Description,
		Amount:      mv.Amount,
		Direction:   mv.Direction,
		CreatedAt:   mv.CreatedAt,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
