package bankaccount

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/bankaccount"
)

type Handler struct {
	svc *bankaccount.Service
}

func NewHandler(svc *bankaccount.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type createAccountRequest struct {
	BankName       string `json:"bank_name"`
	Agency         string `json:"agency"`
	AccountNumber  string `json:"account_number"`
	InitialBalance int64  `json:"initial_balance"`
}

type accountResponse struct {
	ID             uuid.UUID `json:"id"`
	BankName       string    `json:"bank_name"`
	Agency         string    `json:"agency"`
	AccountNumber  string    `json:"account_number"`
	InitialBalance int64     `json:"initial_balance"`
	CreatedAt      time.Time `json:"created_at"`
}

func toResponse(account *bankaccount.Account) accountResponse {
	return accountResponse{
		ID:             account.ID,
		BankName:       account.BankName,
		Agency:         account.Agency,
		AccountNumber:  account.AccountNumber,
		InitialBalance: account.InitialBalance,
		CreatedAt:      account.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.BankName == "" {
		http.Error(w, "bank_name is required", http.StatusBadRequest)
		return
	}

	account, err := h.svc.Create(r.Context(), bankaccount.CreateParams{
		BankName:       req.BankName,
		Agency:         req.Agency,
		AccountNumber:  req.AccountNumber,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(account)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		resp = append(resp, toResponse(account))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}

	account, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, bankaccount.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(account)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
