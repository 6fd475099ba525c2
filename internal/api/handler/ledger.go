// internal/api/handler/ledger.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"splitledger/internal/api/types"
	"splitledger/internal/domain"
	"splitledger/internal/service"
	"splitledger/internal/util"
)

// LedgerHandler handles HTTP requests for users, expenses and payments.
type LedgerHandler struct {
	service service.LedgerService
	logger  *slog.Logger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(svc service.LedgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		service: svc,
		logger:  logger,
	}
}

func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

func parsePagination(r *http.Request) (limit, offset int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err = strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

// CreateUser handles POST /users.
func (h *LedgerHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.Name == "" {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user, err := h.service.CreateUser(r.Context(), req.Name, req.Initials, req.Color)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, user)
}

// ListUsers handles GET /users.
func (h *LedgerHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, users)
}

// GetUser handles GET /users/{userID}.
func (h *LedgerHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, user)
}

// UpdateUserRequest represents the request body for updating a user.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Color    string `json:"color"`
	Active   bool   `json:"active"`
}

// UpdateUser handles PUT /users/{userID}.
func (h *LedgerHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, req.Name, req.Initials, req.Color, req.Active)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, user)
}

// ExpenseShareRequest is one participant share in an expense request.
type ExpenseShareRequest struct {
	UserID uuid.UUID       `json:"user_id"`
	Share  decimal.Decimal `json:"share"`
}

// CreateExpenseRequest represents the request body for creating an expense.
type CreateExpenseRequest struct {
	Description string                `json:"description"`
	Amount      decimal.Decimal       `json:"amount"`
	PayerID     uuid.UUID             `json:"payer_id"`
	IncurredOn  string                `json:"incurred_on"` // "2006-01-02"
	Shares      []ExpenseShareRequest `json:"shares"`
}

// CreateExpense handles POST /expenses.
func (h *LedgerHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.PayerID == uuid.Nil || len(req.Shares) == 0 {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	incurredOn, err := time.Parse("2006-01-02", req.IncurredOn)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	shares := make([]service.ExpenseShare, len(req.Shares))
	for i, s := range req.Shares {
		shares[i] = service.ExpenseShare{UserID: s.UserID, Share: s.Share}
	}

	expense, err := h.service.CreateExpense(r.Context(), req.Description, req.Amount, req.PayerID, incurredOn, shares)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, expense)
}

// GetExpense handles GET /expenses/{expenseID}.
func (h *LedgerHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseIDParam(r, "expenseID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	expense, err := h.service.GetExpense(r.Context(), expenseID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, expense)
}

// ListExpenses handles GET /expenses.
func (h *LedgerHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	expenses, totalCount, err := h.service.ListExpenses(r.Context(), limit, offset)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.PaginatedResponse[domain.Expense]{
		Data:       expenses,
		Limit:      limit,
		Offset:     offset,
		TotalCount: totalCount,
	})
}

// DeleteExpense handles DELETE /expenses/{expenseID}.
func (h *LedgerHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseIDParam(r, "expenseID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.service.DeleteExpense(r.Context(), expenseID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreatePaymentRequest represents the request body for recording a payment.
type CreatePaymentRequest struct {
	FromUserID  uuid.UUID       `json:"from_user_id"`
	ToUserID    uuid.UUID       `json:"to_user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	PaidAt      *time.Time      `json:"paid_at"`
}

// CreatePayment handles POST /payments.
func (h *LedgerHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.FromUserID == uuid.Nil || req.ToUserID == uuid.Nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	payment, err := h.service.CreatePayment(r.Context(), req.FromUserID, req.ToUserID, req.Amount, req.Description, paidAt)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, payment)
}

// ListPayments handles GET /payments.
func (h *LedgerHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	payments, totalCount, err := h.service.ListPayments(r.Context(), limit, offset)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.PaginatedResponse[domain.Payment]{
		Data:       payments,
		Limit:      limit,
		Offset:     offset,
		TotalCount: totalCount,
	})
}

// DeletePayment handles DELETE /payments/{paymentID}.
func (h *LedgerHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseIDParam(r, "paymentID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.service.DeletePayment(r.Context(), paymentID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
