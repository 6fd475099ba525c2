// internal/service/ledger_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
	"splitledger/pkg/db"
)

// ExpenseShare is one participant's share of a new expense.
type ExpenseShare struct {
	UserID uuid.UUID
	Share  decimal.Decimal
}

// LedgerService defines the interface for the ledger's write and read
// operations: users, expenses with participant shares, and payments.
type LedgerService interface {
	CreateUser(ctx context.Context, name, initials, color string) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, name, initials, color string, active bool) (*domain.User, error)

	CreateExpense(ctx context.Context, description string, amount decimal.Decimal, payerID uuid.UUID, incurredOn time.Time, shares []ExpenseShare) (*domain.Expense, error)
	GetExpense(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, int64, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	CreatePayment(ctx context.Context, fromUserID, toUserID uuid.UUID, amount decimal.Decimal, description *string, paidAt time.Time) (*domain.Payment, error)
	ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, int64, error)
	DeletePayment(ctx context.Context, id uuid.UUID) error
}

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	dbBeginner  db.DBTxBeginner       // For starting transactions (e.g. *sqlx.DB)
	dbExecutor  repository.DBExecutor // For non-transactional reads (e.g. *sqlx.DB)
	userRepo    repository.UserRepository
	expenseRepo repository.ExpenseRepository
	paymentRepo repository.PaymentRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	expenseRepo repository.ExpenseRepository,
	paymentRepo repository.PaymentRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) LedgerService {
	return &ledgerService{
		dbBeginner:  dbBeginner,
		dbExecutor:  dbExecutor,
		userRepo:    userRepo,
		expenseRepo: expenseRepo,
		paymentRepo: paymentRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
	}
}

// CreateUser registers a new ledger member.
func (s *ledgerService) CreateUser(ctx context.Context, name, initials, color string) (*domain.User, error) {
	if name == "" {
		return nil, util.ErrInvalidInput
	}

	user := domain.NewUser(name, initials, color)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *ledgerService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

func (s *ledgerService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser replaces a user's display fields and active flag.
func (s *ledgerService) UpdateUser(ctx context.Context, id uuid.UUID, name, initials, color string, active bool) (*domain.User, error) {
	if name == "" {
		return nil, util.ErrInvalidInput
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Initials = initials
	user.Color = color
	user.Active = active
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, s.dbExecutor, user); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return user, nil
}

// CreateExpense records an expense and its participant shares in one
// transaction. Shares must sum to the expense amount; the settlement engine
// assumes this invariant and does not re-check it.
func (s *ledgerService) CreateExpense(ctx context.Context, description string, amount decimal.Decimal, payerID uuid.UUID, incurredOn time.Time, shares []ExpenseShare) (*domain.Expense, error) {
	if amount.IsNegative() || amount.IsZero() {
		return nil, util.ErrInvalidAmount
	}
	if len(shares) == 0 {
		return nil, util.ErrInvalidInput
	}

	shareSum := decimal.Zero
	for _, share := range shares {
		if share.Share.IsNegative() {
			return nil, util.ErrInvalidAmount
		}
		shareSum = shareSum.Add(share.Share)
	}
	if !shareSum.Equal(amount) {
		return nil, util.ErrShareSumMismatch
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create expense: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create expense: transaction controller does not implement DBExecutor")
	}

	if _, err := s.userRepo.GetUserByID(ctx, txExecutor, payerID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("create expense: failed to verify payer %s: %w", payerID, err)
	}

	expense := domain.NewExpense(description, amount, payerID, incurredOn)
	if err := s.expenseRepo.CreateExpense(ctx, txExecutor, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	participants := make([]domain.ExpenseParticipant, len(shares))
	for i, share := range shares {
		participants[i] = domain.ExpenseParticipant{
			ExpenseID: expense.ID,
			UserID:    share.UserID,
			Share:     share.Share,
		}
	}
	if err := s.expenseRepo.AddParticipants(ctx, txExecutor, participants); err != nil {
		return nil, fmt.Errorf("create expense: failed to add participants: %w", err)
	}
	expense.Participants = participants

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create expense: failed to commit transaction: %w", err)
	}

	return expense, nil
}

func (s *ledgerService) GetExpense(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("get expense %s: %w", id, err)
	}
	return expense, nil
}

func (s *ledgerService) ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, int64, error) {
	expenses, totalCount, err := s.expenseRepo.ListExpenses(ctx, s.dbExecutor, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, totalCount, nil
}

func (s *ledgerService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if err := s.expenseRepo.DeleteExpense(ctx, s.dbExecutor, id); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	return nil
}

// CreatePayment records a settlement payment from a debtor to a creditor.
func (s *ledgerService) CreatePayment(ctx context.Context, fromUserID, toUserID uuid.UUID, amount decimal.Decimal, description *string, paidAt time.Time) (*domain.Payment, error) {
	if amount.IsNegative() || amount.IsZero() {
		return nil, util.ErrInvalidAmount
	}
	if fromUserID == toUserID {
		return nil, util.ErrSelfPayment
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create payment: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create payment: transaction controller does not implement DBExecutor")
	}

	for _, id := range []uuid.UUID{fromUserID, toUserID} {
		if _, err := s.userRepo.GetUserByID(ctx, txExecutor, id); err != nil {
			if util.IsError(err, util.ErrNotFound) {
				return nil, util.ErrUserNotFound
			}
			return nil, fmt.Errorf("create payment: failed to verify user %s: %w", id, err)
		}
	}

	payment := domain.NewPayment(fromUserID, toUserID, amount, description, paidAt)
	if err := s.paymentRepo.CreatePayment(ctx, txExecutor, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create payment: failed to commit transaction: %w", err)
	}

	return payment, nil
}

func (s *ledgerService) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, int64, error) {
	payments, totalCount, err := s.paymentRepo.ListPayments(ctx, s.dbExecutor, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	return payments, totalCount, nil
}

func (s *ledgerService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	if err := s.paymentRepo.DeletePayment(ctx, s.dbExecutor, id); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("delete payment %s: %w", id, err)
	}
	return nil
}
