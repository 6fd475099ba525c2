// internal/service/balance_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/settle"
)

// BalanceService derives balances and settlement suggestions from the
// ledger. Every call reads a fresh snapshot of the store's sums and feeds it
// to the pure settle package; nothing is cached between calls.
type BalanceService interface {
	// MemberBalances returns every user's signed net position, in the
	// store's enumeration order.
	MemberBalances(ctx context.Context) ([]domain.MemberBalance, error)
	// SettlementPlan returns the minimal transfer set that settles all
	// balances, plus any residual magnitude the ledger could not match.
	SettlementPlan(ctx context.Context) (*domain.SettlementPlan, error)
	// PairwiseSettlements returns per-debtor allocations in enumeration
	// order, without global netting.
	PairwiseSettlements(ctx context.Context) ([]domain.SettlementSuggestion, error)
}

// balanceService implements the BalanceService interface.
type balanceService struct {
	dbExecutor  repository.DBExecutor // Read-only snapshot queries, no transaction needed
	userRepo    repository.UserRepository
	expenseRepo repository.ExpenseRepository
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// NewBalanceService creates a new instance of BalanceService.
func NewBalanceService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	expenseRepo repository.ExpenseRepository,
	paymentRepo repository.PaymentRepository,
	logger *slog.Logger,
) BalanceService {
	return &balanceService{
		dbExecutor:  dbExecutor,
		userRepo:    userRepo,
		expenseRepo: expenseRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// ledgerSnapshot is one consistent read of the sums the settle package needs.
type ledgerSnapshot struct {
	userIDs []uuid.UUID
	names   map[uuid.UUID]string
	sums    map[uuid.UUID]settle.Sums
}

// loadSnapshot fetches all users in enumeration order and the four ledger
// sums for each of them.
func (s *balanceService) loadSnapshot(ctx context.Context) (*ledgerSnapshot, error) {
	users, err := s.userRepo.ListUsers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("load ledger snapshot: %w", err)
	}

	snapshot := &ledgerSnapshot{
		userIDs: make([]uuid.UUID, 0, len(users)),
		names:   make(map[uuid.UUID]string, len(users)),
		sums:    make(map[uuid.UUID]settle.Sums, len(users)),
	}

	for _, user := range users {
		paid, err := s.expenseRepo.SumAmountsPaidBy(ctx, s.dbExecutor, user.ID)
		if err != nil {
			return nil, fmt.Errorf("load ledger snapshot: %w", err)
		}
		owed, err := s.expenseRepo.SumSharesOwedBy(ctx, s.dbExecutor, user.ID)
		if err != nil {
			return nil, fmt.Errorf("load ledger snapshot: %w", err)
		}
		sent, err := s.paymentRepo.SumAmountsSentBy(ctx, s.dbExecutor, user.ID)
		if err != nil {
			return nil, fmt.Errorf("load ledger snapshot: %w", err)
		}
		received, err := s.paymentRepo.SumAmountsReceivedBy(ctx, s.dbExecutor, user.ID)
		if err != nil {
			return nil, fmt.Errorf("load ledger snapshot: %w", err)
		}

		snapshot.userIDs = append(snapshot.userIDs, user.ID)
		snapshot.names[user.ID] = user.Name
		snapshot.sums[user.ID] = settle.Sums{
			Paid:             paid,
			Owed:             owed,
			PaymentsSent:     sent,
			PaymentsReceived: received,
		}
	}

	return snapshot, nil
}

// MemberBalances computes each user's net position from a fresh snapshot.
func (s *balanceService) MemberBalances(ctx context.Context) ([]domain.MemberBalance, error) {
	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := settle.ComputeBalances(snapshot.userIDs, snapshot.sums)
	if err != nil {
		return nil, fmt.Errorf("compute balances: %w", err)
	}

	memberBalances := make([]domain.MemberBalance, len(balances))
	for i, b := range balances {
		memberBalances[i] = domain.MemberBalance{
			UserID: b.UserID,
			Name:   snapshot.names[b.UserID],
			Net:    b.Net.Round(2),
		}
	}
	return memberBalances, nil
}

// SettlementPlan computes the minimal settlement transfer set. A residual
// above one cent means the stored sums are inconsistent; it is logged and
// returned alongside the partial plan rather than treated as a failure.
func (s *balanceService) SettlementPlan(ctx context.Context) (*domain.SettlementPlan, error) {
	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := settle.ComputeBalances(snapshot.userIDs, snapshot.sums)
	if err != nil {
		return nil, fmt.Errorf("compute balances: %w", err)
	}

	result := settle.SimplifyDebts(balances)
	if result.Residual.GreaterThan(settle.Epsilon) {
		s.logger.Warn("settlement residual exceeds epsilon, ledger sums are inconsistent",
			"residual", result.Residual.Round(2).String(),
		)
	}

	return &domain.SettlementPlan{
		Suggestions: s.decorate(result.Suggestions, snapshot.names),
		Residual:    result.Residual.Round(2),
	}, nil
}

// PairwiseSettlements computes the insertion-order debtor/creditor view.
func (s *balanceService) PairwiseSettlements(ctx context.Context) ([]domain.SettlementSuggestion, error) {
	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	suggestions, err := settle.ResolvePairwiseDebts(snapshot.userIDs, snapshot.sums)
	if err != nil {
		return nil, fmt.Errorf("resolve pairwise debts: %w", err)
	}

	return s.decorate(suggestions, snapshot.names), nil
}

// decorate attaches display names to raw engine suggestions.
func (s *balanceService) decorate(suggestions []settle.Suggestion, names map[uuid.UUID]string) []domain.SettlementSuggestion {
	decorated := make([]domain.SettlementSuggestion, len(suggestions))
	for i, suggestion := range suggestions {
		decorated[i] = domain.SettlementSuggestion{
			DebtorID:     suggestion.DebtorID,
			DebtorName:   names[suggestion.DebtorID],
			CreditorID:   suggestion.CreditorID,
			CreditorName: names[suggestion.CreditorID],
			Amount:       suggestion.Amount,
		}
	}
	return decorated
}
