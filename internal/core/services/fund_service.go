package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stay_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stay_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/stay_ledger_app/internal/core/reconciliation"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
	"github.com/SscSPs/stay_ledger_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultFundPageSize = 20

type fundService struct {
	BaseService
	fundRepo portsrepo.FundRepositoryFacade
	rateRepo portsrepo.CurrencyRateReader
	opts     reconciliation.Options
}

// FundServiceOption is a functional option for configuring the fund service
type FundServiceOption func(*fundService)

// WithFundClock overrides the clock used for transaction dates and audit fields.
func WithFundClock(now func() time.Time) FundServiceOption {
	return func(s *fundService) {
		s.now = now
	}
}

// NewFundService creates a new development fund service
func NewFundService(fundRepo portsrepo.FundRepositoryFacade, rateRepo portsrepo.CurrencyRateReader, opts reconciliation.Options, options ...FundServiceOption) portssvc.FundSvcFacade {
	svc := &fundService{fundRepo: fundRepo, rateRepo: rateRepo, opts: opts}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.FundSvcFacade = (*fundService)(nil)

func (s *fundService) Balance(ctx context.Context) (*domain.FundBalance, error) {
	txs, err := s.fundRepo.ListAllFundTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load fund ledger")
		return nil, fmt.Errorf("failed to load fund ledger: %w", err)
	}
	balance := reconciliation.FundBalance(txs)
	return &balance, nil
}

func (s *fundService) ListTransactions(ctx context.Context, params dto.ListFundTransactionsParams) ([]domain.FundTransaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultFundPageSize
	}
	txs, nextToken, err := s.fundRepo.ListFundTransactions(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fund transactions", slog.Int("limit", limit))
		return nil, nil, err
	}
	if txs == nil {
		txs = []domain.FundTransaction{}
	}
	return txs, nextToken, nil
}

func (s *fundService) Deposit(ctx context.Context, req dto.FundMovementRequest, userID string) (*domain.FundTransaction, error) {
	tx, err := s.newMovement(ctx, domain.FundDeposit, req, userID)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, tx); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Fund deposit recorded", slog.String("transaction_id", tx.TransactionID), slog.String("amount_usd", tx.Amount.String()))
	return tx, nil
}

// Withdraw records a withdrawal even when it overdraws the fund; the caller gets a warning instead.
func (s *fundService) Withdraw(ctx context.Context, req dto.FundMovementRequest, userID string) (*domain.FundTransaction, string, error) {
	tx, err := s.newMovement(ctx, domain.FundWithdrawal, req, userID)
	if err != nil {
		return nil, "", err
	}
	warning, err := s.withdraw(ctx, tx)
	if err != nil {
		return nil, "", err
	}
	return tx, warning, nil
}

func (s *fundService) RecordInventoryPurchase(ctx context.Context, req dto.InventoryPurchaseRequest, userID string) (*domain.FundTransaction, string, error) {
	now := s.Now()
	currency := strings.ToUpper(req.Currency)
	amountEGP, err := s.egpMirror(ctx, req.Amount, req.AmountEGP)
	if err != nil {
		return nil, "", err
	}

	tx := reconciliation.InventoryPurchase(req.InventoryItemID, req.ItemName, req.Amount, amountEGP, currency, now)
	tx.TransactionID = uuid.NewString()
	tx.Stamp(userID, now)

	warning, err := s.withdraw(ctx, &tx)
	if err != nil {
		return nil, "", err
	}
	return &tx, warning, nil
}

func (s *fundService) withdraw(ctx context.Context, tx *domain.FundTransaction) (string, error) {
	balance, err := s.Balance(ctx)
	if err != nil {
		return "", err
	}
	after, warning := reconciliation.CheckWithdrawal(*balance, tx.Amount)
	if err := s.save(ctx, tx); err != nil {
		return "", err
	}
	if warning != "" {
		s.LogWarn(ctx, "Development fund overdrawn",
			slog.String("transaction_id", tx.TransactionID),
			slog.String("balance_usd", after.String()))
	}
	s.LogInfo(ctx, "Fund withdrawal recorded", slog.String("transaction_id", tx.TransactionID), slog.String("amount_usd", tx.Amount.String()))
	return warning, nil
}

func (s *fundService) newMovement(ctx context.Context, kind domain.FundTransactionType, req dto.FundMovementRequest, userID string) (*domain.FundTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	amountEGP, err := s.egpMirror(ctx, req.Amount, req.AmountEGP)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	date := now
	if req.TransactionDate != nil {
		date = *req.TransactionDate
	}
	tx := &domain.FundTransaction{
		TransactionID:   uuid.NewString(),
		Type:            kind,
		Amount:          req.Amount,
		AmountEGP:       amountEGP,
		Currency:        strings.ToUpper(req.Currency),
		Description:     strings.TrimSpace(req.Description),
		TransactionDate: date,
	}
	tx.Stamp(userID, now)
	return tx, nil
}

// egpMirror returns the given EGP amount, or the USD amount converted at live rates when none was given.
func (s *fundService) egpMirror(ctx context.Context, amountUSD, amountEGP decimal.Decimal) (decimal.Decimal, error) {
	if amountEGP.IsPositive() {
		return amountEGP, nil
	}
	rates, err := s.rateRepo.ListCurrencyRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load live currency rates")
		return decimal.Zero, fmt.Errorf("failed to load currency rates: %w", err)
	}
	opts := s.opts
	opts.Logger = s.GetLogger(ctx)
	ledger := reconciliation.NewEngine(opts).Ledger(rates)
	return utils.RoundMoney(ledger.LiveConvert(amountUSD, domain.USD, domain.EGP)), nil
}

func (s *fundService) save(ctx context.Context, tx *domain.FundTransaction) error {
	if err := s.fundRepo.SaveFundTransaction(ctx, *tx); err != nil {
		s.LogError(ctx, err, "Failed to save fund transaction", slog.String("type", string(tx.Type)))
		return fmt.Errorf("failed to save fund transaction: %w", err)
	}
	return nil
}
