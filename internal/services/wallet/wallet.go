package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/owplatform/wallet/internal/infra/pgutils"
	"github.com/owplatform/wallet/internal/repos/accounts"
	pgaccounts "github.com/owplatform/wallet/internal/repos/accounts/postgres"
	"github.com/owplatform/wallet/internal/repos/promos"
	pgpromos "github.com/owplatform/wallet/internal/repos/promos/postgres"
	"github.com/owplatform/wallet/internal/repos/refledger"
	pgrefs "github.com/owplatform/wallet/internal/repos/refledger/postgres"
)

// Service is the wallet state machine over the three stores. Every
// mutating operation runs its whole read-decide-write sequence in a
// single DB transaction with the account row locked first, so the
// ledger entry and the balance commit or roll back together.
type Service struct {
	db       *sql.DB
	accounts accounts.Accounts
	refs     refledger.References
	promos   promos.Promos

	// runTx is overridable in tests; nil means pgutils.WithTx over db.
	runTx func(ctx context.Context, fn func(*sql.Tx) error) error

	// newSID is overridable in tests; nil means a fresh uuid v4.
	newSID func() string
}

func New(db *sql.DB) *Service {
	return &Service{
		db:       db,
		accounts: pgaccounts.New(db),
		refs:     pgrefs.New(db),
		promos:   pgpromos.New(db),
	}
}

func (s *Service) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	if s.runTx != nil {
		return s.runTx(ctx, fn)
	}

	return pgutils.WithTx(ctx, s.db, fn)
}

func (s *Service) generateSID() string {
	if s.newSID != nil {
		return s.newSID()
	}

	return uuid.NewString()
}

// ProcessTransaction applies one debit/credit/cancel action:
//
// 1) Lock the account row; unknown user and stale sid reject first.
// 2) Pre-check funds for debits against the locked balance.
// 3) Consult the reference ledger and enforce the flag rules.
// 4) Write the merged ledger entry and the new balance.
//
// Rejections are sentinel errors; the ledger is never written on a
// rejection, so retries of a refused action see the same state.
func (s *Service) ProcessTransaction(ctx context.Context, txn Transaction) (Snapshot, error) {
	var snap Snapshot

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		acc, err := s.accounts.LockAndGet(tx, txn.UserID)
		if err != nil {
			return fmt.Errorf("lock account: %w", err)
		}

		if acc.SID != txn.SID {
			return ErrStaleSession
		}

		if txn.Action == ActionDebit && acc.Balance.Sub(txn.Amount).IsNegative() {
			return ErrInsufficientFunds
		}

		ref, found, err := s.refs.Get(tx, txn.RefID)
		if err != nil {
			return fmt.Errorf("get reference: %w", err)
		}

		if found {
			switch {
			case ref.Cancel && txn.Action == ActionDebit:
				return ErrRefCancelled
			case ref.Debit && txn.Action == ActionDebit:
				return ErrBetExists
			case ref.Cancel || ref.Credit:
				return ErrBetSettled
			}
		} else {
			if txn.Action != ActionDebit {
				return ErrBetNotFound
			}

			ref = refledger.Reference{
				RefID:    txn.RefID,
				Currency: txn.Currency,
				UserID:   txn.UserID,
			}
		}

		switch txn.Action {
		case ActionDebit:
			ref.Debit = true
		case ActionCredit:
			ref.Credit = true
		case ActionCancel:
			ref.Cancel = true
		default:
			return fmt.Errorf("invalid action: %s", txn.Action)
		}

		err = s.refs.Put(tx, ref)
		if err != nil {
			return fmt.Errorf("put reference: %w", err)
		}

		delta := txn.Amount
		if txn.Action == ActionDebit {
			delta = delta.Neg()
		}

		acc.Balance = acc.Balance.Add(delta).Round(moneyScale)

		err = s.accounts.Save(tx, acc)
		if err != nil {
			return fmt.Errorf("save account: %w", err)
		}

		snap = Snapshot{Balance: acc.Balance, Bonus: acc.Bonus}

		return nil
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("process transaction: %w", err)
	}

	return snap, nil
}

// PromoPayout grants a one-time bonus. The promo id is the replay guard:
// a second payout with the same id is refused and the bonus is applied
// exactly once.
func (s *Service) PromoPayout(ctx context.Context, p Payout) (Snapshot, error) {
	var snap Snapshot

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		acc, err := s.accounts.LockAndGet(tx, p.UserID)
		if err != nil {
			return fmt.Errorf("lock account: %w", err)
		}

		if acc.SID != p.SID {
			return ErrStaleSession
		}

		paid, err := s.promos.Exists(tx, p.PromoID)
		if err != nil {
			return fmt.Errorf("check promo: %w", err)
		}

		if paid {
			return ErrBetSettled
		}

		err = s.promos.Insert(tx, promos.Promo{
			ID:       p.PromoID,
			Amount:   p.Amount,
			Currency: p.Currency,
			UserID:   p.UserID,
		})
		if err != nil {
			// Concurrent grant lost the insert race; same outcome as
			// the existence check.
			if errors.Is(err, promos.ErrAlreadyPaid) {
				return ErrBetSettled
			}

			return fmt.Errorf("insert promo: %w", err)
		}

		acc.Bonus = acc.Bonus.Add(p.Amount).Round(moneyScale)

		err = s.accounts.Save(tx, acc)
		if err != nil {
			return fmt.Errorf("save account: %w", err)
		}

		snap = Snapshot{Balance: acc.Balance, Bonus: acc.Bonus}

		return nil
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("promo payout: %w", err)
	}

	return snap, nil
}

// Balance returns the account state without locks (read-only endpoint).
func (s *Service) Balance(ctx context.Context, userID, sid string) (Snapshot, error) {
	acc, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get account: %w", err)
	}

	if acc.SID != sid {
		return Snapshot{}, ErrStaleSession
	}

	return Snapshot{Balance: acc.Balance, Bonus: acc.Bonus}, nil
}

// RefreshSession rotates the account's sid and returns the new one.
// The caller only has to name a known user; the previous sid is not
// required on this path.
func (s *Service) RefreshSession(ctx context.Context, userID string) (string, error) {
	sid := s.generateSID()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := s.accounts.LockAndGet(tx, userID)
		if err != nil {
			return fmt.Errorf("lock account: %w", err)
		}

		err = s.accounts.UpdateSID(tx, userID, sid)
		if err != nil {
			return fmt.Errorf("update sid: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("refresh session: %w", err)
	}

	return sid, nil
}
