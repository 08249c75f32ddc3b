package wallet

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Action is one of the three ways a bet reference can be touched.
type Action string

const (
	ActionDebit  Action = "debit"
	ActionCredit Action = "credit"
	ActionCancel Action = "cancel"
)

// moneyScale is the fixed precision of balances and bonuses. Every
// mutation rounds half away from zero to this many decimal places.
const moneyScale = 6

// Transaction is one debit/credit/cancel request against a reference id.
type Transaction struct {
	Action   Action
	UserID   string
	SID      string
	RefID    string
	Amount   decimal.Decimal
	Currency string
}

// Payout is a one-time promotional bonus grant.
type Payout struct {
	UserID   string
	SID      string
	PromoID  string
	Amount   decimal.Decimal
	Currency string
}

// Snapshot is the post-operation account state returned on success.
type Snapshot struct {
	Balance decimal.Decimal
	Bonus   decimal.Decimal
}

var (
	// ErrStaleSession is returned when the caller's sid does not match
	// the one stored on the account.
	ErrStaleSession = errors.New("stale session")

	// ErrInsufficientFunds is returned when a debit would drive the
	// balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBetNotFound is returned for a credit/cancel with no prior debit.
	ErrBetNotFound = errors.New("bet does not exist")

	// ErrBetExists is returned for a duplicate debit on the same reference.
	ErrBetExists = errors.New("bet already exists")

	// ErrBetSettled is returned when the reference already carries a
	// terminal credit/cancel outcome, and for promo payout replays.
	ErrBetSettled = errors.New("bet already settled")

	// ErrRefCancelled is returned for a debit against a cancelled
	// reference, which can never be re-debited.
	ErrRefCancelled = errors.New("reference cancelled")
)
