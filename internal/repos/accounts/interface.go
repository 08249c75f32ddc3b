package accounts

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrUnknownUser = errors.New("unknown user")

// Account is one row of the balances table. Balance and Bonus carry
// 6-decimal precision; SID is the rotating session token.
type Account struct {
	UserID   string
	Balance  decimal.Decimal
	Bonus    decimal.Decimal
	Currency string
	SID      string
}

type Accounts interface {
	Get(ctx context.Context, userID string) (Account, error)
	LockAndGet(tx *sql.Tx, userID string) (Account, error)
	Save(tx *sql.Tx, acc Account) error
	UpdateSID(tx *sql.Tx, userID, sid string) error
}
