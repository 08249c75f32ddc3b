package promos

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrAlreadyPaid = errors.New("promo already paid")

// Promo is one granted payout. Immutable once written; its existence is
// the replay guard.
type Promo struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
	UserID   string
}

type Promos interface {
	Exists(tx *sql.Tx, id string) (bool, error)
	// Insert writes a new payout record. A duplicate id yields ErrAlreadyPaid.
	Insert(tx *sql.Tx, p Promo) error
}
