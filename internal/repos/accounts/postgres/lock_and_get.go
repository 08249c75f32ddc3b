package accounts

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/owplatform/wallet/internal/repos/accounts"
)

// LockAndGet reads an account under FOR UPDATE so concurrent requests for
// the same user serialize on the row for the rest of the transaction.
func (r *accountsRepo) LockAndGet(tx *sql.Tx, userID string) (accounts.Account, error) {
	acc := accounts.Account{UserID: userID}

	err := tx.QueryRow(`
		SELECT balance, bonus, currency, sid
		FROM balances
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&acc.Balance, &acc.Bonus, &acc.Currency, &acc.SID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Account{}, accounts.ErrUnknownUser
		}

		return accounts.Account{}, fmt.Errorf("lock/get account: %w", err)
	}

	return acc, nil
}
