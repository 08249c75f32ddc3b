package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/owplatform/wallet/internal/repos/accounts"
)

// Get reads an account without locking (read-only endpoints).
func (r *accountsRepo) Get(ctx context.Context, userID string) (accounts.Account, error) {
	acc := accounts.Account{UserID: userID}

	err := r.db.QueryRowContext(ctx, `
		SELECT balance, bonus, currency, sid
		FROM balances
		WHERE user_id = $1
	`, userID).Scan(&acc.Balance, &acc.Bonus, &acc.Currency, &acc.SID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Account{}, accounts.ErrUnknownUser
		}

		return accounts.Account{}, fmt.Errorf("get account: %w", err)
	}

	return acc, nil
}
