package accounts

import (
	"database/sql"
	"fmt"

	"github.com/owplatform/wallet/internal/repos/accounts"
)

// Save writes the full account row (upsert, matching the original
// put-item semantics). The processor never creates accounts, but the
// upsert keeps Save usable by provisioning tooling as well.
func (r *accountsRepo) Save(tx *sql.Tx, acc accounts.Account) error {
	_, err := tx.Exec(`
		INSERT INTO balances (user_id, balance, bonus, currency, sid)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET balance  = EXCLUDED.balance,
		    bonus    = EXCLUDED.bonus,
		    currency = EXCLUDED.currency,
		    sid      = EXCLUDED.sid
	`, acc.UserID, acc.Balance, acc.Bonus, acc.Currency, acc.SID)
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}

	return nil
}
