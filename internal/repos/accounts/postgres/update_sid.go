package accounts

import (
	"database/sql"
	"fmt"

	"github.com/owplatform/wallet/internal/repos/accounts"
)

func (r *accountsRepo) UpdateSID(tx *sql.Tx, userID, sid string) error {
	res, err := tx.Exec(`
		UPDATE balances
		SET sid = $2
		WHERE user_id = $1
	`, userID, sid)
	if err != nil {
		return fmt.Errorf("update sid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return accounts.ErrUnknownUser
	}

	return nil
}
