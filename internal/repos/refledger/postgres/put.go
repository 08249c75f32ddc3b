package refledger

import (
	"database/sql"
	"fmt"

	"github.com/owplatform/wallet/internal/repos/refledger"
)

func (r *refledgerRepo) Put(tx *sql.Tx, ref refledger.Reference) error {
	_, err := tx.Exec(`
		INSERT INTO transactions (ref_id, debit, credit, cancel, currency, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (ref_id) DO UPDATE
		SET debit  = EXCLUDED.debit,
		    credit = EXCLUDED.credit,
		    cancel = EXCLUDED.cancel
	`, ref.RefID, ref.Debit, ref.Credit, ref.Cancel, ref.Currency, ref.UserID)
	if err != nil {
		return fmt.Errorf("put reference: %w", err)
	}

	return nil
}
