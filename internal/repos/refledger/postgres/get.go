package refledger

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/owplatform/wallet/internal/repos/refledger"
)

func (r *refledgerRepo) Get(tx *sql.Tx, refID string) (refledger.Reference, bool, error) {
	ref := refledger.Reference{RefID: refID}

	err := tx.QueryRow(`
		SELECT debit, credit, cancel, currency, user_id
		FROM transactions
		WHERE ref_id = $1
	`, refID).Scan(&ref.Debit, &ref.Credit, &ref.Cancel, &ref.Currency, &ref.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return refledger.Reference{}, false, nil
		}

		return refledger.Reference{}, false, fmt.Errorf("get reference: %w", err)
	}

	return ref, true, nil
}
