package promos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/owplatform/wallet/internal/repos/promos"
)

func (r *promosRepo) Insert(tx *sql.Tx, p promos.Promo) error {
	_, err := tx.Exec(`
		INSERT INTO promos (id, amount, currency, user_id)
		VALUES ($1, $2, $3, $4)
	`, p.ID, p.Amount, p.Currency, p.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return promos.ErrAlreadyPaid
			}
		}

		return fmt.Errorf("insert promo: %w", err)
	}

	return nil
}
