package promos

import (
	"database/sql"
	"fmt"
)

func (r *promosRepo) Exists(tx *sql.Tx, id string) (bool, error) {
	var exists bool

	err := tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM promos WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check promo exists: %w", err)
	}

	return exists, nil
}
