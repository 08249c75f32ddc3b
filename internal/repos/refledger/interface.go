package refledger

import "database/sql"

// Reference records which of debit/credit/cancel have been applied for one
// external reference id. Flags are monotonic: once set they are never
// cleared, and credit/cancel are mutually exclusive (enforced by a CHECK
// constraint as well).
type Reference struct {
	RefID    string
	Debit    bool
	Credit   bool
	Cancel   bool
	Currency string
	UserID   string
}

type References interface {
	// Get returns the entry for refID and whether one exists.
	Get(tx *sql.Tx, refID string) (Reference, bool, error)
	// Put creates or overwrites the entry with merged flags.
	Put(tx *sql.Tx, ref Reference) error
}
