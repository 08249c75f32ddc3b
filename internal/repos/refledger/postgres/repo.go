package refledger

import (
	"database/sql"

	"github.com/owplatform/wallet/internal/repos/refledger"
)

var _ refledger.References = (*refledgerRepo)(nil)

type refledgerRepo struct{ db *sql.DB }

func New(db *sql.DB) *refledgerRepo {
	return &refledgerRepo{db: db}
}
