package promos

import (
	"database/sql"

	"github.com/owplatform/wallet/internal/repos/promos"
)

var _ promos.Promos = (*promosRepo)(nil)

type promosRepo struct{ db *sql.DB }

func New(db *sql.DB) *promosRepo {
	return &promosRepo{db: db}
}
