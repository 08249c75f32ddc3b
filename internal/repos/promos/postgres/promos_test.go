package promos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/owplatform/wallet/internal/infra/pgtestutil"
	"github.com/owplatform/wallet/internal/repos/promos"
)

func TestPromos_InsertAndExists(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := repo.Exists(tx, "promo-1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("unseen promo reported as paid")
	}

	p := promos.Promo{
		ID:       "promo-1",
		Amount:   decimal.RequireFromString("7.5"),
		Currency: "EUR",
		UserID:   "u1",
	}

	err = repo.Insert(tx, p)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	exists, err = repo.Exists(tx, "promo-1")
	if err != nil {
		t.Fatalf("exists after insert: %v", err)
	}
	if !exists {
		t.Fatal("inserted promo not reported as paid")
	}
}

func TestPromos_DuplicateInsert(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	_, err := db.Exec(`
		INSERT INTO promos (id, amount, currency, user_id)
		VALUES ('promo-dup', 1, 'EUR', 'u1')
	`)
	if err != nil {
		t.Fatalf("seed promo: %v", err)
	}

	repo := New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = repo.Insert(tx, promos.Promo{
		ID:       "promo-dup",
		Amount:   decimal.RequireFromString("1"),
		Currency: "EUR",
		UserID:   "u1",
	})
	if !errors.Is(err, promos.ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
}
