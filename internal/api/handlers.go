package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/owplatform/wallet/internal/infra/pgutils"
	"github.com/owplatform/wallet/internal/repos/accounts"
	"github.com/owplatform/wallet/internal/services/wallet"
)

// WalletService is what the handlers need from the wallet core.
type WalletService interface {
	ProcessTransaction(ctx context.Context, txn wallet.Transaction) (wallet.Snapshot, error)
	PromoPayout(ctx context.Context, p wallet.Payout) (wallet.Snapshot, error)
	Balance(ctx context.Context, userID, sid string) (wallet.Snapshot, error)
	RefreshSession(ctx context.Context, userID string) (string, error)
}

// HandlerProvider wraps a WalletService and exposes HTTP handlers.
type HandlerProvider struct {
	svc WalletService
}

// NewHandler returns a new Handler provider.
func NewHandler(svc WalletService) *HandlerProvider {
	return &HandlerProvider{svc: svc}
}

// --- Helpers ---

// maxAmountScale is the finest granularity accepted on the wire; balances
// are kept at the same precision.
const maxAmountScale = 6

func decodeEnvelope(w http.ResponseWriter, r *http.Request) (requestEnvelope, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	var env requestEnvelope

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(&env)
	if err != nil {
		// Never reached parsing: uuid is null.
		writeStatus(w, http.StatusOK, statusInvalidParameter, nil)
		return requestEnvelope{}, false
	}

	return env, true
}

func echoUUID(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func validAmount(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}

	return amount.Exponent() >= -maxAmountScale
}

func okEnvelope(uuid *string, snap wallet.Snapshot) responseEnvelope {
	return responseEnvelope{
		Status:  statusOK,
		UUID:    uuid,
		Balance: &snap.Balance,
		Bonus:   &snap.Bonus,
	}
}

// writeServiceError maps a service error onto the envelope: business
// rejections go out with HTTP 200 and their status code, infrastructure
// failures with HTTP 500 and TEMPORARY_ERROR or UNKNOWN_ERROR.
func writeServiceError(w http.ResponseWriter, uuid *string, err error) {
	switch {
	case errors.Is(err, accounts.ErrUnknownUser):
		writeStatus(w, http.StatusOK, statusInvalidParameter, uuid)
	case errors.Is(err, wallet.ErrStaleSession):
		writeStatus(w, http.StatusOK, statusInvalidSID, uuid)
	case errors.Is(err, wallet.ErrInsufficientFunds):
		writeStatus(w, http.StatusOK, statusInsufficientFunds, uuid)
	case errors.Is(err, wallet.ErrRefCancelled):
		writeStatus(w, http.StatusOK, statusFinalError, uuid)
	case errors.Is(err, wallet.ErrBetExists):
		writeStatus(w, http.StatusOK, statusBetAlreadyExist, uuid)
	case errors.Is(err, wallet.ErrBetSettled):
		writeStatus(w, http.StatusOK, statusBetAlreadySettled, uuid)
	case errors.Is(err, wallet.ErrBetNotFound):
		writeStatus(w, http.StatusOK, statusBetDoesNotExist, uuid)
	case pgutils.IsTemporary(err):
		slog.Error("store failure", "error", err)
		writeStatus(w, http.StatusInternalServerError, statusTemporaryError, uuid)
	default:
		slog.Error("unrecognized failure", "error", err)
		writeStatus(w, http.StatusInternalServerError, statusUnknownError, uuid)
	}
}

// --- Handlers ---

// TransactionHandler handles POST /debit, /credit and /cancel; the route
// fixes the action.
func (h *HandlerProvider) TransactionHandler(action wallet.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env, ok := decodeEnvelope(w, r)
		if !ok {
			return
		}

		uuid := echoUUID(env.UUID)

		if env.UserID == "" || env.SID == "" || env.Transaction == nil ||
			env.Transaction.RefID == "" || !validAmount(env.Transaction.Amount) {
			writeStatus(w, http.StatusOK, statusInvalidParameter, uuid)
			return
		}

		snap, err := h.svc.ProcessTransaction(r.Context(), wallet.Transaction{
			Action:   action,
			UserID:   env.UserID,
			SID:      env.SID,
			RefID:    env.Transaction.RefID,
			Amount:   env.Transaction.Amount,
			Currency: env.Currency,
		})
		if err != nil {
			writeServiceError(w, uuid, err)
			return
		}

		writeEnvelope(w, http.StatusOK, okEnvelope(uuid, snap))
	}
}

// PayoutHandler handles POST /payout.
func (h *HandlerProvider) PayoutHandler(w http.ResponseWriter, r *http.Request) {
	env, ok := decodeEnvelope(w, r)
	if !ok {
		return
	}

	uuid := echoUUID(env.UUID)

	if env.UserID == "" || env.SID == "" || env.PromoTransaction == nil ||
		env.PromoTransaction.ID == "" || !validAmount(env.PromoTransaction.Amount) {
		writeStatus(w, http.StatusOK, statusInvalidParameter, uuid)
		return
	}

	snap, err := h.svc.PromoPayout(r.Context(), wallet.Payout{
		UserID:   env.UserID,
		SID:      env.SID,
		PromoID:  env.PromoTransaction.ID,
		Amount:   env.PromoTransaction.Amount,
		Currency: env.Currency,
	})
	if err != nil {
		writeServiceError(w, uuid, err)
		return
	}

	writeEnvelope(w, http.StatusOK, okEnvelope(uuid, snap))
}

// BalanceHandler handles POST /balance.
func (h *HandlerProvider) BalanceHandler(w http.ResponseWriter, r *http.Request) {
	env, ok := decodeEnvelope(w, r)
	if !ok {
		return
	}

	uuid := echoUUID(env.UUID)

	if env.UserID == "" || env.SID == "" {
		writeStatus(w, http.StatusOK, statusInvalidParameter, uuid)
		return
	}

	snap, err := h.svc.Balance(r.Context(), env.UserID, env.SID)
	if err != nil {
		writeServiceError(w, uuid, err)
		return
	}

	writeEnvelope(w, http.StatusOK, okEnvelope(uuid, snap))
}

// CheckUserHandler handles POST /checkUser: rotates the session id and
// returns the new one.
func (h *HandlerProvider) CheckUserHandler(w http.ResponseWriter, r *http.Request) {
	env, ok := decodeEnvelope(w, r)
	if !ok {
		return
	}

	uuid := echoUUID(env.UUID)

	if env.UserID == "" {
		writeStatus(w, http.StatusOK, statusInvalidParameter, uuid)
		return
	}

	sid, err := h.svc.RefreshSession(r.Context(), env.UserID)
	if err != nil {
		writeServiceError(w, uuid, err)
		return
	}

	writeEnvelope(w, http.StatusOK, responseEnvelope{
		Status: statusOK,
		UUID:   uuid,
		SID:    sid,
	})
}
