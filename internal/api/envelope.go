package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"
)

// Business status codes carried in the response envelope. Transport
// status is 200 for every business outcome; 500 is reserved for the two
// infrastructure-failure classes.
const (
	statusOK                = "OK"
	statusInvalidTokenID    = "INVALID_TOKEN_ID"
	statusInvalidParameter  = "INVALID_PARAMETER"
	statusInvalidSID        = "INVALID_SID"
	statusInsufficientFunds = "INSUFFICIENT_FUNDS"
	statusBetDoesNotExist   = "BET_DOES_NOT_EXIST"
	statusBetAlreadyExist   = "BET_ALREADY_EXIST"
	statusBetAlreadySettled = "BET_ALREADY_SETTLED"
	statusFinalError        = "FINAL_ERROR_ACTION_FAILED"
	statusTemporaryError    = "TEMPORARY_ERROR"
	statusUnknownError      = "UNKNOWN_ERROR"
)

func init() {
	// Balances go over the wire as bare JSON numbers, as the upstream
	// game providers expect.
	decimal.MarshalJSONWithoutQuotes = true
}

type transactionPayload struct {
	RefID  string          `json:"refId"`
	Amount decimal.Decimal `json:"amount"`
}

type promoPayload struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// requestEnvelope is the shared shape of every inbound call; the route
// decides which of the optional payloads must be present.
type requestEnvelope struct {
	UserID           string              `json:"userId"`
	SID              string              `json:"sid"`
	Currency         string              `json:"currency"`
	UUID             string              `json:"uuid"`
	Transaction      *transactionPayload `json:"transaction,omitempty"`
	PromoTransaction *promoPayload       `json:"promoTransaction,omitempty"`
}

// responseEnvelope is the single response shape. UUID is a pointer so a
// request that never reached parsing reports a JSON null.
type responseEnvelope struct {
	Status  string           `json:"status"`
	UUID    *string          `json:"uuid"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
	Bonus   *decimal.Decimal `json:"bonus,omitempty"`
	SID     string           `json:"sid,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, httpStatus int, env responseEnvelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	err := json.NewEncoder(w).Encode(env)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeStatus(w http.ResponseWriter, httpStatus int, status string, uuid *string) {
	writeEnvelope(w, httpStatus, responseEnvelope{Status: status, UUID: uuid})
}
