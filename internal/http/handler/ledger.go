package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"financeguard/internal/core"
	"financeguard/internal/http/payload"
	"financeguard/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const authTokenHeader = "AUTH_TOKEN"

var (
	Authenticate        = "POST /ledger/authenticate"
	AddTransaction      = "POST /ledger/transactions"
	GetUserTransactions = "GET /ledger/users/{owner}/transactions"
	GetTransactionCount = "GET /ledger/users/{owner}/transactions/count"
	GetTransaction      = "GET /ledger/users/{owner}/transactions/{index}"
	GetMonthlyTotals    = "GET /ledger/users/{owner}/monthly/{yearMonth}"
	GetYearMonth        = "GET /ledger/year-month"
)

type LedgerHandler struct {
	responder
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	ledger           LedgerService
}

func NewLedgerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, ledgerService LedgerService) *LedgerHandler {
	return &LedgerHandler{
		responder:        responder{logs: logger},
		logs:             logger,
		requestValidator: requestValidator,
		ledger:           ledgerService,
	}
}

func (h *LedgerHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(AddTransaction, h.HandleAddTransaction)
	mux.HandleFunc(GetUserTransactions, h.HandleGetUserTransactions)
	mux.HandleFunc(GetTransactionCount, h.HandleGetTransactionCount)
	mux.HandleFunc(GetTransaction, h.HandleGetTransaction)
	mux.HandleFunc(GetMonthlyTotals, h.HandleGetMonthlyTotals)
	mux.HandleFunc(GetYearMonth, h.HandleGetYearMonth)
}

func (h *LedgerHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r.Context())

	var req payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.ledger.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidLogin) || errors.Is(err, core.ErrLoginExpired) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Authenticated",
		Data:    payload.AuthResponse{Token: token},
	}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleAddTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r.Context())

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", AddTransaction, "request_id", requestId)
		return
	}

	var req payload.AddTransactionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not add transaction",
			Error:   fmt.Errorf("%w: invalid request payload: %w", ledger.ErrInvalidArgument, err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddTransaction,
			"request_id", requestId)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.respond(w, Response{
			Message: "Could not add transaction",
			Error:   fmt.Errorf("%w: %w", ledger.ErrInvalidCiphertext, err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse encrypted amount",
			"error", err,
			"handler", AddTransaction,
			"request_id", requestId)
		return
	}

	tx, err := h.ledger.AddTransaction(r.Context(), authToken, in)
	if err != nil {
		resp := Response{
			Message: "Could not add transaction",
			Error:   err.Error(),
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrUnauthenticated):
			httpCode = http.StatusUnauthorized
		case errors.Is(err, ledger.ErrInvalidArgument), errors.Is(err, ledger.ErrInvalidCiphertext):
			httpCode = http.StatusBadRequest
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to add transaction",
			"error", err,
			"handler", AddTransaction,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transaction added",
		"transaction_id", tx.ID,
		"owner", tx.Owner.Hex(),
		"handler", AddTransaction,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Transaction added",
		Data:    payload.NewTransaction(tx),
	}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetUserTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r.Context())

	owner, ok := h.owner(w, r, GetUserTransactions, requestId)
	if !ok {
		return
	}

	txs, err := h.ledger.UserTransactions(r.Context(), owner)
	if err != nil {
		h.internalError(w, err, "Could not retrieve transactions", GetUserTransactions, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.TransactionList{Transactions: payload.NewTransactions(txs)},
	}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetTransactionCount(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r.Context())

	owner, ok := h.owner(w, r, GetTransactionCount, requestId)
	if !ok {
		return
	}

	count, err := h.ledger.TransactionCount(r.Context(), owner)
	if err != nil {
		h.internalError(w, err, "Could not count transactions", GetTransactionCount, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.TransactionCount{Count: count},
	}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r.Context())

	owner, ok := h.owner(w, r, GetTransaction, requestId)
	if !ok {
		return
	}

	index, err := strconv.ParseUint(r.PathValue("index"), 10, 64)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("%w: index: %w", ledger.ErrInvalidArgument, err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid index parameter", "error", err, "handler", GetTransaction, "request_id", requestId)
		return
	}

	tx, err := h.ledger.Transaction(r.Context(), owner, index)
	if err != nil {
		if errors.Is(err, ledger.ErrIndexOutOfRange) {
			h.respond(w, Response{
				Message: "Transaction not found",
				Error:   err.Error(),
			}, http.StatusNotFound,
				requestId)
			return
		}
		h.internalError(w, err, "Could not retrieve transaction", GetTransaction, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewTransaction(tx),
	}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetMonthlyTotals(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r.Context())

	owner, ok := h.owner(w, r, GetMonthlyTotals, requestId)
	if !ok {
		return
	}

	// a well-formed key that names no month has no bucket and reads as zero
	yearMonth, err := strconv.ParseUint(r.PathValue("yearMonth"), 10, 32)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Sprintf("%s: yearMonth must be YYYYMM", ledger.ErrInvalidArgument),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid yearMonth parameter",
			"value", r.PathValue("yearMonth"),
			"handler", GetMonthlyTotals,
			"request_id", requestId)
		return
	}

	totals, err := h.ledger.MonthlyTotals(r.Context(), owner, uint32(yearMonth))
	if err != nil {
		h.internalError(w, err, "Could not retrieve monthly totals", GetMonthlyTotals, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.MonthlyTotals{
			YearMonth:        totals.YearMonth,
			EncryptedIncome:  totals.EncryptedIncome.Hex(),
			EncryptedExpense: totals.EncryptedExpense.Hex(),
		},
	}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetYearMonth(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r.Context())

	timestamp, err := strconv.ParseInt(r.URL.Query().Get("timestamp"), 10, 64)
	if err == nil && !ledger.ValidTimestamp(timestamp) {
		err = fmt.Errorf("%d outside [0, %d]", timestamp, ledger.MaxTimestamp)
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("%w: timestamp: %w", ledger.ErrInvalidArgument, err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid timestamp parameter", "error", err, "handler", GetYearMonth, "request_id", requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.YearMonth{YearMonth: h.ledger.YearMonth(timestamp)},
	}, http.StatusOK, requestId)
}

func (h *LedgerHandler) owner(w http.ResponseWriter, r *http.Request, route, requestId string) (common.Address, bool) {
	raw := r.PathValue("owner")
	if !common.IsHexAddress(raw) {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Sprintf("%s: owner must be an address", ledger.ErrInvalidArgument),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid owner parameter", "owner", raw, "handler", route, "request_id", requestId)
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}

func (h *LedgerHandler) internalError(w http.ResponseWriter, err error, message, route, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   "unexpected error occurred",
	}, http.StatusInternalServerError,
		requestId)
	h.logs.Errorw("ledger read failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}
