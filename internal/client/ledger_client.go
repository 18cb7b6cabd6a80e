package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"financeguard/internal/authz"
	"financeguard/internal/fhe"
	"financeguard/internal/http/payload"
	"financeguard/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const authTokenHeader = "AUTH_TOKEN"

// LedgerClient implements LedgerAPI against the ledger HTTP endpoints.
type LedgerClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewLedgerClient(baseURL string, httpClient *http.Client) *LedgerClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &LedgerClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// Login signs a fresh login message with wallet and keeps the issued token
// for later mutations.
func (c *LedgerClient) Login(ctx context.Context, wallet Wallet) error {
	if wallet == nil {
		return ErrNotConnected
	}

	text := authz.LoginText(time.Now())
	result, err := wallet.SignText(ctx, []byte(text))
	if err != nil {
		return fmt.Errorf("sign login: %w", err)
	}
	if err := result.Err(); err != nil {
		return err
	}

	req := payload.AuthRequest{
		Address:   wallet.Address().Hex(),
		Message:   text,
		Signature: hexutil.Encode(result.Signature),
	}
	var env payload.Envelope[payload.AuthResponse]
	if err := c.call(ctx, http.MethodPost, "/ledger/authenticate", req, &env); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	c.mu.Lock()
	c.token = env.Data.Token
	c.mu.Unlock()
	return nil
}

func (c *LedgerClient) AddTransaction(ctx context.Context, in ledger.Input) (uint64, error) {
	var env payload.Envelope[payload.Transaction]
	if err := c.call(ctx, http.MethodPost, "/ledger/transactions", payload.NewAddTransactionRequest(in), &env); err != nil {
		return 0, err
	}
	return env.Data.ID, nil
}

func (c *LedgerClient) TransactionCount(ctx context.Context, owner common.Address) (uint64, error) {
	var env payload.Envelope[payload.TransactionCount]
	if err := c.call(ctx, http.MethodGet, userPath(owner, "transactions/count"), nil, &env); err != nil {
		return 0, err
	}
	return env.Data.Count, nil
}

func (c *LedgerClient) Transactions(ctx context.Context, owner common.Address) ([]ledger.Transaction, error) {
	var env payload.Envelope[payload.TransactionList]
	if err := c.call(ctx, http.MethodGet, userPath(owner, "transactions"), nil, &env); err != nil {
		return nil, err
	}

	txs := make([]ledger.Transaction, 0, len(env.Data.Transactions))
	for _, t := range env.Data.Transactions {
		tx, err := t.ToLedger()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (c *LedgerClient) Transaction(ctx context.Context, owner common.Address, index uint64) (ledger.Transaction, error) {
	var env payload.Envelope[payload.Transaction]
	path := userPath(owner, "transactions/"+strconv.FormatUint(index, 10))
	if err := c.call(ctx, http.MethodGet, path, nil, &env); err != nil {
		return ledger.Transaction{}, err
	}
	return env.Data.ToLedger()
}

func (c *LedgerClient) MonthlyTotals(ctx context.Context, owner common.Address, yearMonth uint32) (fhe.Handle, fhe.Handle, error) {
	var env payload.Envelope[payload.MonthlyTotals]
	path := userPath(owner, "monthly/"+strconv.FormatUint(uint64(yearMonth), 10))
	if err := c.call(ctx, http.MethodGet, path, nil, &env); err != nil {
		return fhe.Handle{}, fhe.Handle{}, err
	}

	income, err := fhe.HexToHandle(env.Data.EncryptedIncome)
	if err != nil {
		return fhe.Handle{}, fhe.Handle{}, err
	}
	expense, err := fhe.HexToHandle(env.Data.EncryptedExpense)
	if err != nil {
		return fhe.Handle{}, fhe.Handle{}, err
	}
	return income, expense, nil
}

func (c *LedgerClient) YearMonth(ctx context.Context, t time.Time) (uint32, error) {
	var env payload.Envelope[payload.YearMonth]
	path := "/ledger/year-month?timestamp=" + strconv.FormatInt(t.Unix(), 10)
	if err := c.call(ctx, http.MethodGet, path, nil, &env); err != nil {
		return 0, err
	}
	return env.Data.YearMonth, nil
}

func userPath(owner common.Address, rest string) string {
	return "/ledger/users/" + owner.Hex() + "/" + rest
}

func (c *LedgerClient) call(ctx context.Context, method, path string, body any, env any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.mu.RLock()
	if c.token != "" {
		req.Header.Set(authTokenHeader, c.token)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if resp.StatusCode == http.StatusOK {
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	var failure payload.Envelope[json.RawMessage]
	_ = payload.DecodeEnvelope(resp.Body, &failure)
	return statusError(resp.StatusCode, failure.Error)
}

func statusError(code int, detail string) error {
	switch {
	case code == http.StatusBadRequest && strings.Contains(detail, ledger.ErrInvalidCiphertext.Error()):
		return fmt.Errorf("%w: %s", ledger.ErrInvalidCiphertext, detail)
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ledger.ErrInvalidArgument, detail)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrNotAuthenticated, detail)
	case code == http.StatusNotFound:
		return ledger.ErrIndexOutOfRange
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, code)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}
