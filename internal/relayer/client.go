package relayer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"financeguard/internal/authz"
	"financeguard/internal/fhe"
	"financeguard/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	publicKeyPath   = "/coprocessor/public-key"
	inputsPath      = "/coprocessor/inputs"
	userDecryptPath = "/relayer/user-decrypt"
)

// Network is what a client needs to know about a deployment before it can
// encrypt inputs or request decryptions.
type Network struct {
	PublicKey     *fhe.PublicKey
	Domain        authz.Domain
	Contract      common.Address
	InputVerifier common.Address
}

// Client talks to the coprocessor and relayer endpoints over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) Network(ctx context.Context) (Network, error) {
	var env payload.Envelope[payload.Network]
	if err := c.call(ctx, http.MethodGet, publicKeyPath, nil, &env); err != nil {
		return Network{}, err
	}

	n, err := env.Data.Modulus()
	if err != nil {
		return Network{}, err
	}
	pub, err := fhe.NewPublicKey(n)
	if err != nil {
		return Network{}, fmt.Errorf("load public key: %w", err)
	}
	if !common.IsHexAddress(env.Data.ContractAddress) {
		return Network{}, fmt.Errorf("unexpected contract address %q", env.Data.ContractAddress)
	}

	return Network{
		PublicKey: pub,
		Domain: authz.Domain{
			ChainID:           env.Data.ChainID,
			VerifyingContract: common.HexToAddress(env.Data.VerifyingContract),
		},
		Contract:      common.HexToAddress(env.Data.ContractAddress),
		InputVerifier: common.HexToAddress(env.Data.InputVerifier),
	}, nil
}

func (c *Client) RegisterInput(ctx context.Context, ciphertext []byte, contract, user common.Address) (fhe.Handle, []byte, error) {
	req := payload.InputRequest{
		Ciphertext:      hexutil.Encode(ciphertext),
		ContractAddress: contract.Hex(),
		UserAddress:     user.Hex(),
	}

	var env payload.Envelope[payload.InputResponse]
	if err := c.call(ctx, http.MethodPost, inputsPath, req, &env); err != nil {
		return fhe.Handle{}, nil, err
	}

	handle, err := fhe.HexToHandle(env.Data.Handle)
	if err != nil {
		return fhe.Handle{}, nil, err
	}
	proof, err := hexutil.Decode(env.Data.Proof)
	if err != nil {
		return fhe.Handle{}, nil, fmt.Errorf("parse proof: %w", err)
	}
	return handle, proof, nil
}

// UserDecrypt sends req to the relayer and opens the sealed results locally.
// The private key never leaves the process.
func (c *Client) UserDecrypt(ctx context.Context, req authz.Request, privateKey *[32]byte) (map[fhe.Handle]uint32, error) {
	var env payload.Envelope[payload.UserDecryptResponse]
	if err := c.call(ctx, http.MethodPost, userDecryptPath, payload.NewUserDecryptRequest(req), &env); err != nil {
		return nil, err
	}

	sealed := make(map[fhe.Handle][]byte, len(env.Data.Results))
	for h, ct := range env.Data.Results {
		handle, err := fhe.HexToHandle(h)
		if err != nil {
			return nil, err
		}
		raw, err := hexutil.Decode(ct)
		if err != nil {
			return nil, fmt.Errorf("parse sealed result: %w", err)
		}
		sealed[handle] = raw
	}
	return openAll(sealed, &req.PublicKey, privateKey)
}

func (c *Client) call(ctx context.Context, method, path string, body any, env any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	var failure payload.Envelope[json.RawMessage]
	_ = json.NewDecoder(resp.Body).Decode(&failure)

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return ErrDecryptionDenied
	case resp.StatusCode == http.StatusBadRequest && path == inputsPath:
		return fmt.Errorf("%w: %s", fhe.ErrInvalidCiphertext, failure.Error)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, failure.Error)
	}
}

func openAll(sealed map[fhe.Handle][]byte, publicKey, privateKey *[32]byte) (map[fhe.Handle]uint32, error) {
	plaintexts := make(map[fhe.Handle]uint32, len(sealed))
	for handle, ct := range sealed {
		v, err := Open(ct, publicKey, privateKey)
		if err != nil {
			return nil, fmt.Errorf("open result for %s: %w", handle, err)
		}
		plaintexts[handle] = v
	}
	return plaintexts, nil
}
