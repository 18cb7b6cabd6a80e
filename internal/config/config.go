package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidEnvVar  error = errors.New("invalid environment variable")
)

const (
	apiPortEnvKey            = "API_PORT"
	jwtSecretEnvKey          = "JWT_SECRET"
	contractAddressEnvKey    = "CONTRACT_ADDRESS"
	chainIDEnvKey            = "CHAIN_ID"
	decryptionVerifierEnvKey = "DECRYPTION_VERIFIER"
	dbConnEnvKey             = "DB_CONNECTION_URL"
	signerKeyEnvKey          = "COPROCESSOR_SIGNER_KEY"
	paillierPEnvKey          = "PAILLIER_P"
	paillierQEnvKey          = "PAILLIER_Q"
	paillierBitsEnvKey       = "PAILLIER_BITS"
	natsURLEnvKey            = "NATS_URL"
	natsSubjectEnvKey        = "NATS_SUBJECT"
	amqpURLEnvKey            = "AMQP_URL"
	amqpExchangeEnvKey       = "AMQP_EXCHANGE"
	notifyWorkersEnvKey      = "NOTIFY_WORKERS"
	logLevelEnvKey           = "LOG_LEVEL"

	serverURLEnvKey = "FINANCEGUARD_URL"
	walletKeyEnvKey = "WALLET_KEY"
)

type App struct {
	Port               string
	JWTSecret          string
	ContractAddress    common.Address
	ChainID            int64
	DecryptionVerifier common.Address
	DBConnectionURL    string
	SignerKey          string
	PaillierP          string
	PaillierQ          string
	PaillierBits       int
	NATSURL            string
	NATSSubject        string
	AMQPURL            string
	AMQPExchange       string
	NotifyWorkers      int
	LogLevel           string
}

type Client struct {
	ServerURL string
	WalletKey string
	LogLevel  string
}

// LoadDotEnv reads a .env file when present. Variables already set in the
// environment win.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	contract, err := address(contractAddressEnvKey, "")
	if err != nil {
		return App{}, err
	}

	chainID, err := integer(chainIDEnvKey, 31337)
	if err != nil {
		return App{}, err
	}

	verifier, err := address(decryptionVerifierEnvKey, contract.Hex())
	if err != nil {
		return App{}, err
	}

	bits, err := integer(paillierBitsEnvKey, 2048)
	if err != nil {
		return App{}, err
	}

	workers, err := integer(notifyWorkersEnvKey, 4)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:               port,
		JWTSecret:          jwtSecret,
		ContractAddress:    contract,
		ChainID:            chainID,
		DecryptionVerifier: verifier,
		DBConnectionURL:    os.Getenv(dbConnEnvKey),
		SignerKey:          os.Getenv(signerKeyEnvKey),
		PaillierP:          os.Getenv(paillierPEnvKey),
		PaillierQ:          os.Getenv(paillierQEnvKey),
		PaillierBits:       int(bits),
		NATSURL:            os.Getenv(natsURLEnvKey),
		NATSSubject:        withDefault(natsSubjectEnvKey, "financeguard.ledger"),
		AMQPURL:            os.Getenv(amqpURLEnvKey),
		AMQPExchange:       withDefault(amqpExchangeEnvKey, "financeguard"),
		NotifyWorkers:      int(workers),
		LogLevel:           withDefault(logLevelEnvKey, "info"),
	}, nil
}

func NewClient() (Client, error) {
	serverURL, ok := os.LookupEnv(serverURLEnvKey)
	if !ok {
		return Client{}, fmt.Errorf("%w: %s", errEnvVarNotFound, serverURLEnvKey)
	}

	walletKey, ok := os.LookupEnv(walletKeyEnvKey)
	if !ok {
		return Client{}, fmt.Errorf("%w: %s", errEnvVarNotFound, walletKeyEnvKey)
	}

	return Client{
		ServerURL: serverURL,
		WalletKey: walletKey,
		LogLevel:  withDefault(logLevelEnvKey, "info"),
	}, nil
}

func withDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func integer(key string, fallback int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, key, v)
	}
	return n, nil
}

func address(key, fallback string) (common.Address, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		if fallback == "" {
			return common.Address{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		v = fallback
	}
	if !common.IsHexAddress(v) {
		return common.Address{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, key, v)
	}
	return common.HexToAddress(v), nil
}
