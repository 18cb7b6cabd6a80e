package cmd

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"financeguard/internal/authz"
	"financeguard/internal/config"
	"financeguard/internal/core"
	"financeguard/internal/db"
	"financeguard/internal/fhe"
	"financeguard/internal/http/handler"
	"financeguard/internal/http/handler/middleware"
	"financeguard/internal/http/payload"
	"financeguard/internal/http/server"
	"financeguard/internal/ledger"
	"financeguard/internal/notify"
	"financeguard/internal/relayer"
	"financeguard/internal/repository"
	"financeguard/pkg/jwt"
	"financeguard/pkg/log"

	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("financeguard", zapcore.InfoLevel)

	if err := config.LoadDotEnv(); err != nil {
		logger.Errorw("failed to load .env file", "error", err)
		return err
	}

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger("financeguard", log.ParseLevel(config.LogLevel))

	ctx := context.Background()

	// key material
	paillierKey, err := loadPaillierKey(logger, config)
	if err != nil {
		logger.Errorw("failed to load paillier key", "error", err)
		return err
	}

	signer, err := loadSigner(logger, config.SignerKey)
	if err != nil {
		logger.Errorw("failed to load coprocessor signer key", "error", err)
		return err
	}

	// storage
	var (
		ledgerStore     ledger.Store = ledger.NewMemoryStore()
		ciphertextStore fhe.Store    = fhe.NewMemoryStore()
		dbConn          *db.PostgresDB
	)
	if config.DBConnectionURL != "" {
		dbConn, err = db.NewPostgresDB(config.DBConnectionURL)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			return err
		}
		defer dbConn.Close()

		if err := repository.Migrate(dbConn); err != nil {
			logger.Errorw("failed to migrate tables to database", "error", err)
			return err
		}
		ledgerStore = repository.NewLedgerStore(dbConn)
		ciphertextStore = repository.NewCiphertextStore(dbConn)
	} else {
		logger.Infow("DB_CONNECTION_URL not set, keeping ledger in memory")
	}

	coprocessor := fhe.NewCoprocessor(logger, &paillierKey.PublicKey, signer, ciphertextStore)

	// notifications
	dispatcher, closeSinks, err := newDispatcher(logger, config)
	if err != nil {
		logger.Errorw("failed to set up notification sinks", "error", err)
		return err
	}
	defer closeSinks()
	defer dispatcher.Close()

	financeLedger, err := ledger.New(ctx, logger, ledgerStore, coprocessor, dispatcher, config.ContractAddress)
	if err != nil {
		logger.Errorw("failed to load ledger", "error", err)
		return err
	}

	domain := authz.Domain{
		ChainID:           config.ChainID,
		VerifyingContract: config.DecryptionVerifier,
	}
	decryption := relayer.NewService(logger, coprocessor, paillierKey, domain)

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	financeGuard := core.NewFinanceGuard(logger, financeLedger, jwtService)

	// handlers
	ledgerHlr := handler.NewLedgerHandler(logger, payload.Decoder{}, financeGuard)
	relayerHlr := handler.NewRelayerHandler(logger, payload.Decoder{}, coprocessor, decryption, config.ContractAddress)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	ledgerHlr.Register(mux)
	relayerHlr.Register(mux)

	logger.Infow("financeguard configured",
		"contract", config.ContractAddress.Hex(),
		"chain_id", config.ChainID,
		"input_verifier", coprocessor.VerifierAddress().Hex(),
		"paillier_bits", paillierKey.N.BitLen(),
	)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	if sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}

func loadPaillierKey(logger *zap.SugaredLogger, config config.App) (*fhe.PrivateKey, error) {
	if config.PaillierP == "" || config.PaillierQ == "" {
		logger.Infow("PAILLIER_P/PAILLIER_Q not set, generating an ephemeral key", "bits", config.PaillierBits)
		return fhe.GenerateKey(rand.Reader, config.PaillierBits)
	}

	p, ok := new(big.Int).SetString(strings.TrimPrefix(config.PaillierP, "0x"), 16)
	if !ok {
		return nil, errors.New("PAILLIER_P is not hex")
	}
	q, ok := new(big.Int).SetString(strings.TrimPrefix(config.PaillierQ, "0x"), 16)
	if !ok {
		return nil, errors.New("PAILLIER_Q is not hex")
	}
	return fhe.NewPrivateKey(p, q)
}

func loadSigner(logger *zap.SugaredLogger, hexKey string) (*ecdsa.PrivateKey, error) {
	if hexKey == "" {
		logger.Infow("COPROCESSOR_SIGNER_KEY not set, generating an ephemeral signer")
		return crypto.GenerateKey()
	}
	return crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
}

func newDispatcher(logger *zap.SugaredLogger, config config.App) (*notify.Dispatcher, func(), error) {
	sinks := []notify.Sink{notify.NewLogSink(logger)}
	var closers []func()

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if config.NATSURL != "" {
		natsSink, err := notify.DialNATS(config.NATSURL, config.NATSSubject)
		if err != nil {
			return nil, closeAll, err
		}
		sinks = append(sinks, natsSink)
		closers = append(closers, natsSink.Close)
	}

	if config.AMQPURL != "" {
		amqpSink, err := notify.DialAMQP(config.AMQPURL, config.AMQPExchange)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		sinks = append(sinks, amqpSink)
		closers = append(closers, func() {
			if err := amqpSink.Close(); err != nil {
				logger.Errorw("failed to close amqp sink", "error", err)
			}
		})
	}

	return notify.NewDispatcher(logger, config.NotifyWorkers, sinks...), closeAll, nil
}
