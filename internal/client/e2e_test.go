package client_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"time"

	"financeguard/internal/authz"
	"financeguard/internal/client"
	"financeguard/internal/core"
	"financeguard/internal/fhe"
	"financeguard/internal/http/handler"
	"financeguard/internal/http/handler/middleware"
	"financeguard/internal/http/payload"
	"financeguard/internal/ledger"
	"financeguard/internal/relayer"
	"financeguard/pkg/jwt"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, ledger.TransactionAdded) {}

// user is one connected account in the end to end scenario.
type user struct {
	wallet    *client.KeyWallet
	ledger    *client.LedgerClient
	submitter *client.Submitter
	decrypter *client.Decrypter
}

var _ = Describe("FinanceGuard end to end", Ordered, func() {
	var (
		ctx      context.Context
		srv      *httptest.Server
		contract common.Address
		network  relayer.Network
		alice    user
		bob      user
	)

	connect := func(key *ecdsa.PrivateKey) user {
		logger := zap.NewNop().Sugar()
		wallet := client.NewKeyWallet(key, client.AutoApprove)

		relayerClient := relayer.NewClient(srv.URL, srv.Client())
		ledgerClient := client.NewLedgerClient(srv.URL, srv.Client())
		Expect(ledgerClient.Login(ctx, wallet)).To(Succeed())

		encryptor := fhe.NewEncryptor(network.PublicKey, relayerClient)
		submitter := client.NewSubmitter(logger, wallet, encryptor, ledgerClient, network.Contract).
			WithBackOff(func() backoff.BackOff {
				return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 3)
			})

		return user{
			wallet:    wallet,
			ledger:    ledgerClient,
			submitter: submitter,
			decrypter: client.NewDecrypter(logger, wallet, relayerClient, ledgerClient, network.Domain, network.Contract, client.NewSession()),
		}
	}

	BeforeAll(func() {
		ctx = context.Background()
		logger := zap.NewNop().Sugar()
		contract = common.HexToAddress("0x00000000000000000000000000000000000fe11d")

		paillierKey, err := fhe.GenerateKey(rand.Reader, 256)
		Expect(err).NotTo(HaveOccurred())
		signer, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		coprocessor := fhe.NewCoprocessor(logger, &paillierKey.PublicKey, signer, fhe.NewMemoryStore())
		financeLedger, err := ledger.New(ctx, logger, ledger.NewMemoryStore(), coprocessor, nopNotifier{}, contract)
		Expect(err).NotTo(HaveOccurred())

		domain := authz.Domain{ChainID: 31337, VerifyingContract: contract}
		decryption := relayer.NewService(logger, coprocessor, paillierKey, domain)
		financeGuard := core.NewFinanceGuard(logger, financeLedger, jwt.NewJWTService([]byte("e2e-secret")))

		mux := http.NewServeMux()
		handler.NewLedgerHandler(logger, payload.Decoder{}, financeGuard).Register(mux)
		handler.NewRelayerHandler(logger, payload.Decoder{}, coprocessor, decryption, contract).Register(mux)
		srv = httptest.NewServer(middleware.NewRequestIDMiddleware().RequestID(mux))

		network, err = relayer.NewClient(srv.URL, srv.Client()).Network(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(network.Contract).To(Equal(contract))
		Expect(network.Domain).To(Equal(domain))

		aliceKey, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		bobKey, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		alice = connect(aliceKey)
		bob = connect(bobKey)
	})

	AfterAll(func() {
		srv.Close()
	})

	It("keeps the ledger of a new user empty", func() {
		count, err := alice.ledger.TransactionCount(ctx, alice.wallet.Address())
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeZero())
	})

	It("appends encrypted transactions and decrypts them for their owner", func() {
		salary, err := alice.submitter.Submit(ctx, client.Draft{
			Kind:        ledger.Income,
			Description: "Salary",
			Category:    "work",
			Amount:      "1500.00",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(salary.IsEncrypted).To(BeTrue())
		Expect(salary.Owner).To(Equal(alice.wallet.Address()))

		_, err = alice.submitter.Submit(ctx, client.Draft{
			Kind:        ledger.Expense,
			Description: "Groceries",
			Category:    "food",
			Amount:      "42.50",
		})
		Expect(err).NotTo(HaveOccurred())

		txs, err := alice.ledger.Transactions(ctx, alice.wallet.Address())
		Expect(err).NotTo(HaveOccurred())
		Expect(txs).To(HaveLen(2))
		Expect(txs[0].Description).To(Equal("Salary"))
		Expect(txs[1].Kind).To(Equal(ledger.Expense))

		v, err := alice.decrypter.DecryptTransaction(ctx, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint32(150000)))

		v, err = alice.decrypter.DecryptTransaction(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint32(4250)))
	})

	It("decrypts the homomorphic monthly totals", func() {
		ym, err := alice.ledger.YearMonth(ctx, time.Now())
		Expect(err).NotTo(HaveOccurred())

		summary, err := alice.decrypter.DecryptMonthly(ctx, ym)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Income).To(Equal(uint32(150000)))
		Expect(summary.Expense).To(Equal(uint32(4250)))
		Expect(summary.Net).To(Equal(int64(145750)))
	})

	It("decrypts zero totals for a month without transactions", func() {
		summary, err := bob.decrypter.DecryptMonthly(ctx, 200001)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Income).To(BeZero())
		Expect(summary.Expense).To(BeZero())
	})

	It("keeps ledgers separate per owner", func() {
		count, err := bob.ledger.TransactionCount(ctx, bob.wallet.Address())
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeZero())
	})

	It("denies decryption of another user's handle", func() {
		tx, err := alice.ledger.Transaction(ctx, alice.wallet.Address(), 0)
		Expect(err).NotTo(HaveOccurred())

		_, err = bob.decrypter.Decrypt(ctx, 0, tx.AmountHandle)
		Expect(err).To(MatchError(relayer.ErrDecryptionDenied))
	})

	It("rejects an input proof replayed by another user", func() {
		input, err := fhe.NewEncryptor(network.PublicKey, relayer.NewClient(srv.URL, srv.Client())).
			Encrypt(ctx, contract, alice.wallet.Address(), 100)
		Expect(err).NotTo(HaveOccurred())

		_, err = bob.ledger.AddTransaction(ctx, ledger.Input{
			Kind:           ledger.Expense,
			Description:    "Replay",
			Category:       "misc",
			AmountHandle:   input.Handle,
			AmountProof:    input.Proof,
			EncryptOnChain: true,
		})
		Expect(err).To(HaveOccurred())

		count, err := bob.ledger.TransactionCount(ctx, bob.wallet.Address())
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeZero())
	})
})
