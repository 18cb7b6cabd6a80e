package client_test

import (
	"context"
	"crypto/ecdsa"
	"sync"

	"financeguard/internal/authz"
	"financeguard/internal/client"
	"financeguard/internal/client/fake"
	"financeguard/internal/fhe"
	"financeguard/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Decrypter", func() {
	var (
		ctx         context.Context
		key         *ecdsa.PrivateKey
		wallet      client.Wallet
		fakeGateway *fake.Gateway
		fakeLedger  *fake.LedgerAPI
		gateway     client.Gateway
		domain      authz.Domain
		contract    common.Address
		session     *client.Session
		decrypter   *client.Decrypter
		plaintexts  map[fhe.Handle]uint32
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		wallet = client.NewKeyWallet(key, nil)
		fakeGateway = new(fake.Gateway)
		fakeLedger = new(fake.LedgerAPI)
		gateway = fakeGateway
		domain = authz.Domain{ChainID: 31337, VerifyingContract: common.HexToAddress("0xb6E51d8b47D4A8c8FF9A36CC5D64a7bF3bEDc8d6")}
		contract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
		session = client.NewSession()

		plaintexts = map[fhe.Handle]uint32{
			{1}: 250000,
			{2}: 5000,
		}
		fakeGateway.UserDecryptStub = func(_ context.Context, req authz.Request, priv *[32]byte) (map[fhe.Handle]uint32, error) {
			defer GinkgoRecover()
			Expect(*priv).NotTo(Equal([32]byte{}))
			out := make(map[fhe.Handle]uint32)
			for _, p := range req.Pairs {
				out[p.Handle] = plaintexts[p.Handle]
			}
			return out, nil
		}
	})

	JustBeforeEach(func() {
		decrypter = client.NewDecrypter(zap.NewNop().Sugar(), wallet, gateway, fakeLedger, domain, contract, session)
	})

	Describe("Decrypt", func() {
		It("should store the plaintext under the transaction index", func() {
			v, err := decrypter.Decrypt(ctx, 3, fhe.Handle{1})
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(uint32(250000)))

			stored, ok := session.Amount(3)
			Expect(ok).To(BeTrue())
			Expect(stored).To(Equal(uint32(250000)))
		})

		It("should send a request signed by the wallet for one handle", func() {
			_, err := decrypter.Decrypt(ctx, 0, fhe.Handle{2})
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeGateway.UserDecryptCallCount()).To(Equal(1))
			_, req, _ := fakeGateway.UserDecryptArgsForCall(0)
			Expect(req.Pairs).To(Equal([]authz.HandleContractPair{{Handle: fhe.Handle{2}, Contract: contract}}))
			Expect(req.UserAddress).To(Equal(wallet.Address()))
			Expect(req.DurationDays).To(Equal(authz.DefaultDurationDays))

			signer, err := authz.RecoverSigner(domain, req.Claim(), req.Signature)
			Expect(err).NotTo(HaveOccurred())
			Expect(signer).To(Equal(wallet.Address()))
		})

		It("should wipe the ephemeral key after the call", func() {
			var seen *[32]byte
			fakeGateway.UserDecryptStub = func(_ context.Context, req authz.Request, priv *[32]byte) (map[fhe.Handle]uint32, error) {
				seen = priv
				return map[fhe.Handle]uint32{req.Pairs[0].Handle: 1}, nil
			}

			_, err := decrypter.Decrypt(ctx, 0, fhe.Handle{1})
			Expect(err).NotTo(HaveOccurred())
			Expect(*seen).To(Equal([32]byte{}))
		})

		When("the relayer denies the request", func() {
			BeforeEach(func() {
				fakeGateway.UserDecryptStub = nil
				fakeGateway.UserDecryptReturns(nil, client.ErrDecryptionDenied)
			})

			It("should report an opaque denial and store nothing", func() {
				_, err := decrypter.Decrypt(ctx, 0, fhe.Handle{1})
				Expect(err).To(MatchError(client.ErrDecryptionDenied))
				Expect(session.Len()).To(BeZero())
			})
		})

		When("the user rejects the signature", func() {
			BeforeEach(func() {
				wallet = client.NewKeyWallet(key, func(context.Context, string) (bool, error) {
					return false, nil
				})
			})

			It("should abort before contacting the relayer", func() {
				_, err := decrypter.Decrypt(ctx, 0, fhe.Handle{1})
				Expect(err).To(MatchError(client.ErrSignatureRejected))
				Expect(fakeGateway.UserDecryptCallCount()).To(BeZero())
			})
		})

		When("the gateway is not initialized", func() {
			BeforeEach(func() {
				gateway = nil
			})

			It("should fail fast", func() {
				_, err := decrypter.Decrypt(ctx, 0, fhe.Handle{1})
				Expect(err).To(MatchError(client.ErrCapabilityNotReady))
			})
		})

		When("the contract is unknown", func() {
			BeforeEach(func() {
				contract = common.Address{}
			})

			It("should fail fast", func() {
				_, err := decrypter.Decrypt(ctx, 0, fhe.Handle{1})
				Expect(err).To(MatchError(client.ErrContractUnresolved))
				Expect(fakeGateway.UserDecryptCallCount()).To(BeZero())
			})
		})

		When("no wallet is connected", func() {
			BeforeEach(func() {
				wallet = nil
			})

			It("should fail fast", func() {
				_, err := decrypter.Decrypt(ctx, 0, fhe.Handle{1})
				Expect(err).To(MatchError(client.ErrNotConnected))
				Expect(fakeGateway.UserDecryptCallCount()).To(BeZero())
			})
		})
	})

	Describe("DecryptTransaction", func() {
		It("should decrypt the handle stored at the index", func() {
			fakeLedger.TransactionReturns(ledger.Transaction{AmountHandle: fhe.Handle{2}}, nil)

			v, err := decrypter.DecryptTransaction(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(uint32(5000)))

			_, owner, index := fakeLedger.TransactionArgsForCall(0)
			Expect(owner).To(Equal(wallet.Address()))
			Expect(index).To(Equal(uint64(1)))
		})

		It("should pass through out of range errors", func() {
			fakeLedger.TransactionReturns(ledger.Transaction{}, ledger.ErrIndexOutOfRange)

			_, err := decrypter.DecryptTransaction(ctx, 9)
			Expect(err).To(MatchError(ledger.ErrIndexOutOfRange))
		})
	})

	Describe("DecryptMonthly", func() {
		BeforeEach(func() {
			fakeLedger.MonthlyTotalsReturns(fhe.Handle{1}, fhe.Handle{2}, nil)
		})

		It("should decrypt both totals under separate authorizations", func() {
			var (
				mu   sync.Mutex
				keys [][32]byte
			)
			stub := fakeGateway.UserDecryptStub
			fakeGateway.UserDecryptStub = func(ctx context.Context, req authz.Request, priv *[32]byte) (map[fhe.Handle]uint32, error) {
				defer GinkgoRecover()
				mu.Lock()
				keys = append(keys, req.PublicKey)
				mu.Unlock()
				Expect(req.Pairs).To(HaveLen(1))
				return stub(ctx, req, priv)
			}

			summary, err := decrypter.DecryptMonthly(ctx, 202503)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary).To(Equal(client.MonthlySummary{
				YearMonth: 202503,
				Income:    250000,
				Expense:   5000,
				Net:       245000,
			}))

			Expect(keys).To(HaveLen(2))
			Expect(keys[0]).NotTo(Equal(keys[1]))
			Expect(session.Len()).To(BeZero())
		})

		It("should fail when either total is denied", func() {
			fakeGateway.UserDecryptStub = func(_ context.Context, req authz.Request, _ *[32]byte) (map[fhe.Handle]uint32, error) {
				if req.Pairs[0].Handle == (fhe.Handle{2}) {
					return nil, client.ErrDecryptionDenied
				}
				return map[fhe.Handle]uint32{req.Pairs[0].Handle: 1}, nil
			}

			_, err := decrypter.DecryptMonthly(ctx, 202503)
			Expect(err).To(MatchError(client.ErrDecryptionDenied))
		})
	})
})
