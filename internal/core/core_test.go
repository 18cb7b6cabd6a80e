package core_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"time"

	"financeguard/internal/authz"
	"financeguard/internal/core"
	"financeguard/internal/core/fake"
	"financeguard/internal/fhe"
	"financeguard/internal/ledger"
	tokenIssuer "financeguard/pkg/jwt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("FinanceGuard", func() {
	var (
		fakeLedger *fake.Ledger
		fakeJWT    *fake.JWTIssuer
		ctx        context.Context
		now        time.Time

		financeGuard *core.FinanceGuard

		owner   common.Address
		fakeErr error
	)

	BeforeEach(func() {
		fakeLedger = new(fake.Ledger)
		fakeJWT = new(fake.JWTIssuer)
		ctx = context.Background()
		now = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
		core.TimeNow = func() time.Time { return now }

		financeGuard = core.NewFinanceGuard(zap.NewNop().Sugar(), fakeLedger, fakeJWT)

		owner = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
		fakeErr = errors.New("fake error")
	})

	AfterEach(func() {
		core.TimeNow = time.Now
	})

	Describe("Authenticate", func() {
		var (
			key      *ecdsa.PrivateKey
			msg      core.LoginMessage
			token    string
			err      error
			genToken *jwt.Token
		)

		signLogin := func(text string) []byte {
			sig, err := crypto.Sign(accounts.TextHash([]byte(text)), key)
			Expect(err).NotTo(HaveOccurred())
			sig[64] += 27
			return sig
		}

		BeforeEach(func() {
			key, err = crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			genToken = jwt.New(jwt.SigningMethodHS512)

			text := authz.LoginText(now.Add(-time.Minute))
			msg = core.LoginMessage{
				Address:   crypto.PubkeyToAddress(key.PublicKey),
				Message:   text,
				Signature: signLogin(text),
			}
		})

		JustBeforeEach(func() {
			token, err = financeGuard.Authenticate(ctx, msg)
		})

		When("the signature matches the address", func() {
			BeforeEach(func() {
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token for the address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					Subject: msg.Address.Hex(),
					TTL:     24 * time.Hour,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("signing the token fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("another key signed the message", func() {
			BeforeEach(func() {
				msg.Address = owner
			})

			It("should reject the login", func() {
				Expect(err).To(MatchError(core.ErrInvalidLogin))
				Expect(fakeJWT.SignCallCount()).To(BeZero())
			})
		})

		When("the message is stale", func() {
			BeforeEach(func() {
				msg.Message = authz.LoginText(now.Add(-10 * time.Minute))
				msg.Signature = signLogin(msg.Message)
			})

			It("should reject the login", func() {
				Expect(err).To(MatchError(core.ErrLoginExpired))
			})
		})

		When("the message is not a login message", func() {
			BeforeEach(func() {
				msg.Message = "hello"
				msg.Signature = signLogin(msg.Message)
			})

			It("should reject the login", func() {
				Expect(err).To(MatchError(core.ErrInvalidLogin))
			})
		})
	})

	Describe("AddTransaction", func() {
		var (
			in  ledger.Input
			tx  ledger.Transaction
			err error
		)

		BeforeEach(func() {
			in = ledger.Input{
				Kind:         ledger.Income,
				Description:  "Salary",
				Category:     "Salary",
				AmountHandle: fhe.Handle{1},
				AmountProof:  []byte{2},
			}
			fakeJWT.ValidateReturns(&tokenIssuer.SessionClaims{StandardClaims: jwt.StandardClaims{Subject: owner.Hex()}}, nil)
		})

		JustBeforeEach(func() {
			tx, err = financeGuard.AddTransaction(ctx, "token", in)
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				fakeLedger.AddTransactionReturns(ledger.Transaction{ID: 7, Owner: owner}, nil)
			})

			It("should append for the token subject", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.ID).To(Equal(uint64(7)))

				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("token"))
				_, gotOwner, gotInput := fakeLedger.AddTransactionArgsForCall(0)
				Expect(gotOwner).To(Equal(owner))
				Expect(gotInput).To(Equal(in))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			})

			It("should not touch the ledger", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
				Expect(fakeLedger.AddTransactionCallCount()).To(BeZero())
			})
		})

		When("the token subject is not an address", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(&tokenIssuer.SessionClaims{StandardClaims: jwt.StandardClaims{Subject: "alice"}}, nil)
			})

			It("should reject the call", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
			})
		})

		When("the ledger rejects the input", func() {
			BeforeEach(func() {
				fakeLedger.AddTransactionReturns(ledger.Transaction{}, ledger.ErrEmptyCategory)
			})

			It("should keep the ledger error", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidArgument))
			})
		})
	})

	Describe("Owner", func() {
		It("should reject an empty token", func() {
			_, err := financeGuard.Owner("")
			Expect(err).To(MatchError(core.ErrUnauthenticated))
			Expect(fakeJWT.ValidateCallCount()).To(BeZero())
		})
	})

	Describe("MonthlyTotals", func() {
		It("should return both handles", func() {
			fakeLedger.MonthlyIncomeReturns(fhe.Handle{1}, nil)
			fakeLedger.MonthlyExpenseReturns(fhe.Handle{2}, nil)

			totals, err := financeGuard.MonthlyTotals(ctx, owner, 202503)
			Expect(err).NotTo(HaveOccurred())
			Expect(totals).To(Equal(core.MonthlyTotals{
				YearMonth:        202503,
				EncryptedIncome:  fhe.Handle{1},
				EncryptedExpense: fhe.Handle{2},
			}))
		})

		It("should fail when a total cannot be read", func() {
			fakeLedger.MonthlyExpenseReturns(fhe.Handle{}, fakeErr)

			_, err := financeGuard.MonthlyTotals(ctx, owner, 202503)
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("Transaction", func() {
		It("should pass through out of range errors", func() {
			fakeLedger.TransactionReturns(ledger.Transaction{}, ledger.ErrIndexOutOfRange)

			_, err := financeGuard.Transaction(ctx, owner, 3)
			Expect(err).To(MatchError(ledger.ErrIndexOutOfRange))
			_, _, index := fakeLedger.TransactionArgsForCall(0)
			Expect(index).To(Equal(uint64(3)))
		})
	})

	Describe("YearMonth", func() {
		It("should bucket by UTC month", func() {
			Expect(financeGuard.YearMonth(now.Unix())).To(Equal(uint32(202503)))
		})
	})
})
