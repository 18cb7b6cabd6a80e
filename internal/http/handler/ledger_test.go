package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"financeguard/internal/core"
	"financeguard/internal/fhe"
	"financeguard/internal/http/handler"
	"financeguard/internal/http/handler/fake"
	"financeguard/internal/http/payload"
	"financeguard/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("LedgerHandler", func() {
	var (
		lh            *handler.LedgerHandler
		fakeService   *fake.LedgerService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		owner         common.Address
		stored        ledger.Transaction
		testToken     string
		fakeErr       error
	)

	decode := func(data any) payload.Envelope[json.RawMessage] {
		var env payload.Envelope[json.RawMessage]
		Expect(json.NewDecoder(w.Body).Decode(&env)).To(Succeed())
		if data != nil {
			Expect(json.Unmarshal(env.Data, data)).To(Succeed())
		}
		return env
	}

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		owner = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
		stored = ledger.Transaction{
			ID:           3,
			Owner:        owner,
			Kind:         ledger.Expense,
			Description:  "Groceries",
			Category:     "Food",
			AmountHandle: fhe.Handle{0x01},
			CreatedAt:    time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC),
			IsEncrypted:  true,
		}

		fakeService = new(fake.LedgerService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, obj any) error {
			return payload.Decoder{}.DecodeJSONPayload(r, obj)
		}

		w = httptest.NewRecorder()
		lh = handler.NewLedgerHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			fakeService.AuthenticateReturns(testToken, nil)
			body := fmt.Sprintf(`{"address":%q,"message":"FinanceGuard login: 1700000000","signature":"0x0102"}`, owner.Hex())
			req = httptest.NewRequest("POST", "/ledger/authenticate", strings.NewReader(body))
		})

		JustBeforeEach(func() {
			lh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var auth payload.AuthResponse
				decode(&auth)
				Expect(auth.Token).To(Equal(testToken))

				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg.Address).To(Equal(owner))
				Expect(msg.Signature).To(Equal([]byte{1, 2}))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
				fakeValidator.DecodeJSONPayloadStub = nil
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the signature does not match", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrInvalidLogin)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should hide the detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleAddTransaction", func() {
		var body string

		BeforeEach(func() {
			fakeService.AddTransactionReturns(stored, nil)
			body = `{"transactionType":1,"description":"Groceries","encryptedAmount":"` + fhe.Handle{0x01}.Hex() +
				`","inputProof":"0xabcd","category":"Food","encryptOnChain":true}`
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/ledger/transactions", strings.NewReader(body))
			req.Header.Set("AUTH_TOKEN", testToken)
			lh.HandleAddTransaction(w, req)
		})

		It("should add the transaction for the token holder", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var tx payload.Transaction
			decode(&tx)
			Expect(tx.ID).To(Equal(uint64(3)))
			Expect(tx.User).To(Equal(owner.Hex()))

			_, token, in := fakeService.AddTransactionArgsForCall(0)
			Expect(token).To(Equal(testToken))
			Expect(in.Kind).To(Equal(ledger.Expense))
			Expect(in.AmountHandle).To(Equal(fhe.Handle{0x01}))
			Expect(in.AmountProof).To(Equal([]byte{0xab, 0xcd}))
		})

		When("the ledger rejects the input", func() {
			BeforeEach(func() {
				fakeService.AddTransactionReturns(ledger.Transaction{}, fmt.Errorf("add transaction: %w", ledger.ErrInvalidCiphertext))
			})

			It("should return 400 naming the ciphertext", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decode(nil).Error).To(ContainSubstring(ledger.ErrInvalidCiphertext.Error()))
			})
		})

		When("the description is empty", func() {
			BeforeEach(func() {
				fakeService.AddTransactionReturns(ledger.Transaction{}, ledger.ErrEmptyDescription)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeService.AddTransactionReturns(ledger.Transaction{}, core.ErrUnauthenticated)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the amount handle is malformed", func() {
			BeforeEach(func() {
				body = `{"transactionType":1,"description":"x","encryptedAmount":"0x12","inputProof":"0xabcd","category":"y"}`
			})

			It("should return 400 without calling the ledger", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AddTransactionCallCount()).To(BeZero())
			})
		})

		When("the kind is unknown", func() {
			BeforeEach(func() {
				body = strings.Replace(body, `"transactionType":1`, `"transactionType":2`, 1)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AddTransactionCallCount()).To(BeZero())
			})
		})
	})

	It("should require AUTH_TOKEN to add a transaction", func() {
		req = httptest.NewRequest("POST", "/ledger/transactions", strings.NewReader(`{}`))
		lh.HandleAddTransaction(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(BeZero())
	})

	Describe("HandleGetUserTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/ledger/users/"+owner.Hex()+"/transactions", nil)
			req.SetPathValue("owner", owner.Hex())
		})

		JustBeforeEach(func() {
			lh.HandleGetUserTransactions(w, req)
		})

		When("the owner has transactions", func() {
			BeforeEach(func() {
				fakeService.UserTransactionsReturns([]ledger.Transaction{stored}, nil)
			})

			It("should list them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var list payload.TransactionList
				decode(&list)
				Expect(list.Transactions).To(HaveLen(1))
				Expect(list.Transactions[0].EncryptedAmount).To(Equal(stored.AmountHandle.Hex()))
				Expect(list.Transactions[0].Timestamp).To(Equal(stored.CreatedAt.Unix()))
			})
		})

		When("the owner has none", func() {
			BeforeEach(func() {
				fakeService.UserTransactionsReturns([]ledger.Transaction{}, nil)
			})

			It("should return an empty list", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var list payload.TransactionList
				decode(&list)
				Expect(list.Transactions).NotTo(BeNil())
				Expect(list.Transactions).To(BeEmpty())
			})
		})

		When("the owner is not an address", func() {
			BeforeEach(func() {
				req.SetPathValue("owner", "alice")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UserTransactionsCallCount()).To(BeZero())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.UserTransactionsReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetTransactionCount", func() {
		It("should return the count", func() {
			fakeService.TransactionCountReturns(4, nil)
			req = httptest.NewRequest("GET", "/ledger/users/"+owner.Hex()+"/transactions/count", nil)
			req.SetPathValue("owner", owner.Hex())

			lh.HandleGetTransactionCount(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var count payload.TransactionCount
			decode(&count)
			Expect(count.Count).To(Equal(uint64(4)))
		})
	})

	Describe("HandleGetTransaction", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/ledger/users/"+owner.Hex()+"/transactions/0", nil)
			req.SetPathValue("owner", owner.Hex())
			req.SetPathValue("index", "0")
			fakeService.TransactionReturns(stored, nil)
		})

		JustBeforeEach(func() {
			lh.HandleGetTransaction(w, req)
		})

		It("should return the transaction at the index", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var tx payload.Transaction
			decode(&tx)
			Expect(tx.ID).To(Equal(stored.ID))

			_, gotOwner, index := fakeService.TransactionArgsForCall(0)
			Expect(gotOwner).To(Equal(owner))
			Expect(index).To(BeZero())
		})

		When("the index is out of range", func() {
			BeforeEach(func() {
				fakeService.TransactionReturns(ledger.Transaction{}, ledger.ErrIndexOutOfRange)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the index is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("index", "-1")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleGetMonthlyTotals", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/ledger/users/"+owner.Hex()+"/monthly/202501", nil)
			req.SetPathValue("owner", owner.Hex())
			req.SetPathValue("yearMonth", "202501")
			fakeService.MonthlyTotalsReturns(core.MonthlyTotals{
				YearMonth:        202501,
				EncryptedIncome:  fhe.Handle{0x0a},
				EncryptedExpense: fhe.Handle{0x0b},
			}, nil)
		})

		JustBeforeEach(func() {
			lh.HandleGetMonthlyTotals(w, req)
		})

		It("should return both handles", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var totals payload.MonthlyTotals
			decode(&totals)
			Expect(totals.EncryptedIncome).To(Equal(fhe.Handle{0x0a}.Hex()))
			Expect(totals.EncryptedExpense).To(Equal(fhe.Handle{0x0b}.Hex()))
		})

		When("the key names no calendar month", func() {
			BeforeEach(func() {
				req.SetPathValue("yearMonth", "202513")
				fakeService.MonthlyTotalsReturns(core.MonthlyTotals{
					YearMonth:        202513,
					EncryptedIncome:  fhe.Handle{0x00, 0x01},
					EncryptedExpense: fhe.Handle{0x00, 0x01},
				}, nil)
			})

			It("should answer with the totals of an empty month", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, ym := fakeService.MonthlyTotalsArgsForCall(0)
				Expect(ym).To(Equal(uint32(202513)))

				var totals payload.MonthlyTotals
				decode(&totals)
				Expect(totals.EncryptedIncome).To(Equal(totals.EncryptedExpense))
			})
		})

		When("the key is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("yearMonth", "2025-01")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.MonthlyTotalsCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleGetYearMonth", func() {
		It("should convert the timestamp", func() {
			fakeService.YearMonthReturns(202503)
			req = httptest.NewRequest("GET", "/ledger/year-month?timestamp=1741000000", nil)

			lh.HandleGetYearMonth(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var ym payload.YearMonth
			decode(&ym)
			Expect(ym.YearMonth).To(Equal(uint32(202503)))
			Expect(fakeService.YearMonthArgsForCall(0)).To(Equal(int64(1741000000)))
		})

		It("should reject a missing timestamp", func() {
			req = httptest.NewRequest("GET", "/ledger/year-month", nil)
			lh.HandleGetYearMonth(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		DescribeTable("should reject timestamps outside the unsigned range",
			func(timestamp string) {
				req = httptest.NewRequest("GET", "/ledger/year-month?timestamp="+timestamp, nil)
				lh.HandleGetYearMonth(w, req)
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.YearMonthCallCount()).To(BeZero())
			},
			Entry("before the epoch", "-1"),
			Entry("before year zero", "-62167219201"),
			Entry("past the last representable month", strconv.FormatInt(ledger.MaxTimestamp+1, 10)),
		)

		It("should accept both edges of the range", func() {
			for _, ts := range []int64{0, ledger.MaxTimestamp} {
				req = httptest.NewRequest("GET", "/ledger/year-month?timestamp="+strconv.FormatInt(ts, 10), nil)
				lh.HandleGetYearMonth(httptest.NewRecorder(), req)
			}
			Expect(fakeService.YearMonthCallCount()).To(Equal(2))
			Expect(fakeService.YearMonthArgsForCall(1)).To(Equal(ledger.MaxTimestamp))
		})
	})

	It("should route every endpoint through Register", func() {
		mux := http.NewServeMux()
		lh.Register(mux)
		fakeService.TransactionCountReturns(2, nil)

		req = httptest.NewRequest("GET", "/ledger/users/"+owner.Hex()+"/transactions/count", nil)
		mux.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(fakeService.TransactionCountCallCount()).To(Equal(1))
		Expect(fakeService.TransactionCallCount()).To(BeZero())
	})
})
