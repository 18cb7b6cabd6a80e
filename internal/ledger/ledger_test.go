package ledger_test

import (
	"context"
	"crypto/rand"
	"errors"
	"sync"
	"time"

	"financeguard/internal/fhe"
	"financeguard/internal/ledger"
	"financeguard/internal/ledger/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Ledger", func() {
	var (
		ctx          context.Context
		key          *fhe.PrivateKey
		coprocessor  *fhe.Coprocessor
		store        *ledger.MemoryStore
		fakeNotifier *fake.Notifier
		l            *ledger.Ledger
		contract     common.Address
		alice        common.Address
		bob          common.Address
		now          time.Time
	)

	encrypt := func(v uint32, user common.Address) ledger.Input {
		c, err := key.Encrypt(rand.Reader, v)
		Expect(err).NotTo(HaveOccurred())
		handle, proof, err := coprocessor.RegisterInput(ctx, key.Encode(c), contract, user)
		Expect(err).NotTo(HaveOccurred())
		return ledger.Input{
			AmountHandle:   handle,
			AmountProof:    proof,
			EncryptOnChain: true,
		}
	}

	add := func(user common.Address, kind ledger.Kind, v uint32, description, category string) ledger.Transaction {
		in := encrypt(v, user)
		in.Kind = kind
		in.Description = description
		in.Category = category
		tx, err := l.AddTransaction(ctx, user, in)
		Expect(err).NotTo(HaveOccurred())
		return tx
	}

	decrypt := func(h fhe.Handle) uint32 {
		c, err := coprocessor.Ciphertext(ctx, h)
		Expect(err).NotTo(HaveOccurred())
		m, err := key.Decrypt(c)
		Expect(err).NotTo(HaveOccurred())
		return m
	}

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		key, err = fhe.GenerateKey(rand.Reader, 512)
		Expect(err).NotTo(HaveOccurred())
		signer, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		coprocessor = fhe.NewCoprocessor(zap.NewNop().Sugar(), &key.PublicKey, signer, fhe.NewMemoryStore())

		contract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
		alice = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
		bob = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
		now = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

		store = ledger.NewMemoryStore()
		fakeNotifier = new(fake.Notifier)
		l, err = ledger.New(ctx, zap.NewNop().Sugar(), store, coprocessor, fakeNotifier, contract,
			ledger.WithClock(func() time.Time { return now }),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("AddTransaction", func() {
		It("should record income and expense in the same month", func() {
			add(alice, ledger.Income, 250000, "Salary", "Salary")
			add(alice, ledger.Expense, 5000, "Groceries", "Food")

			count, err := l.TransactionCount(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(uint64(2)))

			income, err := l.MonthlyIncome(ctx, alice, 202503)
			Expect(err).NotTo(HaveOccurred())
			Expect(decrypt(income)).To(Equal(uint32(250000)))

			expense, err := l.MonthlyExpense(ctx, alice, 202503)
			Expect(err).NotTo(HaveOccurred())
			Expect(decrypt(expense)).To(Equal(uint32(5000)))
		})

		It("should preserve insertion order and sum the month", func() {
			first := add(alice, ledger.Income, 10000, "Freelance", "Freelance")
			second := add(alice, ledger.Income, 20000, "Bonus", "Salary")
			third := add(alice, ledger.Income, 30000, "Dividends", "Investment")

			txs, err := l.Transactions(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(txs).To(Equal([]ledger.Transaction{first, second, third}))
			Expect(first.ID).To(BeNumerically("<", second.ID))
			Expect(second.ID).To(BeNumerically("<", third.ID))

			for i, want := range txs {
				got, err := l.Transaction(ctx, alice, uint64(i))
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(want))
			}

			income, err := l.MonthlyIncome(ctx, alice, 202503)
			Expect(err).NotTo(HaveOccurred())
			Expect(decrypt(income)).To(Equal(uint32(60000)))
		})

		It("should keep owners apart", func() {
			a := add(alice, ledger.Income, 100000, "Salary", "Salary")
			b := add(bob, ledger.Income, 50000, "Salary", "Salary")

			Expect(l.TransactionCount(ctx, alice)).To(Equal(uint64(1)))
			Expect(l.TransactionCount(ctx, bob)).To(Equal(uint64(1)))
			Expect(decrypt(a.AmountHandle)).To(Equal(uint32(100000)))
			Expect(decrypt(b.AmountHandle)).To(Equal(uint32(50000)))

			allowed, err := coprocessor.IsAllowed(ctx, b.AmountHandle, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(allowed).To(BeFalse())
		})

		It("should grant the owner and the ledger access to the amount and the total", func() {
			tx := add(alice, ledger.Expense, 4200, "Coffee", "Food")
			total, err := l.MonthlyExpense(ctx, alice, 202503)
			Expect(err).NotTo(HaveOccurred())

			for _, h := range []fhe.Handle{tx.AmountHandle, total} {
				for _, account := range []common.Address{alice, contract} {
					allowed, err := coprocessor.IsAllowed(ctx, h, account)
					Expect(err).NotTo(HaveOccurred())
					Expect(allowed).To(BeTrue())
				}
			}
		})

		It("should stamp metadata and publish it without the amount", func() {
			tx := add(alice, ledger.Expense, 5000, "Groceries", "Food")

			Expect(tx.CreatedAt).To(Equal(now))
			Expect(tx.IsEncrypted).To(BeTrue())
			Expect(tx.Owner).To(Equal(alice))

			Expect(fakeNotifier.NotifyCallCount()).To(Equal(1))
			_, event := fakeNotifier.NotifyArgsForCall(0)
			Expect(event).To(Equal(ledger.TransactionAdded{
				Owner:         alice,
				TransactionID: tx.ID,
				Kind:          ledger.Expense,
				Description:   "Groceries",
				Category:      "Food",
				CreatedAt:     now,
				IsEncrypted:   true,
			}))
		})

		It("should bucket by the month of the write", func() {
			add(alice, ledger.Income, 1000, "March", "Salary")
			now = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
			add(alice, ledger.Income, 2000, "April", "Salary")

			march, err := l.MonthlyIncome(ctx, alice, 202503)
			Expect(err).NotTo(HaveOccurred())
			april, err := l.MonthlyIncome(ctx, alice, 202504)
			Expect(err).NotTo(HaveOccurred())

			Expect(decrypt(march)).To(Equal(uint32(1000)))
			Expect(decrypt(april)).To(Equal(uint32(2000)))
		})

		It("should serialize concurrent writers", func() {
			const writers = 50
			inputs := make([]ledger.Input, writers)
			for i := range inputs {
				inputs[i] = encrypt(10, alice)
				inputs[i].Kind = ledger.Income
				inputs[i].Description = "Tip"
				inputs[i].Category = "Side"
			}

			var wg sync.WaitGroup
			errs := make(chan error, writers)
			for _, in := range inputs {
				wg.Add(1)
				go func(in ledger.Input) {
					defer GinkgoRecover()
					defer wg.Done()
					_, err := l.AddTransaction(ctx, alice, in)
					errs <- err
				}(in)
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				Expect(err).NotTo(HaveOccurred())
			}

			txs, err := l.Transactions(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(txs).To(HaveLen(writers))
			for i, tx := range txs {
				Expect(tx.ID).To(Equal(uint64(i + 1)))
			}

			income, err := l.MonthlyIncome(ctx, alice, 202503)
			Expect(err).NotTo(HaveOccurred())
			Expect(decrypt(income)).To(Equal(uint32(writers * 10)))
			Expect(fakeNotifier.NotifyCallCount()).To(Equal(writers))
		})

		When("the store fails to commit", func() {
			var (
				fakeStore *fake.Store
				before    ledger.Bucket
			)

			BeforeEach(func() {
				fakeStore = new(fake.Store)
				fakeStore.LastTransactionIDStub = store.LastTransactionID
				fakeStore.TransactionCountStub = store.TransactionCount
				fakeStore.TransactionsStub = store.Transactions
				fakeStore.TransactionAtStub = store.TransactionAt
				fakeStore.BucketStub = store.Bucket
				fakeStore.CommitStub = func(ctx context.Context, tx ledger.Transaction, bucket ledger.Bucket) error {
					if fakeStore.CommitCallCount() == 2 {
						return errors.New("disk full")
					}
					return store.Commit(ctx, tx, bucket)
				}

				var err error
				l, err = ledger.New(ctx, zap.NewNop().Sugar(), fakeStore, coprocessor, fakeNotifier, contract,
					ledger.WithClock(func() time.Time { return now }),
				)
				Expect(err).NotTo(HaveOccurred())

				add(alice, ledger.Income, 100, "Salary", "Work")

				var found bool
				before, found, err = store.Bucket(ctx, alice, 202503)
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeTrue())
			})

			It("should keep the ledger and bucket as they were", func() {
				in := encrypt(700, alice)
				in.Kind = ledger.Income
				in.Description = "Bonus"
				in.Category = "Work"

				_, err := l.AddTransaction(ctx, alice, in)
				Expect(err).To(MatchError(ContainSubstring("disk full")))

				count, err := l.TransactionCount(ctx, alice)
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(uint64(1)))

				after, _, err := store.Bucket(ctx, alice, 202503)
				Expect(err).NotTo(HaveOccurred())
				Expect(after).To(Equal(before))
				Expect(decrypt(after.IncomeTotal)).To(Equal(uint32(100)))
				Expect(fakeNotifier.NotifyCallCount()).To(Equal(1))
			})

			It("should reuse the id on the next successful write", func() {
				in := encrypt(700, alice)
				in.Kind = ledger.Income
				in.Description = "Bonus"
				in.Category = "Work"
				_, err := l.AddTransaction(ctx, alice, in)
				Expect(err).To(HaveOccurred())

				tx := add(alice, ledger.Expense, 40, "Lunch", "Food")
				Expect(tx.ID).To(Equal(uint64(2)))
				Expect(fakeStore.CommitCallCount()).To(Equal(3))
				_, committed, _ := fakeStore.CommitArgsForCall(2)
				Expect(committed.ID).To(Equal(uint64(2)))
			})
		})

		When("the input is invalid", func() {
			var (
				in  ledger.Input
				err error
			)

			BeforeEach(func() {
				in = encrypt(5000, alice)
				in.Kind = ledger.Expense
				in.Description = "Groceries"
				in.Category = "Food"
			})

			JustBeforeEach(func() {
				_, err = l.AddTransaction(ctx, alice, in)
			})

			AfterEach(func() {
				Expect(l.TransactionCount(ctx, alice)).To(BeZero())
				_, found, bucketErr := store.Bucket(ctx, alice, 202503)
				Expect(bucketErr).NotTo(HaveOccurred())
				Expect(found).To(BeFalse())
				Expect(fakeNotifier.NotifyCallCount()).To(BeZero())
			})

			When("the description is empty", func() {
				BeforeEach(func() {
					in.Description = ""
				})

				It("should fail with an invalid argument", func() {
					Expect(err).To(MatchError(ledger.ErrEmptyDescription))
					Expect(err).To(MatchError(ledger.ErrInvalidArgument))
				})
			})

			When("the category is empty", func() {
				BeforeEach(func() {
					in.Category = ""
				})

				It("should fail with an invalid argument", func() {
					Expect(err).To(MatchError(ledger.ErrEmptyCategory))
					Expect(err).To(MatchError(ledger.ErrInvalidArgument))
				})
			})

			When("the kind is unknown", func() {
				BeforeEach(func() {
					in.Kind = ledger.Kind(7)
				})

				It("should fail with an invalid argument", func() {
					Expect(err).To(MatchError(ledger.ErrUnknownKind))
				})
			})

			When("the proof was issued to someone else", func() {
				BeforeEach(func() {
					other := encrypt(5000, bob)
					in.AmountHandle = other.AmountHandle
					in.AmountProof = other.AmountProof
				})

				It("should fail with an invalid ciphertext", func() {
					Expect(err).To(MatchError(ledger.ErrInvalidCiphertext))
				})
			})

			When("the proof is missing", func() {
				BeforeEach(func() {
					in.AmountProof = nil
				})

				It("should fail with an invalid ciphertext", func() {
					Expect(err).To(MatchError(ledger.ErrInvalidCiphertext))
				})
			})

			When("the amount handle is missing", func() {
				BeforeEach(func() {
					in.AmountHandle = fhe.Handle{}
				})

				It("should fail with an invalid ciphertext", func() {
					Expect(err).To(MatchError(ledger.ErrInvalidCiphertext))
				})
			})
		})
	})

	Describe("Transaction", func() {
		It("should fail past the end of the ledger", func() {
			add(alice, ledger.Income, 1, "Salary", "Salary")

			tx, err := l.Transaction(ctx, alice, 1)
			Expect(err).To(MatchError(ledger.ErrIndexOutOfRange))
			Expect(tx).To(BeZero())
		})

		It("should fail for an owner without transactions", func() {
			_, err := l.Transaction(ctx, bob, 0)
			Expect(err).To(MatchError(ledger.ErrIndexOutOfRange))
		})
	})

	Describe("Transactions", func() {
		It("should return an empty list for a new owner", func() {
			txs, err := l.Transactions(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(txs).NotTo(BeNil())
			Expect(txs).To(BeEmpty())
		})
	})

	Describe("MonthlyIncome", func() {
		It("should return the encrypted zero without creating a bucket", func() {
			income, err := l.MonthlyIncome(ctx, bob, 202401)
			Expect(err).NotTo(HaveOccurred())
			expense, err := l.MonthlyExpense(ctx, bob, 202401)
			Expect(err).NotTo(HaveOccurred())

			Expect(income).To(Equal(expense))
			Expect(decrypt(income)).To(BeZero())

			_, found, err := store.Bucket(ctx, bob, 202401)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("should expose the same zero a fresh bucket starts from", func() {
			before, err := l.MonthlyExpense(ctx, alice, 202503)
			Expect(err).NotTo(HaveOccurred())
			add(alice, ledger.Income, 700, "Refund", "Other")

			after, err := l.MonthlyExpense(ctx, alice, 202503)
			Expect(err).NotTo(HaveOccurred())
			Expect(after).To(Equal(before))
		})
	})

	Describe("New", func() {
		It("should continue ids from the store", func() {
			add(alice, ledger.Income, 1, "Salary", "Salary")
			last := add(alice, ledger.Income, 1, "Salary", "Salary")

			reopened, err := ledger.New(ctx, zap.NewNop().Sugar(), store, coprocessor, nil, contract)
			Expect(err).NotTo(HaveOccurred())

			in := encrypt(1, bob)
			in.Description = "Gift"
			in.Category = "Other"
			tx, err := reopened.AddTransaction(ctx, bob, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.ID).To(Equal(last.ID + 1))
		})
	})
})

var _ = Describe("YearMonth", func() {
	It("should use the UTC calendar", func() {
		t := time.Date(2025, time.January, 1, 0, 30, 0, 0, time.FixedZone("CET", 3600))
		Expect(ledger.YearMonth(t)).To(Equal(uint32(202412)))
	})

	It("should agree between the time and unix forms", func() {
		t := time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)
		Expect(ledger.YearMonthOf(t.Unix())).To(Equal(ledger.YearMonth(t)))
		Expect(ledger.YearMonthOf(t.Unix())).To(Equal(uint32(202402)))
	})

	It("should never decrease as time moves forward", func() {
		start := time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC)
		prev := ledger.YearMonth(start)
		for d := 1; d < 120; d++ {
			next := ledger.YearMonth(start.AddDate(0, 0, d))
			Expect(next).To(BeNumerically(">=", prev))
			prev = next
		}
	})

	It("should stay monotonic across the edges of the timestamp range", func() {
		stamps := []int64{
			-62167219201, -62167219200, -1, 0, 1,
			ledger.MaxTimestamp - 1, ledger.MaxTimestamp, ledger.MaxTimestamp + 1, 1 << 52,
		}
		prev := ledger.YearMonthOf(-1 << 52)
		for _, ts := range stamps {
			next := ledger.YearMonthOf(ts)
			Expect(next).To(BeNumerically(">=", prev), "timestamp %d", ts)
			prev = next
		}
	})

	It("should clamp timestamps outside the unsigned range", func() {
		Expect(ledger.YearMonthOf(-62167219201)).To(Equal(uint32(197001)))
		Expect(ledger.YearMonthOf(0)).To(Equal(uint32(197001)))
		Expect(ledger.YearMonthOf(ledger.MaxTimestamp)).To(Equal(uint32(4294967212)))
		Expect(ledger.YearMonthOf(ledger.MaxTimestamp + 1)).To(Equal(uint32(4294967212)))
		Expect(ledger.ValidTimestamp(-1)).To(BeFalse())
		Expect(ledger.ValidTimestamp(ledger.MaxTimestamp + 1)).To(BeFalse())
		Expect(ledger.ValidTimestamp(ledger.MaxTimestamp)).To(BeTrue())
	})

	It("should validate bucket keys", func() {
		Expect(ledger.ValidYearMonth(202512)).To(BeTrue())
		Expect(ledger.ValidYearMonth(202513)).To(BeFalse())
		Expect(ledger.ValidYearMonth(202500)).To(BeFalse())
	})
})
