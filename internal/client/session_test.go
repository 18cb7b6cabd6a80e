package client_test

import (
	"time"

	"financeguard/internal/client"
	"financeguard/internal/ledger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Session", func() {
	var (
		session *client.Session
		txs     []ledger.Transaction
	)

	BeforeEach(func() {
		session = client.NewSession()
		march := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
		txs = []ledger.Transaction{
			{ID: 1, Kind: ledger.Income, CreatedAt: march},
			{ID: 2, Kind: ledger.Expense, CreatedAt: march.AddDate(0, 0, 1)},
			{ID: 3, Kind: ledger.Expense, CreatedAt: march.AddDate(0, 0, 2)},
			{ID: 4, Kind: ledger.Income, CreatedAt: march.AddDate(0, 1, 0)},
		}
	})

	It("should remember amounts by index", func() {
		session.Store(1, 5000)

		v, ok := session.Amount(1)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(uint32(5000)))

		_, ok = session.Amount(0)
		Expect(ok).To(BeFalse())
	})

	It("should forget everything on clear", func() {
		session.Store(0, 1)
		session.Clear()
		Expect(session.Len()).To(BeZero())
	})

	It("should total the decrypted amounts of the month", func() {
		session.Store(0, 250000)
		session.Store(1, 5000)
		session.Store(3, 999)

		Expect(session.MonthlyTotals(txs, 202503)).To(Equal(client.Totals{
			Income:    250000,
			Expense:   5000,
			Net:       245000,
			Decrypted: 2,
			Pending:   1,
		}))
	})

	It("should go negative when expenses exceed income", func() {
		session.Store(1, 300)
		session.Store(2, 200)

		totals := session.MonthlyTotals(txs, 202503)
		Expect(totals.Net).To(Equal(int64(-500)))
		Expect(totals.Pending).To(Equal(1))
	})
})
