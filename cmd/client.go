package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"financeguard/internal/client"
	"financeguard/internal/config"
	"financeguard/internal/fhe"
	"financeguard/internal/ledger"
	"financeguard/internal/relayer"
	"financeguard/pkg/log"

	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

var errUsage error = errors.New("usage: financeguard client <login|add|list|decrypt|summary> [flags]")

// app is one connected client session.
type app struct {
	logs      *zap.SugaredLogger
	out       io.Writer
	wallet    *client.KeyWallet
	ledger    *client.LedgerClient
	network   relayer.Network
	submitter *client.Submitter
	decrypter *client.Decrypter
	session   *client.Session
}

// Client runs one client command against a FinanceGuard server.
func Client(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.NewClient()
	if err != nil {
		return err
	}

	logger := log.NewZapLogger("financeguard-client", log.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	command, flags := args[0], args[1:]
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	yes := fs.Bool("yes", false, "approve every signature request without prompting")

	var run func(ctx context.Context, a *app) error
	switch command {
	case "login":
		run = func(ctx context.Context, a *app) error {
			fmt.Fprintf(a.out, "logged in as %s\n", a.wallet.Address().Hex())
			return nil
		}
	case "add":
		kind := fs.String("kind", "expense", "income or expense")
		description := fs.String("description", "", "transaction description")
		category := fs.String("category", "", "transaction category")
		amount := fs.String("amount", "", "amount in dollars, e.g. 12.50")
		run = func(ctx context.Context, a *app) error {
			k, err := parseKind(*kind)
			if err != nil {
				return err
			}
			tx, err := a.submitter.Submit(ctx, client.Draft{
				Kind:        k,
				Description: *description,
				Category:    *category,
				Amount:      *amount,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "added transaction %d (%s)\n", tx.ID, tx.AmountHandle.Hex())
			return nil
		}
	case "list":
		reveal := fs.Bool("decrypt", false, "decrypt every amount, one signature each, and total the current month")
		run = func(ctx context.Context, a *app) error {
			return listTransactions(ctx, a, *reveal)
		}
	case "decrypt":
		index := fs.Uint64("index", 0, "index of the transaction to decrypt")
		run = func(ctx context.Context, a *app) error {
			v, err := a.decrypter.DecryptTransaction(ctx, *index)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "transaction %d: %s\n", *index, client.FormatCents(int64(v)))
			return nil
		}
	case "summary":
		month := fs.String("month", "", "month as YYYYMM, defaults to the current month")
		run = func(ctx context.Context, a *app) error {
			ym, err := a.yearMonth(ctx, *month)
			if err != nil {
				return err
			}
			return summarize(ctx, a, ym)
		}
	default:
		return errUsage
	}

	if err := fs.Parse(flags); err != nil {
		return err
	}

	approve := client.AutoApprove
	if !*yes {
		approve = promptApprover(os.Stdin, os.Stderr)
	}

	a, err := connect(ctx, logger, cfg, approve)
	if err != nil {
		return err
	}
	return run(ctx, a)
}

func connect(ctx context.Context, logger *zap.SugaredLogger, cfg config.Client, approve client.Approver) (*app, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.WalletKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse wallet key: %w", err)
	}
	wallet := client.NewKeyWallet(key, approve)

	relayerClient := relayer.NewClient(cfg.ServerURL, nil)
	network, err := relayerClient.Network(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve network: %w", err)
	}

	ledgerClient := client.NewLedgerClient(cfg.ServerURL, nil)
	if err := ledgerClient.Login(ctx, wallet); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	logger.Debugw("connected",
		"server", cfg.ServerURL,
		"account", wallet.Address().Hex(),
		"contract", network.Contract.Hex(),
		"chain_id", network.Domain.ChainID,
	)

	session := client.NewSession()
	encryptor := fhe.NewEncryptor(network.PublicKey, relayerClient)

	return &app{
		logs:      logger,
		out:       os.Stdout,
		wallet:    wallet,
		ledger:    ledgerClient,
		network:   network,
		submitter: client.NewSubmitter(logger, wallet, encryptor, ledgerClient, network.Contract),
		decrypter: client.NewDecrypter(logger, wallet, relayerClient, ledgerClient, network.Domain, network.Contract, session),
		session:   session,
	}, nil
}

func listTransactions(ctx context.Context, a *app, reveal bool) error {
	txs, err := a.ledger.Transactions(ctx, a.wallet.Address())
	if err != nil {
		return err
	}

	if reveal {
		for i, tx := range txs {
			if _, err := a.decrypter.Decrypt(ctx, uint64(i), tx.AmountHandle); err != nil {
				return fmt.Errorf("decrypt transaction %d: %w", i, err)
			}
		}
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tDATE\tKIND\tCATEGORY\tDESCRIPTION\tAMOUNT")
	for i, tx := range txs {
		amount := "encrypted"
		if v, ok := a.session.Amount(uint64(i)); ok {
			amount = client.FormatCents(int64(v))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i, tx.CreatedAt.Format(time.DateOnly), tx.Kind, tx.Category, tx.Description, amount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !reveal {
		return nil
	}
	ym := ledger.YearMonth(time.Now())
	totals := a.session.MonthlyTotals(txs, ym)
	fmt.Fprintf(a.out, "\n%d/%02d  income %s  expense %s  net %s\n", ym/100, ym%100,
		client.FormatCents(int64(totals.Income)),
		client.FormatCents(int64(totals.Expense)),
		client.FormatCents(totals.Net),
	)
	return nil
}

func summarize(ctx context.Context, a *app, ym uint32) error {
	summary, err := a.decrypter.DecryptMonthly(ctx, ym)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d/%02d\n", ym/100, ym%100)
	fmt.Fprintf(a.out, "  income   %s\n", client.FormatCents(int64(summary.Income)))
	fmt.Fprintf(a.out, "  expense  %s\n", client.FormatCents(int64(summary.Expense)))
	fmt.Fprintf(a.out, "  net      %s\n", client.FormatCents(summary.Net))
	return nil
}

func (a *app) yearMonth(ctx context.Context, month string) (uint32, error) {
	if month == "" {
		return a.ledger.YearMonth(ctx, time.Now())
	}
	v, err := strconv.ParseUint(month, 10, 32)
	if err != nil || !ledger.ValidYearMonth(uint32(v)) {
		return 0, fmt.Errorf("invalid month %q, want YYYYMM", month)
	}
	return uint32(v), nil
}

func parseKind(s string) (ledger.Kind, error) {
	switch strings.ToLower(s) {
	case "income":
		return ledger.Income, nil
	case "expense":
		return ledger.Expense, nil
	default:
		return 0, fmt.Errorf("invalid kind %q, want income or expense", s)
	}
}

// promptApprover asks on out and reads a y/N answer from in.
func promptApprover(in io.Reader, out io.Writer) client.Approver {
	reader := bufio.NewReader(in)
	return func(ctx context.Context, prompt string) (bool, error) {
		fmt.Fprintf(out, "%s? [y/N] ", prompt)
		answer, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes", nil
	}
}
