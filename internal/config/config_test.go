package config_test

import (
	"os"
	"path/filepath"

	"financeguard/internal/config"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	const contract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

	setenv := func(key, value string) {
		GinkgoT().Setenv(key, value)
	}

	BeforeEach(func() {
		for _, key := range []string{
			"API_PORT", "JWT_SECRET", "CONTRACT_ADDRESS", "CHAIN_ID", "DECRYPTION_VERIFIER",
			"PAILLIER_BITS", "NOTIFY_WORKERS", "NATS_SUBJECT", "LOG_LEVEL",
		} {
			setenv(key, "")
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	Describe("NewApp", func() {
		When("the required variables are set", func() {
			BeforeEach(func() {
				setenv("API_PORT", "8080")
				setenv("JWT_SECRET", "secret")
				setenv("CONTRACT_ADDRESS", contract)
			})

			It("should fill in the defaults", func() {
				app, err := config.NewApp()
				Expect(err).NotTo(HaveOccurred())
				Expect(app.Port).To(Equal("8080"))
				Expect(app.ContractAddress).To(Equal(common.HexToAddress(contract)))
				Expect(app.ChainID).To(Equal(int64(31337)))
				Expect(app.DecryptionVerifier).To(Equal(app.ContractAddress))
				Expect(app.PaillierBits).To(Equal(2048))
				Expect(app.NotifyWorkers).To(Equal(4))
				Expect(app.NATSSubject).To(Equal("financeguard.ledger"))
				Expect(app.LogLevel).To(Equal("info"))
			})

			It("should reject a malformed chain id", func() {
				setenv("CHAIN_ID", "mainnet")
				_, err := config.NewApp()
				Expect(err).To(MatchError(ContainSubstring("CHAIN_ID")))
			})

			It("should reject a malformed contract address", func() {
				setenv("CONTRACT_ADDRESS", "0x123")
				_, err := config.NewApp()
				Expect(err).To(MatchError(ContainSubstring("CONTRACT_ADDRESS")))
			})
		})

		It("should require API_PORT", func() {
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("API_PORT")))
		})
	})

	Describe("LoadDotEnv", func() {
		It("should ignore a missing file", func() {
			Expect(config.LoadDotEnv(filepath.Join(GinkgoT().TempDir(), ".env"))).To(Succeed())
		})

		It("should not override variables already set", func() {
			path := filepath.Join(GinkgoT().TempDir(), ".env")
			Expect(os.WriteFile(path, []byte("API_PORT=9999\nJWT_SECRET=from-file\n"), 0o600)).To(Succeed())
			setenv("API_PORT", "8080")

			Expect(config.LoadDotEnv(path)).To(Succeed())
			Expect(os.Getenv("API_PORT")).To(Equal("8080"))
			Expect(os.Getenv("JWT_SECRET")).To(Equal("from-file"))
			Expect(os.Unsetenv("JWT_SECRET")).To(Succeed())
		})
	})
})
