// dontrack opens the ledger database, seeds it on first run and prints the
// current platform figures. It is the local sandbox entry; the ledger itself
// is embedded as a library by whatever hosts the real value layer.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/momodiaobana/DontrackProject/config"
	"github.com/momodiaobana/DontrackProject/contract"
	"github.com/momodiaobana/DontrackProject/sdk"
	"github.com/momodiaobana/DontrackProject/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dontrack:", err)
		os.Exit(1)
	}
}

func run() error {
	// a local .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(cfg.Level())
	if cfg.LogPretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	st, err := store.Open(cfg.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	host := sdk.NewMockHost()
	ledger := contract.New(st, host, contract.WithLogger(logger))

	if _, err := ledger.GetGlobalStats(); errors.Is(err, contract.ErrNotInitialized) {
		if cfg.AdminAddress == "" {
			return errors.New("DONTRACK_ADMIN must be set on first run")
		}
		fee, err := contract.DecimalToAmount(cfg.RegistrationFee)
		if err != nil {
			return fmt.Errorf("DONTRACK_REGISTRATION_FEE: %w", err)
		}
		if err := ledger.Init(sdk.Address(cfg.AdminAddress), fee); err != nil {
			return err
		}
		logger.Info().Str("db", cfg.DatabasePath).Msg("ledger database seeded")
	}

	stats, err := ledger.GetGlobalStats()
	if err != nil {
		return err
	}
	out, err := stats.MarshalJSON()
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	for _, a := range ledger.ListAssociations() {
		logger.Info().
			Uint64("id", a.ID).
			Str("wallet", a.Wallet.String()).
			Str("status", a.Status.String()).
			Str("received", contract.AmountToDecimal(a.TotalReceived)).
			Msg(a.Name)
	}
	return st.Err()
}
