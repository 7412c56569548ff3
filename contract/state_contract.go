package contract

import (
	"strings"

	"github.com/momodiaobana/DontrackProject/sdk"
)

// -----------------------------------------------------------------------------
// Ledger Configuration State
// -----------------------------------------------------------------------------

// isInitialized returns true if the ledger config has been seeded.
func (l *Ledger) isInitialized() bool {
	ptr := l.state.Get(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// loadContractConfig loads the ledger configuration from state.
func (l *Ledger) loadContractConfig() *ContractConfig {
	ptr := l.state.Get(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeContractConfig(*ptr)
}

// saveContractConfig stores the ledger configuration to state.
func (l *Ledger) saveContractConfig(cfg *ContractConfig) {
	l.state.Set(ContractConfigKey, encodeContractConfig(cfg))
}

// -----------------------------------------------------------------------------
// Ledger Config Encoding
// -----------------------------------------------------------------------------

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: admin|paused|registrationFee
func encodeContractConfig(cfg *ContractConfig) string {
	pausedStr := "0"
	if cfg.Paused {
		pausedStr = "1"
	}
	return cfg.Admin.String() + "|" + pausedStr + "|" + amountToState(cfg.RegistrationFee)
}

// decodeContractConfig deserializes a pipe-delimited string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 3 {
		return nil
	}
	fee := parts[2]
	return &ContractConfig{
		Admin:           sdk.Address(parts[0]),
		Paused:          parts[1] == "1",
		RegistrationFee: amountFromState(&fee),
	}
}
