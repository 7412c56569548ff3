package contract_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momodiaobana/DontrackProject/contract"
	"github.com/momodiaobana/DontrackProject/sdk"
)

const adminAddress = sdk.Address("celo:dontrack.admin")
const assocWallet = sdk.Address("celo:redcross")
const otherAssocWallet = sdk.Address("celo:seasheperd")
const donorAlice = sdk.Address("celo:alice")
const donorBob = sdk.Address("celo:bob")
const outsider = sdk.Address("celo:outsider")

// LedgerTest bundles the ledger with its mock collaborators so tests can
// move the clock, break transfers and inspect balances directly.
type LedgerTest struct {
	Ledger *contract.Ledger
	Host   *sdk.MockHost
	State  *contract.MemoryState
	Clock  *clock.Mock
}

// SetupLedgerTest builds an initialized ledger with funded wallets and a
// registration fee of 1 token.
func SetupLedgerTest(t *testing.T) *LedgerTest {
	state := contract.NewMemoryState()
	host := sdk.NewMockHost()
	mock := clock.NewMock()
	mock.Set(time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC))

	ledger := contract.New(state, host, contract.WithClock(mock))
	require.NoError(t, ledger.Init(adminAddress, contract.Tokens(1)))

	for _, w := range []sdk.Address{assocWallet, otherAssocWallet, donorAlice, donorBob, outsider} {
		host.Deposit(w, contract.Tokens(100_000))
	}
	return &LedgerTest{Ledger: ledger, Host: host, State: state, Clock: mock}
}

// RegisterVerified registers an association for the wallet and verifies it.
func (lt *LedgerTest) RegisterVerified(t *testing.T, wallet sdk.Address, name string) uint64 {
	id, err := lt.Ledger.RegisterAssociation(wallet, contract.RegisterAssociationArgs{
		Name:    name,
		FeePaid: contract.Tokens(1),
	})
	require.NoError(t, err)
	require.NoError(t, lt.Ledger.VerifyAssociation(adminAddress, id))
	return id
}

// OpenCampaign creates a 30 day campaign for the wallet's association.
func (lt *LedgerTest) OpenCampaign(t *testing.T, wallet sdk.Address, title string, goal int64) uint64 {
	id, err := lt.Ledger.CreateCampaign(wallet, contract.CreateCampaignArgs{
		Title:    title,
		Goal:     contract.Tokens(goal),
		Duration: 86400 * 30,
	})
	require.NoError(t, err)
	return id
}

// AssertEventLogged checks the host event stream contains the exact line.
func (lt *LedgerTest) AssertEventLogged(t *testing.T, line string) {
	assert.Contains(t, lt.Host.Lines(), line)
}
