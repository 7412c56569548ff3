package contract_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momodiaobana/DontrackProject/contract"
	"github.com/momodiaobana/DontrackProject/sdk"
)

func TestInitOnlyOnce(t *testing.T) {
	lt := SetupLedgerTest(t)

	err := lt.Ledger.Init(adminAddress, contract.Tokens(2))
	assert.ErrorIs(t, err, contract.ErrAlreadyInitialized)
}

func TestUninitializedLedger(t *testing.T) {
	ledger := contract.New(contract.NewMemoryState(), sdk.NewMockHost())

	_, err := ledger.RegisterAssociation(assocWallet, contract.RegisterAssociationArgs{
		Name:    "Red Cross",
		FeePaid: contract.Tokens(1),
	})
	assert.ErrorIs(t, err, contract.ErrNotInitialized)
}

func TestPauseGatesMutations(t *testing.T) {
	lt := SetupLedgerTest(t)
	assocID := lt.RegisterVerified(t, assocWallet, "Red Cross")
	campID := lt.OpenCampaign(t, assocWallet, "Winter Relief", 500)
	_, err := lt.Ledger.Donate(donorAlice, campID, contract.Tokens(10), "")
	require.NoError(t, err)

	require.NoError(t, lt.Ledger.Pause(adminAddress))
	lt.AssertEventLogged(t, "sp|by:celo:dontrack.admin")

	_, err = lt.Ledger.RegisterAssociation(outsider, contract.RegisterAssociationArgs{
		Name:    "Late Entry",
		FeePaid: contract.Tokens(1),
	})
	assert.ErrorIs(t, err, contract.ErrSystemPaused)

	_, err = lt.Ledger.CreateCampaign(assocWallet, contract.CreateCampaignArgs{
		Title:    "Frozen",
		Goal:     contract.Tokens(10),
		Duration: 86400 * 30,
	})
	assert.ErrorIs(t, err, contract.ErrSystemPaused)

	_, err = lt.Ledger.Donate(donorAlice, campID, contract.Tokens(1), "")
	assert.ErrorIs(t, err, contract.ErrSystemPaused)

	_, err = lt.Ledger.RecordExpense(assocWallet, campID, contract.Tokens(1), "blankets", "")
	assert.ErrorIs(t, err, contract.ErrSystemPaused)

	err = lt.Ledger.WithdrawFunds(assocWallet, campID, contract.Tokens(1))
	assert.ErrorIs(t, err, contract.ErrSystemPaused)

	assert.ErrorIs(t, lt.Ledger.VerifyAssociation(adminAddress, assocID), contract.ErrSystemPaused)

	// reads still work while paused
	_, err = lt.Ledger.GetCampaign(campID)
	assert.NoError(t, err)

	require.NoError(t, lt.Ledger.Unpause(adminAddress))
	_, err = lt.Ledger.Donate(donorAlice, campID, contract.Tokens(1), "")
	assert.NoError(t, err)
}

func TestPauseAdminOnly(t *testing.T) {
	lt := SetupLedgerTest(t)

	assert.ErrorIs(t, lt.Ledger.Pause(outsider), contract.ErrUnauthorized)

	// pausing twice stays a no-op
	require.NoError(t, lt.Ledger.Pause(adminAddress))
	require.NoError(t, lt.Ledger.Pause(adminAddress))
	paused, err := lt.Ledger.Paused()
	require.NoError(t, err)
	assert.True(t, paused)
}

func TestSetAdminWorksWhilePaused(t *testing.T) {
	lt := SetupLedgerTest(t)
	require.NoError(t, lt.Ledger.Pause(adminAddress))

	newAdmin := sdk.Address("celo:successor")
	require.NoError(t, lt.Ledger.SetAdmin(adminAddress, newAdmin))
	lt.AssertEventLogged(t, "ot|old:celo:dontrack.admin|new:celo:successor")

	// the old admin lost the role
	assert.ErrorIs(t, lt.Ledger.Unpause(adminAddress), contract.ErrUnauthorized)
	require.NoError(t, lt.Ledger.Unpause(newAdmin))
}

func TestSetRegistrationFee(t *testing.T) {
	lt := SetupLedgerTest(t)

	assert.ErrorIs(t, lt.Ledger.SetRegistrationFee(outsider, contract.Tokens(5)), contract.ErrUnauthorized)

	require.NoError(t, lt.Ledger.SetRegistrationFee(adminAddress, contract.Tokens(5)))
	fee, err := lt.Ledger.RegistrationFee()
	require.NoError(t, err)
	assert.Equal(t, contract.Tokens(5), fee)

	// old fee no longer clears the bar
	_, err = lt.Ledger.RegisterAssociation(assocWallet, contract.RegisterAssociationArgs{
		Name:    "Red Cross",
		FeePaid: contract.Tokens(1),
	})
	assert.ErrorIs(t, err, contract.ErrInsufficientFee)
}

func TestGlobalStats(t *testing.T) {
	lt := SetupLedgerTest(t)
	lt.RegisterVerified(t, assocWallet, "Red Cross")
	lt.RegisterVerified(t, otherAssocWallet, "Sea Shepherd")
	campID := lt.OpenCampaign(t, assocWallet, "Mega Drive", 5000)
	_, err := lt.Ledger.Donate(donorAlice, campID, contract.Tokens(3000), "")
	require.NoError(t, err)
	require.NoError(t, lt.Ledger.WithdrawFunds(assocWallet, campID, contract.Tokens(1000)))

	stats, err := lt.Ledger.GetGlobalStats()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.TotalAssociations)
	assert.Equal(t, uint64(1), stats.TotalCampaigns)
	assert.Equal(t, uint64(1), stats.TotalDonations)
	assert.Equal(t, contract.Tokens(3000), stats.TotalRaised)
	assert.Equal(t, contract.Tokens(40), stats.TotalCommissions)
	assert.Equal(t, contract.Tokens(2), stats.Treasury, "two registration fees retained")

	// sweeping the pool zeroes the commissions figure
	_, err = lt.Ledger.WithdrawCommissions(adminAddress)
	require.NoError(t, err)
	stats, err = lt.Ledger.GetGlobalStats()
	require.NoError(t, err)
	assert.Equal(t, new(big.Int), stats.TotalCommissions)
}
