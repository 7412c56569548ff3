package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momodiaobana/DontrackProject/contract"
)

func TestCreateCampaign(t *testing.T) {
	lt := SetupLedgerTest(t)
	assocID := lt.RegisterVerified(t, assocWallet, "Red Cross")

	id, err := lt.Ledger.CreateCampaign(assocWallet, contract.CreateCampaignArgs{
		Title:    "Winter Relief",
		Goal:     contract.Tokens(500),
		Duration: 86400 * 30,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id, "campaign ids start at 0")

	c, err := lt.Ledger.GetCampaign(id)
	require.NoError(t, err)
	assert.Equal(t, assocID, c.AssociationID)
	assert.Equal(t, contract.CampaignActive, c.Status)
	assert.Equal(t, c.StartDate+86400*30, c.EndDate)
	assert.Zero(t, c.Raised.Sign())
}

func TestCreateCampaignRequiresVerification(t *testing.T) {
	lt := SetupLedgerTest(t)
	_, err := lt.Ledger.RegisterAssociation(assocWallet, contract.RegisterAssociationArgs{
		Name:    "Red Cross",
		FeePaid: contract.Tokens(1),
	})
	require.NoError(t, err)

	_, err = lt.Ledger.CreateCampaign(assocWallet, contract.CreateCampaignArgs{
		Title:    "Winter Relief",
		Goal:     contract.Tokens(500),
		Duration: 86400 * 30,
	})
	assert.ErrorIs(t, err, contract.ErrAssociationNotVerified)
}

func TestCreateCampaignUnregisteredWallet(t *testing.T) {
	lt := SetupLedgerTest(t)

	_, err := lt.Ledger.CreateCampaign(outsider, contract.CreateCampaignArgs{
		Title:    "Fake Drive",
		Goal:     contract.Tokens(10),
		Duration: 86400 * 30,
	})
	assert.ErrorIs(t, err, contract.ErrAssociationNotVerified)
}

func TestCreateCampaignValidation(t *testing.T) {
	lt := SetupLedgerTest(t)
	lt.RegisterVerified(t, assocWallet, "Red Cross")

	_, err := lt.Ledger.CreateCampaign(assocWallet, contract.CreateCampaignArgs{
		Title:    "Zero Goal",
		Goal:     contract.Tokens(0),
		Duration: 86400 * 30,
	})
	assert.ErrorIs(t, err, contract.ErrInvalidGoal)

	_, err = lt.Ledger.CreateCampaign(assocWallet, contract.CreateCampaignArgs{
		Title:    "Too Short",
		Goal:     contract.Tokens(10),
		Duration: 3600,
	})
	assert.ErrorIs(t, err, contract.ErrInvalidDuration)

	_, err = lt.Ledger.CreateCampaign(assocWallet, contract.CreateCampaignArgs{
		Title:    "Too Long",
		Goal:     contract.Tokens(10),
		Duration: 86400 * 366,
	})
	assert.ErrorIs(t, err, contract.ErrInvalidDuration)
}

func TestCampaignPauseResume(t *testing.T) {
	lt := SetupLedgerTest(t)
	lt.RegisterVerified(t, assocWallet, "Red Cross")
	id := lt.OpenCampaign(t, assocWallet, "Winter Relief", 500)

	// outsiders cannot manage the campaign
	assert.ErrorIs(t, lt.Ledger.PauseCampaign(outsider, id), contract.ErrNotAssociationOwner)

	require.NoError(t, lt.Ledger.PauseCampaign(assocWallet, id))
	c, err := lt.Ledger.GetCampaign(id)
	require.NoError(t, err)
	assert.Equal(t, contract.CampaignPaused, c.Status)

	// a paused campaign rejects donations
	_, err = lt.Ledger.Donate(donorAlice, id, contract.Tokens(1), "")
	assert.ErrorIs(t, err, contract.ErrCampaignEnded)

	require.NoError(t, lt.Ledger.ResumeCampaign(assocWallet, id))
	_, err = lt.Ledger.Donate(donorAlice, id, contract.Tokens(1), "")
	assert.NoError(t, err)
}

func TestCloseCampaign(t *testing.T) {
	lt := SetupLedgerTest(t)
	lt.RegisterVerified(t, assocWallet, "Red Cross")
	id := lt.OpenCampaign(t, assocWallet, "Winter Relief", 500)

	require.NoError(t, lt.Ledger.CloseCampaign(assocWallet, id))
	c, err := lt.Ledger.GetCampaign(id)
	require.NoError(t, err)
	assert.Equal(t, contract.CampaignCompleted, c.Status)

	// closing twice is an invalid transition
	assert.ErrorIs(t, lt.Ledger.CloseCampaign(assocWallet, id), contract.ErrInvalidCampaignState)
}

func TestCancelCampaignAdminOnly(t *testing.T) {
	lt := SetupLedgerTest(t)
	lt.RegisterVerified(t, assocWallet, "Red Cross")
	id := lt.OpenCampaign(t, assocWallet, "Winter Relief", 500)

	assert.ErrorIs(t, lt.Ledger.CancelCampaign(assocWallet, id), contract.ErrUnauthorized)

	require.NoError(t, lt.Ledger.CancelCampaign(adminAddress, id))
	c, err := lt.Ledger.GetCampaign(id)
	require.NoError(t, err)
	assert.Equal(t, contract.CampaignCancelled, c.Status)
	lt.AssertEventLogged(t, "cs|id:0|s:cancelled")
}

func TestCancelledCampaignIsTerminal(t *testing.T) {
	lt := SetupLedgerTest(t)
	lt.RegisterVerified(t, assocWallet, "Red Cross")
	id := lt.OpenCampaign(t, assocWallet, "Winter Relief", 500)
	require.NoError(t, lt.Ledger.CancelCampaign(adminAddress, id))

	// no transition leads out of cancelled, not even for the admin
	assert.ErrorIs(t, lt.Ledger.PauseCampaign(assocWallet, id), contract.ErrInvalidCampaignState)
	assert.ErrorIs(t, lt.Ledger.ResumeCampaign(assocWallet, id), contract.ErrInvalidCampaignState)
	assert.ErrorIs(t, lt.Ledger.CloseCampaign(assocWallet, id), contract.ErrInvalidCampaignState)
	assert.ErrorIs(t, lt.Ledger.CancelCampaign(adminAddress, id), contract.ErrInvalidCampaignState)

	c, err := lt.Ledger.GetCampaign(id)
	require.NoError(t, err)
	assert.Equal(t, contract.CampaignCancelled, c.Status)
}

func TestGetAssociationCampaigns(t *testing.T) {
	lt := SetupLedgerTest(t)
	assocID := lt.RegisterVerified(t, assocWallet, "Red Cross")
	otherID := lt.RegisterVerified(t, otherAssocWallet, "Sea Shepherd")

	lt.OpenCampaign(t, assocWallet, "Winter Relief", 500)
	lt.OpenCampaign(t, otherAssocWallet, "Ocean Cleanup", 300)
	lt.OpenCampaign(t, assocWallet, "Food Drive", 200)

	mine, err := lt.Ledger.GetAssociationCampaigns(assocID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Winter Relief", mine[0].Title)
	assert.Equal(t, "Food Drive", mine[1].Title)

	theirs, err := lt.Ledger.GetAssociationCampaigns(otherID)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
}
