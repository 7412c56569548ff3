package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momodiaobana/DontrackProject/contract"
	"github.com/momodiaobana/DontrackProject/sdk"
)

func TestRegisterAssociation(t *testing.T) {
	lt := SetupLedgerTest(t)

	id, err := lt.Ledger.RegisterAssociation(assocWallet, contract.RegisterAssociationArgs{
		Name:        "Red Cross",
		Description: "disaster relief",
		FeePaid:     contract.Tokens(1),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id, "first association id is 1, 0 marks absence")

	a, err := lt.Ledger.GetAssociation(id)
	require.NoError(t, err)
	assert.Equal(t, assocWallet, a.Wallet)
	assert.Equal(t, "Red Cross", a.Name)
	assert.Equal(t, contract.AssociationPending, a.Status)
	assert.Zero(t, a.TotalReceived.Sign())

	// fee was drawn from the wallet into custody
	assert.Equal(t, contract.Tokens(100_000-1), lt.Host.Balance(assocWallet))
	assert.Equal(t, contract.Tokens(1), lt.Host.Custody())
	lt.AssertEventLogged(t, "ar|id:1|by:celo:redcross|n:Red Cross")
}

func TestRegisterAssociationInsufficientFee(t *testing.T) {
	lt := SetupLedgerTest(t)

	half, err := contract.DecimalToAmount("0.5")
	require.NoError(t, err)
	_, err = lt.Ledger.RegisterAssociation(assocWallet, contract.RegisterAssociationArgs{
		Name:    "Red Cross",
		FeePaid: half,
	})
	assert.ErrorIs(t, err, contract.ErrInsufficientFee)
	assert.Zero(t, lt.Host.Custody().Sign(), "rejected registrations draw nothing")
}

func TestRegisterAssociationTwice(t *testing.T) {
	lt := SetupLedgerTest(t)

	_, err := lt.Ledger.RegisterAssociation(assocWallet, contract.RegisterAssociationArgs{
		Name:    "Red Cross",
		FeePaid: contract.Tokens(1),
	})
	require.NoError(t, err)

	_, err = lt.Ledger.RegisterAssociation(assocWallet, contract.RegisterAssociationArgs{
		Name:    "Red Cross Again",
		FeePaid: contract.Tokens(1),
	})
	assert.ErrorIs(t, err, contract.ErrAlreadyRegistered)
}

func TestRegisterSuspendedWalletStillRegistered(t *testing.T) {
	lt := SetupLedgerTest(t)
	id := lt.RegisterVerified(t, assocWallet, "Red Cross")
	require.NoError(t, lt.Ledger.SuspendAssociation(adminAddress, id, "audit pending"))

	// suspension does not free the wallet for a fresh registration
	_, err := lt.Ledger.RegisterAssociation(assocWallet, contract.RegisterAssociationArgs{
		Name:    "Red Cross Reborn",
		FeePaid: contract.Tokens(1),
	})
	assert.ErrorIs(t, err, contract.ErrAlreadyRegistered)
}

func TestRegisterAssociationValidation(t *testing.T) {
	lt := SetupLedgerTest(t)

	_, err := lt.Ledger.RegisterAssociation(assocWallet, contract.RegisterAssociationArgs{
		Name:    "",
		FeePaid: contract.Tokens(1),
	})
	assert.ErrorIs(t, err, contract.ErrInvalidArgument)
}

func TestVerifyAssociation(t *testing.T) {
	lt := SetupLedgerTest(t)

	id, err := lt.Ledger.RegisterAssociation(assocWallet, contract.RegisterAssociationArgs{
		Name:    "Red Cross",
		FeePaid: contract.Tokens(1),
	})
	require.NoError(t, err)

	// only the admin may verify
	err = lt.Ledger.VerifyAssociation(outsider, id)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	require.NoError(t, lt.Ledger.VerifyAssociation(adminAddress, id))
	a, err := lt.Ledger.GetAssociation(id)
	require.NoError(t, err)
	assert.Equal(t, contract.AssociationVerified, a.Status)

	// verifying twice stays a no-op
	require.NoError(t, lt.Ledger.VerifyAssociation(adminAddress, id))
}

func TestVerifyUnknownAssociation(t *testing.T) {
	lt := SetupLedgerTest(t)

	err := lt.Ledger.VerifyAssociation(adminAddress, 42)
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestSuspendAssociation(t *testing.T) {
	lt := SetupLedgerTest(t)
	id := lt.RegisterVerified(t, assocWallet, "Red Cross")

	require.NoError(t, lt.Ledger.SuspendAssociation(adminAddress, id, "audit pending"))
	a, err := lt.Ledger.GetAssociation(id)
	require.NoError(t, err)
	assert.Equal(t, contract.AssociationSuspended, a.Status)
	lt.AssertEventLogged(t, "as|id:1|r:audit pending")

	// re-verification reinstates a suspended association
	require.NoError(t, lt.Ledger.VerifyAssociation(adminAddress, id))
	a, err = lt.Ledger.GetAssociation(id)
	require.NoError(t, err)
	assert.Equal(t, contract.AssociationVerified, a.Status)
}

func TestGetAssociationByWallet(t *testing.T) {
	lt := SetupLedgerTest(t)
	id := lt.RegisterVerified(t, assocWallet, "Red Cross")

	assert.Equal(t, id, lt.Ledger.GetAssociationByWallet(assocWallet))
	assert.Equal(t, uint64(0), lt.Ledger.GetAssociationByWallet(sdk.Address("celo:nobody")))
}

func TestListAssociations(t *testing.T) {
	lt := SetupLedgerTest(t)
	lt.RegisterVerified(t, assocWallet, "Red Cross")
	lt.RegisterVerified(t, otherAssocWallet, "Sea Shepherd")

	all := lt.Ledger.ListAssociations()
	require.Len(t, all, 2)
	assert.Equal(t, "Red Cross", all[0].Name)
	assert.Equal(t, "Sea Shepherd", all[1].Name)
}
