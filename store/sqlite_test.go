package store_test

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momodiaobana/DontrackProject/contract"
	"github.com/momodiaobana/DontrackProject/sdk"
	"github.com/momodiaobana/DontrackProject/store"
)

func TestSQLiteStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	st, err := store.Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer st.Close()

	assert.Nil(t, st.Get("missing"))

	st.Set("count:assoc", "3")
	require.NoError(t, st.Err())
	v := st.Get("count:assoc")
	require.NotNil(t, v)
	assert.Equal(t, "3", *v)

	st.Set("count:assoc", "4")
	v = st.Get("count:assoc")
	require.NotNil(t, v)
	assert.Equal(t, "4", *v)

	st.Delete("count:assoc")
	assert.Nil(t, st.Get("count:assoc"))
	require.NoError(t, st.Err())
}

func TestSQLiteStateSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	st, err := store.Open(path, zerolog.Nop())
	require.NoError(t, err)
	st.Set("contract:config", "celo:admin|0|0")
	require.NoError(t, st.Err())
	require.NoError(t, st.Close())

	st, err = store.Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer st.Close()
	v := st.Get("contract:config")
	require.NotNil(t, v)
	assert.Equal(t, "celo:admin|0|0", *v)
}

func TestLedgerOverSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	st, err := store.Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer st.Close()

	host := sdk.NewMockHost()
	host.Deposit("celo:redcross", contract.Tokens(10))

	ledger := contract.New(st, host)
	require.NoError(t, ledger.Init("celo:admin", contract.Tokens(1)))

	id, err := ledger.RegisterAssociation("celo:redcross", contract.RegisterAssociationArgs{
		Name:    "Red Cross",
		FeePaid: contract.Tokens(1),
	})
	require.NoError(t, err)
	require.NoError(t, st.Err())

	a, err := ledger.GetAssociation(id)
	require.NoError(t, err)
	assert.Equal(t, "Red Cross", a.Name)
}
