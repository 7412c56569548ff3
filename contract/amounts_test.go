package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momodiaobana/DontrackProject/contract"
)

func TestDecimalToAmount(t *testing.T) {
	v, err := contract.DecimalToAmount("3.5")
	require.NoError(t, err)
	assert.Equal(t, "3500000000000000000", v.String())

	v, err = contract.DecimalToAmount("0.000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	_, err = contract.DecimalToAmount("0.0000000000000000001")
	assert.Error(t, err, "more than 18 decimals cannot be represented")

	_, err = contract.DecimalToAmount("")
	assert.Error(t, err)

	_, err = contract.DecimalToAmount("-1")
	assert.Error(t, err)

	// the sign sits on the integer part, but "-0.5" must not slip through
	_, err = contract.DecimalToAmount("-0.5")
	assert.Error(t, err)

	_, err = contract.DecimalToAmount("+1")
	assert.Error(t, err)
}

func TestAmountToDecimal(t *testing.T) {
	assert.Equal(t, "2000", contract.AmountToDecimal(contract.Tokens(2000)))

	v, err := contract.DecimalToAmount("0.1")
	require.NoError(t, err)
	assert.Equal(t, "0.1", contract.AmountToDecimal(v))

	assert.Equal(t, "0", contract.AmountToDecimal(nil))
}
