package sdk

import "math/big"

// Host is the boundary towards the value layer the ledger runs on. The
// embedding application supplies it; the ledger never talks to the outside
// world through anything else. Draw pulls value from a caller's wallet into
// ledger custody (donations, registration fees), Transfer pushes custody
// back out (withdrawals, commission sweeps). Both can fail and the ledger
// treats a failure as "nothing moved".
type Host interface {
	// Draw moves amount of asset from the wallet into ledger custody.
	Draw(from Address, amount *big.Int, asset Asset) error
	// Transfer moves amount of asset out of ledger custody to the wallet.
	Transfer(to Address, amount *big.Int, asset Asset) error
	// Log appends one line to the host event log. The ledger uses it for
	// its compact domain event stream.
	Log(line string)
}
