package sdk

import (
	"fmt"
	"math/big"
)

// MockHost is an in-memory Host for tests and local embedding. It keeps a
// wallet balance table plus the custody pot and records every emitted event
// line in order.
type MockHost struct {
	balances map[Address]*big.Int
	custody  *big.Int
	lines    []string

	// TransferErr, when set, makes every Transfer fail without moving
	// value. Tests use it to prove withdrawal atomicity.
	TransferErr error
}

// NewMockHost builds an empty mock host, no balances yet.
// Example payload: sdk.NewMockHost()
func NewMockHost() *MockHost {
	return &MockHost{
		balances: make(map[Address]*big.Int),
		custody:  new(big.Int),
	}
}

// Deposit credits a wallet so tests can fund callers up front.
// Example payload: host.Deposit("celo:alice", big.NewInt(1000))
func (m *MockHost) Deposit(addr Address, amount *big.Int) {
	m.balances[addr] = new(big.Int).Add(m.balanceOf(addr), amount)
}

// Balance returns a copy of the wallet balance, zero when unknown.
func (m *MockHost) Balance(addr Address) *big.Int {
	return new(big.Int).Set(m.balanceOf(addr))
}

// Custody returns a copy of the value currently held by the ledger.
func (m *MockHost) Custody() *big.Int {
	return new(big.Int).Set(m.custody)
}

// Lines returns the emitted event lines in emission order.
func (m *MockHost) Lines() []string {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

func (m *MockHost) balanceOf(addr Address) *big.Int {
	if b, ok := m.balances[addr]; ok {
		return b
	}
	return new(big.Int)
}

// Draw pulls value from the wallet into custody, failing when the wallet
// cannot cover the amount.
func (m *MockHost) Draw(from Address, amount *big.Int, asset Asset) error {
	bal := m.balanceOf(from)
	if bal.Cmp(amount) < 0 {
		return fmt.Errorf("draw %s %s from %s: balance %s too low", amount, asset, from, bal)
	}
	m.balances[from] = new(big.Int).Sub(bal, amount)
	m.custody.Add(m.custody, amount)
	return nil
}

// Transfer pushes value from custody to the wallet, honoring TransferErr.
func (m *MockHost) Transfer(to Address, amount *big.Int, asset Asset) error {
	if m.TransferErr != nil {
		return m.TransferErr
	}
	if m.custody.Cmp(amount) < 0 {
		return fmt.Errorf("transfer %s %s to %s: custody %s too low", amount, asset, to, m.custody)
	}
	m.custody.Sub(m.custody, amount)
	m.balances[to] = new(big.Int).Add(m.balanceOf(to), amount)
	return nil
}

// Log records the event line.
func (m *MockHost) Log(line string) {
	m.lines = append(m.lines, line)
}
