package contract

import (
	"fmt"
	"strconv"

	"github.com/momodiaobana/DontrackProject/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Ledger State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

func saveAssociation(state State, a *Association) error {
	b, err := a.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal association %d: %w", a.ID, err)
	}
	state.Set(associationKey(a.ID), string(b))
	return nil
}

func loadAssociation(state State, id uint64) (*Association, error) {
	ptr := state.Get(associationKey(id))
	if ptr == nil || *ptr == "" {
		return nil, fmt.Errorf("association %d: %w", id, ErrNotFound)
	}
	var a Association
	if err := a.UnmarshalJSON([]byte(*ptr)); err != nil {
		return nil, fmt.Errorf("unmarshal association %d: %w", id, err)
	}
	return &a, nil
}

func saveCampaign(state State, c *Campaign) error {
	b, err := c.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal campaign %d: %w", c.ID, err)
	}
	state.Set(campaignKey(c.ID), string(b))
	return nil
}

func loadCampaign(state State, id uint64) (*Campaign, error) {
	ptr := state.Get(campaignKey(id))
	if ptr == nil || *ptr == "" {
		return nil, fmt.Errorf("campaign %d: %w", id, ErrNotFound)
	}
	var c Campaign
	if err := c.UnmarshalJSON([]byte(*ptr)); err != nil {
		return nil, fmt.Errorf("unmarshal campaign %d: %w", id, err)
	}
	return &c, nil
}

func saveDonation(state State, d *Donation) error {
	b, err := d.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal donation %d: %w", d.ID, err)
	}
	state.Set(donationKey(d.ID), string(b))
	return nil
}

func loadDonation(state State, id uint64) (*Donation, error) {
	ptr := state.Get(donationKey(id))
	if ptr == nil || *ptr == "" {
		return nil, fmt.Errorf("donation %d: %w", id, ErrNotFound)
	}
	var d Donation
	if err := d.UnmarshalJSON([]byte(*ptr)); err != nil {
		return nil, fmt.Errorf("unmarshal donation %d: %w", id, err)
	}
	return &d, nil
}

func saveExpense(state State, e *Expense) error {
	b, err := e.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal expense %d: %w", e.ID, err)
	}
	state.Set(expenseKey(e.ID), string(b))
	return nil
}

func loadExpense(state State, id uint64) (*Expense, error) {
	ptr := state.Get(expenseKey(id))
	if ptr == nil || *ptr == "" {
		return nil, fmt.Errorf("expense %d: %w", id, ErrNotFound)
	}
	var e Expense
	if err := e.UnmarshalJSON([]byte(*ptr)); err != nil {
		return nil, fmt.Errorf("unmarshal expense %d: %w", id, err)
	}
	return &e, nil
}

// -----------------------------------------------------------------------------
// Wallet Lookup
// -----------------------------------------------------------------------------

// setWalletLookup binds a wallet address to its association id. One wallet,
// one association.
func setWalletLookup(state State, wallet sdk.Address, id uint64) {
	state.Set(walletLookupKey(wallet), strconv.FormatUint(id, 10))
}

// getWalletLookup resolves a wallet to its association id, 0 means unknown.
func getWalletLookup(state State, wallet sdk.Address) uint64 {
	ptr := state.Get(walletLookupKey(wallet))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}
