package contract

import "math/big"

// -----------------------------------------------------------------------------
// Platform Fund Pots
// -----------------------------------------------------------------------------

// getFundPot reads one of the platform-wide pots (treasury, commission pool,
// total raised). Missing key means zero.
func getFundPot(state State, key string) *big.Int {
	return amountFromState(state.Get(key))
}

// setFundPot stores a pot balance back as a decimal string.
func setFundPot(state State, key string, amount *big.Int) {
	state.Set(key, amountToState(amount))
}

// addFundPot adds to a pot in place.
func addFundPot(state State, key string, amount *big.Int) {
	setFundPot(state, key, new(big.Int).Add(getFundPot(state, key), amount))
}

// -----------------------------------------------------------------------------
// Per-Campaign Withdrawn Tally
// -----------------------------------------------------------------------------

// getCampaignWithdrawn reads the cumulative amount already paid out for a
// campaign. Available funds are raised minus this tally.
func getCampaignWithdrawn(state State, campaignID uint64) *big.Int {
	return amountFromState(state.Get(campaignWithdrawnKey(campaignID)))
}

// setCampaignWithdrawn stores the cumulative withdrawn amount for a campaign.
func setCampaignWithdrawn(state State, campaignID uint64, amount *big.Int) {
	state.Set(campaignWithdrawnKey(campaignID), amountToState(amount))
}
