package contract

import (
	"math/big"

	"github.com/momodiaobana/DontrackProject/sdk"
)

// GetCampaignAvailableFunds returns raised minus already withdrawn for a
// campaign. This is the ceiling WithdrawFunds enforces.
func (l *Ledger) GetCampaignAvailableFunds(campaignID uint64) (*big.Int, error) {
	if _, err := l.config(); err != nil {
		return nil, err
	}
	c, err := loadCampaign(l.state, campaignID)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Sub(c.Raised, getCampaignWithdrawn(l.state, campaignID)), nil
}

// WithdrawFunds pays campaign custody out to the owning association's wallet.
// Once the association's lifetime intake passed the commission threshold the
// platform keeps a cut of every withdrawal; the association receives the
// net amount. State is staged before the transfer and rolled back if the
// transfer fails, so custody and the tallies never drift apart.
// Example payload: WithdrawFunds("celo:redcross", 0, Tokens(100))
func (l *Ledger) WithdrawFunds(caller sdk.Address, campaignID uint64, amount *big.Int) error {
	cfg, err := l.config()
	if err != nil {
		return err
	}
	if err := requireNotPaused(cfg); err != nil {
		return err
	}
	if !isPositive(amount) {
		return ErrInvalidAmount
	}
	c, err := loadCampaign(l.state, campaignID)
	if err != nil {
		return err
	}
	a, err := loadAssociation(l.state, c.AssociationID)
	if err != nil {
		return err
	}
	if a.Wallet != caller {
		return ErrNotAssociationOwner
	}
	if a.Status != AssociationVerified {
		return ErrAssociationNotVerified
	}
	withdrawn := getCampaignWithdrawn(l.state, campaignID)
	available := new(big.Int).Sub(c.Raised, withdrawn)
	if amount.Cmp(available) > 0 {
		return ErrInsufficientFunds
	}

	commission := new(big.Int)
	if a.TotalReceived.Cmp(CommissionThreshold) > 0 {
		commission = commissionFor(amount)
	}
	net := new(big.Int).Sub(amount, commission)

	// stage state first, transfer last
	prevWithdrawn := cloneAmount(withdrawn)
	prevTotalWithdrawn := cloneAmount(a.TotalWithdrawn)
	prevPool := getFundPot(l.state, CommissionPoolKey)

	setCampaignWithdrawn(l.state, campaignID, new(big.Int).Add(withdrawn, amount))
	a.TotalWithdrawn = new(big.Int).Add(a.TotalWithdrawn, amount)
	if err := saveAssociation(l.state, a); err != nil {
		setCampaignWithdrawn(l.state, campaignID, prevWithdrawn)
		return err
	}
	if isPositive(commission) {
		addFundPot(l.state, CommissionPoolKey, commission)
	}

	if err := l.host.Transfer(a.Wallet, net, sdk.AssetCusd); err != nil {
		setCampaignWithdrawn(l.state, campaignID, prevWithdrawn)
		a.TotalWithdrawn = prevTotalWithdrawn
		if serr := saveAssociation(l.state, a); serr != nil {
			return serr
		}
		setFundPot(l.state, CommissionPoolKey, prevPool)
		return err
	}

	if isPositive(commission) {
		l.emitCommissionCollectedEvent(campaignID, commission)
	}
	l.emitFundsWithdrawnEvent(campaignID, a.Wallet.String(), net)
	l.log.Info().Str("op", "withdraw_funds").Uint64("campaign", campaignID).
		Str("gross", AmountToDecimal(amount)).
		Str("commission", AmountToDecimal(commission)).Msg("funds withdrawn")
	return nil
}

// WithdrawCommissions sweeps the whole commission pool to the admin wallet.
// The pool resets to zero; a failed transfer puts it back.
func (l *Ledger) WithdrawCommissions(caller sdk.Address) (*big.Int, error) {
	cfg, err := l.config()
	if err != nil {
		return nil, err
	}
	if err := requireNotPaused(cfg); err != nil {
		return nil, err
	}
	if err := requireAdmin(cfg, caller); err != nil {
		return nil, err
	}
	pool := getFundPot(l.state, CommissionPoolKey)
	if !isPositive(pool) {
		return nil, ErrNothingToWithdraw
	}
	setFundPot(l.state, CommissionPoolKey, new(big.Int))
	if err := l.host.Transfer(cfg.Admin, pool, sdk.AssetCusd); err != nil {
		setFundPot(l.state, CommissionPoolKey, pool)
		return nil, err
	}
	l.emitCommissionsSweptEvent(cfg.Admin.String(), pool)
	return pool, nil
}
