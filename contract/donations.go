package contract

import (
	"math/big"

	"github.com/momodiaobana/DontrackProject/sdk"
)

// Donate escrows value from the donor into a campaign. The campaign must be
// Active and inside its window; the amount lands in campaign custody, not the
// association's wallet.
// Example payload: Donate("celo:alice", 0, Tokens(5), "stay strong")
func (l *Ledger) Donate(caller sdk.Address, campaignID uint64, amount *big.Int, message string) (uint64, error) {
	cfg, err := l.config()
	if err != nil {
		return 0, err
	}
	if err := requireNotPaused(cfg); err != nil {
		return 0, err
	}
	if !caller.IsValid() {
		return 0, ErrUnauthorized
	}
	if !isPositive(amount) {
		return 0, ErrInvalidAmount
	}
	if len(message) > MaxDescriptionLength {
		return 0, ErrInvalidArgument
	}
	c, err := loadCampaign(l.state, campaignID)
	if err != nil {
		return 0, err
	}
	if err := campaignAcceptsDonations(c, l.nowUnix()); err != nil {
		return 0, err
	}
	a, err := loadAssociation(l.state, c.AssociationID)
	if err != nil {
		return 0, err
	}
	if err := l.host.Draw(caller, amount, sdk.AssetCusd); err != nil {
		return 0, err
	}

	id := nextSequenceID(l.state, DonationsCount)
	d := Donation{
		ID:         id,
		CampaignID: campaignID,
		Donor:      caller,
		Amount:     cloneAmount(amount),
		Timestamp:  l.nowUnix(),
		Message:    message,
	}
	c.Raised = new(big.Int).Add(c.Raised, amount)
	a.TotalReceived = new(big.Int).Add(a.TotalReceived, amount)
	if err := saveDonation(l.state, &d); err != nil {
		return 0, err
	}
	if err := saveCampaign(l.state, c); err != nil {
		return 0, err
	}
	if err := saveAssociation(l.state, a); err != nil {
		return 0, err
	}
	if err := addIDToIndex(l.state, idxCampaignDonations+UInt64ToString(campaignID), id); err != nil {
		return 0, err
	}
	if err := addIDToIndex(l.state, idxDonorHistory+caller.String(), id); err != nil {
		return 0, err
	}
	addFundPot(l.state, TotalRaisedKey, amount)
	l.emitDonationReceivedEvent(id, campaignID, caller.String(), amount)
	l.log.Info().Str("op", "donate").Uint64("id", id).Uint64("campaign", campaignID).
		Str("amount", AmountToDecimal(amount)).Msg("donation received")
	return id, nil
}

// GetDonation returns one donation record.
func (l *Ledger) GetDonation(id uint64) (*Donation, error) {
	if _, err := l.config(); err != nil {
		return nil, err
	}
	return loadDonation(l.state, id)
}

// GetCampaignDonations returns every donation to a campaign in arrival order.
func (l *Ledger) GetCampaignDonations(campaignID uint64) ([]*Donation, error) {
	if _, err := l.config(); err != nil {
		return nil, err
	}
	ids, err := getIDsFromIndex(l.state, idxCampaignDonations+UInt64ToString(campaignID))
	if err != nil {
		return nil, err
	}
	out := make([]*Donation, 0, len(ids))
	for _, id := range ids {
		if d, err := loadDonation(l.state, id); err == nil {
			out = append(out, d)
		}
	}
	return out, nil
}

// GetDonorHistory returns a donor's donations across all campaigns in the
// order they were made.
func (l *Ledger) GetDonorHistory(donor sdk.Address) ([]*Donation, error) {
	if _, err := l.config(); err != nil {
		return nil, err
	}
	ids, err := getIDsFromIndex(l.state, idxDonorHistory+donor.String())
	if err != nil {
		return nil, err
	}
	out := make([]*Donation, 0, len(ids))
	for _, id := range ids {
		if d, err := loadDonation(l.state, id); err == nil {
			out = append(out, d)
		}
	}
	return out, nil
}
