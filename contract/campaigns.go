package contract

import (
	"math/big"

	"github.com/momodiaobana/DontrackProject/sdk"
)

// CreateCampaign opens a fundraising window for the caller's verified
// association. The window starts now and runs for args.Duration seconds.
// Example payload: CreateCampaign("celo:redcross", CreateCampaignArgs{Title: "Winter Relief", Goal: Tokens(500), Duration: 86400 * 30})
func (l *Ledger) CreateCampaign(caller sdk.Address, args CreateCampaignArgs) (uint64, error) {
	cfg, err := l.config()
	if err != nil {
		return 0, err
	}
	if err := requireNotPaused(cfg); err != nil {
		return 0, err
	}
	assocID := getWalletLookup(l.state, caller)
	if assocID == 0 {
		return 0, ErrAssociationNotVerified
	}
	a, err := loadAssociation(l.state, assocID)
	if err != nil {
		return 0, err
	}
	if a.Status != AssociationVerified {
		return 0, ErrAssociationNotVerified
	}
	if args.Title == "" || len(args.Title) > MaxNameLength {
		return 0, ErrInvalidArgument
	}
	if len(args.Description) > MaxDescriptionLength {
		return 0, ErrInvalidArgument
	}
	if !isPositive(args.Goal) {
		return 0, ErrInvalidGoal
	}
	if args.Duration < MinCampaignDuration || args.Duration > MaxCampaignDuration {
		return 0, ErrInvalidDuration
	}

	id := nextSequenceID(l.state, CampaignsCount)
	now := l.nowUnix()
	c := Campaign{
		ID:            id,
		AssociationID: assocID,
		Title:         args.Title,
		Description:   args.Description,
		Metadata:      args.Metadata,
		Goal:          cloneAmount(args.Goal),
		Raised:        new(big.Int),
		StartDate:     now,
		EndDate:       now + args.Duration,
		Status:        CampaignActive,
	}
	if err := saveCampaign(l.state, &c); err != nil {
		return 0, err
	}
	if err := addIDToIndex(l.state, idxAssociationCampaigns+UInt64ToString(assocID), id); err != nil {
		return 0, err
	}
	l.emitCampaignCreatedEvent(id, assocID, c.Title, c.Goal)
	l.log.Info().Str("op", "create_campaign").Uint64("id", id).
		Uint64("association", assocID).Msg("campaign created")
	return id, nil
}

// PauseCampaign halts donations to an Active campaign. Owner only.
func (l *Ledger) PauseCampaign(caller sdk.Address, id uint64) error {
	return l.setCampaignStatus(caller, id, CampaignActive, CampaignPaused, false)
}

// ResumeCampaign reopens a Paused campaign. Owner only. The end date is
// unchanged, an expired campaign resumes but accepts no donations.
func (l *Ledger) ResumeCampaign(caller sdk.Address, id uint64) error {
	return l.setCampaignStatus(caller, id, CampaignPaused, CampaignActive, false)
}

// CloseCampaign marks a campaign Completed early. Owner only. Raised funds
// stay withdrawable.
func (l *Ledger) CloseCampaign(caller sdk.Address, id uint64) error {
	cfg, err := l.config()
	if err != nil {
		return err
	}
	if err := requireNotPaused(cfg); err != nil {
		return err
	}
	c, err := loadCampaign(l.state, id)
	if err != nil {
		return err
	}
	if err := l.requireCampaignOwner(caller, c); err != nil {
		return err
	}
	if c.Status != CampaignActive && c.Status != CampaignPaused {
		return ErrInvalidCampaignState
	}
	c.Status = CampaignCompleted
	if err := saveCampaign(l.state, c); err != nil {
		return err
	}
	l.emitCampaignStateChangedEvent(id, c.Status)
	return nil
}

// CancelCampaign is the admin kill switch for a misbehaving campaign. Already
// raised funds stay withdrawable so donors' money is never stranded.
func (l *Ledger) CancelCampaign(caller sdk.Address, id uint64) error {
	return l.setCampaignStatus(caller, id, CampaignActive, CampaignCancelled, true)
}

// setCampaignStatus is the shared transition path for pause, resume and
// cancel. Cancel additionally accepts Paused as the starting state.
func (l *Ledger) setCampaignStatus(caller sdk.Address, id uint64, from, to CampaignStatus, adminOnly bool) error {
	cfg, err := l.config()
	if err != nil {
		return err
	}
	if err := requireNotPaused(cfg); err != nil {
		return err
	}
	c, err := loadCampaign(l.state, id)
	if err != nil {
		return err
	}
	if adminOnly {
		if err := requireAdmin(cfg, caller); err != nil {
			return err
		}
	} else if err := l.requireCampaignOwner(caller, c); err != nil {
		return err
	}
	if c.Status != from && !(to == CampaignCancelled && c.Status == CampaignPaused) {
		return ErrInvalidCampaignState
	}
	c.Status = to
	if err := saveCampaign(l.state, c); err != nil {
		return err
	}
	l.emitCampaignStateChangedEvent(id, to)
	return nil
}

// requireCampaignOwner allows only the owning association's wallet to manage
// a campaign.
func (l *Ledger) requireCampaignOwner(caller sdk.Address, c *Campaign) error {
	a, err := loadAssociation(l.state, c.AssociationID)
	if err != nil {
		return err
	}
	if a.Wallet != caller {
		return ErrNotAssociationOwner
	}
	return nil
}

// GetCampaign returns the campaign record.
func (l *Ledger) GetCampaign(id uint64) (*Campaign, error) {
	if _, err := l.config(); err != nil {
		return nil, err
	}
	return loadCampaign(l.state, id)
}

// GetAssociationCampaigns returns a campaign list for one association in
// creation order.
func (l *Ledger) GetAssociationCampaigns(associationID uint64) ([]*Campaign, error) {
	if _, err := l.config(); err != nil {
		return nil, err
	}
	ids, err := getIDsFromIndex(l.state, idxAssociationCampaigns+UInt64ToString(associationID))
	if err != nil {
		return nil, err
	}
	out := make([]*Campaign, 0, len(ids))
	for _, id := range ids {
		if c, err := loadCampaign(l.state, id); err == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

// campaignAcceptsDonations is the single expiry check donations go through.
func campaignAcceptsDonations(c *Campaign, now int64) error {
	if c.Status != CampaignActive {
		return ErrCampaignEnded
	}
	if now > c.EndDate {
		return ErrCampaignEnded
	}
	return nil
}
