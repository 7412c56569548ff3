package contract

import (
	"fmt"
	"math/big"
)

// emitAssociationRegisteredEvent writes a tiny "ar" log so watchers know a fresh association showed up.
func (l *Ledger) emitAssociationRegisteredEvent(id uint64, wallet string, name string) {
	l.host.Log(fmt.Sprintf(
		"ar|id:%d|by:%s|n:%s",
		id,
		wallet,
		name,
	))
}

// emitAssociationVerifiedEvent pings explorers when an association clears review.
func (l *Ledger) emitAssociationVerifiedEvent(id uint64, verifiedBy string) {
	l.host.Log(fmt.Sprintf(
		"av|id:%d|by:%s",
		id,
		verifiedBy,
	))
}

// emitAssociationSuspendedEvent mirrors the verify ping but signals a frozen association.
func (l *Ledger) emitAssociationSuspendedEvent(id uint64, reason string) {
	l.host.Log(fmt.Sprintf(
		"as|id:%d|r:%s",
		id,
		reason,
	))
}

// emitCampaignCreatedEvent gives explorers a neat ping without scanning full storage diffs.
func (l *Ledger) emitCampaignCreatedEvent(id uint64, associationID uint64, title string, goal *big.Int) {
	l.host.Log(fmt.Sprintf(
		"cc|id:%d|aId:%d|t:%s|g:%s",
		id,
		associationID,
		title,
		amountToState(goal),
	))
}

// emitCampaignStateChangedEvent is the swiss army knife log entry for any campaign state flip.
func (l *Ledger) emitCampaignStateChangedEvent(id uint64, status CampaignStatus) {
	l.host.Log(fmt.Sprintf(
		"cs|id:%d|s:%s",
		id,
		status.String(),
	))
}

// emitDonationReceivedEvent leaves a short dr line per donation so indexers can tail giving activity.
func (l *Ledger) emitDonationReceivedEvent(id uint64, campaignID uint64, donor string, amount *big.Int) {
	l.host.Log(fmt.Sprintf(
		"dr|id:%d|cId:%d|by:%s|am:%s",
		id,
		campaignID,
		donor,
		amountToState(amount),
	))
}

// emitExpenseRecordedEvent spells out spend lines so auditors can track where funds went.
func (l *Ledger) emitExpenseRecordedEvent(id uint64, campaignID uint64, amount *big.Int, description string) {
	l.host.Log(fmt.Sprintf(
		"er|id:%d|cId:%d|am:%s|d:%s",
		id,
		campaignID,
		amountToState(amount),
		description,
	))
}

// emitFundsWithdrawnEvent logs the net payout after commission for a campaign withdrawal.
func (l *Ledger) emitFundsWithdrawnEvent(campaignID uint64, to string, amount *big.Int) {
	l.host.Log(fmt.Sprintf(
		"fw|cId:%d|to:%s|am:%s",
		campaignID,
		to,
		amountToState(amount),
	))
}

// emitCommissionCollectedEvent marks the platform cut taken from a withdrawal.
func (l *Ledger) emitCommissionCollectedEvent(campaignID uint64, amount *big.Int) {
	l.host.Log(fmt.Sprintf(
		"co|cId:%d|am:%s",
		campaignID,
		amountToState(amount),
	))
}

// emitCommissionsSweptEvent marks the commission pool flushing out to the admin.
func (l *Ledger) emitCommissionsSweptEvent(to string, amount *big.Int) {
	l.host.Log(fmt.Sprintf(
		"cw|to:%s|am:%s",
		to,
		amountToState(amount),
	))
}

// emitPausedEvent signals the global freeze so off-chain services can back off.
func (l *Ledger) emitPausedEvent(by string) {
	l.host.Log(fmt.Sprintf(
		"sp|by:%s",
		by,
	))
}

// emitUnpausedEvent signals normal operation resuming.
func (l *Ledger) emitUnpausedEvent(by string) {
	l.host.Log(fmt.Sprintf(
		"su|by:%s",
		by,
	))
}

// emitOwnershipTransferred tracks admin handovers, sensitive enough to always log.
func (l *Ledger) emitOwnershipTransferred(old string, new_ string) {
	l.host.Log(fmt.Sprintf(
		"ot|old:%s|new:%s",
		old,
		new_,
	))
}

// emitRegistrationFeeChangedEvent spells out the fee diff for auditors.
func (l *Ledger) emitRegistrationFeeChangedEvent(old *big.Int, new_ *big.Int) {
	l.host.Log(fmt.Sprintf(
		"rf|old:%s|new:%s",
		amountToState(old),
		amountToState(new_),
	))
}
