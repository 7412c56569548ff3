package contract

import (
	"math/big"

	"github.com/momodiaobana/DontrackProject/sdk"
)

// RecordExpense logs how withdrawn funds were spent. It is a disclosure
// record only and moves no value, so the amount is not capped by what was
// withdrawn. Only the owning association's wallet may record.
// Example payload: RecordExpense("celo:redcross", 0, Tokens(100), "blankets", "QmProof")
func (l *Ledger) RecordExpense(caller sdk.Address, campaignID uint64, amount *big.Int, description, proofHash string) (uint64, error) {
	cfg, err := l.config()
	if err != nil {
		return 0, err
	}
	if err := requireNotPaused(cfg); err != nil {
		return 0, err
	}
	if !isPositive(amount) {
		return 0, ErrInvalidAmount
	}
	if description == "" || len(description) > MaxDescriptionLength {
		return 0, ErrInvalidArgument
	}
	c, err := loadCampaign(l.state, campaignID)
	if err != nil {
		return 0, err
	}
	a, err := loadAssociation(l.state, c.AssociationID)
	if err != nil {
		return 0, err
	}
	if a.Wallet != caller {
		return 0, ErrNotAssociationOwner
	}

	id := nextSequenceID(l.state, ExpensesCount)
	e := Expense{
		ID:          id,
		CampaignID:  campaignID,
		Amount:      cloneAmount(amount),
		Description: description,
		ProofHash:   proofHash,
		Timestamp:   l.nowUnix(),
	}
	if err := saveExpense(l.state, &e); err != nil {
		return 0, err
	}
	if err := addIDToIndex(l.state, idxCampaignExpenses+UInt64ToString(campaignID), id); err != nil {
		return 0, err
	}
	l.emitExpenseRecordedEvent(id, campaignID, amount, description)
	return id, nil
}

// GetExpense returns one expense record.
func (l *Ledger) GetExpense(id uint64) (*Expense, error) {
	if _, err := l.config(); err != nil {
		return nil, err
	}
	return loadExpense(l.state, id)
}

// GetCampaignExpenses returns every expense disclosed for a campaign in the
// order recorded.
func (l *Ledger) GetCampaignExpenses(campaignID uint64) ([]*Expense, error) {
	if _, err := l.config(); err != nil {
		return nil, err
	}
	ids, err := getIDsFromIndex(l.state, idxCampaignExpenses+UInt64ToString(campaignID))
	if err != nil {
		return nil, err
	}
	out := make([]*Expense, 0, len(ids))
	for _, id := range ids {
		if e, err := loadExpense(l.state, id); err == nil {
			out = append(out, e)
		}
	}
	return out, nil
}
