package contract

import (
	"math/big"

	"github.com/momodiaobana/DontrackProject/sdk"
)

// RegisterAssociation enrolls a new association for the caller's wallet. The
// registration fee is drawn from the caller and retained by the platform
// treasury; the association starts out Pending until an admin verifies it.
// Example payload: RegisterAssociation("celo:redcross", RegisterAssociationArgs{Name: "Red Cross", FeePaid: Tokens(1)})
func (l *Ledger) RegisterAssociation(caller sdk.Address, args RegisterAssociationArgs) (uint64, error) {
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
	if args.Name == "" || len(args.Name) > MaxNameLength {
		return 0, ErrInvalidArgument
	}
	if len(args.Description) > MaxDescriptionLength {
		return 0, ErrInvalidArgument
	}
	if getWalletLookup(l.state, caller) != 0 {
		return 0, ErrAlreadyRegistered
	}
	fee := cloneAmount(args.FeePaid)
	if fee.Cmp(cfg.RegistrationFee) < 0 {
		return 0, ErrInsufficientFee
	}
	if err := l.host.Draw(caller, fee, sdk.AssetCusd); err != nil {
		return 0, err
	}

	id := nextAssociationID(l.state)
	a := Association{
		ID:             id,
		Wallet:         caller,
		Name:           args.Name,
		Description:    args.Description,
		Metadata:       args.Metadata,
		Status:         AssociationPending,
		RegisteredAt:   l.nowUnix(),
		TotalReceived:  new(big.Int),
		TotalWithdrawn: new(big.Int),
	}
	if err := saveAssociation(l.state, &a); err != nil {
		return 0, err
	}
	setWalletLookup(l.state, caller, id)
	addFundPot(l.state, TreasuryKey, fee)
	l.emitAssociationRegisteredEvent(id, caller.String(), a.Name)
	l.log.Info().Str("op", "register_association").Uint64("id", id).
		Str("wallet", caller.String()).Msg("association registered")
	return id, nil
}

// VerifyAssociation moves a Pending or Suspended association to Verified so
// it may create campaigns. Verifying twice is a no-op.
func (l *Ledger) VerifyAssociation(caller sdk.Address, id uint64) error {
	cfg, err := l.config()
	if err != nil {
		return err
	}
	if err := requireNotPaused(cfg); err != nil {
		return err
	}
	if err := requireAdmin(cfg, caller); err != nil {
		return err
	}
	a, err := loadAssociation(l.state, id)
	if err != nil {
		return err
	}
	if a.Status == AssociationVerified {
		return nil
	}
	a.Status = AssociationVerified
	if err := saveAssociation(l.state, a); err != nil {
		return err
	}
	l.emitAssociationVerifiedEvent(id, caller.String())
	return nil
}

// SuspendAssociation freezes an association. Its campaigns stay readable and
// keep accepting donations only through campaigns that are not expired, but
// withdrawals and new campaigns are blocked until re-verification. Suspending
// twice is a no-op.
func (l *Ledger) SuspendAssociation(caller sdk.Address, id uint64, reason string) error {
	cfg, err := l.config()
	if err != nil {
		return err
	}
	if err := requireNotPaused(cfg); err != nil {
		return err
	}
	if err := requireAdmin(cfg, caller); err != nil {
		return err
	}
	a, err := loadAssociation(l.state, id)
	if err != nil {
		return err
	}
	if a.Status == AssociationSuspended {
		return nil
	}
	a.Status = AssociationSuspended
	if err := saveAssociation(l.state, a); err != nil {
		return err
	}
	l.emitAssociationSuspendedEvent(id, reason)
	return nil
}

// GetAssociation returns the association record.
func (l *Ledger) GetAssociation(id uint64) (*Association, error) {
	if _, err := l.config(); err != nil {
		return nil, err
	}
	return loadAssociation(l.state, id)
}

// GetAssociationByWallet resolves a wallet to its association id, 0 means the
// wallet never registered.
func (l *Ledger) GetAssociationByWallet(wallet sdk.Address) uint64 {
	return getWalletLookup(l.state, wallet)
}

// ListAssociations returns every association in registration order.
func (l *Ledger) ListAssociations() []*Association {
	count := getCount(l.state, AssociationsCount)
	out := make([]*Association, 0, count)
	for id := uint64(1); id <= count; id++ {
		if a, err := loadAssociation(l.state, id); err == nil {
			out = append(out, a)
		}
	}
	return out
}
