package contract

import (
	"math/big"

	"github.com/momodiaobana/DontrackProject/sdk"
)

// -----------------------------------------------------------------------------
// Platform Administration
// -----------------------------------------------------------------------------

// SetAdmin hands the admin role to a new address. Works even while paused so
// a lost key cannot freeze the platform forever.
func (l *Ledger) SetAdmin(caller, newAdmin sdk.Address) error {
	cfg, err := l.config()
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, caller); err != nil {
		return err
	}
	if !newAdmin.IsValid() {
		return ErrInvalidArgument
	}
	old := cfg.Admin
	cfg.Admin = newAdmin
	l.saveContractConfig(cfg)
	l.emitOwnershipTransferred(old.String(), newAdmin.String())
	return nil
}

// SetRegistrationFee updates the fee future registrations must pay. Already
// registered associations are unaffected.
func (l *Ledger) SetRegistrationFee(caller sdk.Address, fee *big.Int) error {
	cfg, err := l.config()
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, caller); err != nil {
		return err
	}
	if fee != nil && fee.Sign() < 0 {
		return ErrInvalidAmount
	}
	old := cfg.RegistrationFee
	cfg.RegistrationFee = cloneAmount(fee)
	l.saveContractConfig(cfg)
	l.emitRegistrationFeeChangedEvent(old, cfg.RegistrationFee)
	return nil
}

// Pause freezes every mutating operation until Unpause. Pausing twice is a
// no-op.
func (l *Ledger) Pause(caller sdk.Address) error {
	cfg, err := l.config()
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, caller); err != nil {
		return err
	}
	if cfg.Paused {
		return nil
	}
	cfg.Paused = true
	l.saveContractConfig(cfg)
	l.emitPausedEvent(caller.String())
	return nil
}

// Unpause resumes normal operation.
func (l *Ledger) Unpause(caller sdk.Address) error {
	cfg, err := l.config()
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, caller); err != nil {
		return err
	}
	if !cfg.Paused {
		return nil
	}
	cfg.Paused = false
	l.saveContractConfig(cfg)
	l.emitUnpausedEvent(caller.String())
	return nil
}

// Admin returns the current admin address.
func (l *Ledger) Admin() (sdk.Address, error) {
	cfg, err := l.config()
	if err != nil {
		return sdk.AddressZero, err
	}
	return cfg.Admin, nil
}

// Paused reports whether the global freeze is on.
func (l *Ledger) Paused() (bool, error) {
	cfg, err := l.config()
	if err != nil {
		return false, err
	}
	return cfg.Paused, nil
}

// RegistrationFee returns the current registration fee.
func (l *Ledger) RegistrationFee() (*big.Int, error) {
	cfg, err := l.config()
	if err != nil {
		return nil, err
	}
	return cloneAmount(cfg.RegistrationFee), nil
}
