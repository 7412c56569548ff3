package contract

import "errors"

// Categorical errors surfaced by ledger operations. Callers match them with
// errors.Is; every rejected operation leaves state untouched.
var (
	// ErrNotInitialized is returned when the ledger has no contract config yet.
	ErrNotInitialized = errors.New("ledger not initialized")
	// ErrAlreadyInitialized guards Init against double setup.
	ErrAlreadyInitialized = errors.New("ledger already initialized")
	// ErrUnauthorized marks admin-only operations invoked by someone else.
	ErrUnauthorized = errors.New("caller is not the admin")
	// ErrNotAssociationOwner marks owner-only operations invoked by the wrong wallet.
	ErrNotAssociationOwner = errors.New("caller is not the association owner")
	// ErrSystemPaused is the global safety gate on every mutating operation.
	ErrSystemPaused = errors.New("system is paused")
	// ErrNotFound marks lookups of unknown ids.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument rejects empty or oversized text fields.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyRegistered enforces one association per wallet, for life.
	ErrAlreadyRegistered = errors.New("wallet already registered an association")
	// ErrAssociationNotVerified gates campaign creation on verification.
	ErrAssociationNotVerified = errors.New("association is not verified")
	// ErrInvalidGoal rejects zero campaign goals.
	ErrInvalidGoal = errors.New("invalid campaign goal")
	// ErrInvalidDuration rejects campaign windows outside the allowed bounds.
	ErrInvalidDuration = errors.New("invalid campaign duration")
	// ErrInvalidAmount rejects zero or negative value movements.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidCampaignState rejects disallowed status transitions.
	ErrInvalidCampaignState = errors.New("invalid campaign state")
	// ErrCampaignEnded rejects donations once the window closed or the status left Active.
	ErrCampaignEnded = errors.New("campaign has ended")
	// ErrInsufficientFunds rejects withdrawals above the campaign's available funds.
	ErrInsufficientFunds = errors.New("insufficient campaign funds")
	// ErrInsufficientFee rejects registrations paying less than the registration fee.
	ErrInsufficientFee = errors.New("insufficient registration fee")
	// ErrNothingToWithdraw rejects commission sweeps on an empty pool.
	ErrNothingToWithdraw = errors.New("nothing to withdraw")
)
