package contract

import (
	"math/big"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/momodiaobana/DontrackProject/sdk"
)

// Ledger owns every record of the donation platform: associations,
// campaigns, donations, expenses and the platform fund pots. All access goes
// through its operations; calls are applied strictly serially, validate
// before they write, and either complete or leave state untouched.
type Ledger struct {
	state State
	host  sdk.Host
	clock clock.Clock
	log   zerolog.Logger
}

// Option tweaks optional ledger collaborators.
type Option func(*Ledger)

// WithClock swaps the wall clock, tests pass clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(l *Ledger) { l.clock = c }
}

// WithLogger attaches a structured logger for operational tracing. Domain
// events go through the host log, not here.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Ledger) { l.log = logger }
}

// New wires a ledger over the given state and host. Call Init before any
// other operation on a fresh state.
func New(state State, host sdk.Host, opts ...Option) *Ledger {
	l := &Ledger{
		state: state,
		host:  host,
		clock: clock.New(),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Init seeds the singleton config with the admin identity and the initial
// registration fee. Must run exactly once per state.
func (l *Ledger) Init(admin sdk.Address, registrationFee *big.Int) error {
	if l.isInitialized() {
		return ErrAlreadyInitialized
	}
	if !admin.IsValid() {
		return ErrUnauthorized
	}
	cfg := ContractConfig{
		Admin:           admin,
		RegistrationFee: cloneAmount(registrationFee),
	}
	l.saveContractConfig(&cfg)
	l.emitOwnershipTransferred(sdk.AddressZero.String(), admin.String())
	l.log.Info().Str("op", "init").Str("admin", admin.String()).
		Str("fee", AmountToDecimal(cfg.RegistrationFee)).Msg("ledger initialized")
	return nil
}

// nowUnix is the single clock read every expiry and timestamp uses.
func (l *Ledger) nowUnix() int64 {
	return l.clock.Now().Unix()
}

// config loads the singleton ContractConfig or fails on a fresh state.
func (l *Ledger) config() (*ContractConfig, error) {
	cfg := l.loadContractConfig()
	if cfg == nil {
		return nil, ErrNotInitialized
	}
	return cfg, nil
}

// requireAdmin gates admin-only operations on the caller identity.
func requireAdmin(cfg *ContractConfig, caller sdk.Address) error {
	if caller != cfg.Admin {
		return ErrUnauthorized
	}
	return nil
}

// requireNotPaused is the global safety gate on mutating operations.
func requireNotPaused(cfg *ContractConfig) error {
	if cfg.Paused {
		return ErrSystemPaused
	}
	return nil
}
