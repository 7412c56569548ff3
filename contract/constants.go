package contract

import "math/big"

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// UnitScale is the base-unit multiplier: one whole token equals 10^18 base
// units, the same scale the value layer uses.
var UnitScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// -----------------------------------------------------------------------------
// Commission Rule
// -----------------------------------------------------------------------------

const (
	// CommissionRate is the platform cut in basis points (400 = 4%).
	CommissionRate = 400
	// BasisPoints is the denominator for rate math.
	BasisPoints = 10000
)

// CommissionThreshold is the lifetime intake (per association) above which
// withdrawals start paying commission: 2000 whole tokens in base units.
var CommissionThreshold = new(big.Int).Mul(big.NewInt(2000), UnitScale)

// -----------------------------------------------------------------------------
// Campaign Window Bounds
// -----------------------------------------------------------------------------

const (
	// MinCampaignDuration rejects flash campaigns (one day, in seconds).
	MinCampaignDuration int64 = 24 * 60 * 60
	// MaxCampaignDuration caps the window at one year, in seconds.
	MaxCampaignDuration int64 = 365 * 24 * 60 * 60
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxNameLength limits association and campaign display names.
	MaxNameLength = 200
	// MaxDescriptionLength limits free-text descriptions and messages.
	MaxDescriptionLength = 2000
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// AssociationsCount holds the integer counter for associations (1-based ids).
	AssociationsCount = "count:assoc"
	// CampaignsCount holds the integer counter for campaigns (0-based ids).
	CampaignsCount = "count:camp"
	// DonationsCount holds the integer counter for donations (0-based ids).
	DonationsCount = "count:don"
	// ExpensesCount holds the integer counter for expenses (0-based ids).
	ExpensesCount = "count:exp"
)

// -----------------------------------------------------------------------------
// Fund Keys
// -----------------------------------------------------------------------------

const (
	// TreasuryKey accumulates retained registration fees.
	TreasuryKey = "funds:treasury"
	// CommissionPoolKey accumulates collected commissions until swept.
	CommissionPoolKey = "funds:commission"
	// TotalRaisedKey accumulates all donations platform-wide for stats.
	TotalRaisedKey = "funds:raised"
)

// ContractConfigKey stores the encoded singleton ContractConfig.
const ContractConfigKey = "contract:config"

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kAssociation stores serialized Association blobs.
	kAssociation byte = 0x01
	// kCampaign stores serialized Campaign blobs.
	kCampaign byte = 0x02
	// kDonation stores serialized Donation blobs (append-only).
	kDonation byte = 0x03
	// kExpense stores serialized Expense blobs (append-only).
	kExpense byte = 0x04
	// kWalletLookup maps a wallet address to its association id.
	kWalletLookup byte = 0x05
	// kCampaignWithdrawn tracks the cumulative withdrawn amount per campaign.
	kCampaignWithdrawn byte = 0x06
)

// -----------------------------------------------------------------------------
// Index Key Prefixes
// -----------------------------------------------------------------------------

const (
	// maxChunkSize splits every index into chunks of X entries so a single
	// key/value never grows past what a state backend comfortably holds.
	maxChunkSize = 2500
	// idxAssociationCampaigns holds campaign ids per association. + associationId
	idxAssociationCampaigns = "idx:assoc:camp:"
	// idxCampaignDonations holds donation ids per campaign, insertion order. + campaignId
	idxCampaignDonations = "idx:camp:don:"
	// idxDonorHistory holds donation ids per donor, insertion order. + donor address
	idxDonorHistory = "idx:donor:"
	// idxCampaignExpenses holds expense ids per campaign, insertion order. + campaignId
	idxCampaignExpenses = "idx:camp:exp:"
)
