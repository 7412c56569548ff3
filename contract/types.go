package contract

import (
	"math/big"

	"github.com/momodiaobana/DontrackProject/sdk"
)

//go:generate go run github.com/CosmWasm/tinyjson/tinyjson types.go

// AssociationStatus captures an association's lifecycle.
type AssociationStatus uint8

const (
	AssociationPending   AssociationStatus = 0
	AssociationVerified  AssociationStatus = 1
	AssociationSuspended AssociationStatus = 2
	AssociationRejected  AssociationStatus = 3
)

// String prints the association status as lower-case text for events and logs.
// Example payload: AssociationVerified.String()
func (s AssociationStatus) String() string {
	switch s {
	case AssociationPending:
		return "pending"
	case AssociationVerified:
		return "verified"
	case AssociationSuspended:
		return "suspended"
	case AssociationRejected:
		return "rejected"
	default:
		return "unspecified"
	}
}

// CampaignStatus captures a campaign's lifecycle. Expiry by wall clock is a
// derived condition and never stored here.
type CampaignStatus uint8

const (
	CampaignActive    CampaignStatus = 0
	CampaignPaused    CampaignStatus = 1
	CampaignCompleted CampaignStatus = 2
	CampaignCancelled CampaignStatus = 3
)

// String prints the campaign status as lower-case text for events and logs.
// Example payload: CampaignActive.String()
func (s CampaignStatus) String() string {
	switch s {
	case CampaignActive:
		return "active"
	case CampaignPaused:
		return "paused"
	case CampaignCompleted:
		return "completed"
	case CampaignCancelled:
		return "cancelled"
	default:
		return "unspecified"
	}
}

// Association is a registered charitable organization. Ids are 1-based so 0
// can mean "not found" in wallet lookups.
//tinyjson:json
type Association struct {
	ID             uint64            `json:"id"`
	Wallet         sdk.Address       `json:"wallet"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Metadata       string            `json:"metadata"`
	Status         AssociationStatus `json:"status"`
	RegisteredAt   int64             `json:"registeredAt"`
	TotalReceived  *big.Int          `json:"totalReceived"`
	TotalWithdrawn *big.Int          `json:"totalWithdrawn"`
}

// Campaign is a time-boxed fundraising effort owned by one association.
// Raised only ever grows; withdrawals reduce the derived available figure,
// never Raised itself.
//tinyjson:json
type Campaign struct {
	ID            uint64         `json:"id"`
	AssociationID uint64         `json:"associationId"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Metadata      string         `json:"metadata"`
	Goal          *big.Int       `json:"goal"`
	Raised        *big.Int       `json:"raised"`
	StartDate     int64          `json:"startDate"`
	EndDate       int64          `json:"endDate"`
	Status        CampaignStatus `json:"status"`
}

// Donation is an immutable record of value contributed to a campaign.
//tinyjson:json
type Donation struct {
	ID         uint64      `json:"id"`
	CampaignID uint64      `json:"campaignId"`
	Donor      sdk.Address `json:"donor"`
	Amount     *big.Int    `json:"amount"`
	Timestamp  int64       `json:"timestamp"`
	Message    string      `json:"message,omitempty"`
}

// Expense is an immutable disclosure record, it never moves funds.
//tinyjson:json
type Expense struct {
	ID          uint64   `json:"id"`
	CampaignID  uint64   `json:"campaignId"`
	Amount      *big.Int `json:"amount"`
	Description string   `json:"description"`
	ProofHash   string   `json:"proofHash,omitempty"`
	Timestamp   int64    `json:"timestamp"`
}

// ContractConfig holds the singleton admin identity, pause flag and the
// current registration fee. It is state, not ambient globals.
type ContractConfig struct {
	Admin           sdk.Address
	Paused          bool
	RegistrationFee *big.Int
}

// GlobalStats is derived from counters and fund totals on demand.
//
//tinyjson:json
type GlobalStats struct {
	TotalAssociations uint64   `json:"totalAssociations"`
	TotalCampaigns    uint64   `json:"totalCampaigns"`
	TotalDonations    uint64   `json:"totalDonations"`
	TotalRaised       *big.Int `json:"totalRaised"`
	TotalCommissions  *big.Int `json:"totalCommissions"`
	Treasury          *big.Int `json:"treasury"`
}

// RegisterAssociationArgs bundles the caller-supplied registration fields.
type RegisterAssociationArgs struct {
	Name        string
	Description string
	Metadata    string
	FeePaid     *big.Int
}

// CreateCampaignArgs bundles the caller-supplied campaign fields. Duration
// is in seconds, bounded by MinCampaignDuration/MaxCampaignDuration.
type CreateCampaignArgs struct {
	Title       string
	Description string
	Metadata    string
	Goal        *big.Int
	Duration    int64
}
