package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type AddressType string

const (
	AddressTypeEVM     AddressType = "evm"
	AddressTypeNamed   AddressType = "named"
	AddressTypeSystem  AddressType = "system"
	AddressTypeUnknown AddressType = "unknown"
)

// Address identifies a wallet on the value layer the ledger sits on.
type Address string

// AddressZero is the absent address, used the same way 0 ids mark absence.
const AddressZero Address = ""

// String returns the literal representation (like celo:alice or 0xabc...) of the address.
// Example payload: sdk.Address("celo:alice").String()
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is the empty sentinel.
// Example payload: sdk.AddressZero.IsZero()
func (a Address) IsZero() bool {
	return a == AddressZero
}

// Domain quickly checks the prefix to guess if we deal with user/contract/system domain.
// Example payload: sdk.Address("contract:dontrack").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// Type inspects the prefix to categorize the address (evm hex, named account, system).
// Example payload: sdk.Address("0xdeadbeef").Type()
func (a Address) Type() AddressType {
	s := a.String()
	switch {
	case strings.HasPrefix(s, "0x"):
		return AddressTypeEVM
	case strings.HasPrefix(s, "system:"):
		return AddressTypeSystem
	case strings.Contains(s, ":"):
		return AddressTypeNamed
	default:
		return AddressTypeUnknown
	}
}

// IsValid returns false if the address type detection failed, used as a light sanity check.
// Example payload: sdk.Address("celo:alice").IsValid()
func (a Address) IsValid() bool {
	return !a.IsZero() && a.Type() != AddressTypeUnknown
}
