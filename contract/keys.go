package contract

import "github.com/momodiaobana/DontrackProject/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// associationKey builds a storage key string for an association by ID.
func associationKey(id uint64) string {
	var buf [9]byte
	buf[0] = kAssociation
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// campaignKey encodes id under the 0x02 prefix keeping campaign blobs contiguous.
func campaignKey(id uint64) string {
	var buf [9]byte
	buf[0] = kCampaign
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// donationKey stores donation records sequentially under the 0x03 prefix.
func donationKey(id uint64) string {
	var buf [9]byte
	buf[0] = kDonation
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// expenseKey stores expense records sequentially under the 0x04 prefix.
func expenseKey(id uint64) string {
	var buf [9]byte
	buf[0] = kExpense
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// walletLookupKey mixes the prefix with raw address bytes so one wallet maps
// to at most one association id.
func walletLookupKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kWalletLookup)
	buf = append(buf, addrStr...)
	return string(buf)
}

// campaignWithdrawnKey tracks cumulative withdrawals per campaign so the
// available figure stays a cheap subtraction.
func campaignWithdrawnKey(id uint64) string {
	var buf [9]byte
	buf[0] = kCampaignWithdrawn
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
