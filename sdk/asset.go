package sdk

type Asset string

const (
	AssetCelo Asset = "celo"
	AssetCusd Asset = "cusd"
)

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.AssetCelo.String()
func (a Asset) String() string {
	return string(a)
}
