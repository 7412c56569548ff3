package contract

// State is the string key/value store every record lives in. Implementations
// only need to be safe for the ledger's strictly serial call pattern.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}
