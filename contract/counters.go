package contract

import "strconv"

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(state State, key string) uint64 {
	ptr := state.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the kv.
func setCount(state State, key string, n uint64) {
	state.Set(key, strconv.FormatUint(n, 10))
}

// nextAssociationID hands out 1-based ids so id 0 can mean "no such
// association" in wallet lookups.
func nextAssociationID(state State) uint64 {
	id := getCount(state, AssociationsCount) + 1
	setCount(state, AssociationsCount, id)
	return id
}

// nextSequenceID hands out 0-based ids for campaigns, donations and expenses.
func nextSequenceID(state State, key string) uint64 {
	id := getCount(state, key)
	setCount(state, key, id+1)
	return id
}
