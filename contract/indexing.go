package contract

// maintaining index keys for querying data in various ways

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// chunkCounterKey stores number of chunks for a base index
func chunkCounterKey(base string) string {
	return base + ":chunks"
}

func chunkKey(base string, chunk int) string {
	return base + ":" + strconv.Itoa(chunk)
}

// getChunkCount reads the number of chunks for an index
func getChunkCount(state State, baseKey string) int {
	ptr := state.Get(chunkCounterKey(baseKey))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.Atoi(*ptr)
	return n
}

// setChunkCount sets the number of chunks
func setChunkCount(state State, baseKey string, n int) {
	state.Set(chunkCounterKey(baseKey), strconv.Itoa(n))
}

// addIDToIndex appends id to the last chunk with free space, opening a new
// chunk when every existing one is full. Ids already present are left alone
// so the index stays duplicate free.
func addIDToIndex(state State, baseKey string, id uint64) error {
	chunks := getChunkCount(state, baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := state.Get(key)
		var ids []uint64
		if ptr != nil && *ptr != "" {
			if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
				return fmt.Errorf("unmarshal index %s: %w", key, err)
			}
			for _, e := range ids {
				if e == id {
					return nil // already present
				}
			}
			if len(ids) < maxChunkSize {
				ids = append(ids, id)
				b, err := json.Marshal(ids)
				if err != nil {
					return fmt.Errorf("marshal index %s: %w", key, err)
				}
				state.Set(key, string(b))
				return nil
			}
		}
	}
	// not found / no space -> create new chunk
	key := chunkKey(baseKey, chunks)
	b, err := json.Marshal([]uint64{id})
	if err != nil {
		return fmt.Errorf("marshal index %s: %w", key, err)
	}
	state.Set(key, string(b))
	setChunkCount(state, baseKey, chunks+1)
	return nil
}

// getIDsFromIndex collects all IDs across all chunks in insertion order.
func getIDsFromIndex(state State, baseKey string) ([]uint64, error) {
	all := []uint64{}
	chunks := getChunkCount(state, baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := state.Get(key)
		if ptr == nil || *ptr == "" {
			continue
		}
		var ids []uint64
		if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
			return nil, fmt.Errorf("unmarshal index %s: %w", key, err)
		}
		all = append(all, ids...)
	}
	return all, nil
}
