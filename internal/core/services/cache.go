package services

import (
	"hash/fnv"
	"sort"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/splittab/splittab_backend/internal/core/domain"
)

// defaultMemoCacheSize bounds how many snapshot projections each service
// keeps around. Display refreshes hit the same snapshot repeatedly, so a
// handful of entries is enough.
const defaultMemoCacheSize = 5

// memoCache memoizes derived computations keyed by a structural fingerprint
// of their inputs, with LRU eviction. Computations are read-only projections
// over immutable snapshots, so stale entries are evicted, never invalidated.
type memoCache[V any] struct {
	entries *lru.Cache[string, V]
}

func newMemoCache[V any](size int) *memoCache[V] {
	if size <= 0 {
		size = defaultMemoCacheSize
	}
	entries, err := lru.New[string, V](size)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(err)
	}
	return &memoCache[V]{entries: entries}
}

func (c *memoCache[V]) get(key string) (V, bool) {
	return c.entries.Get(key)
}

func (c *memoCache[V]) add(key string, value V) {
	c.entries.Add(key, value)
}

// snapshotFingerprint hashes the identity-relevant slice of a group snapshot:
// which entities exist, when they last changed, and the transaction fields
// the balance engine reads. Two snapshots with equal fingerprints produce
// equal projections.
func snapshotFingerprint(
	groupID domain.GroupID,
	accounts []domain.Account,
	transactions []domain.Transaction,
	positionsByTransaction map[domain.TransactionID][]domain.Position,
) string {
	h := fnv.New64a()
	write := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(p))
			h.Write([]byte{0})
		}
	}

	write("g", strconv.Itoa(int(groupID)))
	for _, account := range accounts {
		write("a",
			strconv.Itoa(int(account.ID)),
			strconv.FormatInt(account.LastChanged.UnixNano(), 10),
			strconv.FormatBool(account.Deleted),
			strconv.FormatBool(account.IsWip),
		)
	}
	for _, txn := range transactions {
		write("t",
			strconv.Itoa(int(txn.ID)),
			strconv.FormatInt(txn.LastChanged.UnixNano(), 10),
			strconv.FormatBool(txn.Deleted),
			strconv.FormatBool(txn.IsWip),
			txn.Value.String(),
			txn.BilledAt.String(),
			txn.Repeat,
		)
		for _, pos := range positionsByTransaction[txn.ID] {
			write("p",
				strconv.Itoa(int(pos.ID)),
				pos.Value.String(),
				strconv.FormatBool(pos.Deleted),
			)
		}
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// paramsFingerprint extends a snapshot fingerprint with display pipeline
// parameters so differently filtered views memoize independently.
func paramsFingerprint(base string, sortMode domain.TransactionSortMode, searchTerm string, tags []string) string {
	h := fnv.New64a()
	h.Write([]byte(base))
	h.Write([]byte{0})
	h.Write([]byte(sortMode))
	h.Write([]byte{0})
	h.Write([]byte(searchTerm))
	sorted := append([]string(nil), tags...)
	sort.Strings(sorted)
	for _, tag := range sorted {
		h.Write([]byte{0})
		h.Write([]byte(tag))
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
