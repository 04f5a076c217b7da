package cache

import (
	"github.com/dgraph-io/ristretto"
	ristrettoStore "github.com/eko/gocache/store/ristretto/v4"
)

// Store bundles the ristretto instance with its gocache adapter. Wait is
// exposed so callers that need read-your-write behavior can flush the
// ristretto set buffers.
type Store struct {
	R *ristretto.Cache
	S *ristrettoStore.RistrettoStore
}

func NewStore() (*Store, error) {
	r, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000,
		MaxCost:     64 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &Store{R: r, S: ristrettoStore.NewRistretto(r)}, nil
}

func (s *Store) Wait() {
	s.R.Wait()
}
