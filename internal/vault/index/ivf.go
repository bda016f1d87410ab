package index

import (
	"bytes"
	"cmp"
	"math/rand"
	"slices"
	"sync"

	"github.com/google/uuid"

	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
)

// Options tunes the IVF index. Zero values fall back to defaults.
type Options struct {
	// Lists is the number of k-means clusters (inverted lists).
	Lists int
	// Probes is the number of closest lists scanned per search before widening.
	Probes int
	// TrainThreshold is the size at which the index stops scanning flat and trains lists.
	TrainThreshold int
	// Seed makes training deterministic.
	Seed int64
}

const (
	DefaultLists          = 100
	DefaultProbes         = 10
	DefaultTrainThreshold = 1000
)

// Entry is a vector to load into the index.
type Entry struct {
	ID     uuid.UUID
	Vector []float32
}

// Hit is a ranked search result.
type Hit struct {
	ID       uuid.UUID
	Distance float64
}

// IVF is an inverted-file index over unit vectors.
//
// Below TrainThreshold vectors every search is an exact flat scan. Once the threshold
// is reached the vectors are clustered with spherical k-means; searches then scan the
// Probes closest lists and keep widening until limit hits are found or every list has
// been read. The index retrains each time it doubles in size.
//
// Mutations take the write lock; searches share the read lock.
type IVF struct {
	mu   sync.RWMutex
	dim  int
	opts Options
	rng  *rand.Rand

	ids      []uuid.UUID
	vectors  [][]float32
	present  map[uuid.UUID]struct{}
	lists    [][]int
	centers  [][]float32
	trainedN int
}

// NewIVF creates an empty index for vectors of dimension dim.
func NewIVF(dim int, opts Options) *IVF {
	if opts.Lists <= 0 {
		opts.Lists = DefaultLists
	}
	if opts.Probes <= 0 {
		opts.Probes = DefaultProbes
	}
	if opts.TrainThreshold <= 0 {
		opts.TrainThreshold = DefaultTrainThreshold
	}
	return &IVF{
		dim:     dim,
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		present: make(map[uuid.UUID]struct{}),
	}
}

// Dimensions returns the vector size the index accepts.
func (x *IVF) Dimensions() int {
	return x.dim
}

// Len returns the number of indexed vectors.
func (x *IVF) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.ids)
}

// Trained reports whether searches go through inverted lists.
func (x *IVF) Trained() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.centers != nil
}

// Add indexes one vector. Adding an id twice is a no-op.
func (x *IVF) Add(id uuid.UUID, vector []float32) error {
	return x.AddBatch([]Entry{{ID: id, Vector: vector}})
}

// AddBatch indexes entries under a single write lock, training at most once.
// The batch is rejected as a whole if any vector has the wrong dimension.
func (x *IVF) AddBatch(entries []Entry) error {
	for _, e := range entries {
		if len(e.Vector) != x.dim {
			return vaultDomain.ErrDimensionMismatch
		}
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	for _, e := range entries {
		if _, ok := x.present[e.ID]; ok {
			continue
		}
		pos := len(x.ids)
		x.ids = append(x.ids, e.ID)
		x.vectors = append(x.vectors, Normalize(e.Vector))
		x.present[e.ID] = struct{}{}

		if x.centers != nil {
			c := nearest(x.vectors[pos], x.centers)
			x.lists[c] = append(x.lists[c], pos)
		}
	}

	if n := len(x.ids); n >= x.opts.TrainThreshold && (x.centers == nil || n >= 2*x.trainedN) {
		x.train()
	}
	return nil
}

// train rebuilds centroids and lists. Caller holds the write lock.
func (x *IVF) train() {
	x.centers = trainSpherical(x.vectors, x.opts.Lists, x.rng)
	x.lists = make([][]int, len(x.centers))
	for pos, v := range x.vectors {
		c := nearest(v, x.centers)
		x.lists[c] = append(x.lists[c], pos)
	}
	x.trainedN = len(x.vectors)
}

// Search returns up to limit hits ordered by ascending cosine distance, ties broken by id.
func (x *IVF) Search(query []float32, limit int) ([]Hit, error) {
	if len(query) != x.dim {
		return nil, vaultDomain.ErrDimensionMismatch
	}
	if limit <= 0 {
		return []Hit{}, nil
	}
	q := Normalize(query)

	x.mu.RLock()
	defer x.mu.RUnlock()

	var hits []Hit
	if x.centers == nil {
		hits = make([]Hit, len(x.vectors))
		for pos, v := range x.vectors {
			hits[pos] = Hit{ID: x.ids[pos], Distance: unitDistance(q, v)}
		}
	} else {
		hits = x.probe(q, limit)
	}

	slices.SortFunc(hits, compareHits)
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// probe scans lists nearest to q, widening past Probes until limit hits are gathered.
func (x *IVF) probe(q []float32, limit int) []Hit {
	order := make([]int, len(x.centers))
	dists := make([]float64, len(x.centers))
	for j, c := range x.centers {
		order[j] = j
		dists[j] = unitDistance(q, c)
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Or(cmp.Compare(dists[a], dists[b]), cmp.Compare(a, b))
	})

	var hits []Hit
	for i, list := range order {
		if i >= x.opts.Probes && len(hits) >= limit {
			break
		}
		for _, pos := range x.lists[list] {
			hits = append(hits, Hit{ID: x.ids[pos], Distance: unitDistance(q, x.vectors[pos])})
		}
	}
	return hits
}

func compareHits(a, b Hit) int {
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}
