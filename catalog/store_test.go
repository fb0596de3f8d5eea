package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_PrependsAndAssignsUniqueID(t *testing.T) {
	t.Parallel()

	s := NewStore()

	first := s.Insert(Product{Name: "Silla", Price: 100})
	second := s.Insert(Product{Name: "Mesa", Price: 250})

	require.NotZero(t, first.ID)
	require.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	list := s.List()
	require.Len(t, list, 2)
	// Most recently created first.
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestInsert_RapidInsertsNeverCollide(t *testing.T) {
	t.Parallel()

	s := NewStore()
	seen := make(map[int64]bool)

	// Far more inserts than fit in one millisecond of distinct clock values.
	for i := 0; i < 5000; i++ {
		p := s.Insert(Product{Name: "x", Price: 1})
		if seen[p.ID] {
			t.Fatalf("duplicate id issued: %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestInsert_ConcurrentInsertsAreSafe(t *testing.T) {
	t.Parallel()

	s := NewStore()
	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Insert(Product{Name: "x", Price: 1})
			}
		}()
	}
	wg.Wait()

	list := s.List()
	require.Len(t, list, workers*perWorker)

	seen := make(map[int64]bool, len(list))
	for _, p := range list {
		if seen[p.ID] {
			t.Fatalf("duplicate id issued under concurrency: %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestGet_RoundTrip(t *testing.T) {
	t.Parallel()

	s := NewStore()
	created := s.Insert(Product{Name: "Bocina", Price: 800, Description: "Buen sonido", Category: "Audio", Condition: "Usado", Seller: "Carlos", Location: "Cancún"})

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	s := NewStore()
	_, err := s.Get(999999)
	require.Error(t, err)
	assert.EqualError(t, err, "Producto no encontrado")
}

func TestRemove_ReturnsRemovedProduct(t *testing.T) {
	t.Parallel()

	s := NewStore()
	created := s.Insert(Product{Name: "Silla", Price: 100})

	removed, err := s.Remove(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, removed)
	assert.Zero(t, s.Len())
}

func TestRemove_NotIdempotent(t *testing.T) {
	t.Parallel()

	s := NewStore()
	created := s.Insert(Product{Name: "Silla", Price: 100})

	_, err := s.Remove(created.ID)
	require.NoError(t, err)

	// Second removal of the same id reports not-found.
	_, err = s.Remove(created.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "Producto no encontrado")
}

func TestNewSeededStore_HasDemoCatalog(t *testing.T) {
	t.Parallel()

	s := NewSeededStore()
	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Macbook Air", list[0].Name)
	assert.Equal(t, "iPhone 15", list[1].Name)
	assert.Equal(t, "Bocina JBL", list[2].Name)

	// New inserts must not collide with seed ids.
	created := s.Insert(Product{Name: "Silla", Price: 100})
	for _, p := range list {
		assert.NotEqual(t, p.ID, created.ID)
	}
}
