package history

import (
	"context"
	"net/url"
	"sync"
	"testing"

	"printfront/internal/dto"
	"printfront/internal/entities"
	"printfront/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeFetcher rejoue des réponses préparées et enregistre les requêtes.
type fakeFetcher struct {
	mu      sync.Mutex
	queries []url.Values
	orders  []entities.Order
	pagin   types.Pagination
	err     error

	// hook exécuté pendant l'appel, avant le retour ; sert à simuler une
	// requête concurrente qui double celle en vol.
	during func()
}

func (f *fakeFetcher) ListHistory(_ context.Context, query url.Values) ([]entities.Order, types.Pagination, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.during != nil {
		f.during()
	}
	return f.orders, f.pagin, f.err
}

func (f *fakeFetcher) HistoryStats(_ context.Context) (*dto.HistoryStatsDTO, error) {
	return &dto.HistoryStatsDTO{TotalOrders: 4, CountsByStatus: map[string]int{"livre": 3, "annule": 1}}, nil
}

func (f *fakeFetcher) recorded() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.queries...)
}

const testUser = uint64(1)

func TestService_FetchFlattens(t *testing.T) {
	fetcher := &fakeFetcher{
		orders: []entities.Order{
			{ID: 1, Statut: "livre", OrderProducts: []entities.OrderProduct{{ID: 10}, {ID: 11}}},
		},
		pagin: types.Pagination{CurrentPage: 1, TotalPages: 3, TotalOrders: 22, HasNextPage: true},
	}
	svc := NewService(fetcher, zap.NewNop())

	rows, pagination, err := svc.Fetch(context.Background(), testUser, Filter{Statut: "livre"}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 22, pagination.TotalOrders)

	queries := fetcher.recorded()
	require.Len(t, queries, 1)
	assert.Equal(t, "livre", queries[0].Get("statut"))
}

// Une réponse dépassée par une requête plus récente sur le même créneau est
// jetée : elle n'écrase jamais des résultats plus frais.
func TestService_StaleResponseDiscarded(t *testing.T) {
	fetcher := &fakeFetcher{
		orders: []entities.Order{{ID: 1, OrderProducts: []entities.OrderProduct{{ID: 10}}}},
	}
	svc := NewService(fetcher, zap.NewNop())

	// pendant que la première requête est en vol, une seconde part sur le
	// créneau du même utilisateur
	fired := false
	fetcher.during = func() {
		if !fired {
			fired = true
			svc.session(testUser).slot.Next()
		}
	}

	rows, _, err := svc.Fetch(context.Background(), testUser, Filter{}, 1, 10)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, ErrStaleResponse)
}

// Le créneau de péremption est propre à chaque session : la consultation
// d'un utilisateur ne périme jamais celle d'un autre.
func TestService_SlotIsPerSession(t *testing.T) {
	fetcher := &fakeFetcher{
		orders: []entities.Order{{ID: 1, OrderProducts: []entities.OrderProduct{{ID: 10}}}},
	}
	svc := NewService(fetcher, zap.NewNop())

	// un autre utilisateur consulte pendant que la requête est en vol
	fired := false
	fetcher.during = func() {
		if !fired {
			fired = true
			svc.session(uint64(99)).slot.Next()
		}
	}

	rows, _, err := svc.Fetch(context.Background(), testUser, Filter{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

// Le service est partagé par toutes les goroutines du serveur HTTP : des
// consultations simultanées, sessions distinctes ou non, ne se marchent pas
// dessus.
func TestService_ConcurrentSessions(t *testing.T) {
	fetcher := &fakeFetcher{
		orders: []entities.Order{{ID: 1, OrderProducts: []entities.OrderProduct{{ID: 10}}}},
	}
	svc := NewService(fetcher, zap.NewNop())

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for u := uint64(1); u <= 8; u++ {
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(userID uint64) {
				defer wg.Done()
				_, _, err := svc.Refresh(context.Background(), userID)
				errs <- err
			}(u)
		}
	}
	wg.Wait()
	close(errs)

	// au sein d'une même session, seuls des abandons de réponses périmées
	// sont admis, jamais d'autre erreur
	for err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, ErrStaleResponse)
		}
	}
}

func TestService_RefreshReplaysLastQuery(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := NewService(fetcher, zap.NewNop())

	filter := Filter{Statut: "annule", Client: "mairie"}
	_, _, err := svc.Fetch(context.Background(), testUser, filter, 3, 25)
	require.NoError(t, err)

	// le push temps réel amène l'interface à redemander la même page
	_, _, err = svc.Refresh(context.Background(), testUser)
	require.NoError(t, err)

	queries := fetcher.recorded()
	require.Len(t, queries, 2)
	assert.Equal(t, queries[0], queries[1])
	assert.Equal(t, "3", queries[1].Get("page"))
}

func TestService_Stats(t *testing.T) {
	svc := NewService(&fakeFetcher{}, zap.NewNop())
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.CountsByStatus["livre"])
}
