package forwarding

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"math/rand/v2"
	"phoneforward/internal/app/domain/forward"
	"phoneforward/internal/app/infrastructure/config"
	"phoneforward/internal/app/infrastructure/storage"
	"phoneforward/internal/app/ports"
	"phoneforward/pkg/logger"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu          sync.Mutex
	events      []ports.Event
	subscribers int
	jitter      bool // sleep before recording, like a contended hub
}

func (r *recorder) Publish(event ports.Event) {
	if r.jitter {
		time.Sleep(time.Duration(rand.IntN(50)) * time.Microsecond)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) Subscribers() int { return r.subscribers }

func newService(t *testing.T, opts ...forward.Option) (*Service, *recorder, *storage.Cache[[]string]) {
	t.Helper()
	rec := &recorder{}
	cache := storage.NewCache[[]string](100, time.Minute)
	engine := forward.New(append([]forward.Option{forward.WithNodeLimit(10)}, opts...)...)
	s := New(logger.NewWriter(io.Discard), engine, cache, WithEvents(rec))
	return s, rec, cache
}

func TestService_AddGet(t *testing.T) {
	s, rec, _ := newService(t)

	require.NoError(t, s.Add("12", "34"))
	got, err := s.Get("125")
	require.NoError(t, err)
	assert.Equal(t, []string{"345"}, got)

	require.Len(t, rec.events, 1)
	assert.Equal(t, ports.EventAdd, rec.events[0].Type)
	assert.Equal(t, "12", rec.events[0].From)
	assert.Equal(t, "34", rec.events[0].To)
}

func TestService_InvalidInput(t *testing.T) {
	s, rec, _ := newService(t)

	assert.ErrorIs(t, s.Add("1a", "2"), forward.ErrInvalidNumber)
	assert.ErrorIs(t, s.Add("7", "7"), forward.ErrSelfForward)

	_, err := s.Get("")
	assert.ErrorIs(t, err, forward.ErrInvalidNumber)
	_, err = s.Reverse("x")
	assert.ErrorIs(t, err, forward.ErrInvalidNumber)
	_, err = s.GetReverse("1 2")
	assert.ErrorIs(t, err, forward.ErrInvalidNumber)
	_, err = s.Remove("")
	assert.ErrorIs(t, err, forward.ErrInvalidNumber)

	assert.Empty(t, rec.events)
}

func TestService_CacheInvalidatedOnMutation(t *testing.T) {
	s, _, cache := newService(t)
	require.NoError(t, s.Add("1", "2"))

	got, err := s.Get("13")
	require.NoError(t, err)
	assert.Equal(t, []string{"23"}, got)
	_, ok := cache.Get("get:13")
	assert.True(t, ok)

	got[0] = "mutated"
	again, err := s.Get("13")
	require.NoError(t, err)
	assert.Equal(t, []string{"23"}, again)

	require.NoError(t, s.Add("13", "9"))
	_, ok = cache.Get("get:13")
	assert.False(t, ok)

	got, err = s.Get("13")
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, got)

	removed, err := s.Remove("13")
	require.NoError(t, err)
	assert.True(t, removed)
	got, err = s.Get("13")
	require.NoError(t, err)
	assert.Equal(t, []string{"23"}, got)
}

func TestService_RemoveMissing(t *testing.T) {
	s, rec, _ := newService(t)

	removed, err := s.Remove("5")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Empty(t, rec.events)
}

func TestService_ReverseAndPreimage(t *testing.T) {
	s, _, _ := newService(t)
	require.NoError(t, s.Add("1", "2"))
	require.NoError(t, s.Add("12", "3"))

	rev, err := s.Reverse("22")
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "22"}, rev)

	pre, err := s.GetReverse("22")
	require.NoError(t, err)
	assert.Equal(t, []string{"22"}, pre)
}

func TestService_NoSpace(t *testing.T) {
	s, rec, _ := newService(t, forward.WithNodeLimit(2))

	require.NoError(t, s.Add("12", "3"))
	assert.ErrorIs(t, s.Add("456", "7"), forward.ErrNoSpace)
	assert.Len(t, rec.events, 1)
	assert.Equal(t, 2, s.Stats().Nodes)
}

func TestService_SeedRulesStats(t *testing.T) {
	s, rec, _ := newService(t)

	require.NoError(t, s.Seed([]config.Forward{{From: "#", To: "1"}, {From: "2", To: "3"}}))
	assert.Equal(t, []ports.Rule{{From: "2", To: "3"}, {From: "#", To: "1"}}, s.Rules())

	_, err := s.Get("21")
	require.NoError(t, err)
	rec.subscribers = 3
	stats := s.Stats()
	assert.Equal(t, 2, stats.Rules)
	assert.Equal(t, 2, stats.Nodes)
	assert.Equal(t, 10, stats.NodeLimit)
	assert.Equal(t, 3, stats.Subscribers)

	err = s.Seed([]config.Forward{{From: "5", To: "5"}})
	assert.ErrorIs(t, err, forward.ErrSelfForward)
}

func TestService_ConcurrentAccess(t *testing.T) {
	s, _, _ := newService(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if j%10 == 0 {
					_ = s.Add("12", "3")
					_, _ = s.Remove("1")
					continue
				}
				got, err := s.Get("125")
				if assert.NoError(t, err) {
					assert.Contains(t, []string{"35", "125"}, got[0])
				}
			}
		}()
	}
	wg.Wait()
}

func TestService_EventsFollowMutationOrder(t *testing.T) {
	for run := 0; run < 200; run++ {
		s, rec, _ := newService(t)
		rec.jitter = true

		var wg sync.WaitGroup
		for _, to := range []string{"2", "3"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, s.Add("1", to))
			}()
		}
		wg.Wait()

		got, err := s.Get("1")
		require.NoError(t, err)
		require.Len(t, rec.events, 2)
		require.Equal(t, got[0], rec.events[1].To, "run %d", run)
	}
}

func TestService_Clear(t *testing.T) {
	s, rec, cache := newService(t)
	require.NoError(t, s.Add("1", "2"))
	require.NoError(t, s.Add("34", "5"))
	_, err := s.Get("1")
	require.NoError(t, err)

	assert.Equal(t, 2, s.Clear())
	_, ok := cache.Get("get:1")
	assert.False(t, ok)
	assert.Empty(t, s.Rules())
	assert.Zero(t, s.Stats().Nodes)

	got, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, got)

	require.Len(t, rec.events, 3)
	assert.Equal(t, ports.EventClear, rec.events[2].Type)
}

func TestService_SetNodeLimit(t *testing.T) {
	s, _, _ := newService(t, forward.WithNodeLimit(2))
	require.NoError(t, s.Add("12", "3"))
	assert.ErrorIs(t, s.Add("4", "5"), forward.ErrNoSpace)

	s.SetNodeLimit(3)
	assert.Equal(t, 3, s.Stats().NodeLimit)
	assert.NoError(t, s.Add("4", "5"))
}
