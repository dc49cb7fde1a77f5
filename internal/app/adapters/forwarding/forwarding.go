package forwarding

import (
	"errors"
	"fmt"
	"log/slog"
	"phoneforward/internal/app/adapters/metrics"
	"phoneforward/internal/app/domain/forward"
	"phoneforward/internal/app/domain/number"
	"phoneforward/internal/app/infrastructure/config"
	"phoneforward/internal/app/ports"
	"phoneforward/pkg/logger"
	"sync"
	"time"
)

const (
	opAdd        = "add"
	opRemove     = "remove"
	opGet        = "get"
	opReverse    = "reverse"
	opGetReverse = "get_reverse"
	opClear      = "clear"
)

// Service serializes access to the engine: mutations take the write lock,
// queries the read lock. Query results are cached until the next mutation.
// Change events are published under the write lock, so subscribers see them
// in the order the engine applied them.
type Service struct {
	log    logger.Logger
	engine ports.EnginePort
	cache  ports.CachePort[[]string]
	events ports.EventsPort

	mu sync.RWMutex
}

type Option func(*Service)

func WithEvents(events ports.EventsPort) Option {
	return func(s *Service) {
		s.events = events
	}
}

func New(log logger.Logger, engine ports.EnginePort, cache ports.CachePort[[]string], opts ...Option) *Service {
	s := &Service{
		log:    log,
		engine: engine,
		cache:  cache,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed adds the configured forwards, stopping at the first failure.
func (s *Service) Seed(forwards []config.Forward) error {
	for i, fwd := range forwards {
		if err := s.Add(fwd.From, fwd.To); err != nil {
			return fmt.Errorf("seed forward %d (%s -> %s): %w", i, fwd.From, fwd.To, err)
		}
	}
	s.log.Info("Forwards seeded", slog.Int("count", len(forwards)))
	return nil
}

func (s *Service) Add(from, to string) error {
	start := time.Now()

	s.mu.Lock()
	err := s.engine.Add(from, to)
	if err == nil {
		s.afterMutationLocked()
		s.publish(ports.Event{Type: ports.EventAdd, From: from, To: to, At: time.Now()})
	}
	s.mu.Unlock()

	s.observe(opAdd, start, err)
	if err != nil {
		if errors.Is(err, forward.ErrNoSpace) {
			s.log.Warn("Forward rejected, engine is full", slog.String("from", from), slog.String("to", to))
		}
		return err
	}

	s.log.Debug("Forward added", slog.String("from", from), slog.String("to", to))
	return nil
}

// Remove drops every forward under prefix. It reports false when nothing
// was stored under it.
func (s *Service) Remove(prefix string) (bool, error) {
	if !number.Valid(prefix) {
		s.observe(opRemove, time.Now(), forward.ErrInvalidNumber)
		return false, forward.ErrInvalidNumber
	}
	start := time.Now()

	s.mu.Lock()
	removed := s.engine.Remove(prefix)
	if removed {
		s.afterMutationLocked()
		s.publish(ports.Event{Type: ports.EventRemove, From: prefix, At: time.Now()})
	}
	s.mu.Unlock()

	s.observe(opRemove, start, nil)
	if removed {
		s.log.Debug("Forwards removed", slog.String("prefix", prefix))
	}
	return removed, nil
}

// Clear drops every forward and returns how many there were.
func (s *Service) Clear() int {
	start := time.Now()

	s.mu.Lock()
	count := s.engine.Len()
	s.engine.Clear()
	s.afterMutationLocked()
	s.publish(ports.Event{Type: ports.EventClear, At: time.Now()})
	s.mu.Unlock()

	s.observe(opClear, start, nil)
	s.log.Info("Forwards cleared", slog.Int("count", count))
	return count
}

// SetNodeLimit applies a new engine node cap. Stored forwards are kept.
func (s *Service) SetNodeLimit(limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.NodeLimit() == limit {
		return
	}
	s.engine.SetNodeLimit(limit)
	s.log.Info("Node limit changed", slog.Int("limit", limit), slog.Int("nodes", s.engine.Nodes()))
}

func (s *Service) Get(num string) ([]string, error) {
	return s.query(opGet, num, s.engine.Get)
}

func (s *Service) Reverse(num string) ([]string, error) {
	return s.query(opReverse, num, s.engine.Reverse)
}

func (s *Service) GetReverse(num string) ([]string, error) {
	return s.query(opGetReverse, num, s.engine.GetReverse)
}

func (s *Service) Rules() []ports.Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]ports.Rule, 0, s.engine.Len())
	for from, to := range s.engine.Rules() {
		rules = append(rules, ports.Rule{From: from, To: to})
	}
	return rules
}

func (s *Service) Stats() ports.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ports.Stats{
		Rules:     s.engine.Len(),
		Nodes:     s.engine.Nodes(),
		NodeLimit: s.engine.NodeLimit(),
		Cached:    s.cache.Len(),
	}
	if s.events != nil {
		stats.Subscribers = s.events.Subscribers()
	}
	return stats
}

func (s *Service) query(op, num string, run func(string) *number.Numbers) ([]string, error) {
	if !number.Valid(num) {
		s.observe(op, time.Now(), forward.ErrInvalidNumber)
		return nil, forward.ErrInvalidNumber
	}
	start := time.Now()
	key := op + ":" + num

	s.mu.RLock()
	defer s.mu.RUnlock()

	if cached, ok := s.cache.Get(key); ok {
		metrics.CacheLookups.WithLabelValues(op, "hit").Inc()
		s.observe(op, start, nil)
		return append([]string(nil), cached...), nil
	}
	metrics.CacheLookups.WithLabelValues(op, "miss").Inc()

	res := run(num)
	out := res.Slice()
	res.Release()

	s.cache.Set(key, out)
	s.observe(op, start, nil)
	return append([]string(nil), out...), nil
}

// afterMutationLocked must be called with the write lock held.
func (s *Service) afterMutationLocked() {
	s.cache.ClearAll()
	metrics.Rules.Set(float64(s.engine.Len()))
	metrics.Nodes.Set(float64(s.engine.Nodes()))
}

// publish must be called with the write lock held.
func (s *Service) publish(event ports.Event) {
	if s.events != nil {
		s.events.Publish(event)
	}
}

func (s *Service) observe(op string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, forward.ErrInvalidNumber), errors.Is(err, forward.ErrSelfForward):
		result = "invalid"
	case errors.Is(err, forward.ErrNoSpace):
		result = "no_space"
	case err != nil:
		result = "error"
	}

	metrics.Operations.WithLabelValues(op, result).Inc()
	metrics.OperationTime.WithLabelValues(op).Observe(float64(time.Since(start).Microseconds()) / 1000)
}
