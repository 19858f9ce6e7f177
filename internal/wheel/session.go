package wheel

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/prize-wheel/internal/bgjobs"
	"github.com/petuhovskiy/prize-wheel/internal/log"
	"github.com/petuhovskiy/prize-wheel/internal/metrics"
	"github.com/petuhovskiy/prize-wheel/internal/models"
	"github.com/petuhovskiy/prize-wheel/internal/wrand"
)

const (
	DefaultSpinDuration   = 4 * time.Second
	DefaultExtraSpins     = 5
	DefaultMinItemsToSpin = 2
)

type Options struct {
	// SpinDuration is the time from spin start to settle.
	SpinDuration time.Duration
	// ExtraSpins is the number of cosmetic full turns added to every spin.
	ExtraSpins int
	// MinItemsToSpin refuses spins on smaller wheels.
	MinItemsToSpin int
	// RNG is the random source for selection. Defaults to wrand.Global.
	RNG wrand.RNG
	// Scheduler runs the settle task. Defaults to an untracked timer.
	Scheduler bgjobs.Scheduler
}

func (o *Options) setDefaults() {
	if o.SpinDuration <= 0 {
		o.SpinDuration = DefaultSpinDuration
	}
	if o.ExtraSpins <= 0 {
		o.ExtraSpins = DefaultExtraSpins
	}
	if o.MinItemsToSpin <= 0 {
		o.MinItemsToSpin = DefaultMinItemsToSpin
	}
	if o.RNG == nil {
		o.RNG = wrand.Global
	}
	if o.Scheduler == nil {
		o.Scheduler = bgjobs.NewTimerScheduler(bgjobs.NewRegister())
	}
}

// Spin describes a started spin. The outcome is revealed only on settle.
type Spin struct {
	// ID is a sequence number of the spin within the session.
	ID uint64
	// Rotation is the new cumulative rotation the wheel animates to.
	Rotation float64
	// Duration of the animation, settle fires after it.
	Duration time.Duration
}

// Session owns the wheel state and coordinates selection, rotation,
// the deferred settle, the item registry and the history.
//
// All operations are serialized by a single mutex, the settle task included.
type Session struct {
	mu       sync.Mutex
	opts     Options
	registry *Registry
	history  *History

	state models.SpinState
	spins uint64
}

func NewSession(registry *Registry, history *History, opts Options) *Session {
	opts.setDefaults()
	return &Session{
		opts:     opts,
		registry: registry,
		history:  history,
	}
}

// Spin starts a spin. It is a no-op while spinning, when there are too few
// items or when no item can be selected.
func (s *Session) Spin(ctx context.Context) (Spin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = log.Into(ctx, "wheel")

	if s.state.IsSpinning {
		log.Debug(ctx, "spin refused, already spinning")
		metrics.SpinsRefused.WithLabelValues(metrics.RefusedSpinning).Inc()
		return Spin{}, false
	}

	items := s.registry.Items()
	if len(items) < s.opts.MinItemsToSpin {
		log.Debug(ctx, "spin refused, too few items", zap.Int("items", len(items)))
		metrics.SpinsRefused.WithLabelValues(metrics.RefusedTooFew).Inc()
		return Spin{}, false
	}

	winner, index, ok := wrand.Select(items, s.opts.RNG)
	if !ok {
		log.Warn(ctx, "spin refused, nothing to select", zap.Int("items", len(items)))
		metrics.SpinsRefused.WithLabelValues(metrics.RefusedNoWeights).Inc()
		return Spin{}, false
	}

	rotation := NextRotation(s.state.Rotation, len(items), index, s.opts.ExtraSpins)

	s.spins++
	spin := Spin{
		ID:       s.spins,
		Rotation: rotation,
		Duration: s.opts.SpinDuration,
	}

	s.state = models.SpinState{
		Rotation:   rotation,
		IsSpinning: true,
		Result:     nil,
	}
	metrics.SpinsStarted.Inc()

	settleCtx := log.With(context.WithoutCancel(ctx), zap.Uint64("spin", spin.ID))
	log.Info(settleCtx, "spin started",
		zap.Float64("rotation", rotation),
		zap.Int("items", len(items)),
	)

	s.opts.Scheduler.After(s.opts.SpinDuration, func() {
		s.settle(settleCtx, spin.ID, winner)
	})
	return spin, true
}

// settle ends the spin, reveals the outcome and records it.
func (s *Session) settle(ctx context.Context, id uint64, winner models.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsSpinning || s.spins != id {
		log.Error(ctx, "unexpected settle", zap.Uint64("current", s.spins))
		return
	}

	outcome := winner
	s.state.IsSpinning = false
	s.state.Result = &outcome
	s.history.Record(ctx, outcome)
	metrics.SpinsSettled.Inc()

	log.Info(ctx, "spin settled", zap.String("id", outcome.ID), zap.String("label", outcome.Label))
}

// Reset moves the wheel back to zero rotation and clears the result.
// No-op while spinning. History is kept.
func (s *Session) Reset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsSpinning {
		return false
	}
	s.state = models.SpinState{}
	return true
}

// State returns a snapshot of the wheel state.
func (s *Session) State() models.SpinState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	if state.Result != nil {
		res := *state.Result
		state.Result = &res
	}
	return state
}

// CanSpin reports whether Spin would start now, as far as preconditions go.
func (s *Session) CanSpin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.state.IsSpinning && s.registry.Len() >= s.opts.MinItemsToSpin
}

// CanEdit reports whether items can be removed or cleared now.
func (s *Session) CanEdit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.state.IsSpinning
}

func (s *Session) Items() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Items()
}

func (s *Session) History() []models.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// AddItem adds an item with the given label. Blank labels are ignored.
// Adding is allowed mid-spin, the in-flight outcome is already captured.
func (s *Session) AddItem(ctx context.Context, label string) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Add(log.Into(ctx, "registry"), label)
}

// RemoveItem removes an item by id. No-op while spinning.
func (s *Session) RemoveItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsSpinning {
		return false
	}
	return s.registry.Remove(log.Into(ctx, "registry"), id)
}

// ClearItems removes all items. No-op while spinning.
func (s *Session) ClearItems(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsSpinning {
		return false
	}
	s.registry.Clear(log.Into(ctx, "registry"))
	return true
}

// ClearHistory empties the history. Allowed at any time.
func (s *Session) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Clear(log.Into(ctx, "history"))
}
