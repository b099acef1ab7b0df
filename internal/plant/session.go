package plant

import (
	"fmt"
	"time"
)

// Session is one live plant: the generated segment store plus the growth
// engine state around it. It is single-threaded by contract; the gui drives
// it from its update loop and reads snapshots back after every mutation.
type Session struct {
	cfg       Config
	tun       Tuning
	store     *Store
	engine    *Engine
	tickAccum float64
}

// NewSession validates the config, generates the initial plant and returns
// the session ready for growth triggers. A zero seed is replaced with the
// wall clock so interactive runs differ; tests pass explicit seeds.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plant config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := &Session{cfg: cfg, tun: cfg.tuning()}
	if err := s.RegenerateWithIteration(cfg.Iterations); err != nil {
		return nil, err
	}
	return s, nil
}

// RegenerateWithIteration reruns the grammar at the given depth and replaces
// the plant wholesale: fresh store, fresh growth maps, all stage machines
// idle. Consumers never observe a partially replaced plant; the swap happens
// after the new store is fully built and normalized.
func (s *Session) RegenerateWithIteration(iterations int) error {
	instructions, err := Generate(s.cfg.Axiom, s.cfg.Rules, iterations)
	if err != nil {
		return err
	}
	s.cfg.Iterations = iterations

	store := NewStore(Interpret(instructions, s.cfg))
	store.NormalizeRoots(s.cfg.GroundY())

	s.store = store
	s.engine = NewEngine(s.cfg, s.tun, seededRNG(s.cfg.Seed), store)
	s.tickAccum = 0
	return nil
}

// ActivateGrowth starts a growth activation for branches, leaves or roots.
func (s *Session) ActivateGrowth(part PartType) error {
	if !s.engine.Activate(part) {
		return fmt.Errorf("cannot grow part type %s", part)
	}
	return nil
}

// Growing reports whether the part type's stage machine is active.
func (s *Session) Growing(part PartType) bool {
	return s.engine.Growing(part)
}

// Tick advances simulated time. Whole stage intervals that have elapsed run
// synchronously, one stage per active part type per interval.
func (s *Session) Tick(dt float64) {
	if dt < 0 {
		return
	}
	s.tickAccum += dt
	for s.tickAccum >= s.tun.TickInterval {
		s.tickAccum -= s.tun.TickInterval
		s.engine.RunStages()
	}
}

// Segments returns a read-only snapshot of the current plant.
func (s *Session) Segments() []Segment {
	return s.store.Segments()
}

// SegmentCount returns the current store size without copying.
func (s *Session) SegmentCount() int {
	return s.store.Len()
}

// Config returns the session's resolved configuration.
func (s *Session) Config() Config {
	return s.cfg
}
