package breaks

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// SessionState is the lifecycle state of a focus session.
type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateRunning   SessionState = "running"
	StatePaused    SessionState = "paused"
	StateCompleted SessionState = "completed"
	StateStopped   SessionState = "stopped"
)

// breakCheckEveryMinutes is how often the countdown triggers a break-check
// evaluation while the session runs.
const breakCheckEveryMinutes = 5

// SessionConfig wires the countdown's callbacks. All callbacks are optional
// and run on the countdown goroutine.
type SessionConfig struct {
	// OnTick receives the remaining time once per second while running.
	OnTick func(remaining time.Duration)

	// OnBreakCheck fires every breakCheckEveryMinutes of running time,
	// carrying elapsed whole minutes. Callers typically feed this into
	// SuggestedBreak.
	OnBreakCheck func(elapsedMinutes int)

	// OnComplete fires once when the countdown reaches zero.
	OnComplete func()
}

// Session is the in-process foreground countdown for one focus session.
//
// It is a display concern only: pausing or stopping it never reschedules the
// absolute-time break triggers, which belong to Engine.ScheduleSession. The
// tick source is fully torn down on Stop and on completion; a leaked ticker
// is a defect.
type Session struct {
	cfg SessionConfig

	mu        sync.Mutex
	state     SessionState
	duration  time.Duration
	remaining time.Duration
	elapsed   time.Duration

	ticker  *time.Ticker
	stopCh  chan struct{}
	running atomic.Bool
}

// NewSession creates an idle session.
func NewSession(cfg SessionConfig) *Session {
	return &Session{cfg: cfg, state: StateIdle}
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Remaining returns how much session time is left.
func (s *Session) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Elapsed returns how much running time has accumulated.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Start begins the countdown. Starting an already running or paused session
// is an error; callers stop the previous session first.
func (s *Session) Start(durationMinutes int) error {
	if durationMinutes <= 0 {
		return errors.Errorf("session duration must be positive, got %d", durationMinutes)
	}
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("session already running")
	}

	ticker := time.NewTicker(time.Second)
	stopCh := make(chan struct{})

	s.mu.Lock()
	s.state = StateRunning
	s.duration = time.Duration(durationMinutes) * time.Minute
	s.remaining = s.duration
	s.elapsed = 0
	s.ticker = ticker
	s.stopCh = stopCh
	s.mu.Unlock()

	go s.run(ticker, stopCh)
	slog.Info("focus session started", "durationMinutes", durationMinutes)
	return nil
}

// Pause freezes the countdown. Already-registered triggers are unaffected.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		s.state = StatePaused
	}
}

// Resume continues a paused countdown.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePaused {
		s.state = StateRunning
	}
}

// Stop tears down the countdown. Safe to call twice.
func (s *Session) Stop() {
	s.teardown(StateStopped)
}

func (s *Session) teardown(final SessionState) {
	if !s.running.CompareAndSwap(true, false) {
		return
	}

	s.mu.Lock()
	close(s.stopCh)
	s.ticker.Stop()
	s.state = final
	s.mu.Unlock()

	slog.Info("focus session ended", "state", final)
}

// run is the countdown loop. Ticks while paused only keep the loop alive;
// they do not advance the clock. The loop owns the ticker and stop channel
// it was started with, so a restart never retargets an old goroutine.
func (s *Session) run(ticker *time.Ticker, stopCh chan struct{}) {
	for {
		select {
		case <-ticker.C:
			if s.tick() {
				s.teardown(StateCompleted)
				if s.cfg.OnComplete != nil {
					s.cfg.OnComplete()
				}
				return
			}
		case <-stopCh:
			return
		}
	}
}

// tick advances the countdown by one second and reports completion.
func (s *Session) tick() (done bool) {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return false
	}
	s.remaining -= time.Second
	s.elapsed += time.Second
	remaining := s.remaining
	elapsed := s.elapsed
	s.mu.Unlock()

	if s.cfg.OnTick != nil {
		s.cfg.OnTick(remaining)
	}
	if s.cfg.OnBreakCheck != nil && elapsed > 0 &&
		elapsed%(breakCheckEveryMinutes*time.Minute) == 0 {
		s.cfg.OnBreakCheck(int(elapsed / time.Minute))
	}
	return remaining <= 0
}
