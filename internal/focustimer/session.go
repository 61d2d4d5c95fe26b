package focustimer

import (
	"errors"
	"fmt"
	"time"
)

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseWork      Phase = "work"
	PhaseBreak     Phase = "break"
	PhasePaused    Phase = "paused"
	PhaseCompleted Phase = "completed"
)

// ErrInvalidTransition signals a caller bug: an action was attempted in a
// phase that does not permit it. State is left untouched.
var ErrInvalidTransition = errors.New("invalid timer transition")

// SessionTTL is how long a persisted session stays resumable.
const SessionTTL = 24 * time.Hour

type Settings struct {
	WorkMinutes  int `json:"work_minutes"`
	BreakMinutes int `json:"break_minutes"`
	PushupTarget int `json:"pushup_target"`
}

// Session is the durable record of one timer run. It is mutated only by
// Machine and serialized as-is into the store on every transition.
type Session struct {
	Phase         Phase      `json:"phase"`
	PreviousPhase Phase      `json:"previous_phase,omitempty"`
	TimeRemaining int        `json:"time_remaining_seconds"`
	CurrentCycle  int        `json:"current_cycle"`
	Settings      Settings   `json:"settings"`
	TotalPushups  int        `json:"total_pushups"`
	PerBreakLog   []int      `json:"per_break_log"`
	WorkSeconds   int        `json:"work_seconds"`
	BreakSeconds  int        `json:"break_seconds"`
	Cycles        int        `json:"cycles_completed"`
	StartedAt     time.Time  `json:"started_at"`
	PausedAt      *time.Time `json:"paused_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Summary is the one externally observable product of a session. Its
// pushup total is what gets submitted as an ordinary activity entry.
type Summary struct {
	TotalSeconds    int   `json:"total_seconds"`
	WorkSeconds     int   `json:"work_seconds"`
	BreakSeconds    int   `json:"break_seconds"`
	CyclesCompleted int   `json:"cycles_completed"`
	TotalPushups    int   `json:"total_pushups"`
	PerBreakLog     []int `json:"per_break_log"`
}

// Machine drives one session. It is not safe for concurrent use: the
// contract is a single cooperative loop where user actions and the
// one-second tick never run at the same time.
type Machine struct {
	store Store
	sess  *Session
	now   func() time.Time
}

func New(store Store) *Machine {
	return &Machine{store: store, now: time.Now}
}

// Phase reports the active phase; idle when no session exists.
func (m *Machine) Phase() Phase {
	if m.sess == nil {
		return PhaseIdle
	}
	return m.sess.Phase
}

// Session exposes a copy of the current record for display purposes.
func (m *Machine) Session() (Session, bool) {
	if m.sess == nil {
		return Session{}, false
	}
	return *m.sess, true
}

func (m *Machine) invalid(action string) error {
	return fmt.Errorf("%s from phase %q: %w", action, m.Phase(), ErrInvalidTransition)
}

func (m *Machine) persist() error {
	m.sess.UpdatedAt = m.now()
	if m.store == nil {
		return nil
	}
	return m.store.Save(m.sess)
}

func (m *Machine) clear() error {
	m.sess = nil
	if m.store == nil {
		return nil
	}
	return m.store.Clear()
}

func (m *Machine) Start(settings Settings) error {
	if m.sess != nil {
		return m.invalid("start")
	}
	if settings.WorkMinutes < 1 || settings.BreakMinutes < 1 {
		return errors.New("work and break durations must be at least one minute")
	}
	m.sess = &Session{
		Phase:         PhaseWork,
		TimeRemaining: settings.WorkMinutes * 60,
		CurrentCycle:  1,
		Settings:      settings,
		PerBreakLog:   []int{},
		StartedAt:     m.now(),
	}
	return m.persist()
}

// Tick advances the clock by one second. Ticks arriving while paused,
// idle or completed are ignored rather than applied to stale state.
func (m *Machine) Tick() error {
	if m.sess == nil || (m.sess.Phase != PhaseWork && m.sess.Phase != PhaseBreak) {
		return nil
	}
	switch m.sess.Phase {
	case PhaseWork:
		m.sess.WorkSeconds++
	case PhaseBreak:
		m.sess.BreakSeconds++
	}
	m.sess.TimeRemaining--
	if m.sess.TimeRemaining > 0 {
		return m.persist()
	}
	if m.sess.Phase == PhaseWork {
		m.sess.Phase = PhaseBreak
		m.sess.TimeRemaining = m.sess.Settings.BreakMinutes * 60
		m.sess.Cycles++
	} else {
		m.sess.Phase = PhaseWork
		m.sess.TimeRemaining = m.sess.Settings.WorkMinutes * 60
		m.sess.CurrentCycle++
	}
	return m.persist()
}

func (m *Machine) Pause() error {
	if m.sess == nil || (m.sess.Phase != PhaseWork && m.sess.Phase != PhaseBreak) {
		return m.invalid("pause")
	}
	now := m.now()
	m.sess.PreviousPhase = m.sess.Phase
	m.sess.Phase = PhasePaused
	m.sess.PausedAt = &now
	return m.persist()
}

func (m *Machine) Resume() error {
	if m.sess == nil || m.sess.Phase != PhasePaused {
		return m.invalid("resume")
	}
	m.sess.Phase = m.sess.PreviousPhase
	m.sess.PreviousPhase = ""
	m.sess.PausedAt = nil
	return m.persist()
}

// AddPushups records pushups done during the current break. Pushups are
// logged against rest periods only; any other phase is a caller bug.
func (m *Machine) AddPushups(n int) error {
	if m.sess == nil || m.sess.Phase != PhaseBreak {
		return m.invalid("add pushups")
	}
	if n < 1 {
		return errors.New("pushup count must be positive")
	}
	m.sess.PerBreakLog = append(m.sess.PerBreakLog, n)
	m.sess.TotalPushups += n
	return m.persist()
}

// Stop finishes the session, returns its summary and clears the durable
// record. Cycles completed counts finished work-to-break transitions.
func (m *Machine) Stop() (*Summary, error) {
	if m.sess == nil || m.sess.Phase == PhaseCompleted {
		return nil, m.invalid("stop")
	}
	summary := &Summary{
		TotalSeconds:    m.sess.WorkSeconds + m.sess.BreakSeconds,
		WorkSeconds:     m.sess.WorkSeconds,
		BreakSeconds:    m.sess.BreakSeconds,
		CyclesCompleted: m.sess.Cycles,
		TotalPushups:    m.sess.TotalPushups,
		PerBreakLog:     m.sess.PerBreakLog,
	}
	m.sess.Phase = PhaseCompleted
	if err := m.clear(); err != nil {
		return nil, err
	}
	return summary, nil
}

// Discard abandons the session without producing a summary.
func (m *Machine) Discard() error {
	if m.sess == nil {
		return m.invalid("discard")
	}
	return m.clear()
}
