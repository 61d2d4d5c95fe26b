package focustimer

import "time"

// Rehydrate reconciles a persisted record with wall-clock time at load.
// A record last seen in work or break is never resumed silently: elapsed
// real time cannot be trusted to match in-memory ticks, so the session
// comes back paused with the elapsed time charged against the remaining
// budget (floored at zero). Records older than SessionTTL are expired.
// The return is nil when there is nothing worth restoring.
func Rehydrate(sess *Session, now time.Time) *Session {
	if sess == nil {
		return nil
	}
	if now.Sub(sess.StartedAt) > SessionTTL {
		return nil
	}
	switch sess.Phase {
	case PhaseWork, PhaseBreak:
		elapsed := int(now.Sub(sess.UpdatedAt).Seconds())
		if elapsed < 0 {
			elapsed = 0
		}
		sess.TimeRemaining -= elapsed
		if sess.TimeRemaining < 0 {
			sess.TimeRemaining = 0
		}
		sess.PreviousPhase = sess.Phase
		sess.Phase = PhasePaused
		pausedAt := now
		sess.PausedAt = &pausedAt
		return sess
	case PhasePaused:
		return sess
	default:
		// idle or completed records have nothing to restore
		return nil
	}
}

// Restore loads and rehydrates the stored session into the machine.
// Expired or unusable records are cleared from the store.
func (m *Machine) Restore() error {
	if m.store == nil {
		return nil
	}
	sess, err := m.store.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		return nil
	}
	restored := Rehydrate(sess, m.now())
	if restored == nil {
		return m.store.Clear()
	}
	m.sess = restored
	return m.persist()
}
