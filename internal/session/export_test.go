package session

// ForceState wraps an arbitrary State, bypassing the transitions.
func ForceState(st State) Session {
	return Session{state: st}
}
