package state

import "sync"

type Phase int

const (
	BOOTING Phase = iota
	READY
	RELOADING
	ERROR
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case READY:
		return "ready"
	case RELOADING:
		return "reloading"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

type State struct {
	Phase      Phase
	Generation int    // number of asset sets built so far
	Background string // outcome of the last background load
	LastError  string
	// Hover selects which title bar button the preview shows hovered; -1 for none.
	Hover int
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING, Hover: -1}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

// Built records a successful asset build.
func (store *Store) Built(background string) {
	store.mu.Lock()
	store.state.Phase = READY
	store.state.Generation++
	store.state.Background = background
	store.state.LastError = ""
	store.mu.Unlock()
}

// Failed records a failed build. The previous generation stays current, so
// the phase only becomes ERROR if nothing was ever built.
func (store *Store) Failed(err error) {
	store.mu.Lock()
	if store.state.Generation == 0 {
		store.state.Phase = ERROR
	} else {
		store.state.Phase = READY
	}
	if err != nil {
		store.state.LastError = err.Error()
	}
	store.mu.Unlock()
}

func (store *Store) SetHover(button int) {
	store.mu.Lock()
	store.state.Hover = button
	store.mu.Unlock()
}
