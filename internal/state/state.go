package state

import "sync"

type Phase int

const (
	BOOTING Phase = iota
	RUNNING
	STOPPED
	ERROR
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case RUNNING:
		return "running"
	case STOPPED:
		return "stopped"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

type InstanceInfo struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	OffsetPx float64 `json:"offsetPx"`
	Frames   uint64  `json:"frames"`
}

type State struct {
	Phase     Phase
	Source    string
	Frames    uint64
	Instances []InstanceInfo
	Err       string
}

// Store is written by the frame loop and read by the preview server.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

// Snapshot returns a copy that is safe to keep after the lock is released.
func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snap := store.state
	snap.Instances = append([]InstanceInfo(nil), store.state.Instances...)
	return snap
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) SetSource(source string) {
	store.mu.Lock()
	store.state.Source = source
	store.mu.Unlock()
}

func (store *Store) Fail(err error) {
	store.mu.Lock()
	store.state.Phase = ERROR
	if err != nil {
		store.state.Err = err.Error()
	}
	store.mu.Unlock()
}

// UpdateFrame replaces the per-frame counters. instances is owned by the
// store afterwards.
func (store *Store) UpdateFrame(frames uint64, instances []InstanceInfo) {
	store.mu.Lock()
	store.state.Frames = frames
	store.state.Instances = instances
	store.mu.Unlock()
}
