package usecase

import "sync"

type FlowState int

const (
	FlowIdle FlowState = iota
	FlowRunning
	FlowCompleted
	FlowFailed
)

func (s FlowState) String() string {
	switch s {
	case FlowRunning:
		return "running"
	case FlowCompleted:
		return "completed"
	case FlowFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Flow guards one user flow. Each Begin hands out a run number; only the
// holder of the current run may finish it.
type Flow struct {
	mu    sync.Mutex
	name  FlowName
	state FlowState
	run   uint64
}

func NewFlow(name FlowName) *Flow {
	return &Flow{name: name}
}

func (f *Flow) Name() FlowName {
	return f.name
}

func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Begin enters Running. A second Begin while running is rejected, not queued.
func (f *Flow) Begin() (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FlowRunning {
		return 0, ErrFlowBusy
	}
	f.run++
	f.state = FlowRunning
	return f.run, nil
}

// Finish closes run as Completed (err == nil) or Failed. A run that was
// paused or superseded gets ErrStaleRun and changes nothing.
func (f *Flow) Finish(run uint64, err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if run != f.run {
		return ErrStaleRun
	}
	if f.state != FlowRunning {
		return ErrIllegalTransition
	}
	if err != nil {
		f.state = FlowFailed
	} else {
		f.state = FlowCompleted
	}
	return nil
}

// Pause drops back to Idle without touching the request in flight; its
// result will arrive as a stale run.
func (f *Flow) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != FlowRunning {
		return ErrIllegalTransition
	}
	f.run++
	f.state = FlowIdle
	return nil
}

func (f *Flow) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case FlowRunning:
		return ErrIllegalTransition
	case FlowCompleted, FlowFailed:
		f.state = FlowIdle
	}
	return nil
}
