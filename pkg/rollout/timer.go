package rollout

import (
	"sync/atomic"
	"time"
)

type _Timer struct {
	start    atomic.Int64
	duration time.Duration
}

func _NewTimer() *_Timer {
	t := &_Timer{duration: -1}
	t.Reset()
	return t
}

// Check if this timer has ended
func (t *_Timer) IsEnd() bool {
	return t.duration > 0 && time.Since(t.Start()) >= t.duration
}

// Set the 'start' as now
func (t *_Timer) Reset() {
	t.start.Store(time.Now().UnixNano())
}

func (t *_Timer) Start() time.Time {
	return time.Unix(0, t.start.Load())
}

// Elapsed milliseconds, at least 1
func (t *_Timer) Deltatime() int {
	return max(int(time.Since(t.Start()).Milliseconds()), 1)
}

// In milliseconds, negative disables the timer
func (t *_Timer) Movetime(movetime int) {
	if movetime < 0 {
		t.duration = -1
	} else {
		t.duration = time.Duration(movetime) * time.Millisecond
	}
}
