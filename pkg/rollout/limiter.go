package rollout

import (
	"context"
	"strings"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // Stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime  StopReason = 2 // Time limit reached
)

var stopReasonNames = [...]string{"Interrupt", "Movetime"}

// Names of the set flags joined with '|', "None" if there are none
func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	names := make([]string, 0, len(stopReasonNames))
	for i, name := range stopReasonNames {
		if sr&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

type LimiterLike interface {
	SetContext(ctx context.Context)
	// Set the limits
	SetLimits(*Limits)
	// Get the limits
	Limits() *Limits
	// Get elapsed time in ms (from the last 'Reset' call)
	Elapsed() uint32
	// Set the stop signal, playouts won't be started after it's set to true
	SetStop(bool)
	// Get the stop signal
	Stop() bool
	// Reset the limiter's flags, called on search setup
	Reset()
	// Whether another playout may be started, called before every playout
	Ok() bool
	// Get the reason why the search was stopped, valid after search ends
	StopReason() StopReason
	// Evaluate stop reason based on current state, and set it internally,
	// called once after search ends
	EvaluateStopReason()
}

type Limiter struct {
	limits *Limits
	Timer  *_Timer
	stop   atomic.Bool
	reason atomic.Int32
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  _NewTimer(),
		ctx:    context.Background(),
	}
}

func (l *Limiter) Reset() {
	l.Timer.Movetime(l.limits.Movetime)
	l.Timer.Reset()
	l.stop.Store(false)
	l.reason.Store(int32(StopNone))
}

func (l *Limiter) EvaluateStopReason() {
	reason := StopNone

	if l.Stop() {
		reason |= StopInterrupt
	}

	if l.Timer.IsEnd() {
		reason |= StopMovetime
	}

	l.reason.Store(int32(reason))
}

func (l *Limiter) StopReason() StopReason {
	return StopReason(l.reason.Load())
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) Elapsed() uint32 {
	return uint32(l.Timer.Deltatime())
}

func (l *Limiter) Ok() bool {
	return !l.Stop() && !l.Timer.IsEnd()
}
