package ghttpd

import "sync/atomic"

type (
	// Limiter admits or refuses an accepted connection before it becomes
	// a job. A refused connection is closed without a response.
	Limiter interface {
		OnConnected(Conn) bool
		OnClosed(Conn)
	}

	// MaxConnLimiter bounds how many accepted connections can be pending
	// or in-flight at once. The job queue itself is unbounded, this is
	// the knob that keeps a connection burst from growing it without
	// limit.
	MaxConnLimiter struct {
		Max     uint32
		current uint32 // accessed atomically
	}
)

func (mc *MaxConnLimiter) OnConnected(conn Conn) bool {
	new := atomic.AddUint32(&mc.current, 1)
	if new > mc.Max {
		atomic.AddUint32(&mc.current, ^uint32(0))
		return false
	}
	return true
}

func (mc *MaxConnLimiter) OnClosed(conn Conn) {
	atomic.AddUint32(&mc.current, ^uint32(0))
}
