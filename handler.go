package ghttpd

import (
	"runtime"
)

type (
	// RequestHandler maps one raw request buffer to the response bytes to
	// write back, or an error. It is invoked from arbitrary workers and
	// must be safe for concurrent use; it must not keep mutable state
	// across invocations.
	//
	// When the handler returns an error nothing is written back, the
	// connection is just dropped.
	RequestHandler func(request []byte) (response []byte, err error)
)

// requestBufSize bounds what is read from a connection. A single Read fills
// at most this much; a larger or fragmented request is handled truncated.
const requestBufSize = 1024

// handleConn runs one request/response cycle on the worker that claimed the
// job. Every failure path logs, closes the connection and returns the worker
// to the pool; nothing propagates.
func (s *Server) handleConn(conn Conn) {
	defer func() {
		for _, limiter := range s.Limiters {
			limiter.OnClosed(conn)
		}
		s.Statistics.AddConnStats(conn)
		if err := recover(); err != nil && err != ErrAbortHandler {
			const size = 64 << 10
			buf := make([]byte, size)
			buf = buf[:runtime.Stack(buf, false)]
			s.Logger.Errorf("ghttpd: panic serving %v: %v\n%s", conn.RemoteAddr(), err, buf)
		}
		conn.Close()
	}()
	buf := make([]byte, requestBufSize)
	n, err := conn.Read(buf)
	if err != nil && n == 0 {
		// a read may legally return data together with an error (EOF
		// included); only give up when nothing arrived at all
		s.Logger.Errorf("ghttpd: read error from %v: %v", conn.RemoteAddr(), err)
		return
	}
	res, err := s.Handler(buf[:n])
	if err != nil {
		// No response at all on a handler error; only the handler
		// itself turns bad requests into error responses.
		s.Logger.Errorf("ghttpd: handler error from %v: %v", conn.RemoteAddr(), err)
		return
	}
	if _, err := conn.Write(res); err != nil {
		s.Logger.Errorf("ghttpd: write error to %v: %v", conn.RemoteAddr(), err)
		return
	}
	if err := conn.Flush(); err != nil {
		s.Logger.Errorf("ghttpd: flush error to %v: %v", conn.RemoteAddr(), err)
	}
}
