package ghttpd

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"
)

type (
	// Server accepts TCP connections and hands each one to a worker as a
	// single request/response job. The zero value is usable; Handler is
	// the only mandatory field.
	Server struct {
		Addr string

		Handler RequestHandler

		// Workers is the pool size. Defaults to DefaultWorkers when 0.
		Workers int

		// Configurable components
		NewConn    NewConn
		Logger     Logger
		Retry      Retry
		Limiters   []Limiter
		Statistics Statistics

		pool     *Pool
		listener net.Listener

		mu       sync.Mutex
		doneChan chan struct{}
	}
)

// DefaultWorkers is the pool size used when Server.Workers is zero.
const DefaultWorkers = 4

var (
	ErrServerClosed = errors.New("ghttpd: Server closed")
	ErrAbortHandler = errors.New("ghttpd: abort Handler")
)

func (s *Server) getDoneChan() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getDoneChanLocked()
}

func (s *Server) getDoneChanLocked() chan struct{} {
	if s.doneChan == nil {
		s.doneChan = make(chan struct{})
	}
	return s.doneChan
}

func (s *Server) closeDoneChanLocked() {
	ch := s.getDoneChanLocked()
	select {
	case <-ch:
		// Already closed. Don't close again.
	default:
		// Safe to close here. We're the only closer, guarded
		// by s.mu.
		close(ch)
	}
}

// Close stops accepting, waits for queued and in-flight jobs to finish and
// for every worker to exit. Safe to call multiple times.
func (s *Server) Close() (err error) {
	s.mu.Lock()
	s.closeDoneChanLocked()
	listener, pool := s.listener, s.pool
	s.mu.Unlock()
	if listener != nil {
		err = listener.Close()
	}
	if pool != nil {
		pool.Shutdown()
	}
	return
}

// Shutdown is Close bounded by ctx: it stops accepting, then waits for the
// worker pool to drain until ctx expires. There is no way to preempt a
// worker mid-job; on ctx expiry the workers are simply abandoned.
func (s *Server) Shutdown(ctx context.Context) (err error) {
	s.mu.Lock()
	s.closeDoneChanLocked()
	listener, pool := s.listener, s.pool
	s.mu.Unlock()
	if listener != nil {
		err = listener.Close()
	}
	if pool == nil {
		return
	}
	drained := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(drained)
	}()
	select {
	case <-drained:
		return
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListenerAddr returns the address the server is listening on, nil before
// Serve bound one. Useful with Addr ":0".
func (s *Server) ListenerAddr() net.Addr {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()
	if listener == nil {
		return nil
	}
	return listener.Addr()
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = ":8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(tcpKeepAliveListener{ln.(*net.TCPListener)})
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (c net.Conn, err error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return
	}
	tc.SetKeepAlive(true)
	tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}

// ListenAndServe listens on addr and serves every accepted connection with
// handler on a pool of DefaultWorkers workers.
func ListenAndServe(addr string, handler RequestHandler) error {
	server := &Server{Addr: addr, Handler: handler}
	return server.ListenAndServe()
}

// Serve runs the accept loop on l. Each accepted connection is submitted to
// the worker pool as one job; the loop itself never blocks on handling. A
// transient accept failure is logged and retried with backoff, it is never
// fatal. Serve returns ErrServerClosed after Close or Shutdown.
func (s *Server) Serve(l net.Listener) error {
	var retry uint64
	defer l.Close()

	if s.Handler == nil {
		panic("ghttpd: nil handler")
	}

	// set reasonable default to each component
	if s.Logger == nil {
		s.Logger = DefaultLogger
	}
	if s.Retry == nil {
		s.Retry = DefaultRetry
	}
	if s.Statistics == nil {
		s.Statistics = &TrafficStatistics{}
	}

	workers := s.Workers
	if workers == 0 {
		workers = DefaultWorkers
	}
	pool, err := NewPool(workers)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.pool = pool
	s.listener = l
	stopped := false
	select {
	case <-s.getDoneChanLocked():
		stopped = true
	default:
	}
	s.mu.Unlock()
	if stopped {
		// Close won the race before the listener was registered
		pool.Shutdown()
		return ErrServerClosed
	}

	for {
		rw, e := l.Accept()
		if e != nil {
			select {
			case <-s.getDoneChan():
				return ErrServerClosed
			default:
			}
			if ne, ok := e.(net.Error); ok && ne.Temporary() {
				delay := s.Retry.Backoff(retry)
				s.Logger.Errorf("ghttpd: Accept error: %v; retrying in %v", e, delay)
				time.Sleep(delay)
				retry += 1
				continue
			}
			return e
		}
		retry = 0
		var conn Conn = NewBaseConn(rw)
		if s.NewConn != nil {
			conn = s.NewConn(conn)
		}
		s.serve(conn)
	}
}

func (s *Server) serve(conn Conn) {
	for i, limiter := range s.Limiters {
		if limiter.OnConnected(conn) == false {
			s.Logger.Errorf("ghttpd: connection refused %v: by limiter %+v", conn.RemoteAddr(), limiter)
			// release the limiters that already admitted this conn
			for _, admitted := range s.Limiters[:i] {
				admitted.OnClosed(conn)
			}
			conn.Close()
			return
		}
	}
	s.pool.Submit(func() {
		s.handleConn(conn)
	})
}
