package ghttpd

import (
	"bufio"
	"log"
	"net"
	"sync"
)

type (
	// Conn is one accepted, bidirectional byte stream. Its lifetime is a
	// single request/response cycle: one read, one write, one Flush, then
	// Close. Conns are never reused across requests.
	Conn interface {
		net.Conn
		Flush() error
		Stats() (int64, int64)
	}

	// NewConn wraps a Conn with another. Layerable.
	NewConn func(Conn) Conn

	baseConn struct {
		net.Conn
	}

	// BufferedConn wraps Conn in bufio.Reader/Writer.
	// Writes stay buffered until Flush or Close.
	BufferedConn struct {
		Conn
		bufr *bufio.Reader
		bufw *bufio.Writer
		once sync.Once
	}

	// StatsConn wraps Conn to count incoming/outgoing bytes.
	StatsConn struct {
		Conn
		InBytes  int64
		OutBytes int64
	}

	// DebugConn wraps Conn to log every operation.
	DebugConn struct {
		Conn
	}
)

var (
	readerPool sync.Pool
	writerPool sync.Pool
)

func NewBaseConn(conn net.Conn) Conn {
	return &baseConn{
		Conn: conn,
	}
}

// Flush is a no-op; an unbuffered conn writes through.
func (bc *baseConn) Flush() error {
	return nil
}

func (bc *baseConn) Stats() (int64, int64) {
	return 0, 0
}

func NewBufferedConn(conn Conn) Conn {
	var br *bufio.Reader
	var bw *bufio.Writer
	if v := readerPool.Get(); v != nil {
		br = v.(*bufio.Reader)
		br.Reset(conn)
	} else {
		br = bufio.NewReader(conn)
	}
	if v := writerPool.Get(); v != nil {
		bw = v.(*bufio.Writer)
		bw.Reset(conn)
	} else {
		bw = bufio.NewWriter(conn)
	}
	return &BufferedConn{
		Conn: conn,
		bufr: br,
		bufw: bw,
	}
}

func (b *BufferedConn) Read(buf []byte) (n int, err error) {
	n, err = b.bufr.Read(buf)
	return
}

func (b *BufferedConn) Write(buf []byte) (n int, err error) {
	n, err = b.bufw.Write(buf)
	return
}

func (b *BufferedConn) Close() (err error) {
	b.once.Do(func() {
		b.bufr.Reset(nil)
		readerPool.Put(b.bufr)
		b.bufr = nil
		err = b.bufw.Flush()
		b.bufw.Reset(nil)
		writerPool.Put(b.bufw)
		b.bufw = nil
		e := b.Conn.Close()
		if err == nil {
			err = e
		}
	})
	return
}

func (b *BufferedConn) Flush() (err error) {
	return b.bufw.Flush()
}

func NewStatsConn(conn Conn) Conn {
	return &StatsConn{Conn: conn}
}

func (s *StatsConn) Read(buf []byte) (n int, err error) {
	n, err = s.Conn.Read(buf)
	s.InBytes += int64(n)
	return
}

func (s *StatsConn) Write(buf []byte) (n int, err error) {
	n, err = s.Conn.Write(buf)
	s.OutBytes += int64(n)
	return
}

func (s *StatsConn) Stats() (int64, int64) {
	return s.InBytes, s.OutBytes
}

func NewDebugConn(conn Conn) Conn {
	return &DebugConn{Conn: conn}
}

func (d *DebugConn) Read(buf []byte) (n int, err error) {
	log.Printf("Read(%d) = ....", len(buf))
	n, err = d.Conn.Read(buf)
	log.Printf("Read(%d) = %d, %v", len(buf), n, err)
	return
}

func (d *DebugConn) Write(buf []byte) (n int, err error) {
	log.Printf("Write(%d) = ....", len(buf))
	n, err = d.Conn.Write(buf)
	log.Printf("Write(%d) = %d, %v", len(buf), n, err)
	return
}

func (d *DebugConn) Close() (err error) {
	log.Printf("Close() = ...")
	err = d.Conn.Close()
	log.Printf("Close() = %v", err)
	return
}
