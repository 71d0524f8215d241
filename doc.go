/*
Package ghttpd is a TCP request server built on a fixed-size worker pool,
with a minimal HTTP GET layer on top.

Can be used in the same manner with http.Server: the API is kept as
compatible as possible and the zero value is useful.

Fixed worker pool: N goroutines share one FIFO job queue, each accepted
connection becomes exactly one job, and shutdown drains queued jobs and
joins every worker before returning.

One request/response cycle per connection: a single bounded read, the
application callback, a single write+flush. No keep-alive, no pipelining.

Provides flexibility through built-in interfaces:

  - RequestHandler: FileHandler that serves GET requests from a content root.
  - Conn: BufferedConn that wraps Conn in bufio.Reader/Writer, StatsConn
    that wraps Conn to measure incoming/outgoing bytes, DebugConn that
    wraps Conn to output debug information.
  - Logger: BuiltinLogger that logs using the standard log package.
  - Retry: ExponentialRetry that implements exponential backoff for
    accept errors.
  - Statistics: TrafficStatistics that measures incoming/outgoing traffic
    across a server.
  - Limiter: MaxConnLimiter that limits connections based on the maximum
    number.

Gets GC pressure as little as possible with sync.Pool.
Zero 3rd party dependencies.
*/
package ghttpd
