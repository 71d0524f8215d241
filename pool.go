package ghttpd

import (
	"errors"
	"sync"
)

type (
	// Job is one deferred unit of work submitted to a Pool.
	// It runs exactly once, on exactly one worker.
	Job func()

	// Pool runs jobs on a fixed set of workers sharing one FIFO queue.
	// Workers are started at construction and live until Shutdown.
	Pool struct {
		queue   *messageQueue
		workers []*worker
		once    sync.Once
	}

	// worker is one long-lived goroutine identified by a stable id.
	worker struct {
		id   int
		done chan struct{} // closed when the goroutine exits
	}

	messageKind uint8

	// message is what the queue transports: either a job or a terminate
	// order. Terminate travels in-band so jobs queued before Shutdown
	// drain before any worker exits.
	message struct {
		kind messageKind
		job  Job
	}

	// messageQueue is an unbounded FIFO shared by all workers.
	// The mutex around pop guarantees each message is delivered to
	// exactly one worker.
	messageQueue struct {
		mu   sync.Mutex
		cond *sync.Cond
		msgs []message
	}
)

const (
	newJob messageKind = iota
	terminate
)

var (
	ErrPoolSize = errors.New("ghttpd: pool needs at least one worker")
)

func newMessageQueue() *messageQueue {
	q := &messageQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *messageQueue) push(m message) {
	q.mu.Lock()
	q.msgs = append(q.msgs, m)
	q.mu.Unlock()
	q.cond.Signal()
}

func (q *messageQueue) pop() message {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.msgs) == 0 {
		q.cond.Wait()
	}
	m := q.msgs[0]
	q.msgs[0] = message{} // let the job be collected
	q.msgs = q.msgs[1:]
	if len(q.msgs) == 0 {
		q.msgs = nil // reset capacity once drained
	}
	return m
}

// NewPool creates a Pool with size workers and starts them.
// It returns ErrPoolSize when size < 1.
func NewPool(size int) (*Pool, error) {
	if size < 1 {
		return nil, ErrPoolSize
	}
	p := &Pool{
		queue:   newMessageQueue(),
		workers: make([]*worker, size),
	}
	for i := 0; i < size; i++ {
		w := &worker{
			id:   i,
			done: make(chan struct{}),
		}
		p.workers[i] = w
		go w.run(p.queue)
	}
	return p, nil
}

func (w *worker) run(q *messageQueue) {
	defer close(w.done)
	for {
		m := q.pop()
		switch m.kind {
		case newJob:
			m.job()
		case terminate:
			return
		}
	}
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Submit enqueues job and returns immediately; the queue is unbounded so
// Submit never blocks and never drops. No result is reported back, delivery
// of results is the job's own responsibility.
//
// Submitting concurrently with or after Shutdown is a precondition
// violation: such a job may be claimed by no worker.
func (p *Pool) Submit(job Job) {
	p.queue.push(message{kind: newJob, job: job})
}

// Shutdown enqueues one terminate message per worker and waits for every
// worker to exit. Jobs submitted before Shutdown drain first since they
// share the FIFO queue with the terminate messages. Safe to call multiple
// times; only the first call does the work and later calls return after
// the first completed.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		for range p.workers {
			p.queue.push(message{kind: terminate})
		}
	})
	for _, w := range p.workers {
		<-w.done
	}
}
