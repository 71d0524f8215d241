package ghttpd_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"ghttpd"
)

func TestNewPoolSize(t *testing.T) {
	t.Parallel()
	if _, err := ghttpd.NewPool(0); err != ghttpd.ErrPoolSize {
		t.Errorf("ghttpd_test: NewPool(0) expected: ErrPoolSize actual: %+v\n", err)
	}
	if _, err := ghttpd.NewPool(-1); err != ghttpd.ErrPoolSize {
		t.Errorf("ghttpd_test: NewPool(-1) expected: ErrPoolSize actual: %+v\n", err)
	}
	p, err := ghttpd.NewPool(1)
	if err != nil {
		t.Fatalf("ghttpd_test: NewPool(1) err: %+v\n", err)
	}
	if p.Size() != 1 {
		t.Errorf("ghttpd_test: Pool.Size expected: 1 actual: %d\n", p.Size())
	}
	p.Shutdown()
}

func TestPoolExecutesEveryJobOnce(t *testing.T) {
	t.Parallel()
	const jobs = 128
	for _, size := range []int{1, 4, 16} {
		p, err := ghttpd.NewPool(size)
		if err != nil {
			t.Fatalf("ghttpd_test: NewPool(%d) err: %+v\n", size, err)
		}
		var executed uint32
		var wg sync.WaitGroup
		for i := 0; i < jobs; i++ {
			wg.Add(1)
			p.Submit(func() {
				atomic.AddUint32(&executed, 1)
				wg.Done()
			})
		}
		wg.Wait()
		if executed != jobs {
			t.Errorf("ghttpd_test: pool(%d) expected: %d executions actual: %d\n",
				size, jobs, executed)
		}
		p.Shutdown()
	}
}

func TestPoolShutdownDrainsQueuedJobs(t *testing.T) {
	t.Parallel()
	p, err := ghttpd.NewPool(2)
	if err != nil {
		t.Fatalf("ghttpd_test: NewPool err: %+v\n", err)
	}
	const jobs = 64
	var executed uint32
	for i := 0; i < jobs; i++ {
		p.Submit(func() {
			atomic.AddUint32(&executed, 1)
		})
	}
	// terminate messages share the FIFO queue with the jobs above, so
	// Shutdown cannot return before every one of them ran
	p.Shutdown()
	if got := atomic.LoadUint32(&executed); got != jobs {
		t.Errorf("ghttpd_test: Pool.Shutdown expected: %d executions actual: %d\n", jobs, got)
	}
}

func TestPoolShutdownIdempotent(t *testing.T) {
	t.Parallel()
	p, err := ghttpd.NewPool(4)
	if err != nil {
		t.Fatalf("ghttpd_test: NewPool err: %+v\n", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			p.Shutdown()
			wg.Done()
		}()
	}
	wg.Wait()
	p.Shutdown()
}

func TestPoolFIFODequeueOrder(t *testing.T) {
	t.Parallel()
	// a single worker makes dequeue order observable as execution order
	p, err := ghttpd.NewPool(1)
	if err != nil {
		t.Fatalf("ghttpd_test: NewPool err: %+v\n", err)
	}
	const jobs = 32
	var mu sync.Mutex
	var order []int
	for i := 0; i < jobs; i++ {
		li := i // capture
		p.Submit(func() {
			mu.Lock()
			order = append(order, li)
			mu.Unlock()
		})
	}
	p.Shutdown()
	if len(order) != jobs {
		t.Fatalf("ghttpd_test: expected: %d executions actual: %d\n", jobs, len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("ghttpd_test: expected job %d at position %d actual: %d\n", i, i, got)
		}
	}
}
