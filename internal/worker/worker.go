package worker

import "sync"

// Job is a unit of background work, such as a cache prewarm after an upload.
type Job func()

// Pool runs submitted jobs on a fixed number of goroutines.
// Request handling never waits on the pool; jobs are fire-and-forget.
type Pool struct {
	jobs chan Job
	wg   sync.WaitGroup
	once sync.Once
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = 1
	}
	p := &Pool{jobs: make(chan Job, n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job != nil {
			job()
		}
	}
}

// Submit enqueues a job without blocking. Returns false and drops the job
// when all workers are busy and the queue is full.
func (p *Pool) Submit(j Job) bool {
	select {
	case p.jobs <- j:
		return true
	default:
		return false
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	p.once.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
}
