// Package worker provides a worker pool for parallel move-tree counting.
package worker

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is one subtree to count: the position reached after Move,
// searched Depth further plies.
type WorkItem struct {
	Position engine.Position
	Move     chess.Move
	Depth    int
	Index    int // root move order
}

// ProcessResult is the node count of one subtree.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc processes a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted work items on a fixed set of
// goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	work        chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the work and result channel capacity.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. By default it runs one worker per CPU with a
// buffer of 64 items.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  runtime.NumCPU(),
		bufferSize:  64,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.processFunc(item)
	}
}

// Submit queues a work item, blocking while the buffer is full.
// It reports false once the pool has been stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	p.work <- item
	return true
}

// Stop makes workers discard queued items instead of processing them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close stops accepting work, waits for the workers, and closes the
// result channel. Results must be drained concurrently.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
