package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, Nodes: 1}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolStop(t *testing.T) {
	var processed int32
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()
	if pool.Submit(WorkItem{}) {
		t.Error("Submit after Stop should return false")
	}

	go pool.Close()
	collectResults(pool)

	if got := atomic.LoadInt32(&processed); got >= numItems {
		t.Logf("stop did not discard queued items: %d processed", got)
	}
}

func TestNewPool_Options(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"workers", []PoolOption{WithWorkers(4)}, 4, 64},
		{"buffer", []PoolOption{WithWorkers(1), WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid ignored", []PoolOption{WithWorkers(2), WithWorkers(0), WithBufferSize(-5)}, 2, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(PerftProcessFunc, tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}

	if got := NewPool(PerftProcessFunc).NumWorkers(); got < 1 {
		t.Errorf("default NumWorkers() = %d; want at least 1", got)
	}
}

func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	seen := make(map[int]bool)
	for r := range pool.Results() {
		seen[r.Index] = true
	}
	if len(seen) != numItems {
		t.Errorf("received %d distinct indices; want %d", len(seen), numItems)
	}
	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		depth     int
		wantMoves int
		wantNodes uint64
	}{
		{"initial depth 1", engine.InitialFEN, 1, 20, 20},
		{"initial depth 3", engine.InitialFEN, 3, 20, 8902},
		{"kiwipete depth 2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 48, 2039},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := engine.MustParseFEN(tt.fen)
			results := Divide(pos, tt.depth, WithWorkers(4))
			if len(results) != tt.wantMoves {
				t.Fatalf("Divide() returned %d results; want %d", len(results), tt.wantMoves)
			}
			for i, r := range results {
				if r.Index != i {
					t.Errorf("results[%d].Index = %d; want %d", i, r.Index, i)
				}
			}
			if got := TotalNodes(results); got != tt.wantNodes {
				t.Errorf("TotalNodes() = %d; want %d", got, tt.wantNodes)
			}
		})
	}
}

func TestDivide_MatchesSerial(t *testing.T) {
	pos := engine.NewInitialPosition()
	serial := engine.Divide(pos, 3)
	for _, r := range Divide(pos, 3, WithWorkers(3)) {
		if want := serial[r.Move.String()]; r.Nodes != want {
			t.Errorf("%s: nodes = %d; want %d", r.Move, r.Nodes, want)
		}
	}
}

func TestDivide_DepthZero(t *testing.T) {
	if got := Divide(engine.NewInitialPosition(), 0); got != nil {
		t.Errorf("Divide(0) = %v; want nil", got)
	}
}

func TestDivideContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := DivideContext(ctx, engine.NewInitialPosition(), 3, WithWorkers(2))
	if err != context.Canceled {
		t.Errorf("DivideContext() error = %v; want context.Canceled", err)
	}
	if results != nil {
		t.Errorf("DivideContext() = %v; want nil", results)
	}
}

func TestDivideContext_Completes(t *testing.T) {
	results, err := DivideContext(context.Background(), engine.NewInitialPosition(), 2, WithWorkers(2))
	if err != nil {
		t.Fatalf("DivideContext() error = %v", err)
	}
	if got := TotalNodes(results); got != 400 {
		t.Errorf("TotalNodes() = %d; want 400", got)
	}
}
