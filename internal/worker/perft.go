package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// PerftProcessFunc counts the leaf nodes below a work item.
func PerftProcessFunc(item WorkItem) ProcessResult {
	return ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: engine.Perft(item.Position, item.Depth),
	}
}

// Divide splits a perft search of the given depth across a pool, one work
// item per legal root move. Results are returned in root move order.
func Divide(pos engine.Position, depth int, opts ...PoolOption) []ProcessResult {
	results, _ := DivideContext(context.Background(), pos, depth, opts...)
	return results
}

// DivideContext is Divide that gives up when ctx is done. Subtrees already
// being counted run to completion; queued ones are discarded and ctx's
// error is returned.
func DivideContext(ctx context.Context, pos engine.Position, depth int, opts ...PoolOption) ([]ProcessResult, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves := pos.AllLegalMoves()

	pool := NewPool(PerftProcessFunc, opts...)
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()

	go func() {
		for i, m := range moves {
			if ctx.Err() != nil {
				break
			}
			item := WorkItem{
				Position: pos.Apply(m),
				Move:     m,
				Depth:    depth - 1,
				Index:    i,
			}
			if !pool.Submit(item) {
				break
			}
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(moves))
	for r := range pool.Results() {
		results = append(results, r)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, nil
}

// TotalNodes sums the node counts of results.
func TotalNodes(results []ProcessResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}
