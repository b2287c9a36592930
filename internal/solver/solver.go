// Package solver searches the move graph of a puzzle state for an
// ordered move sequence that clears the board.
package solver

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/rules"
)

// ErrUnsolvable reports that the search exhausted the state space
// without finding a clearing sequence. It is a normal terminal outcome,
// not a defect.
var ErrUnsolvable = errors.New("solver: no clearing sequence exists")

// Options configures a solve run.
type Options struct {
	// Workers is the number of goroutines exploring the root branches.
	// Values below 2 run the search sequentially. The verdict is the
	// same either way; only which valid solution is found may differ.
	Workers int
}

// Stats reports how much work a solve took.
type Stats struct {
	Nodes    int64
	Duration time.Duration
}

// Result holds a discovered solution. Moves applied in order to the
// initial state end in a cleared board. The solution is the first one
// found, not necessarily the shortest.
type Result struct {
	Moves []board.Coord
	Stats Stats
}

// Solve searches for a clearing sequence from the initial state.
// Returns ErrUnsolvable when none exists, or ctx.Err() if cancelled.
func Solve(ctx context.Context, initial *board.GameState, opts Options) (Result, error) {
	start := time.Now()
	e := &engine{visited: newVisitedSet()}

	result := func(moves []board.Coord, err error) (Result, error) {
		stats := Stats{Nodes: e.nodes.Load(), Duration: time.Since(start)}
		if err != nil {
			return Result{Stats: stats}, err
		}
		return Result{Moves: moves, Stats: stats}, nil
	}

	e.visited.Insert(initial.Key())
	if opts.Workers > 1 {
		return result(e.searchParallel(ctx, initial, opts.Workers))
	}

	var path []board.Coord
	found, err := e.dfs(ctx, initial, &path)
	if err != nil {
		return result(nil, err)
	}
	if !found {
		return result(nil, ErrUnsolvable)
	}
	return result(path, nil)
}

// engine holds the state shared across all branches of one solve.
type engine struct {
	visited *visitedSet
	nodes   atomic.Int64
}

// branch is one representative move out of a state.
type branch struct {
	target  board.Coord
	removal rules.Removal
}

// legalBranches enumerates the distinct moves out of a state: one
// representative per matching group. Exposed coordinates that would
// remove the identical cell set as the identical color collapse to a
// single branch, keeping the branching factor proportional to visible
// groups rather than cell count.
func legalBranches(s *board.GameState) []branch {
	var out []branch
	seen := make(map[string]struct{})
	for _, target := range rules.Exposed(s) {
		rem, err := rules.Resolve(s, target)
		if err != nil {
			continue
		}
		key := groupKey(rem)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, branch{target: target, removal: rem})
	}
	return out
}

func groupKey(rem rules.Removal) string {
	var sb strings.Builder
	sb.WriteRune(rune(rem.Color))
	for _, c := range rem.Cells {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// dfs explores depth-first from s. On success the winning moves are
// left in *path. Successor states are only descended into on first
// visit; every state removes at least one stone per move, so the graph
// is finite and exhaustion is a proof of unsolvability.
func (e *engine) dfs(ctx context.Context, s *board.GameState, path *[]board.Coord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	e.nodes.Add(1)
	if s.IsCleared() {
		return true, nil
	}
	for _, br := range legalBranches(s) {
		next := rules.ApplyRemoval(s, br.removal)
		if !e.visited.Insert(next.Key()) {
			continue
		}
		*path = append(*path, br.target)
		found, err := e.dfs(ctx, next, path)
		if err != nil || found {
			return found, err
		}
		*path = (*path)[:len(*path)-1]
	}
	return false, nil
}

// searchParallel fans the root branches out to a worker pool sharing
// the visited cache. The first worker to find a solution wins and
// cancels the rest.
func (e *engine) searchParallel(ctx context.Context, initial *board.GameState, workers int) ([]board.Coord, error) {
	e.nodes.Add(1)
	if initial.IsCleared() {
		return nil, nil
	}
	branches := legalBranches(initial)
	if len(branches) == 0 {
		return nil, ErrUnsolvable
	}
	if workers > len(branches) {
		workers = len(branches)
	}

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	work := make(chan branch)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		solution []board.Coord
		found    bool
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for br := range work {
				next := rules.ApplyRemoval(initial, br.removal)
				if !e.visited.Insert(next.Key()) {
					continue
				}
				path := []board.Coord{br.target}
				ok, err := e.dfs(cctx, next, &path)
				if err != nil || !ok {
					continue
				}
				mu.Lock()
				if !found {
					found = true
					solution = path
				}
				mu.Unlock()
				cancel()
				return
			}
		}()
	}

	for _, br := range branches {
		select {
		case work <- br:
		case <-cctx.Done():
		}
	}
	close(work)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if found {
		return solution, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, ErrUnsolvable
}

// visitedSet is a concurrency-safe insert-if-absent set of canonical
// state keys.
type visitedSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func newVisitedSet() *visitedSet {
	return &visitedSet{seen: make(map[string]struct{})}
}

// Insert adds key and reports whether it was absent.
func (v *visitedSet) Insert(key string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.seen[key]; ok {
		return false
	}
	v.seen[key] = struct{}{}
	return true
}
