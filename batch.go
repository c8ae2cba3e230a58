package trash

import (
	"context"

	"github.com/rohithgilla12/trashcan/internal/batch"
)

// BatchResult is the outcome of one path or item in a bulk call.
type BatchResult struct {
	Path string
	Err  error
}

// TrashAll moves every path into the trash concurrently. workers <= 0
// picks a default (runtime.NumCPU()). Results are returned in the same
// order as paths; one path failing does not stop the others.
func TrashAll(ctx context.Context, paths []string, opts Options, workers int) []BatchResult {
	out := make([]BatchResult, len(paths))
	results := batch.Run(ctx, len(paths), workers, func(i int) error {
		return MoveToTrash(paths[i], opts)
	})
	for i, r := range results {
		out[i] = BatchResult{Path: paths[i], Err: r.Err}
	}
	return out
}

// RestoreAll restores every item concurrently through t.
func (t *Trashcan) RestoreAll(ctx context.Context, items []Item, workers int) []BatchResult {
	out := make([]BatchResult, len(items))
	results := batch.Run(ctx, len(items), workers, func(i int) error {
		return t.Restore(items[i])
	})
	for i, r := range results {
		out[i] = BatchResult{Path: items[i].OriginalPath, Err: r.Err}
	}
	return out
}

// EraseAll erases every item concurrently through t.
func (t *Trashcan) EraseAll(ctx context.Context, items []Item, workers int) []BatchResult {
	out := make([]BatchResult, len(items))
	results := batch.Run(ctx, len(items), workers, func(i int) error {
		return t.Erase(items[i])
	})
	for i, r := range results {
		out[i] = BatchResult{Path: items[i].OriginalPath, Err: r.Err}
	}
	return out
}
