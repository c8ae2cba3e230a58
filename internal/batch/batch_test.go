package batch

import (
	"context"
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	t.Run("results stay index-addressed, not completion-ordered", func(t *testing.T) {
		n := 50
		results := Run(context.Background(), n, 8, func(i int) error {
			if i%7 == 0 {
				return errors.New("boom")
			}
			return nil
		})

		if len(results) != n {
			t.Fatalf("len(results) = %d, want %d", len(results), n)
		}
		for i, r := range results {
			if r.Index != i {
				t.Errorf("results[%d].Index = %d, want %d", i, r.Index, i)
			}
			wantErr := i%7 == 0
			if (r.Err != nil) != wantErr {
				t.Errorf("results[%d].Err = %v, wantErr %v", i, r.Err, wantErr)
			}
		}
	})

	t.Run("one failure doesn't cancel siblings", func(t *testing.T) {
		n := 20
		results := Run(context.Background(), n, 4, func(i int) error {
			if i == 3 {
				return errors.New("single failure")
			}
			return nil
		})

		failures := 0
		for _, r := range results {
			if r.Err != nil {
				failures++
			}
		}
		if failures != 1 {
			t.Errorf("failures = %d, want 1", failures)
		}
	})

	t.Run("zero or negative workers default to NumCPU", func(t *testing.T) {
		results := Run(context.Background(), 5, 0, func(i int) error { return nil })
		if len(results) != 5 {
			t.Errorf("len(results) = %d, want 5", len(results))
		}
	})

	t.Run("canceled context stops unstarted jobs", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results := Run(ctx, 10, 2, func(i int) error { return nil })
		canceled := 0
		for _, r := range results {
			if errors.Is(r.Err, context.Canceled) {
				canceled++
			}
		}
		if canceled == 0 {
			t.Error("expected at least one job to observe the canceled context")
		}
	})
}
